package entity

import (
	"time"
)

// UsageMetric accumulates one row per restaurant per day. Rows are never
// deleted; historical analytics read straight from this table.
type UsageMetric struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_usage_restaurant_day" json:"restaurantId"`
	Date         time.Time `gorm:"not null;uniqueIndex:idx_usage_restaurant_day" json:"date"`

	PageViews      int64 `gorm:"default:0" json:"pageViews"`
	UniqueVisitors int64 `gorm:"default:0" json:"uniqueVisitors"`
	BandwidthBytes int64 `gorm:"default:0" json:"bandwidthBytes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
