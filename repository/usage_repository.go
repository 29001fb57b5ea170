package repository

import (
	"time"

	"menucloud/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsageRepository struct {
	DB *gorm.DB
}

func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{DB: db}
}

// Day truncates a timestamp to its UTC calendar day, the granularity of
// usage rows.
func Day(t time.Time) time.Time {
	return time.Date(t.UTC().Year(), t.UTC().Month(), t.UTC().Day(), 0, 0, 0, 0, time.UTC)
}

// IncrementDay upserts the per-day counter row for a restaurant.
func (r *UsageRepository) IncrementDay(restaurantID uint, day time.Time, bytes int64, unique bool) error {
	uniq := int64(0)
	if unique {
		uniq = 1
	}

	row := entity.UsageMetric{
		RestaurantID:   restaurantID,
		Date:           day,
		PageViews:      1,
		UniqueVisitors: uniq,
		BandwidthBytes: bytes,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "restaurant_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"page_views":      gorm.Expr("page_views + 1"),
			"unique_visitors": gorm.Expr("unique_visitors + ?", uniq),
			"bandwidth_bytes": gorm.Expr("bandwidth_bytes + ?", bytes),
			"updated_at":      time.Now(),
		}),
	}).Create(&row).Error
}

type UsageTotals struct {
	PageViews      int64 `json:"pageViews"`
	UniqueVisitors int64 `json:"uniqueVisitors"`
	BandwidthBytes int64 `json:"bandwidthBytes"`
}

// SumSince aggregates counters from a start day onward. A zero
// restaurantID sums across all restaurants.
func (r *UsageRepository) SumSince(restaurantID uint, since time.Time) (UsageTotals, error) {
	var totals UsageTotals
	q := r.DB.Model(&entity.UsageMetric{}).
		Select(`COALESCE(SUM(page_views), 0) AS page_views,
			COALESCE(SUM(unique_visitors), 0) AS unique_visitors,
			COALESCE(SUM(bandwidth_bytes), 0) AS bandwidth_bytes`).
		Where("date >= ?", since)
	if restaurantID != 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	err := q.Scan(&totals).Error
	return totals, err
}

func (r *UsageRepository) SumAll(restaurantID uint) (UsageTotals, error) {
	var totals UsageTotals
	q := r.DB.Model(&entity.UsageMetric{}).
		Select(`COALESCE(SUM(page_views), 0) AS page_views,
			COALESCE(SUM(unique_visitors), 0) AS unique_visitors,
			COALESCE(SUM(bandwidth_bytes), 0) AS bandwidth_bytes`)
	if restaurantID != 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	err := q.Scan(&totals).Error
	return totals, err
}

type RestaurantUsage struct {
	RestaurantID uint   `json:"restaurantId"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	TotalBytes   int64  `json:"totalBytes"`
	TotalViews   int64  `json:"totalViews"`
}

// TopByBandwidth ranks live restaurants by bytes served since a start day.
func (r *UsageRepository) TopByBandwidth(since time.Time, limit int) ([]RestaurantUsage, error) {
	var out []RestaurantUsage
	err := r.DB.Model(&entity.UsageMetric{}).
		Select(`usage_metrics.restaurant_id, restaurants.name, restaurants.slug,
			COALESCE(SUM(usage_metrics.bandwidth_bytes), 0) AS total_bytes,
			COALESCE(SUM(usage_metrics.page_views), 0) AS total_views`).
		Joins("JOIN restaurants ON restaurants.id = usage_metrics.restaurant_id AND restaurants.deleted_at IS NULL").
		Where("usage_metrics.date >= ?", since).
		Group("usage_metrics.restaurant_id, restaurants.name, restaurants.slug").
		Order("total_bytes DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
