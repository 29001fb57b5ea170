package services

import (
	"log"
	"time"

	"menucloud/repository"
)

// UsageService records public menu traffic. Tracking must never fail or
// slow down the page that triggered it, so errors are logged and dropped.
type UsageService struct {
	Repo *repository.UsageRepository
}

func NewUsageService(repo *repository.UsageRepository) *UsageService {
	return &UsageService{Repo: repo}
}

// TrackBandwidth upserts today's counter row for the restaurant.
// Fire-and-forget: call it from a goroutine on the public path.
func (s *UsageService) TrackBandwidth(restaurantID uint, bytes int64, uniqueVisitor bool) {
	day := repository.Day(time.Now())
	if err := s.Repo.IncrementDay(restaurantID, day, bytes, uniqueVisitor); err != nil {
		log.Printf("[usage] track failed restaurant=%d: %v", restaurantID, err)
	}
}
