package service

import (
	"context"
	"fmt"
	"time"

	"hackhub/models"

	"go.uber.org/zap"
)

const recentViewsWindow = 7 * 24 * time.Hour

// TrackEvent records an analytics event. Failures are logged and dropped.
func (s Service) TrackEvent(
	ctx context.Context,
	entityType string,
	entityID int,
	eventType string,
	metadata map[string]interface{},
) {
	if err := s.repo.TrackEvent(ctx, entityType, entityID, eventType, metadata); err != nil {
		s.logger.Warn("track event failed",
			zap.String("entity_type", entityType),
			zap.Int("entity_id", entityID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func (s Service) recordView(ctx context.Context, entityType string, id int) {
	if err := s.repo.IncrementViews(ctx, entityType, id); err != nil {
		s.logger.Warn("increment views failed",
			zap.String("entity_type", entityType),
			zap.Int("entity_id", id),
			zap.Error(err),
		)
	}
	s.TrackEvent(ctx, entityType, id, "view", nil)
}

func (s Service) ClubStats(ctx context.Context, clubID int) (models.ClubStats, error) {
	st, err := s.repo.ClubStats(ctx, clubID, s.now().Add(-recentViewsWindow))
	if err != nil {
		return models.ClubStats{}, fmt.Errorf("club stats: %w", err)
	}
	return st, nil
}

func (s Service) CollegeStats(ctx context.Context, collegeID int) (models.CollegeStats, error) {
	st, err := s.repo.CollegeStats(ctx, collegeID)
	if err != nil {
		return models.CollegeStats{}, fmt.Errorf("college stats: %w", err)
	}
	return st, nil
}
