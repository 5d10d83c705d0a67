package service

import (
	"context"
	"fmt"
	"math"

	"github.com/jengzang/records-heatmap-go/internal/models"
	"github.com/jengzang/records-heatmap-go/internal/repository"
)

// maxBatchSize caps a single upload
const maxBatchSize = 10000

// TrackService handles business logic for track points
type TrackService struct {
	trackRepo *repository.TrackRepository
}

// NewTrackService creates a new track service
func NewTrackService(trackRepo *repository.TrackRepository) *TrackService {
	return &TrackService{
		trackRepo: trackRepo,
	}
}

// GetTrackPoints retrieves track points with filtering and pagination
func (s *TrackService) GetTrackPoints(ctx context.Context, filter models.TrackPointFilter) (*models.TrackPointsResponse, error) {
	filter.Page, filter.PageSize = normalizePage(filter.Page, filter.PageSize)

	points, total, err := s.trackRepo.GetTrackPoints(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get track points: %w", err)
	}

	// Calculate total pages
	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))

	return &models.TrackPointsResponse{
		Data:       points,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// normalizePage clamps pagination parameters
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 100
	}
	if pageSize > 1000 {
		pageSize = 1000
	}
	return page, pageSize
}

// AddTrackPoints stores a batch of track points. Points without a
// position are accepted and stored with NULL coordinates.
func (s *TrackService) AddTrackPoints(ctx context.Context, batch models.TrackPointBatch) (int, error) {
	if len(batch.Points) == 0 {
		return 0, fmt.Errorf("%w: empty batch", ErrInvalidRequest)
	}
	if len(batch.Points) > maxBatchSize {
		return 0, fmt.Errorf("%w: batch of %d points exceeds %d", ErrInvalidRequest, len(batch.Points), maxBatchSize)
	}

	n, err := s.trackRepo.InsertTrackPoints(ctx, batch.Points)
	if err != nil {
		return 0, fmt.Errorf("failed to add track points: %w", err)
	}
	return n, nil
}
