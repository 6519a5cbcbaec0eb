package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dinerate/review-service/internal/core/domain"
	"github.com/dinerate/review-service/internal/core/ports"
)

// ReviewService orchestrates review CRUD against the repository. Field
// values pass through to the store untouched; the repository binds them as
// SQL parameters.
type ReviewService struct {
	repo   ports.ReviewRepository
	logger zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, logger: logger}
}

func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	return s.repo.List(ctx)
}

func (s *ReviewService) Create(ctx context.Context, input ports.ReviewInput) (*domain.Review, error) {
	review := &domain.Review{
		RestaurantName: input.RestaurantName,
		ReviewText:     input.ReviewText,
		Rating:         input.Rating,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		s.logger.Error().Err(err).Msg("failed to create review")
		return nil, err
	}

	s.logger.Info().
		Int64("review_id", review.ID).
		Str("restaurant_name", review.RestaurantName).
		Msg("review created")

	return review, nil
}

// Update rewrites all writable fields of the review with the given id.
// Returns domain.ErrReviewNotFound when no such row exists.
func (s *ReviewService) Update(ctx context.Context, id int64, input ports.ReviewInput) error {
	review := &domain.Review{
		ID:             id,
		RestaurantName: input.RestaurantName,
		ReviewText:     input.ReviewText,
		Rating:         input.Rating,
	}

	if err := s.repo.Update(ctx, review); err != nil {
		if err != domain.ErrReviewNotFound {
			s.logger.Error().Err(err).Int64("review_id", id).Msg("failed to update review")
		}
		return err
	}

	s.logger.Info().Int64("review_id", id).Msg("review updated")
	return nil
}

// Delete removes the review with the given id. Returns
// domain.ErrReviewNotFound when no such row exists.
func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err != domain.ErrReviewNotFound {
			s.logger.Error().Err(err).Int64("review_id", id).Msg("failed to delete review")
		}
		return err
	}

	s.logger.Info().Int64("review_id", id).Msg("review deleted")
	return nil
}
