package ports

import (
	"context"

	"github.com/dinerate/review-service/internal/core/domain"
)

// ReviewInput carries the writable fields of a review.
type ReviewInput struct {
	RestaurantName string
	ReviewText     string
	Rating         float64
}

type ReviewService interface {
	List(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, input ReviewInput) (*domain.Review, error)
	Update(ctx context.Context, id int64, input ReviewInput) error
	Delete(ctx context.Context, id int64) error
}
