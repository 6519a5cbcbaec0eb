package ports

import (
	"context"

	"github.com/dinerate/review-service/internal/core/domain"
)

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, review *domain.Review) error
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id int64) error
}
