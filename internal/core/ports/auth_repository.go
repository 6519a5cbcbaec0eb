package ports

import (
	"context"

	"github.com/dinerate/review-service/internal/core/domain"
)

// AuthRepository defines the interface for user credential lookups.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
