package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/dinerate/review-service/internal/core/domain"
	"github.com/dinerate/review-service/internal/core/ports"
)

// AuthService implements login against the read-only users table.
type AuthService struct {
	repo   ports.AuthRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Login looks up the user by username, compares the supplied password
// against the stored bcrypt hash, and on a match returns a signed token
// carrying the user's id and role.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Role)
}
