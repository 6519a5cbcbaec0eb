package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dinerate/review-service/internal/api/metrics"
	"github.com/dinerate/review-service/internal/core/ports"
)

// Context keys populated by Auth for downstream middleware and handlers.
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "role"
)

// Auth validates the bearer token and injects the caller identity into the
// request context. A missing or malformed Authorization header is a normal
// 401, never a fault; on any failure the chain terminates and the next
// handler is not invoked.
func Auth(tokens ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextKeyUserID, identity.UserID)
			c.Set(ContextKeyRole, identity.Role)

			return next(c)
		}
	}
}
