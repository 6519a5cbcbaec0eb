package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dinerate/review-service/internal/api/middleware"
	"github.com/dinerate/review-service/internal/core/ports"
)

// identity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty role
// proves the middleware ran. Mutating handlers call this so a misrouted
// request can never reach the store unauthenticated.
func identity(c echo.Context) (ports.Identity, error) {
	role, _ := c.Get(middleware.ContextKeyRole).(string)
	if role == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get(middleware.ContextKeyUserID).(int64)
	return ports.Identity{UserID: userID, Role: role}, nil
}
