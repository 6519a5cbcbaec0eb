package api

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dinerate/review-service/internal/core/domain"
	"github.com/dinerate/review-service/internal/core/service"
	"github.com/dinerate/review-service/internal/pkg/config"
)

var (
	routerOnce sync.Once
	testRouter http.Handler
)

// newRouterForTest wires the full route table against a connection handle
// that is never dialed: requests rejected by the middleware chain must not
// reach the store at all. Built once per test binary because the prometheus
// middleware registers collectors with the default registry.
func newRouterForTest(t *testing.T) http.Handler {
	t.Helper()
	routerOnce.Do(func() {
		db, err := sql.Open("postgres", "host=localhost dbname=unused sslmode=disable")
		if err != nil {
			t.Fatalf("open handle: %v", err)
		}

		cfg := &config.Config{JWTSecret: "secret", TokenTTL: time.Hour}
		testRouter = NewRouter(db, cfg, zerolog.Nop())
	})
	return testRouter
}

func TestRouter_Root(t *testing.T) {
	r := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "hello world" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestRouter_MutatingRoutesRequireToken(t *testing.T) {
	r := newRouterForTest(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/reviews"},
		{http.MethodPut, "/reviews/5"},
		{http.MethodDelete, "/reviews/5"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{"restaurant_name":"A","rating":1}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestRouter_UpdateForbiddenForUserRole(t *testing.T) {
	r := newRouterForTest(t)

	tokens := service.NewTokenService("secret", time.Hour)
	token, err := tokens.Issue(3, domain.RoleUser)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/reviews/5", strings.NewReader(`{"restaurant_name":"A","rating":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRouter_Health(t *testing.T) {
	r := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
