package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dinerate/review-service/internal/api/middleware"
	"github.com/dinerate/review-service/internal/core/domain"
	"github.com/dinerate/review-service/internal/core/ports"
)

type stubReviewService struct {
	listFn   func(ctx context.Context) ([]domain.Review, error)
	createFn func(ctx context.Context, input ports.ReviewInput) (*domain.Review, error)
	updateFn func(ctx context.Context, id int64, input ports.ReviewInput) error
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubReviewService) List(ctx context.Context) ([]domain.Review, error) {
	return s.listFn(ctx)
}

func (s *stubReviewService) Create(ctx context.Context, input ports.ReviewInput) (*domain.Review, error) {
	return s.createFn(ctx, input)
}

func (s *stubReviewService) Update(ctx context.Context, id int64, input ports.ReviewInput) error {
	return s.updateFn(ctx, id, input)
}

func (s *stubReviewService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

// authed fakes the context the Auth middleware leaves behind.
func authed(c echo.Context, userID int64, role string) {
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, role)
}

func TestReviewHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		listFn: func(ctx context.Context) ([]domain.Review, error) {
			return []domain.Review{
				{ID: 1, RestaurantName: "A", ReviewText: "good", Rating: 4.5},
				{ID: 2, RestaurantName: "B", ReviewText: "meh", Rating: 2},
			}, nil
		},
	}
	handler := NewReviewHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var reviews []domain.Review
	if err := json.Unmarshal(rec.Body.Bytes(), &reviews); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(reviews) != 2 || reviews[0].RestaurantName != "A" || reviews[1].Rating != 2 {
		t.Fatalf("unexpected payload: %+v", reviews)
	}
}

func TestReviewHandler_List_EmptyIsArray(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		listFn: func(ctx context.Context) ([]domain.Review, error) {
			return nil, nil
		},
	}
	handler := NewReviewHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestReviewHandler_Create(t *testing.T) {
	e := newTestEcho()
	var gotInput ports.ReviewInput
	stub := &stubReviewService{
		createFn: func(ctx context.Context, input ports.ReviewInput) (*domain.Review, error) {
			gotInput = input
			return &domain.Review{ID: 7, RestaurantName: input.RestaurantName, ReviewText: input.ReviewText, Rating: input.Rating}, nil
		},
	}
	handler := NewReviewHandler(stub)

	body := strings.NewReader(`{"restaurant_name":"A","review_text":"good","rating":4.5}`)
	req := httptest.NewRequest(http.MethodPost, "/reviews", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	authed(c, 1, domain.RoleUser)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if rec.Body.String() != "Review added" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
	if gotInput.RestaurantName != "A" || gotInput.ReviewText != "good" || gotInput.Rating != 4.5 {
		t.Fatalf("unexpected input forwarded to service: %+v", gotInput)
	}
	if loc := rec.Header().Get("Location"); loc != "/reviews/7" {
		t.Fatalf("unexpected Location header: %q", loc)
	}
}

func TestReviewHandler_Create_MissingClaims(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		createFn: func(ctx context.Context, input ports.ReviewInput) (*domain.Review, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewReviewHandler(stub)

	body := strings.NewReader(`{"restaurant_name":"A","rating":4}`)
	req := httptest.NewRequest(http.MethodPost, "/reviews", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTP error, got %v", err)
	}
}

func TestReviewHandler_Update(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		updateFn: func(ctx context.Context, id int64, input ports.ReviewInput) error {
			if id != 5 {
				t.Fatalf("unexpected id: %d", id)
			}
			return nil
		},
	}
	handler := NewReviewHandler(stub)

	body := strings.NewReader(`{"restaurant_name":"A","review_text":"better","rating":5}`)
	req := httptest.NewRequest(http.MethodPut, "/reviews/5", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")
	authed(c, 1, domain.RoleAdmin)

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp["success"] {
		t.Fatalf("expected success true, got %+v", resp)
	}
}

func TestReviewHandler_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		updateFn: func(ctx context.Context, id int64, input ports.ReviewInput) error {
			return domain.ErrReviewNotFound
		},
	}
	handler := NewReviewHandler(stub)

	body := strings.NewReader(`{"restaurant_name":"A","rating":1}`)
	req := httptest.NewRequest(http.MethodPut, "/reviews/99", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")
	authed(c, 1, domain.RoleEditor)

	// The central error handler maps this to 404.
	if err := handler.Update(c); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestReviewHandler_Update_BadID(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		updateFn: func(ctx context.Context, id int64, input ports.ReviewInput) error {
			t.Fatalf("service should not be called")
			return nil
		},
	}
	handler := NewReviewHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/reviews/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	authed(c, 1, domain.RoleAdmin)

	err := handler.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTP error, got %v", err)
	}
}

func TestReviewHandler_Delete(t *testing.T) {
	e := newTestEcho()
	deleted := int64(0)
	stub := &stubReviewService{
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	handler := NewReviewHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/reviews/3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")
	authed(c, 2, domain.RoleUser)

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != 3 {
		t.Fatalf("expected delete of id 3, got %d", deleted)
	}
}
