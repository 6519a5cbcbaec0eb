package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dinerate/review-service/internal/api/metrics"
	"github.com/dinerate/review-service/internal/core/domain"
	"github.com/dinerate/review-service/internal/core/ports"
)

// ReviewHandler handles HTTP requests for review operations.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type reviewRequest struct {
	RestaurantName string  `json:"restaurant_name" validate:"required"`
	ReviewText     string  `json:"review_text"`
	Rating         float64 `json:"rating"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// List handles GET /reviews.
//
// @Summary      List all reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}   domain.Review
// @Failure      500  {object}  map[string]string
// @Router       /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create handles POST /reviews.
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      plain
// @Security     BearerAuth
// @Param        body  body      reviewRequest  true  "Review fields"
// @Success      201   {string}  string  "Review added"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	if _, err := identity(c); err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	review, err := h.service.Create(c.Request().Context(), ports.ReviewInput{
		RestaurantName: req.RestaurantName,
		ReviewText:     req.ReviewText,
		Rating:         req.Rating,
	})
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("create", "error").Inc()
		return err
	}

	metrics.MutationsTotal.WithLabelValues("create", "ok").Inc()
	c.Response().Header().Set("Location", "/reviews/"+strconv.FormatInt(review.ID, 10))

	return c.String(http.StatusCreated, "Review added")
}

// Update handles PUT /reviews/:id.
//
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Review id"
// @Param        body  body      reviewRequest  true  "Review fields"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /reviews/{id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	if _, err := identity(c); err != nil {
		return err
	}

	id, err := reviewID(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	err = h.service.Update(c.Request().Context(), id, ports.ReviewInput{
		RestaurantName: req.RestaurantName,
		ReviewText:     req.ReviewText,
		Rating:         req.Rating,
	})
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("update", mutationOutcome(err)).Inc()
		return err
	}

	metrics.MutationsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Delete handles DELETE /reviews/:id.
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Review id"
// @Success      200  {object}  successResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	if _, err := identity(c); err != nil {
		return err
	}

	id, err := reviewID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		metrics.MutationsTotal.WithLabelValues("delete", mutationOutcome(err)).Inc()
		return err
	}

	metrics.MutationsTotal.WithLabelValues("delete", "ok").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// reviewID parses the :id path parameter.
func reviewID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid review id")
	}
	return id, nil
}

func mutationOutcome(err error) string {
	if errors.Is(err, domain.ErrReviewNotFound) {
		return "not_found"
	}
	return "error"
}
