package domain

import "errors"

var ErrReviewNotFound = errors.New("review not found")

// Review is a single restaurant review row.
type Review struct {
	ID             int64   `json:"id"`
	RestaurantName string  `json:"restaurant_name"`
	ReviewText     string  `json:"review_text"`
	Rating         float64 `json:"rating"`
}
