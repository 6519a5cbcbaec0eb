package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dinerate/review-service/internal/core/domain"
)

// ReviewRepository persists reviews. Every statement is a single
// parameter-bound query; no transactions are needed.
type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, restaurant_name, review_text, rating
		FROM reviews
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.RestaurantName, &rv.ReviewText, &rv.Rating); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return reviews, nil
}

// Create inserts the review and fills in the store-assigned id.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (restaurant_name, review_text, rating)
		VALUES ($1, $2, $3)
		RETURNING id
	`, review.RestaurantName, review.ReviewText, review.Rating).Scan(&review.ID)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reviews
		SET restaurant_name = $1,
		    review_text = $2,
		    rating = $3
		WHERE id = $4
	`, review.RestaurantName, review.ReviewText, review.Rating, review.ID)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}

	return checkAffected(res)
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	return checkAffected(res)
}

// checkAffected maps a zero-row mutation to ErrReviewNotFound.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
