package store

import (
	"context"
	"fmt"

	"storefront/internal/models"
)

// CreateReview inserts a review and refreshes the product's aggregate
// rating and review count in the same transaction
func (s *Store) CreateReview(ctx context.Context, userID, productID int64, rating int, text *string) (int64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var id int64
	err = tx.GetContext(ctx, &id, `
		INSERT INTO reviews (user_id, product_id, rating, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, userID, productID, rating, text)
	if err != nil {
		return 0, fmt.Errorf("failed to insert review: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE products SET
			rating = (SELECT AVG(rating) FROM reviews WHERE product_id = $1),
			reviews_count = (SELECT COUNT(*) FROM reviews WHERE product_id = $1)
		WHERE id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("failed to refresh product rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListProductReviews retrieves reviews for a product with reviewer names,
// newest first
func (s *Store) ListProductReviews(ctx context.Context, productID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.SelectContext(ctx, &reviews, `
		SELECT r.*, u.name AS user_name
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.product_id = $1
		ORDER BY r.created_at DESC`, productID)
	return reviews, err
}
