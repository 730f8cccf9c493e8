package store

import (
	"context"
	"database/sql"

	"storefront/internal/models"
)

// ListFavorites retrieves the user's favorites joined with product
// attributes, newest first
func (s *Store) ListFavorites(ctx context.Context, userID int64) ([]models.FavoriteLine, error) {
	var favorites []models.FavoriteLine
	err := s.db.SelectContext(ctx, &favorites, `
		SELECT f.*, p.name, p.price, p.old_price, p.image, p.slug, p.rating
		FROM favorites f
		JOIN products p ON f.product_id = p.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`, userID)
	return favorites, err
}

// FavoritesCount returns the number of favorites for the user
func (s *Store) FavoritesCount(ctx context.Context, userID int64) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM favorites WHERE user_id = $1", userID)
	return count, err
}

// IsFavorite reports whether the product is in the user's favorites
func (s *Store) IsFavorite(ctx context.Context, userID, productID int64) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND product_id = $2)",
		userID, productID)
	return exists, err
}

// ToggleFavorite flips the favorite marker for the pair. Returns true when
// the product was added, false when it was removed.
func (s *Store) ToggleFavorite(ctx context.Context, userID, productID int64) (bool, error) {
	var id int64
	err := s.db.GetContext(ctx, &id,
		"SELECT id FROM favorites WHERE user_id = $1 AND product_id = $2", userID, productID)
	if err == sql.ErrNoRows {
		_, err := s.db.ExecContext(ctx,
			"INSERT INTO favorites (user_id, product_id) VALUES ($1, $2)", userID, productID)
		if err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM favorites WHERE id = $1", id); err != nil {
		return false, err
	}
	return false, nil
}
