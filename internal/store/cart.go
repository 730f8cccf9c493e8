package store

import (
	"context"

	"storefront/internal/models"
)

// GetCartLines retrieves the user's cart joined with current product
// attributes, newest first
func (s *Store) GetCartLines(ctx context.Context, userID int64) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := s.db.SelectContext(ctx, &lines, `
		SELECT ci.*, p.name, p.price, p.old_price, p.image, p.slug, p.stock
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at DESC`, userID)
	return lines, err
}

// CartCount returns the sum of quantities across the user's cart, 0 if empty
func (s *Store) CartCount(ctx context.Context, userID int64) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COALESCE(SUM(quantity), 0) FROM cart_items WHERE user_id = $1", userID)
	return count, err
}

// AddToCart inserts a cart row or increments the existing one, keeping at
// most one row per (user, product) pair
func (s *Store) AddToCart(ctx context.Context, userID, productID int64, quantity int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`,
		userID, productID, quantity)
	return err
}

// SetCartQuantity overwrites the quantity of a cart row; a quantity of zero
// or less removes the row
func (s *Store) SetCartQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, userID, productID)
	}
	_, err := s.db.ExecContext(ctx,
		"UPDATE cart_items SET quantity = $1 WHERE user_id = $2 AND product_id = $3",
		quantity, userID, productID)
	return err
}

// RemoveFromCart deletes a cart row if present. Idempotent.
func (s *Store) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2", userID, productID)
	return err
}

// ClearCart deletes all cart rows for the user
func (s *Store) ClearCart(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id = $1", userID)
	return err
}
