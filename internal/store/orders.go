package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"storefront/internal/models"
)

var (
	// ErrEmptyCart signals that checkout found no cart lines; no order row
	// is created in that case.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInsufficientStock signals that a conditional stock decrement found
	// less stock than the ordered quantity. Only raised when backorders are
	// disabled.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// CreateOrder runs the order placement workflow in a single transaction:
// read the cart, compute the total, insert the order header and line items
// with frozen unit prices, decrement stock, clear the cart. Any failure
// rolls the whole order back.
//
// With allowBackorder the stock decrement is unconditional and may drive
// stock negative; without it the decrement requires sufficient stock and
// fails with ErrInsufficientStock otherwise.
func (s *Store) CreateOrder(ctx context.Context, userID int64, contact models.ShippingContact, allowBackorder bool) (int64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var lines []models.CartLine
	err = tx.SelectContext(ctx, &lines, `
		SELECT ci.*, p.name, p.price, p.old_price, p.image, p.slug, p.stock
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at DESC`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(lines) == 0 {
		return 0, ErrEmptyCart
	}

	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}

	var orderID int64
	err = tx.GetContext(ctx, &orderID, `
		INSERT INTO orders (user_id, total, name, email, phone, address, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		userID, total, contact.Name, contact.Email, contact.Phone, contact.Address, contact.Comment)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, line := range lines {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)`,
			orderID, line.ProductID, line.Quantity, line.Price)
		if err != nil {
			return 0, fmt.Errorf("failed to insert order item: %w", err)
		}

		if allowBackorder {
			_, err = tx.ExecContext(ctx,
				"UPDATE products SET stock = stock - $1 WHERE id = $2",
				line.Quantity, line.ProductID)
			if err != nil {
				return 0, fmt.Errorf("failed to decrement stock: %w", err)
			}
		} else {
			res, err := tx.ExecContext(ctx,
				"UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $1",
				line.Quantity, line.ProductID)
			if err != nil {
				return 0, fmt.Errorf("failed to decrement stock: %w", err)
			}
			affected, err := res.RowsAffected()
			if err != nil {
				return 0, err
			}
			if affected == 0 {
				return 0, fmt.Errorf("product %d: %w", line.ProductID, ErrInsufficientStock)
			}
		}
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id = $1", userID); err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit order: %w", err)
	}
	return orderID, nil
}

// GetOrderByID retrieves an order with its line items. Returns nil when
// absent.
func (s *Store) GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE id = $1", orderID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if order.Items, err = s.getOrderItems(ctx, orderID); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) getOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := s.db.SelectContext(ctx, &items, `
		SELECT oi.*, p.name, p.image, p.slug
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1`, orderID)
	return items, err
}

// ListUserOrders retrieves the user's orders with nested items, newest first
func (s *Store) ListUserOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders,
		"SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].Items, err = s.getOrderItems(ctx, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// ListAllOrders retrieves orders for the back office, optionally filtered by
// status, with owning user name/email and nested items
func (s *Store) ListAllOrders(ctx context.Context, status *models.OrderStatus, limit int) ([]models.Order, error) {
	query := `
		SELECT o.*, u.name AS user_name, u.email AS user_email
		FROM orders o
		JOIN users u ON o.user_id = u.id`
	var args []interface{}

	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(" WHERE o.status = $%d", len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY o.created_at DESC LIMIT $%d", len(args))

	var orders []models.Order
	if err := s.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, err
	}

	for i := range orders {
		var err error
		if orders[i].Items, err = s.getOrderItems(ctx, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// UpdateOrderStatus sets the order's status. Transition policy lives in the
// service layer; this is a plain single-column update.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE orders SET status = $1 WHERE id = $2", status, orderID)
	return err
}
