package store

import (
	"context"

	"storefront/internal/models"
)

// GetStats computes the admin dashboard rollup. Purely derived, recomputed
// on every call.
func (s *Store) GetStats(ctx context.Context, lowStockThreshold int) (*models.Stats, error) {
	stats := &models.Stats{
		OrdersByStatus: make(map[string]int),
	}

	row := s.db.QueryRowxContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(total), 0) FROM orders")
	if err := row.Scan(&stats.TotalOrders, &stats.TotalRevenue); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryxContext(ctx,
		"SELECT status, COUNT(*) FROM orders GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.OrdersByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = s.db.GetContext(ctx, &stats.TotalUsers,
		"SELECT COUNT(*) FROM users WHERE is_admin = FALSE")
	if err != nil {
		return nil, err
	}

	err = s.db.GetContext(ctx, &stats.TotalProducts,
		"SELECT COUNT(*) FROM products WHERE is_active = TRUE")
	if err != nil {
		return nil, err
	}

	err = s.db.GetContext(ctx, &stats.LowStock,
		"SELECT COUNT(*) FROM products WHERE stock < $1 AND is_active = TRUE",
		lowStockThreshold)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
