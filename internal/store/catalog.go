package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"storefront/internal/models"
)

// ProductFilter holds the optional predicates for a catalog listing.
// Absent predicates are no-ops; present ones are conjunctive.
type ProductFilter struct {
	CategoryID *int64
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
	Sort       string
	Limit      int
	Offset     int
}

// Sort keys accepted by the catalog listing. Anything else falls back to
// popularity ordering.
var productSortOrders = map[string]string{
	"popular":    "p.reviews_count DESC",
	"rating":     "p.rating DESC",
	"price_asc":  "p.price ASC",
	"price_desc": "p.price DESC",
	"new":        "p.created_at DESC",
}

const defaultProductSort = "p.reviews_count DESC"

// buildProductListQuery assembles the filtered, sorted, paginated catalog
// query. Split out as a pure function so the predicate and sort logic can be
// tested without a database.
func buildProductListQuery(f ProductFilter) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`SELECT p.*, c.name AS category_name, c.slug AS category_slug
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.is_active = TRUE`)

	var args []interface{}

	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		fmt.Fprintf(&sb, " AND p.category_id = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		fmt.Fprintf(&sb, " AND (p.name ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		fmt.Fprintf(&sb, " AND p.price >= $%d", len(args))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		fmt.Fprintf(&sb, " AND p.price <= $%d", len(args))
	}

	order, ok := productSortOrders[f.Sort]
	if !ok {
		order = defaultProductSort
	}
	fmt.Fprintf(&sb, " ORDER BY %s", order)

	args = append(args, f.Limit)
	fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	args = append(args, f.Offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	return sb.String(), args
}

// ListProducts retrieves the active products matching the filter
func (s *Store) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	query, args := buildProductListQuery(f)
	var products []models.Product
	err := s.db.SelectContext(ctx, &products, query, args...)
	return products, err
}

// ListCategories retrieves all categories with their active product counts
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.SelectContext(ctx, &categories, `
		SELECT c.*, COUNT(p.id) AS products_count
		FROM categories c
		LEFT JOIN products p ON c.id = p.category_id AND p.is_active = TRUE
		GROUP BY c.id
		ORDER BY c.name`)
	return categories, err
}

// GetCategoryBySlug retrieves a category by slug. Returns nil when absent.
func (s *Store) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := s.db.GetContext(ctx, &category, "SELECT * FROM categories WHERE slug = $1", slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategoryByID retrieves a category by ID. Returns nil when absent.
func (s *Store) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	err := s.db.GetContext(ctx, &category, "SELECT * FROM categories WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetProductBySlug retrieves a product with its category names. Returns nil
// when absent.
func (s *Store) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product, `
		SELECT p.*, c.name AS category_name, c.slug AS category_slug
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.slug = $1`, slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductByID retrieves a product by ID. Returns nil when absent.
func (s *Store) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product, "SELECT * FROM products WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListFeaturedProducts retrieves active featured products, best rated first
func (s *Store) ListFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := s.db.SelectContext(ctx, &products, `
		SELECT p.*, c.name AS category_name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.is_featured = TRUE AND p.is_active = TRUE
		ORDER BY p.rating DESC
		LIMIT $1`, limit)
	return products, err
}

// SearchProducts retrieves active products whose name or description
// contains the query, case-insensitively
func (s *Store) SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + query + "%"
	err := s.db.SelectContext(ctx, &products, `
		SELECT p.*, c.name AS category_name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.is_active = TRUE AND (p.name ILIKE $1 OR p.description ILIKE $1)
		ORDER BY p.rating DESC
		LIMIT $2`, pattern, limit)
	return products, err
}

// ListAllProductsAdmin retrieves every product regardless of active flag,
// newest first
func (s *Store) ListAllProductsAdmin(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.SelectContext(ctx, &products, `
		SELECT p.*, c.name AS category_name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		ORDER BY p.created_at DESC`)
	return products, err
}
