package store

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/models"
)

// NewProduct holds the fields required to create a product
type NewProduct struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description *string  `json:"description,omitempty"`
	Price       float64  `json:"price"`
	OldPrice    *float64 `json:"old_price,omitempty"`
	CategoryID  *int64   `json:"category_id,omitempty"`
	Image       string   `json:"image"`
	Stock       int      `json:"stock"`
	IsFeatured  bool     `json:"is_featured"`
}

// CreateProduct inserts a new product and returns its ID
func (s *Store) CreateProduct(ctx context.Context, p NewProduct) (int64, error) {
	if p.Image == "" {
		p.Image = "📦"
	}
	var id int64
	err := s.db.GetContext(ctx, &id, `
		INSERT INTO products (name, slug, description, price, old_price, category_id, image, stock, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		p.Name, p.Slug, p.Description, p.Price, p.OldPrice, p.CategoryID, p.Image, p.Stock, p.IsFeatured)
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}
	return id, nil
}

// UpdateProduct applies a patch field by field. Only the columns the patch
// names can ever be touched.
func (s *Store) UpdateProduct(ctx context.Context, productID int64, patch models.ProductPatch) error {
	query, args := buildProductPatch(productID, patch)
	if query == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

func buildProductPatch(productID int64, p models.ProductPatch) (string, []interface{}) {
	var set []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Slug != nil {
		add("slug", *p.Slug)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.Price != nil {
		add("price", *p.Price)
	}
	if p.OldPrice != nil {
		add("old_price", *p.OldPrice)
	}
	if p.CategoryID != nil {
		add("category_id", *p.CategoryID)
	}
	if p.Image != nil {
		add("image", *p.Image)
	}
	if p.Stock != nil {
		add("stock", *p.Stock)
	}
	if p.IsFeatured != nil {
		add("is_featured", *p.IsFeatured)
	}
	if p.IsActive != nil {
		add("is_active", *p.IsActive)
	}

	if len(set) == 0 {
		return "", nil
	}
	args = append(args, productID)
	return fmt.Sprintf("UPDATE products SET %s WHERE id = $%d", strings.Join(set, ", "), len(args)), args
}

// DeleteProduct removes a product; cart rows, favorites and reviews cascade
func (s *Store) DeleteProduct(ctx context.Context, productID int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", productID)
	return err
}
