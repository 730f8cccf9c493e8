package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Store struct {
	db *sqlx.DB
}

// NewStore creates a new database store
func NewStore(databaseURL string) (*Store, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		phone TEXT,
		address TEXT,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		icon TEXT NOT NULL DEFAULT '📦',
		parent_id BIGINT REFERENCES categories(id)
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		description TEXT,
		price DOUBLE PRECISION NOT NULL,
		old_price DOUBLE PRECISION,
		category_id BIGINT REFERENCES categories(id),
		image TEXT NOT NULL DEFAULT '📦',
		stock INTEGER NOT NULL DEFAULT 0,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		reviews_count INTEGER NOT NULL DEFAULT 0,
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		quantity INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, product_id)
	)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, product_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		status TEXT NOT NULL DEFAULT 'pending',
		total DOUBLE PRECISION NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		address TEXT NOT NULL,
		comment TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL,
		price DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		rating INTEGER NOT NULL,
		text TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// InitSchema creates the schema if it does not exist. Safe to run on every
// startup.
func (s *Store) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// SeedIfEmpty inserts the demo dataset once, keyed off the categories table
// being empty.
func (s *Store) SeedIfEmpty(ctx context.Context) error {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM categories"); err != nil {
		return fmt.Errorf("failed to check categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	categoryIDs := make(map[string]int64, len(seedCategories))
	for _, c := range seedCategories {
		var id int64
		err := tx.GetContext(ctx, &id,
			"INSERT INTO categories (name, slug, icon) VALUES ($1, $2, $3) RETURNING id",
			c.name, c.slug, c.icon)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.slug, err)
		}
		categoryIDs[c.slug] = id
	}

	for _, p := range seedProducts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO products (name, slug, description, price, old_price, category_id, image, stock, rating, reviews_count, is_featured)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			p.name, p.slug, p.description, p.price, p.oldPrice,
			categoryIDs[p.category], p.image, p.stock, p.rating, p.reviews, p.featured)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.slug, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (email, password, name, is_admin)
		VALUES ('admin@shop.local', 'admin123', 'Administrator', TRUE)`)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (email, password, name, phone, address)
		VALUES ('demo@shop.local', 'demo123', 'Demo Shopper', '+1 555 0100', '1 Market Street')`)
	if err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	return tx.Commit()
}
