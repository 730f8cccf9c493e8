package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"storefront/internal/models"
)

// GetUserByEmail retrieves a user by email. Returns nil when no user exists.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, "SELECT * FROM users WHERE email = $1", email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID. Returns nil when no user exists.
func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user and returns its ID
func (s *Store) CreateUser(ctx context.Context, email, password, name string) (int64, error) {
	var id int64
	err := s.db.GetContext(ctx, &id,
		"INSERT INTO users (email, password, name) VALUES ($1, $2, $3) RETURNING id",
		email, password, name)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// UpdateUser applies a profile patch field by field. Only the columns the
// patch names can ever be touched.
func (s *Store) UpdateUser(ctx context.Context, userID int64, patch models.UserPatch) error {
	query, args := buildUserPatch(userID, patch)
	if query == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

func buildUserPatch(userID int64, p models.UserPatch) (string, []interface{}) {
	var set []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Phone != nil {
		add("phone", *p.Phone)
	}
	if p.Address != nil {
		add("address", *p.Address)
	}

	if len(set) == 0 {
		return "", nil
	}
	args = append(args, userID)
	return fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(set, ", "), len(args)), args
}

// ListUsers retrieves all users, newest first
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.SelectContext(ctx, &users, "SELECT * FROM users ORDER BY created_at DESC")
	return users, err
}
