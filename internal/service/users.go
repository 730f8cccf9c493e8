package service

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/util"

	"go.uber.org/zap"
)

// UserService handles registration and profile edits. Authentication itself
// lives in the session layer in front of this service.
type UserService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(st *store.Store) *UserService {
	return &UserService{
		store:  st,
		logger: util.GetLogger(),
	}
}

// Register creates a user, rejecting duplicate emails
func (s *UserService) Register(ctx context.Context, email, password, name string) (int64, error) {
	existing, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrEmailTaken
	}

	id, err := s.store.CreateUser(ctx, email, password, name)
	if err != nil {
		return 0, err
	}

	s.logger.Info("User registered", zap.Int64("user_id", id))
	return id, nil
}

// Get retrieves a user; absence is ErrUserNotFound
func (s *UserService) Get(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies a profile patch
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, patch models.UserPatch) error {
	if _, err := s.Get(ctx, userID); err != nil {
		return err
	}
	return s.store.UpdateUser(ctx, userID, patch)
}
