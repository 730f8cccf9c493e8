package service

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/util"

	"go.uber.org/zap"
)

// FavoriteService handles the favorites marker set
type FavoriteService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(st *store.Store) *FavoriteService {
	return &FavoriteService{
		store:  st,
		logger: util.GetLogger(),
	}
}

// Toggle flips the favorite state for the pair and returns true when the
// product ends up favorited
func (s *FavoriteService) Toggle(ctx context.Context, userID, productID int64) (bool, error) {
	product, err := s.store.GetProductByID(ctx, productID)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, ErrProductNotFound
	}

	added, err := s.store.ToggleFavorite(ctx, userID, productID)
	if err != nil {
		return false, err
	}

	if added {
		util.FavoriteTogglesTotal.WithLabelValues("added").Inc()
	} else {
		util.FavoriteTogglesTotal.WithLabelValues("removed").Inc()
	}
	return added, nil
}

// List returns the user's favorites joined with product data
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]models.FavoriteLine, error) {
	return s.store.ListFavorites(ctx, userID)
}

// Count returns the number of favorites for the badge
func (s *FavoriteService) Count(ctx context.Context, userID int64) (int, error) {
	return s.store.FavoritesCount(ctx, userID)
}
