package service

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/util"

	"go.uber.org/zap"
)

// CatalogService handles product and category reads
type CatalogService struct {
	store    *store.Store
	pageSize int
	logger   *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(st *store.Store, pageSize int) *CatalogService {
	return &CatalogService{
		store:    st,
		pageSize: pageSize,
		logger:   util.GetLogger(),
	}
}

// ListProducts returns the filtered catalog page. A missing or oversized
// limit is clamped to the configured page size.
func (s *CatalogService) ListProducts(ctx context.Context, f store.ProductFilter) ([]models.Product, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.ListProducts")
	defer span.End()

	if f.Limit <= 0 || f.Limit > s.pageSize {
		f.Limit = s.pageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.store.ListProducts(ctx, f)
}

// ListCategories returns all categories with product counts
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

// GetCategoryBySlug returns a category, nil when absent
func (s *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.store.GetCategoryBySlug(ctx, slug)
}

// GetProductBySlug returns a product with its reviews
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, []models.Review, error) {
	product, err := s.store.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, ErrProductNotFound
	}

	reviews, err := s.store.ListProductReviews(ctx, product.ID)
	if err != nil {
		return nil, nil, err
	}
	return product, reviews, nil
}

// ListFeatured returns the promoted products for the home page
func (s *CatalogService) ListFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 8
	}
	return s.store.ListFeaturedProducts(ctx, limit)
}

// Search returns active products matching the free-text query
func (s *CatalogService) Search(ctx context.Context, query string, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.store.SearchProducts(ctx, query, limit)
}

// AddReview stores a review and refreshes the product aggregates
func (s *CatalogService) AddReview(ctx context.Context, userID, productID int64, rating int, text *string) (int64, error) {
	if rating < 1 || rating > 5 {
		return 0, ErrInvalidRating
	}

	product, err := s.store.GetProductByID(ctx, productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, ErrProductNotFound
	}

	id, err := s.store.CreateReview(ctx, userID, productID, rating, text)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Review added",
		zap.Int64("product_id", productID),
		zap.Int64("user_id", userID),
		zap.Int("rating", rating))
	return id, nil
}
