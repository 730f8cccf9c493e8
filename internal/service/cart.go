package service

import (
	"context"

	"storefront/config"
	"storefront/internal/cache"
	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/util"

	"go.uber.org/zap"
)

// CartService handles cart reads and mutations
type CartService struct {
	store  *store.Store
	cache  *cache.Client
	shop   config.ShopConfig
	logger *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(st *store.Store, c *cache.Client, shop config.ShopConfig) *CartService {
	return &CartService{
		store:  st,
		cache:  c,
		shop:   shop,
		logger: util.GetLogger(),
	}
}

// CartSummary is the checkout page quote. Delivery is presentation only and
// never persisted on the order; the stored order total is the subtotal.
type CartSummary struct {
	Lines    []models.CartLine `json:"lines"`
	Subtotal float64           `json:"subtotal"`
	Delivery float64           `json:"delivery"`
	Total    float64           `json:"total"`
}

// Lines returns the user's cart joined with live product data
func (s *CartService) Lines(ctx context.Context, userID int64) ([]models.CartLine, error) {
	return s.store.GetCartLines(ctx, userID)
}

// Count returns the badge count, served from the cache when possible
func (s *CartService) Count(ctx context.Context, userID int64) (int, error) {
	if count, ok, err := s.cache.GetCartCount(ctx, userID); err == nil && ok {
		util.CartCountCacheHits.WithLabelValues("hit").Inc()
		return count, nil
	} else if err != nil {
		s.logger.Warn("Cart count cache read failed, falling back to DB",
			zap.Int64("user_id", userID), zap.Error(err))
	}
	util.CartCountCacheHits.WithLabelValues("miss").Inc()

	count, err := s.store.CartCount(ctx, userID)
	if err != nil {
		return 0, err
	}

	if err := s.cache.SetCartCount(ctx, userID, count); err != nil {
		s.logger.Warn("Cart count cache write failed",
			zap.Int64("user_id", userID), zap.Error(err))
	}
	return count, nil
}

// Add puts a product in the cart, summing quantities on repeat adds
func (s *CartService) Add(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.store.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	if err := s.store.AddToCart(ctx, userID, productID, quantity); err != nil {
		return err
	}
	util.CartMutationsTotal.WithLabelValues("add").Inc()
	s.invalidateCount(ctx, userID)
	return nil
}

// SetQuantity overwrites a line's quantity; zero or less removes the line
func (s *CartService) SetQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	if err := s.store.SetCartQuantity(ctx, userID, productID, quantity); err != nil {
		return err
	}
	util.CartMutationsTotal.WithLabelValues("set").Inc()
	s.invalidateCount(ctx, userID)
	return nil
}

// Remove deletes a line. Idempotent.
func (s *CartService) Remove(ctx context.Context, userID, productID int64) error {
	if err := s.store.RemoveFromCart(ctx, userID, productID); err != nil {
		return err
	}
	util.CartMutationsTotal.WithLabelValues("remove").Inc()
	s.invalidateCount(ctx, userID)
	return nil
}

// Clear empties the user's cart
func (s *CartService) Clear(ctx context.Context, userID int64) error {
	if err := s.store.ClearCart(ctx, userID); err != nil {
		return err
	}
	util.CartMutationsTotal.WithLabelValues("clear").Inc()
	s.invalidateCount(ctx, userID)
	return nil
}

// Summary returns the cart with its delivery quote. Line prices are live
// product prices, so the quoted total can drift from the total captured if
// a price changes before checkout.
func (s *CartService) Summary(ctx context.Context, userID int64) (*CartSummary, error) {
	lines, err := s.store.GetCartLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	subtotal := cartSubtotal(lines)
	delivery := deliveryQuote(subtotal, s.shop.FreeDeliveryThreshold, s.shop.DeliveryFee)

	return &CartSummary{
		Lines:    lines,
		Subtotal: subtotal,
		Delivery: delivery,
		Total:    subtotal + delivery,
	}, nil
}

func (s *CartService) invalidateCount(ctx context.Context, userID int64) {
	if err := s.cache.InvalidateCartCount(ctx, userID); err != nil {
		s.logger.Warn("Cart count cache invalidation failed",
			zap.Int64("user_id", userID), zap.Error(err))
	}
}

func cartSubtotal(lines []models.CartLine) float64 {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}
	return subtotal
}

// deliveryQuote is the display-only delivery fee rule: free at or above the
// threshold, a flat fee below it. An empty cart quotes nothing.
func deliveryQuote(subtotal, threshold, fee float64) float64 {
	if subtotal <= 0 || subtotal >= threshold {
		return 0
	}
	return fee
}
