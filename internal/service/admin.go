package service

import (
	"context"
	"fmt"
	"time"

	"storefront/config"
	"storefront/internal/broker"
	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminService handles the back-office operations: dashboard stats, product
// management and order fulfillment
type AdminService struct {
	store          *store.Store
	eventPublisher *broker.EventPublisher
	shop           config.ShopConfig
	logger         *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(st *store.Store, eventPublisher *broker.EventPublisher, shop config.ShopConfig) *AdminService {
	return &AdminService{
		store:          st,
		eventPublisher: eventPublisher,
		shop:           shop,
		logger:         util.GetLogger(),
	}
}

// Stats recomputes the dashboard rollup
func (s *AdminService) Stats(ctx context.Context) (*models.Stats, error) {
	return s.store.GetStats(ctx, s.shop.LowStockThreshold)
}

// ListOrders returns back-office orders, optionally filtered by status
func (s *AdminService) ListOrders(ctx context.Context, status *models.OrderStatus, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.store.ListAllOrders(ctx, status, limit)
}

// ChangeOrderStatus moves an order through the fulfillment lifecycle,
// rejecting unknown statuses and transitions out of a terminal state
func (s *AdminService) ChangeOrderStatus(ctx context.Context, orderID int64, to models.OrderStatus) error {
	order, err := s.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	if !models.ValidTransition(order.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, to)
	}

	if err := s.store.UpdateOrderStatus(ctx, orderID, to); err != nil {
		return err
	}

	util.OrderStatusChangesTotal.WithLabelValues(string(to)).Inc()
	s.logger.Info("Order status changed",
		zap.Int64("order_id", orderID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(to)))

	event := &models.OrderStatusChangedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderStatusChanged,
			Timestamp: time.Now(),
		},
		OrderID: orderID,
		From:    order.Status,
		To:      to,
	}
	if err := s.eventPublisher.PublishOrderStatusChanged(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderStatusChanged event",
			zap.Int64("order_id", orderID), zap.Error(err))
	}

	return nil
}

// ListProducts returns every product for the back office
func (s *AdminService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.store.ListAllProductsAdmin(ctx)
}

// CreateProduct adds a product to the catalog
func (s *AdminService) CreateProduct(ctx context.Context, p store.NewProduct) (int64, error) {
	id, err := s.store.CreateProduct(ctx, p)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Product created", zap.Int64("product_id", id), zap.String("slug", p.Slug))
	return id, nil
}

// UpdateProduct applies a patch to a product
func (s *AdminService) UpdateProduct(ctx context.Context, productID int64, patch models.ProductPatch) error {
	product, err := s.store.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.store.UpdateProduct(ctx, productID, patch)
}

// DeleteProduct removes a product; dependent cart rows, favorites and
// reviews cascade
func (s *AdminService) DeleteProduct(ctx context.Context, productID int64) error {
	return s.store.DeleteProduct(ctx, productID)
}

// ListUsers returns all registered users
func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}
