package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/config"
	"storefront/internal/broker"
	"storefront/internal/cache"
	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles checkout and order history
type OrderService struct {
	store          *store.Store
	cache          *cache.Client
	eventPublisher *broker.EventPublisher
	shop           config.ShopConfig
	logger         *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(st *store.Store, c *cache.Client, eventPublisher *broker.EventPublisher, shop config.ShopConfig) *OrderService {
	return &OrderService{
		store:          st,
		cache:          c,
		eventPublisher: eventPublisher,
		shop:           shop,
		logger:         util.GetLogger(),
	}
}

// CheckoutRequest carries the free-form contact fields captured at checkout
type CheckoutRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Address string  `json:"address" binding:"required"`
	Comment *string `json:"comment,omitempty"`
}

// CheckoutResponse reports the newly created order
type CheckoutResponse struct {
	OrderID int64              `json:"order_id"`
	Status  models.OrderStatus `json:"status"`
	Total   float64            `json:"total"`
}

// Checkout places an order from the user's cart. The store runs the whole
// workflow in one transaction; an empty cart creates no order.
func (s *OrderService) Checkout(ctx context.Context, userID int64, req *CheckoutRequest) (*CheckoutResponse, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.Checkout")
	defer span.End()

	start := time.Now()
	defer func() {
		util.CheckoutLatency.Observe(time.Since(start).Seconds())
	}()

	contact := models.ShippingContact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Comment: req.Comment,
	}

	orderID, err := s.store.CreateOrder(ctx, userID, contact, s.shop.AllowBackorder)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyCart):
			util.OrdersFailedTotal.WithLabelValues("empty_cart").Inc()
		case errors.Is(err, store.ErrInsufficientStock):
			util.OrdersFailedTotal.WithLabelValues("insufficient_stock").Inc()
		default:
			util.OrdersFailedTotal.WithLabelValues("db_error").Inc()
		}
		return nil, err
	}

	util.OrdersPlacedTotal.Inc()
	s.logger.Info("Order placed",
		zap.Int64("order_id", orderID),
		zap.Int64("user_id", userID))

	if err := s.cache.InvalidateCartCount(ctx, userID); err != nil {
		s.logger.Warn("Cart count cache invalidation failed after checkout",
			zap.Int64("user_id", userID), zap.Error(err))
	}

	order, err := s.store.GetOrderByID(ctx, orderID)
	if err != nil || order == nil {
		return nil, fmt.Errorf("failed to reload order %d: %w", orderID, err)
	}

	s.publishOrderPlaced(ctx, order)

	return &CheckoutResponse{
		OrderID: order.ID,
		Status:  order.Status,
		Total:   order.Total,
	}, nil
}

func (s *OrderService) publishOrderPlaced(ctx context.Context, order *models.Order) {
	items := make([]models.OrderLineData, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, models.OrderLineData{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		})
	}

	event := &models.OrderPlacedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderPlaced,
			Timestamp: time.Now(),
		},
		OrderID: order.ID,
		UserID:  order.UserID,
		Total:   order.Total,
		Items:   items,
	}

	if err := s.eventPublisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderPlaced event",
			zap.Int64("order_id", order.ID), zap.Error(err))
	}
}

// GetOrder retrieves one order with its items. Callers are responsible for
// ownership checks; absence is ErrOrderNotFound.
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	order, err := s.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListUserOrders retrieves the user's order history, newest first
func (s *OrderService) ListUserOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	return s.store.ListUserOrders(ctx, userID)
}
