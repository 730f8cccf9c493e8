package worker

import (
	"context"
	"log"

	"storefront/internal/broker"
	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/util"

	"go.uber.org/zap"
)

// StockAlertWorker consumes order events and raises an alert for every
// ordered product whose stock is at or below the low-stock threshold.
type StockAlertWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	store        *store.Store
	threshold    int
	logger       *zap.Logger
}

// NewStockAlertWorker creates a new stock alert worker
func NewStockAlertWorker(consumer *broker.Consumer, st *store.Store, threshold int) *StockAlertWorker {
	w := &StockAlertWorker{
		consumer:  consumer,
		store:     st,
		threshold: threshold,
		logger:    util.GetLogger(),
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnOrderPlaced(w.handleOrderPlaced)
	w.eventHandler = eventHandler

	return w
}

// Start starts the worker
func (w *StockAlertWorker) Start(ctx context.Context) error {
	log.Println("Starting stock alert worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *StockAlertWorker) Stop() error {
	log.Println("Stopping stock alert worker...")
	return w.consumer.Close()
}

func (w *StockAlertWorker) handleOrderPlaced(ctx context.Context, event *models.OrderPlacedEvent) error {
	for _, item := range event.Items {
		product, err := w.store.GetProductByID(ctx, item.ProductID)
		if err != nil {
			w.logger.Error("Failed to load product for stock check",
				zap.Int64("product_id", item.ProductID),
				zap.Error(err))
			continue
		}
		if product == nil {
			continue
		}

		if product.Stock <= w.threshold {
			util.LowStockAlertsTotal.Inc()
			w.logger.Warn("Product stock low after order",
				zap.Int64("order_id", event.OrderID),
				zap.Int64("product_id", product.ID),
				zap.String("slug", product.Slug),
				zap.Int("stock", product.Stock))
		}
	}
	return nil
}
