package services

import (
	"context"
	"sync"

	"github.com/shashiranjanraj/shopadmin/config"
	"github.com/shashiranjanraj/shopadmin/pkg/cache"
	"github.com/shashiranjanraj/shopadmin/pkg/event"
	"github.com/shashiranjanraj/shopadmin/pkg/logger"
	"github.com/shashiranjanraj/shopadmin/pkg/metrics"
)

var registerOnce sync.Once

// RegisterListeners wires the domain event handlers. Safe to call repeatedly.
func RegisterListeners() {
	registerOnce.Do(func() {
		event.Listen(EventSaleRecorded, onSaleRecorded)
		event.Listen(EventOrderCreated, onOrderCreated)
		event.Listen(EventInventoryUpdated, onInventoryUpdated)
	})
}

func onSaleRecorded(ctx context.Context, payload interface{}) {
	p, ok := payload.(SaleRecorded)
	if !ok {
		return
	}
	metrics.SalesRecorded.Inc()
	invalidateReports(ctx)
	checkStock(ctx, p.Stock...)
}

func onOrderCreated(ctx context.Context, payload interface{}) {
	p, ok := payload.(OrderCreated)
	if !ok {
		return
	}
	metrics.OrdersCreated.Inc()
	metrics.SalesRecorded.Add(float64(len(p.Order.Sales)))
	invalidateReports(ctx)
	checkStock(ctx, p.Stock...)
}

func onInventoryUpdated(ctx context.Context, payload interface{}) {
	if level, ok := payload.(StockLevel); ok {
		checkStock(ctx, level)
	}
}

func invalidateReports(ctx context.Context) {
	if err := cache.Flush(ctx, ReportCachePrefix); err != nil {
		logger.WithCtx(ctx).Warn("reports: cache flush failed", "error", err)
	}
}

func checkStock(ctx context.Context, levels ...StockLevel) {
	threshold := config.LowStockThreshold()
	for _, l := range levels {
		if l.Quantity > threshold {
			continue
		}
		metrics.LowStockEvents.Inc()
		logger.WithCtx(ctx).Warn("inventory: low stock",
			"product_id", l.ProductID,
			"quantity", l.Quantity,
			"threshold", threshold,
		)
	}
}
