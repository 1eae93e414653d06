package order_stats

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"restaurant/internal/entities"
)

type Service interface {
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

var ordersByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "restaurant_orders_by_status",
		Help: "Number of orders currently in each status.",
	},
	[]string{"status"},
)

var trackedStatuses = []entities.OrderStatusType{
	entities.OrderConfirmed,
	entities.OrderPreparing,
	entities.OrderReady,
	entities.OrderCompleted,
	entities.OrderCancelled,
}

// OrderStats refreshes the per-status order gauges for the admin dashboard.
type OrderStats struct {
	service  Service
	interval time.Duration
}

func NewOrderStats(service Service, interval time.Duration) *OrderStats {
	return &OrderStats{
		service:  service,
		interval: interval,
	}
}

func (o *OrderStats) TTL() time.Duration {
	return o.interval
}

func (o *OrderStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	// statuses with no orders are reset to zero, not left stale
	for _, status := range trackedStatuses {
		ordersByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	return nil
}

func (o *OrderStats) Info() string {
	return "order stats"
}
