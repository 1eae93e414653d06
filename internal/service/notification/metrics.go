package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsPrepared = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "restaurant_notifications_prepared_total",
		Help: "Customer notifications prepared, by order status.",
	},
	[]string{"status"},
)
