package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	AlertsReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dhanbridge_alerts_total",
			Help: "Total webhook alerts received, by outcome.",
		},
		[]string{"outcome"},
	)

	OrdersForwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dhanbridge_orders_forwarded_total",
			Help: "Orders forwarded to the broker, by option type.",
		},
		[]string{"option_type"},
	)
)

func init() {
	prometheus.MustRegister(AlertsReceived, OrdersForwarded)
}
