package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	CargoCreated     prometheus.Counter
	ShipmentsCreated prometheus.Counter
	ShipmentsUpdated prometheus.Counter
	ShipmentsArchived prometheus.Counter
	PriceQuotes      prometheus.Counter
	RequestDuration  prometheus.Histogram
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		CargoCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cargo_created_total",
			Help:      "The total number of cargo records created",
		}),
		ShipmentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shipments_created_total",
			Help:      "The total number of shipments created",
		}),
		ShipmentsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shipments_updated_total",
			Help:      "The total number of shipment status updates",
		}),
		ShipmentsArchived: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shipments_archived_total",
			Help:      "The total number of shipments moved to the archive",
		}),
		PriceQuotes: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_quotes_total",
			Help:      "The total number of price quotes computed",
		}),
		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Time taken to serve API requests",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
