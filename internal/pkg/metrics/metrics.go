// Package metrics defines Prometheus collectors for monitoring the
// fulfillment engine. Collectors are registered once in cmd/app and
// incremented by the inbound adapters and background jobs.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// PlansOptimizedTotal counts successful fulfillment optimizations.
	PlansOptimizedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fulfillment_plans_optimized_total",
			Help: "Total number of fulfillment plans optimized",
		},
	)

	// OptimizationFailuresTotal counts failed optimization requests.
	OptimizationFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fulfillment_optimization_failures_total",
			Help: "Total number of failed fulfillment optimizations",
		},
	)

	// ShipmentsCreatedTotal counts shipments created from accepted plans.
	ShipmentsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fulfillment_shipments_created_total",
			Help: "Total number of shipments created",
		},
	)

	// ShipmentStatusUpdatesTotal counts shipment status transitions by target status.
	ShipmentStatusUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_shipment_status_updates_total",
			Help: "Total number of shipment status updates",
		},
		[]string{"status"},
	)

	// OverdueShipmentsTotal counts shipments swept into exception by the overdue job.
	OverdueShipmentsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fulfillment_overdue_shipments_total",
			Help: "Total number of shipments marked exception for missing their delivery estimate",
		},
	)

	// OptimizationDuration observes how long a full optimization takes.
	OptimizationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fulfillment_optimization_duration_seconds",
			Help:    "Duration of fulfillment optimization requests",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register registers all fulfillment collectors with the given registry.
func Register(registry *prometheus.Registry) {
	registry.MustRegister(
		PlansOptimizedTotal,
		OptimizationFailuresTotal,
		ShipmentsCreatedTotal,
		ShipmentStatusUpdatesTotal,
		OverdueShipmentsTotal,
		OptimizationDuration,
	)
}
