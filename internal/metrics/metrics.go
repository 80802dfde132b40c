// Package metrics exposes Prometheus instrumentation for the HTTP
// surface and the inventory itself.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "floodkit_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "floodkit_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	itemOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "floodkit_item_operations_total",
			Help: "Total number of inventory item operations",
		},
		[]string{"operation"},
	)

	damageValueGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "floodkit_total_damage_value",
			Help: "Current grand-total damage value across the inventory",
		},
	)

	inventorySizeGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "floodkit_inventory_items",
			Help: "Current number of inventory items",
		},
	)
)

// RecordItemOperation increments the counter for an item operation
// (create, update, delete, photo).
func RecordItemOperation(operation string) {
	itemOperationsTotal.WithLabelValues(operation).Inc()
}

// UpdateInventoryGauges reflects the current inventory totals.
func UpdateInventoryGauges(itemCount int, totalDamageValue float64) {
	inventorySizeGauge.Set(float64(itemCount))
	damageValueGauge.Set(totalDamageValue)
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request counts and durations labeled by method,
// path, and status.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.URL.Path
		status := strconv.Itoa(rec.status)
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}
