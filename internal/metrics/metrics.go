package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	catalogQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_queries_total",
			Help: "Catalog queries served, by sort key.",
		},
		[]string{"sort"},
	)

	catalogSourceErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_source_errors_total",
			Help: "Failed reads from the product source, by operation.",
		},
		[]string{"operation"},
	)

	couponApplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_coupon_applications_total",
			Help: "Coupon attempts, by result.",
		},
		[]string{"result"},
	)

	ordersPlacedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Orders placed, by payment method.",
		},
		[]string{"payment_method"},
	)

	adminBulkActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_bulk_actions_total",
			Help: "Admin bulk actions, by action.",
		},
		[]string{"action"},
	)

	adminBulkProductsAffected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_bulk_products_affected_total",
			Help: "Products changed by admin bulk actions, by action.",
		},
		[]string{"action"},
	)

	activeCarts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_active_carts",
			Help: "Carts currently held in memory.",
		},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

func CatalogQuery(sort string) {
	catalogQueriesTotal.WithLabelValues(sort).Inc()
}

func CatalogSourceError(operation string) {
	catalogSourceErrorsTotal.WithLabelValues(operation).Inc()
}

func CouponApplied(ok bool) {
	result := "applied"
	if !ok {
		result = "rejected"
	}
	couponApplicationsTotal.WithLabelValues(result).Inc()
}

func OrderPlaced(paymentMethod string) {
	ordersPlacedTotal.WithLabelValues(paymentMethod).Inc()
}

func BulkAction(action string, affected int) {
	adminBulkActionsTotal.WithLabelValues(action).Inc()
	adminBulkProductsAffected.WithLabelValues(action).Add(float64(affected))
}

func SetActiveCarts(n int) {
	activeCarts.Set(float64(n))
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware must wrap the mux so r.Pattern is populated after routing.
// The route pattern keeps path labels bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		defer func() {

			pathPattern := routeLabel(r)
			duration := time.Since(start)
			statusCodeStr := strconv.Itoa(rw.statusCode)

			httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, pathPattern).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(duration.Seconds())
			httpRequestsInFlight.Dec()

		}()

		next.ServeHTTP(rw, r)

	})
}

func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return "unmatched"
	}

	return r.Pattern
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
