package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder implements domain.OrderObserver with Prometheus collectors held
// in a private registry.
type Recorder struct {
	registry     *prometheus.Registry
	ordersPlaced prometheus.Counter
	ordersFailed *prometheus.CounterVec
	orderLines   prometheus.Histogram
	revenue      prometheus.Counter
}

// New creates a Recorder with its collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Number of orders that completed successfully.",
		}),
		ordersFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_orders_failed_total",
			Help: "Number of orders that failed, by reason.",
		}, []string{"reason"}),
		orderLines: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "storefront_order_lines",
			Help:    "Number of lines per successful order.",
			Buckets: []float64{1, 2, 3, 5, 8, 13},
		}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_revenue_total",
			Help: "Sum of charges across successful orders.",
		}),
	}
	r.registry.MustRegister(r.ordersPlaced, r.ordersFailed, r.orderLines, r.revenue)
	return r
}

func (r *Recorder) OrderPlaced(lines int, total float64) {
	r.ordersPlaced.Inc()
	r.orderLines.Observe(float64(lines))
	if total > 0 {
		r.revenue.Add(total)
	}
}

func (r *Recorder) OrderFailed(reason string) {
	r.ordersFailed.WithLabelValues(reason).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the collected metrics in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr in the background. Listen errors are
// returned immediately; stop the server with Shutdown.
func (r *Recorder) Serve(addr string) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() { _ = srv.Serve(ln) }()
	return srv, nil
}

// Shutdown stops srv, waiting at most timeout for in-flight scrapes.
func Shutdown(srv *http.Server, timeout time.Duration) error {
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
