// Package metrics exports run and order outcomes to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shipconfirm/internal/core/domain/model/run"
	"shipconfirm/internal/core/ports"
)

const namespace = "shipconfirm"

// Recorder is a ports.RunObserver backed by a dedicated registry.
type Recorder struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	orders      *prometheus.CounterVec
	stateDrift  prometheus.Counter
	runDuration prometheus.Histogram
}

var _ ports.RunObserver = (*Recorder)(nil)

// NewRecorder creates a recorder with its collectors and the Go/process
// collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "runs_total", Help: "Shipment confirmation runs by result."},
			[]string{"result"},
		),
		orders: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "orders_total", Help: "Processed orders by outcome."},
			[]string{"outcome"},
		),
		stateDrift: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "state_drift_total", Help: "Orders notified whose state could not be advanced."},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Shipment confirmation run duration in seconds.",
				Buckets:   []float64{0.5, 1, 5, 15, 30, 60, 120, 300, 600},
			},
		),
	}

	r.registry.MustRegister(
		r.runs,
		r.orders,
		r.stateDrift,
		r.runDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) ObserveRun(outcome run.Outcome, duration time.Duration) {
	r.runs.WithLabelValues(string(outcome)).Inc()
	r.runDuration.Observe(duration.Seconds())
}

func (r *Recorder) ObserveOrder(success bool) {
	outcome := "failed"
	if success {
		outcome = "succeeded"
	}
	r.orders.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveStateDrift() {
	r.stateDrift.Inc()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
