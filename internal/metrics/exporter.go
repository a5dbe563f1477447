package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/sorting"
)

const namespace = "sortviz"

// Exporter publishes driver activity as Prometheus metrics. It is a driver
// observer; register it with Driver.AddObserver.
//
// All operations are thread-safe via Prometheus's internal locking, so the
// scrape handler may run on another goroutine than the driver.
type Exporter struct {
	registry *prometheus.Registry

	// StepsTotal counts emitted steps.
	// Labels: algorithm, kind
	StepsTotal *prometheus.CounterVec

	// RunsStarted counts runs by algorithm.
	RunsStarted *prometheus.CounterVec

	// RunsEnded counts finished runs.
	// Labels: algorithm, reason (completed, stopped)
	RunsEnded *prometheus.CounterVec

	RunActive  prometheus.Gauge
	ArraySize  prometheus.Gauge
	Inversions *prometheus.GaugeVec
}

// NewExporter registers the sortviz metrics with reg. A nil reg gets a fresh
// registry.
func NewExporter(reg *prometheus.Registry) *Exporter {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Exporter{
		registry: reg,
		StepsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "steps_total",
				Help:      "Steps emitted by algorithm and step kind",
			},
			[]string{"algorithm", "kind"},
		),
		RunsStarted: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_started_total",
				Help:      "Runs started by algorithm",
			},
			[]string{"algorithm"},
		),
		RunsEnded: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_ended_total",
				Help:      "Runs ended by algorithm and reason",
			},
			[]string{"algorithm", "reason"},
		),
		RunActive: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_active",
			Help:      "1 while a run is in progress",
		}),
		ArraySize: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "array_size",
			Help:      "Length of the array of the latest run",
		}),
		Inversions: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "inversions",
				Help:      "Inversions left in the array after the latest step",
			},
			[]string{"algorithm"},
		),
	}
}

func (e *Exporter) OnStep(alg sorting.Algorithm, s sorting.Step) {
	e.StepsTotal.WithLabelValues(string(alg), s.Kind.String()).Inc()
	e.Inversions.WithLabelValues(string(alg)).Set(float64(Count(s.Values)))
}

func (e *Exporter) OnRunStart(alg sorting.Algorithm, values []int) {
	e.RunsStarted.WithLabelValues(string(alg)).Inc()
	e.RunActive.Set(1)
	e.ArraySize.Set(float64(len(values)))
}

func (e *Exporter) OnRunEnd(alg sorting.Algorithm, reason driver.EndReason) {
	e.RunsEnded.WithLabelValues(string(alg), string(reason)).Inc()
	e.RunActive.Set(0)
}

func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (e *Exporter) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", e.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("metrics listening", slog.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
