package worker

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the Prometheus instruments of Workers and Pools. A nil
// *Metrics records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inflight prometheus.Gauge
	games    *prometheus.CounterVec
}

// NewMetrics creates the instruments and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "countdown",
			Subsystem: "worker",
			Name:      "requests_total",
			Help:      "Worker requests by type and outcome.",
		}, []string{"type", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "countdown",
			Subsystem: "worker",
			Name:      "request_duration_seconds",
			Help:      "Time from posting a request to receiving its response.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"type"}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "countdown",
			Subsystem: "worker",
			Name:      "requests_in_flight",
			Help:      "Requests posted and not yet answered.",
		}),
		games: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "countdown",
			Subsystem: "pool",
			Name:      "games_total",
			Help:      "Games analysed by batch runs, by source.",
		}, []string{"source"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.requests, m.duration, m.inflight, m.games} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrAborted), errors.Is(err, ErrClosed):
		return "aborted"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

func (m *Metrics) observe(kind Kind, start time.Time, err error) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(string(kind), outcome(err)).Inc()
	m.duration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
}

func (m *Metrics) inFlight(delta float64) {
	if m == nil {
		return
	}
	m.inflight.Add(delta)
}

// gamesDone counts n games analysed, from "computed" or "cache".
func (m *Metrics) gamesDone(source string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.games.WithLabelValues(source).Add(float64(n))
}
