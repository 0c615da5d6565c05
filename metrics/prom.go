package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danpasecinic/factory"
)

// PromObserver records factory Create calls in Prometheus metrics. Register
// its Observe method with factory.WithCreateObserver.
type PromObserver struct {
	creates *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewPromObserver registers the create metrics on reg. A nil registerer
// defaults to the global Prometheus registerer; metrics that are already
// registered are reused.
func NewPromObserver(reg prometheus.Registerer) (*PromObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	creates := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factory_creates_total",
			Help: "Total number of factory Create calls by base type, identifiers and result",
		}, []string{"base", "ids", "result"},
	)
	latency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "factory_create_duration_seconds",
			Help:    "Time spent resolving and constructing an instance",
			Buckets: prometheus.DefBuckets,
		}, []string{"base"},
	)

	if err := reg.Register(creates); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		creates = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(latency); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		latency = are.ExistingCollector.(*prometheus.HistogramVec)
	}

	return &PromObserver{creates: creates, latency: latency}, nil
}

// Observe matches factory.CreateHook.
func (o *PromObserver) Observe(base string, ids []string, duration time.Duration, err error) {
	o.creates.WithLabelValues(base, strings.Join(ids, "/"), Result(err)).Inc()
	o.latency.WithLabelValues(base).Observe(duration.Seconds())
}

// Option returns the factory option wiring o into a factory.
func (o *PromObserver) Option() factory.Option {
	return factory.WithCreateObserver(o.Observe)
}

// Result maps a Create error to a metric label: "ok", or the lowercased
// error code name ("implementation_not_found", ...).
func Result(err error) string {
	if err == nil {
		return "ok"
	}
	return strings.ToLower(factory.CodeOf(err).String())
}
