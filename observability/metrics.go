package observability

import (
	"errors"

	builderrors "github.com/portasui/porta/builder/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts builder and estimator outcomes.  A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	built     *prometheus.CounterVec
	failed    *prometheus.CounterVec
	fallbacks prometheus.Counter
	gas       prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		built: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "porta_migrations_built_total",
			Help: "Number of migration transactions built.",
		}, []string{"route"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "porta_migration_build_failures_total",
			Help: "Number of migration builds that failed.",
		}, []string{"route", "reason"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "porta_estimate_fallbacks_total",
			Help: "Number of estimates that used the fixed fallback after a failed dry run.",
		}),
		gas: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "porta_estimated_gas_mist",
			Help:    "Gas estimated by dry runs, in MIST.",
			Buckets: prometheus.ExponentialBuckets(1_000_000, 2, 12),
		}),
	}
	m.registry.MustRegister(m.built, m.failed, m.fallbacks, m.gas)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) BuildSucceeded(route string) {
	if m == nil {
		return
	}
	m.built.WithLabelValues(route).Inc()
}

func (m *Metrics) BuildFailed(route string, err error) {
	if m == nil {
		return
	}
	m.failed.WithLabelValues(route, FailureReason(err)).Inc()
}

func (m *Metrics) EstimateFellBack() {
	if m == nil {
		return
	}
	m.fallbacks.Inc()
}

func (m *Metrics) ObserveGas(mist uint64) {
	if m == nil {
		return
	}
	m.gas.Observe(float64(mist))
}

// FailureReason maps a build error to a low cardinality label.
func FailureReason(err error) string {
	var routeErr *builderrors.UnsupportedRouteError
	var assetErr *builderrors.AssetNotSupportedError
	var pairErr *builderrors.UnsupportedPairError
	var swapErr *builderrors.SwapUnavailableError
	switch {
	case errors.As(err, &routeErr):
		return "unsupported_route"
	case errors.As(err, &assetErr):
		return "asset_not_supported"
	case errors.As(err, &pairErr):
		return "unsupported_pair"
	case errors.As(err, &swapErr):
		return "swap_unavailable"
	case errors.Is(err, builderrors.ErrInvalidAmount), errors.Is(err, builderrors.ErrAmountOverflow):
		return "invalid_amount"
	case errors.Is(err, builderrors.ErrMissingSender):
		return "missing_sender"
	}
	return "other"
}
