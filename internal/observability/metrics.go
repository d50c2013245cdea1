package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Conversion directions.
const (
	DirectionToSID  = "to_sid"
	DirectionToNSLC = "to_nslc"
	DirectionToSEED = "to_seed"
	DirectionBuild  = "build"
)

// Conversion outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeLossy   = "lossy"
	OutcomeInvalid = "invalid"
)

// Metrics holds the Prometheus counters and histograms for identifier conversion.
type Metrics struct {
	Conversions        *prometheus.CounterVec   // labels: direction={to_sid,to_nslc,build}, outcome={ok,lossy,invalid}
	ConversionDuration *prometheus.HistogramVec // labels: direction
	TempNetworks       prometheus.Counter

	// Parse cache metrics.
	Cache        *prometheus.CounterVec // labels: result={hit,miss}
	CacheEnabled prometheus.Gauge
}

// NewMetrics creates and registers all conversion metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Conversions,
		m.ConversionDuration,
		m.TempNetworks,
		m.Cache,
		m.CacheEnabled,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sourceid",
			Name:      "conversions_total",
			Help:      "Identifier conversions by direction and outcome.",
		}, []string{"direction", "outcome"}),
		ConversionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sourceid",
			Name:      "conversion_duration_seconds",
			Help:      "Duration of a single identifier conversion.",
			Buckets:   []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001},
		}, []string{"direction"}),
		TempNetworks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sourceid",
			Name:      "temporary_networks_total",
			Help:      "Parsed source identifiers with a temporary network code and year.",
		}),
		Cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sourceid",
			Name:      "parse_cache_total",
			Help:      "Parse cache lookups by result.",
		}, []string{"result"}),
		CacheEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sourceid",
			Name:      "parse_cache_enabled",
			Help:      "1 when the parse cache is enabled, 0 otherwise.",
		}),
	}
}
