package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	ModsSearched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameModsSearched,
			Help: HelpTextModsSearched,
		},
	)

	ItemsParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsParsed,
			Help: HelpTextItemsParsed,
		},
		[]string{LabelResult},
	)

	Estimations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEstimations,
			Help: HelpTextEstimations,
		},
		[]string{LabelResult},
	)

	EstimationProbability = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameEstimationProbability,
			Help:    HelpTextEstimationProbability,
			Buckets: ProbabilityBuckets,
		},
	)

	CatalogModsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogModsLoaded,
			Help: HelpTextCatalogModsLoaded,
		},
	)

	CatalogBasesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogBasesLoaded,
			Help: HelpTextCatalogBasesLoaded,
		},
	)
)

// Auto-craft Metrics
var (
	AutocraftSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAutocraftSessions,
			Help: HelpTextAutocraftSessions,
		},
	)

	AutocraftChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAutocraftChecks,
			Help: HelpTextAutocraftChecks,
		},
		[]string{LabelResult},
	)
)

// ResultLabel maps an error to the result label value
func ResultLabel(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
