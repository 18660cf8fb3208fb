package metrics

import (
	"time"

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

// LLM Metrics
var (
	LLMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLLMRequestsTotal,
			Help: HelpTextLLMRequestsTotal,
		},
		[]string{LabelModel, LabelOutcome},
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameLLMRequestDuration,
			Help:    HelpTextLLMRequestDuration,
			Buckets: LLMLatencyBuckets,
		},
		[]string{LabelModel},
	)
)

// Business Metrics
var (
	QuestsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsGenerated,
			Help: HelpTextQuestsGenerated,
		},
	)

	IntrospectionQuests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIntrospectionQuests,
			Help: HelpTextIntrospectionQuests,
		},
	)

	GenerationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGenerationFailures,
			Help: HelpTextGenerationFailures,
		},
		[]string{LabelStage},
	)

	WizardChats = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWizardChats,
			Help: HelpTextWizardChats,
		},
	)

	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
	)

	PersistenceWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceWarnings,
			Help: HelpTextPersistenceWarnings,
		},
	)
)

// ObserveLLMRequest records one completion round trip against a model.
func ObserveLLMRequest(model string, duration time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	LLMRequestsTotal.WithLabelValues(model, outcome).Inc()
	LLMRequestDuration.WithLabelValues(model).Observe(duration.Seconds())
}
