package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// LLM metric names
const (
	MetricNameLLMRequestsTotal   = "llm_requests_total"
	MetricNameLLMRequestDuration = "llm_request_duration_seconds"
)

// Business metric names
const (
	MetricNameQuestsGenerated     = "quests_generated_total"
	MetricNameIntrospectionQuests = "introspection_quests_total"
	MetricNameGenerationFailures  = "generation_failures_total"
	MetricNameWizardChats         = "wizard_chats_total"
	MetricNameXPAwarded           = "xp_awarded_total"
	MetricNamePersistenceWarnings = "persistence_warnings_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// LLM metric help text
const (
	HelpTextLLMRequestsTotal   = "Total number of LLM completion requests"
	HelpTextLLMRequestDuration = "LLM completion request latency in seconds"
)

// Business metric help text
const (
	HelpTextQuestsGenerated     = "Total number of quests generated"
	HelpTextIntrospectionQuests = "Total number of introspection fallback quests generated"
	HelpTextGenerationFailures  = "Total number of quest generations that failed"
	HelpTextWizardChats         = "Total number of wizard chat replies generated"
	HelpTextXPAwarded           = "Total XP awarded for completed quests"
	HelpTextPersistenceWarnings = "Total number of generations that succeeded but failed to persist"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelModel   = "model"
	LabelOutcome = "outcome"
	LabelStage   = "stage"
)

// Outcome label values for LLM requests
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LLMLatencyBuckets covers the much slower completion round trips
var LLMLatencyBuckets = []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60, 120}
