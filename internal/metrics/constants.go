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

// Business metric names
const (
	MetricNameModsSearched          = "mods_searched_total"
	MetricNameItemsParsed           = "items_parsed_total"
	MetricNameEstimations           = "estimations_total"
	MetricNameEstimationProbability = "estimation_probability"
	MetricNameCatalogModsLoaded     = "catalog_mods_loaded"
	MetricNameCatalogBasesLoaded    = "catalog_item_bases_loaded"
)

// Auto-craft metric names
const (
	MetricNameAutocraftSessions = "autocraft_sessions_active"
	MetricNameAutocraftChecks   = "autocraft_checks_total"
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

// Business metric help text
const (
	HelpTextModsSearched          = "Total number of mod searches"
	HelpTextItemsParsed           = "Total number of item texts parsed"
	HelpTextEstimations           = "Total number of craft estimations"
	HelpTextEstimationProbability = "Probability returned by successful estimations"
	HelpTextCatalogModsLoaded     = "Number of mods in the loaded catalog"
	HelpTextCatalogBasesLoaded    = "Number of item bases in the loaded catalog"
)

// Auto-craft metric help text
const (
	HelpTextAutocraftSessions = "Current number of open auto-craft sessions"
	HelpTextAutocraftChecks   = "Total number of crafted items checked by auto-craft sessions"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelResult = "result"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultMatched = "matched"
	ResultMissed  = "missed"
)

// UnmatchedRoute labels requests no route handled
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ProbabilityBuckets spans 1e-6 to 1 in decades
var ProbabilityBuckets = []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1, 1}
