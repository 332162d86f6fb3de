package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRateLimited      = "http_requests_rate_limited_total"
)

// Storage metric names
const (
	MetricNameDBConnectAttempts  = "grammorpg_db_connect_attempts_total"
	MetricNameRepositoryDuration = "grammorpg_repository_operation_duration_seconds"
	MetricNameRepositoryErrors   = "grammorpg_repository_errors_total"
	MetricNameServiceRejections  = "grammorpg_service_rejections_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRateLimited      = "Total number of requests rejected by the rate limiter"
)

// Storage metric help text
const (
	HelpTextDBConnectAttempts  = "Database bootstrap connection attempts by result"
	HelpTextRepositoryDuration = "Repository operation latency in seconds"
	HelpTextRepositoryErrors   = "Repository operations that returned a storage error"
	HelpTextServiceRejections  = "Service operations rejected with a domain error"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelResult    = "result"
	LabelEntity    = "entity"
	LabelOperation = "operation"
	LabelReason    = "reason"
)

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	// PathUnmatched is used when no route pattern matched, keeping label cardinality bounded
	PathUnmatched = "unmatched"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
	DBLatencyBuckets   = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, 1}
)
