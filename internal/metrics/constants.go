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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameUsersRegistered       = "users_registered_total"
	MetricNameSessions              = "user_sessions_total"
	MetricNameTransactions          = "transactions_total"
	MetricNameTransactionAmount     = "transaction_amount_total"
	MetricNamePortfoliosAllocated   = "portfolios_allocated_total"
	MetricNameAllocationDuration    = "allocation_duration_seconds"
	MetricNameAllocationSelected    = "allocation_selected_securities"
	MetricNameAllocationUtilization = "allocation_utilization_ratio"
	MetricNameSecurityChanges       = "security_changes_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextUsersRegistered       = "Total number of registered users"
	HelpTextSessions              = "Total number of logins and logouts"
	HelpTextTransactions          = "Total number of deposits and withdrawals"
	HelpTextTransactionAmount     = "Total amount moved by deposits and withdrawals"
	HelpTextPortfoliosAllocated   = "Total number of portfolios allocated"
	HelpTextAllocationDuration    = "Time spent running the allocator in seconds"
	HelpTextAllocationSelected    = "Number of securities selected per allocation"
	HelpTextAllocationUtilization = "Allocated total divided by capacity"
	HelpTextSecurityChanges       = "Total number of securities created, updated or deleted"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelEvent     = "event"
	LabelRiskLevel = "risk_level"
	LabelAction    = "action"
)

// UnmatchedRoute is the path label for requests no route matched
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// AllocationLatencyBuckets covers allocator runs from 10µs to 5s.
// Runtime grows with catalog size times capacity.
var AllocationLatencyBuckets = []float64{.00001, .0001, .001, .01, .05, .1, .25, .5, 1, 2.5, 5}

// AllocationSelectedBuckets counts selected securities per allocation
var AllocationSelectedBuckets = []float64{0, 1, 2, 5, 10, 20, 50, 100}

// UtilizationBuckets spans the filled share of the budget
var UtilizationBuckets = []float64{0, .5, .75, .9, .95, .99, 1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
