package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal   = "focusquest_http_requests_total"
	MetricNameHTTPRequestDuration = "focusquest_http_request_duration_seconds"

	MetricNameEventsPublished    = "focusquest_events_published_total"
	MetricNameEventHandlerErrors = "focusquest_event_handler_errors_total"

	MetricNameBattlesResolved    = "focusquest_battles_resolved_total"
	MetricNameRaidAttempts       = "focusquest_raid_attempts_total"
	MetricNameRaidBossesDefeated = "focusquest_raid_bosses_defeated_total"
	MetricNameAttemptsRejected   = "focusquest_raid_attempts_rejected_total"
	MetricNameXPGranted          = "focusquest_xp_granted_total"
	MetricNameGoldGranted        = "focusquest_gold_granted_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal   = "Total number of HTTP requests processed"
	HelpTextHTTPRequestDuration = "HTTP request latency distribution"

	HelpTextEventsPublished    = "Total number of events published to the bus"
	HelpTextEventHandlerErrors = "Total number of event handler failures"

	HelpTextBattlesResolved    = "Total number of duels resolved, by tier and outcome"
	HelpTextRaidAttempts       = "Total number of raid attempts executed"
	HelpTextRaidBossesDefeated = "Total number of raid bosses defeated"
	HelpTextAttemptsRejected   = "Total number of raid attempts rejected by the daily limit"
	HelpTextXPGranted          = "Total XP granted across all settlements"
	HelpTextGoldGranted        = "Total gold granted across all settlements"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelTier    = "tier"
	LabelOutcome = "outcome"
)

// HTTPLatencyBuckets covers fast in-process calls through slow DB paths.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
