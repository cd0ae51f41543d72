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
	MetricNamePointsAwarded   = "consideration_points_awarded_total"
	MetricNameReasonsUnlocked = "reasons_unlocked_total"
	MetricNameStarsEarned     = "stars_earned_total"
	MetricNameStarsSpent      = "stars_spent_total"
	MetricNamePrizesClaimed   = "prizes_claimed_total"
	MetricNameLettersRead     = "letters_read_total"
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
	HelpTextPointsAwarded   = "Total consideration points awarded"
	HelpTextReasonsUnlocked = "Total reasons unlocked"
	HelpTextStarsEarned     = "Total stars earned, labeled by source"
	HelpTextStarsSpent      = "Total stars spent on prizes"
	HelpTextPrizesClaimed   = "Total prizes claimed"
	HelpTextLettersRead     = "Total letters read for the first time"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelSource = "source"
)

// Star source label values
const (
	SourceLetter = "carta"
	SourceSong   = "cancion"
	SourceGame   = "juego"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
