package schema

// Metric keys supported by the builder. The expressions are a fixed
// contract: "bookings" must mean the same predicate everywhere.
const (
	MetricLeads          = "leads"
	MetricBookings       = "bookings"
	MetricRevenue        = "revenue"
	MetricPremium        = "premium"
	MetricBrokerage      = "brokerage"
	MetricConversionRate = "conversion_rate"
	MetricAvgPremium     = "avg_premium"
	MetricSumInsured     = "sum_insured"
	MetricLivesCovered   = "lives_covered"
)

var metricExpressions = map[string]string{
	MetricLeads:          "COUNT(*) as leads",
	MetricBookings:       "COUNT(CASE WHEN booking_status='IssuedBusiness' THEN 1 END) as bookings",
	MetricRevenue:        "SUM(revenue) as total_revenue",
	MetricPremium:        "SUM(premium) as total_premium",
	MetricBrokerage:      "SUM(brokerage) as total_brokerage",
	MetricConversionRate: "(COUNT(CASE WHEN booking_status='IssuedBusiness' THEN 1 END) * 100.0 / COUNT(*)) as conversion_rate",
	MetricAvgPremium:     "AVG(premium) as avg_premium",
	MetricSumInsured:     "SUM(suminsured) as total_sum_insured",
	MetricLivesCovered:   "SUM(totalnooflives) as total_lives",
}

// MetricExpression resolves a metric key to its SQL aggregate expression.
func MetricExpression(key string) (string, bool) {
	expr, ok := metricExpressions[key]
	return expr, ok
}

// MetricKeys returns all metric keys in stable order for prompt context.
func MetricKeys() []string {
	return []string{
		MetricLeads, MetricBookings, MetricRevenue, MetricPremium,
		MetricBrokerage, MetricConversionRate, MetricAvgPremium,
		MetricSumInsured, MetricLivesCovered,
	}
}

// Time patterns are boolean SQL fragments written against the default
// leaddate column; the builder substitutes the chosen date column in.
var timePatterns = map[string]string{
	"today":      "DATE(leaddate) = CURRENT_DATE",
	"yesterday":  "DATE(leaddate) = CURRENT_DATE - INTERVAL '1' DAY",
	"this week":  "leaddate >= DATE_TRUNC('week', CURRENT_DATE)",
	"last week":  "leaddate >= DATE_TRUNC('week', CURRENT_DATE) - INTERVAL '7' DAY AND leaddate < DATE_TRUNC('week', CURRENT_DATE)",
	"this month": "leaddate >= DATE_TRUNC('month', CURRENT_DATE)",
	"last month": "leaddate >= DATE_TRUNC('month', CURRENT_DATE) - INTERVAL '1' MONTH AND leaddate < DATE_TRUNC('month', CURRENT_DATE)",
}

// TimePattern resolves a named time key ("today", "last week", ...) to its
// SQL fragment.
func TimePattern(key string) (string, bool) {
	p, ok := timePatterns[key]
	return p, ok
}

// TimeKeys returns the supported named time keys.
func TimeKeys() []string {
	return []string{"today", "yesterday", "this week", "last week", "this month", "last month"}
}
