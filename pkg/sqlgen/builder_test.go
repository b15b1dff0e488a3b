package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
	"github.com/thinktank-analytics/thinktank-engine/pkg/products"
)

func newTestBuilder(effectiveColumns func() []string) *Builder {
	return NewBuilder(products.NewResolver(), effectiveColumns, zap.NewNop())
}

func metricIntent(metric string) *models.Intent {
	return &models.Intent{
		Type:   models.IntentMetricQuery,
		Metric: metric,
	}
}

func TestBuildNonMetricShortCircuits(t *testing.T) {
	b := newTestBuilder(nil)

	for _, typ := range []models.IntentType{
		models.IntentFeedback, models.IntentConversation,
		models.IntentClarification, models.IntentAgentStatus,
	} {
		res := b.Build(&models.Intent{Type: typ})
		assert.Equal(t, typ, res.Intent)
		assert.Empty(t, res.SQL)
	}
}

func TestBuildBookingsThisMonth(t *testing.T) {
	b := newTestBuilder(nil)

	intent := metricIntent("bookings")
	intent.Products = []int{5}
	intent.Time.Key = "this month"

	res := b.Build(intent)
	require.NotEmpty(t, res.SQL)
	assert.Contains(t, res.SQL, "investmenttypeid IN (5)")
	assert.Contains(t, res.SQL, "COUNT(CASE WHEN booking_status='IssuedBusiness' THEN 1 END) as bookings")
	// Bookings swap the date column in the time pattern.
	assert.Contains(t, res.SQL, "bookingdate >= DATE_TRUNC('month', CURRENT_DATE)")
	assert.NotContains(t, res.SQL, "leaddate")
	assert.Contains(t, res.Explanation, "Metric: bookings")
	assert.Contains(t, res.Explanation, "Products: [5]")
}

func TestBuildAgentWiseLastWeek(t *testing.T) {
	b := newTestBuilder(nil)

	intent := metricIntent("leads")
	intent.Dimensions = []string{"leadassignedagentname"}
	intent.Time.Key = "last week"

	res := b.Build(intent)
	assert.Contains(t, res.SQL, "GROUP BY leadassignedagentname")
	assert.Contains(t, res.SQL, "leaddate >= DATE_TRUNC('week', CURRENT_DATE) - INTERVAL '7' DAY")
	assert.Contains(t, res.SQL, "SELECT leadassignedagentname, COUNT(*) as leads")
}

func TestBuildProductWiseNameProjection(t *testing.T) {
	b := newTestBuilder(nil)

	intent := metricIntent("revenue")
	intent.Products = []int{1, 19}
	intent.Dimensions = []string{"investmenttypeid"}

	res := b.Build(intent)
	assert.Contains(t, res.SQL, "investmenttypeid IN (1, 19)")
	assert.Contains(t, res.SQL, "WHEN investmenttypeid = 1 THEN ")
	assert.Contains(t, res.SQL, "WHEN investmenttypeid = 19 THEN ")
	assert.Contains(t, res.SQL, "END AS product_name")

	// The CASE expression appears verbatim in GROUP BY.
	caseExpr := b.productNameCase()
	require.NotEmpty(t, caseExpr)
	assert.Contains(t, res.SQL, "GROUP BY investmenttypeid, "+caseExpr)
}

func TestBuildUnknownMetricFallsBackToLeads(t *testing.T) {
	b := newTestBuilder(nil)

	res := b.Build(metricIntent("velocity"))
	assert.Contains(t, res.SQL, "COUNT(*) as leads")
	assert.Contains(t, res.Explanation, "Metric: leads")
}

func TestBuildMultiMetric(t *testing.T) {
	b := newTestBuilder(nil)

	intent := metricIntent("")
	intent.Metrics = []string{"bookings", "revenue", "nonsense"}

	res := b.Build(intent)
	assert.Contains(t, res.SQL, "COUNT(CASE WHEN booking_status='IssuedBusiness' THEN 1 END) as bookings")
	assert.Contains(t, res.SQL, "SUM(revenue) as total_revenue")
	// A bookings metric in the list selects the booking date column.
	intent.Time.Key = "today"
	res = b.Build(intent)
	assert.Contains(t, res.SQL, "DATE(bookingdate) = CURRENT_DATE")
}

func TestBuildExplicitRangeBeatsNamedKey(t *testing.T) {
	b := newTestBuilder(nil)

	intent := metricIntent("leads")
	intent.Time = models.TimeSpec{
		Key:       "this month",
		StartDate: "2025-01-01",
		EndDate:   "2025-08-31",
	}

	res := b.Build(intent)
	assert.Contains(t, res.SQL, "DATE(leaddate) >= DATE '2025-01-01'")
	assert.Contains(t, res.SQL, "DATE(leaddate) <= DATE '2025-08-31'")
	assert.NotContains(t, res.SQL, "DATE_TRUNC('month', CURRENT_DATE)")
}

func TestBuildMalformedRangeIgnored(t *testing.T) {
	b := newTestBuilder(nil)

	intent := metricIntent("leads")
	intent.Time = models.TimeSpec{
		Key:       "today",
		StartDate: "january first",
		EndDate:   "2025-08-31",
	}

	res := b.Build(intent)
	assert.NotContains(t, res.SQL, "january")
	assert.Contains(t, res.SQL, "DATE(leaddate) = CURRENT_DATE")
}

func TestBuildOnlineOnlyFlag(t *testing.T) {
	b := newTestBuilder(nil)

	intent := metricIntent("leads")
	intent.SetFlag(models.FlagOnlineOnly, true)

	res := b.Build(intent)
	assert.Contains(t, res.SQL, "paymentstatus = 300")
	assert.Contains(t, res.Explanation, "Online payments only")
}

func TestBuildFilterGrammar(t *testing.T) {
	b := newTestBuilder(nil)

	tests := []struct {
		name    string
		filters map[string][]string
		want    string
	}{
		{
			name:    "positive string values",
			filters: map[string][]string{"mkt_category": {"CRM", "SMS"}},
			want:    "(mkt_category IN ('CRM', 'SMS'))",
		},
		{
			name:    "negated numeric",
			filters: map[string][]string{"referralid": {"not 0"}},
			want:    "(referralid NOT IN (0))",
		},
		{
			name:    "negated string operators",
			filters: map[string][]string{"booking_status": {"!= Closed", "<> Lost"}},
			want:    "(booking_status NOT IN ('Closed', 'Lost'))",
		},
		{
			name:    "positive and negated share one group",
			filters: map[string][]string{"booking_status": {"IssuedBusiness", "not Closed"}},
			want:    "(booking_status IN ('IssuedBusiness') OR booking_status NOT IN ('Closed'))",
		},
		{
			name:    "null token",
			filters: map[string][]string{"referralid": {"null"}},
			want:    "(referralid IS NULL)",
		},
		{
			name:    "not null token",
			filters: map[string][]string{"referralid": {"not null"}},
			want:    "(referralid IS NOT NULL)",
		},
		{
			name:    "mixed group ors sub-clauses",
			filters: map[string][]string{"referralid": {"0", "not null"}},
			want:    "(referralid IN (0) OR referralid IS NOT NULL)",
		},
		{
			name:    "quotes escaped",
			filters: map[string][]string{"insurername": {"O'Brien Insurance"}},
			want:    "(insurername IN ('O''Brien Insurance'))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := metricIntent("leads")
			intent.Filters = tt.filters
			res := b.Build(intent)
			assert.Contains(t, res.SQL, tt.want)
		})
	}
}

func TestBuildUnknownFilterColumnDropped(t *testing.T) {
	b := newTestBuilder(nil)

	intent := metricIntent("leads")
	intent.Filters = map[string][]string{"no_such_column": {"x"}}

	res := b.Build(intent)
	assert.NotContains(t, res.SQL, "no_such_column")
	assert.NotContains(t, res.SQL, "WHERE")
}

func TestBuildInjectionLiteralDropped(t *testing.T) {
	b := newTestBuilder(nil)

	intent := metricIntent("leads")
	intent.Filters = map[string][]string{
		"mkt_category": {"CRM", "' OR 1=1 --"},
	}

	res := b.Build(intent)
	assert.Contains(t, res.SQL, "(mkt_category IN ('CRM'))")
	assert.NotContains(t, res.SQL, "1=1")
}

func TestBuildFuzzyFallback(t *testing.T) {
	b := newTestBuilder(func() []string {
		return []string{"insurername", "mkt_category", "paymentstatus"}
	})

	intent := metricIntent("leads")
	intent.FuzzyValue = "acme brokers"

	res := b.Build(intent)
	assert.Contains(t, res.SQL, "LOWER(CAST(insurername AS VARCHAR)) LIKE '%acme brokers%'")
	assert.Contains(t, res.SQL, "LOWER(CAST(mkt_category AS VARCHAR)) LIKE '%acme brokers%'")
	// Agent name column is always probed.
	assert.Contains(t, res.SQL, "LOWER(CAST(leadassignedagentname AS VARCHAR)) LIKE '%acme brokers%'")
	// Non-string columns are skipped.
	assert.NotContains(t, res.SQL, "CAST(paymentstatus AS VARCHAR)")
}

func TestBuildFuzzySkippedWhenFiltersPresent(t *testing.T) {
	b := newTestBuilder(func() []string { return []string{"insurername"} })

	intent := metricIntent("leads")
	intent.FuzzyValue = "acme"
	intent.Filters = map[string][]string{"mkt_category": {"CRM"}}

	res := b.Build(intent)
	assert.NotContains(t, res.SQL, "LIKE")
}

func TestBuildGranularityBucket(t *testing.T) {
	b := newTestBuilder(nil)

	intent := metricIntent("revenue")
	intent.Time = models.TimeSpec{
		StartDate:   "2025-01-01",
		EndDate:     "2025-12-31",
		Granularity: "month",
	}

	res := b.Build(intent)
	assert.Contains(t, res.SQL, "SELECT DATE_TRUNC('month', leaddate) AS month, SUM(revenue) as total_revenue")
	assert.Contains(t, res.SQL, "GROUP BY DATE_TRUNC('month', leaddate)")
}

func TestBuildSingleStatementShape(t *testing.T) {
	b := newTestBuilder(nil)

	intent := metricIntent("leads")
	intent.Products = []int{5}
	intent.Time.Key = "today"
	intent.Filters = map[string][]string{"mkt_category": {"CRM"}}

	res := b.Build(intent)
	assert.True(t, len(res.SQL) > 0)
	assert.NotContains(t, res.SQL, ";")
	assert.Contains(t, res.SQL, "FROM sme_analytics.sme_leadbookingrevenue")
}

func TestBuildInvalidDimensionDropped(t *testing.T) {
	b := newTestBuilder(nil)

	intent := metricIntent("leads")
	intent.Dimensions = []string{"contact_person_name", "city"}

	res := b.Build(intent)
	// High-PII column cannot be a GROUP BY key.
	assert.NotContains(t, res.SQL, "contact_person_name")
	assert.Contains(t, res.SQL, "GROUP BY city")
}
