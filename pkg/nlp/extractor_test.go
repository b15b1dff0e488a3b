package nlp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/llm"
	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
	"github.com/thinktank-analytics/thinktank-engine/pkg/products"
)

func newTestExtractor(t *testing.T, response string, respErr error) (*Extractor, *llm.MockLLMClient) {
	t.Helper()
	mock := llm.NewMockLLMClient()
	mock.GenerateResponseFunc = func(ctx context.Context, prompt, system string, temperature float64) (string, error) {
		return response, respErr
	}
	e := NewExtractor(mock, products.NewResolver(), zap.NewNop())
	e.now = func() time.Time {
		return time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	}
	return e, mock
}

func TestExtractMetricQuery(t *testing.T) {
	response := "```json\n" + `{
		"intent": "metric_query",
		"confidence": 0.95,
		"products": [5, 2],
		"metric": "leads",
		"time": {"key": "today"},
		"dimensions": [],
		"filters": {"mkt_category": ["CRM"], "_fuzzy_value": null},
		"flags": {"online_only": false},
		"ambiguities": [],
		"explanation": "leads for fire insurance today",
		"agent": {"name": null, "codes": [], "mode": null, "status_filters": [], "fields": [], "scan": null}
	}` + "\n```"

	e, mock := newTestExtractor(t, response, nil)
	intent := e.Extract(context.Background(), "how many fire insurance leads today")

	require.NotNil(t, intent)
	assert.Equal(t, models.IntentMetricQuery, intent.Type)
	assert.Equal(t, 0.95, intent.Confidence)
	// Product 2 was proposed by the model but no alias of it occurs in the
	// text, so only fire insurance survives.
	assert.Equal(t, []int{5}, intent.Products)
	assert.Equal(t, "leads", intent.Metric)
	assert.Equal(t, "today", intent.Time.Key)
	assert.Equal(t, []string{"CRM"}, intent.Filters["mkt_category"])
	assert.Empty(t, intent.FuzzyValue)
	assert.Equal(t, 1, mock.GenerateResponseCalls)
}

func TestExtractProductsFromTextOnly(t *testing.T) {
	// Model returns no products; the deterministic resolver still finds the
	// short aliases in the text.
	response := `{"intent": "metric_query", "confidence": 0.9, "products": [], "metric": "leads", "time": {"key": "today"}}`

	e, _ := newTestExtractor(t, response, nil)
	intent := e.Extract(context.Background(), "leads for ghi and wc today")

	assert.Equal(t, []int{1, 19}, intent.Products)
}

func TestExtractAllProductsClearsFilter(t *testing.T) {
	response := `{"intent": "metric_query", "confidence": 0.9, "products": [5], "metric": "leads", "time": {"key": null}}`

	e, _ := newTestExtractor(t, response, nil)
	intent := e.Extract(context.Background(), "fire insurance leads across products")

	assert.Empty(t, intent.Products)
}

func TestExtractNumericStringProducts(t *testing.T) {
	response := `{"intent": "metric_query", "products": ["5"], "metric": "leads", "time": {"key": null}}`

	e, _ := newTestExtractor(t, response, nil)
	intent := e.Extract(context.Background(), "fire insurance leads")

	assert.Equal(t, []int{5}, intent.Products)
	// Absent confidence defaults.
	assert.Equal(t, defaultConfidence, intent.Confidence)
}

func TestExtractFallbackOnModelError(t *testing.T) {
	e, _ := newTestExtractor(t, "", errors.New("boom"))
	intent := e.Extract(context.Background(), "leads today")

	require.NotNil(t, intent)
	assert.Equal(t, models.IntentMetricQuery, intent.Type)
	assert.Equal(t, fallbackConfidence, intent.Confidence)
	require.Len(t, intent.Ambiguities, 1)
	assert.Contains(t, intent.Ambiguities[0], "extractor error")
}

func TestExtractFallbackOnBadJSON(t *testing.T) {
	e, _ := newTestExtractor(t, "sorry, I cannot help with that", nil)
	intent := e.Extract(context.Background(), "leads today")

	assert.Equal(t, models.IntentMetricQuery, intent.Type)
	assert.Equal(t, fallbackConfidence, intent.Confidence)
	assert.NotEmpty(t, intent.Ambiguities)
}

func TestExtractInvalidIntentDefaults(t *testing.T) {
	response := `{"intent": "help", "confidence": 0.8, "time": {"key": null}}`

	e, _ := newTestExtractor(t, response, nil)
	intent := e.Extract(context.Background(), "what can you do")

	assert.Equal(t, models.IntentMetricQuery, intent.Type)
}

func TestExtractAgentStatusOverride(t *testing.T) {
	// Model misclassifies; the heuristic pass is authoritative.
	response := `{"intent": "metric_query", "confidence": 0.9, "time": {"key": null}}`

	e, _ := newTestExtractor(t, response, nil)
	intent := e.Extract(context.Background(), "what is Prityush doing?")

	assert.Equal(t, models.IntentAgentStatus, intent.Type)
	assert.Equal(t, "Prityush", intent.Agent.Name)
}

func TestExtractAgentCodes(t *testing.T) {
	response := `{"intent": "agent_status", "confidence": 0.9, "time": {"key": null}, "agent": {"name": null, "codes": ["PW56362"]}}`

	e, _ := newTestExtractor(t, response, nil)
	intent := e.Extract(context.Background(), "status of PW56362 and TK443322")

	assert.Equal(t, models.IntentAgentStatus, intent.Type)
	assert.Equal(t, []string{"PW56362", "TK443322"}, intent.Agent.Codes)
}

func TestExtractAgentSummaryFlags(t *testing.T) {
	response := `{"intent": "metric_query", "confidence": 0.9, "time": {"key": null}}`

	t.Run("sample scan", func(t *testing.T) {
		e, _ := newTestExtractor(t, response, nil)
		intent := e.Extract(context.Background(), "how many agents are active right now")

		assert.True(t, intent.Flag(models.FlagAgentSummary))
		assert.False(t, intent.Flag(models.FlagAgentSummaryFull))
	})

	t.Run("full scan", func(t *testing.T) {
		e, _ := newTestExtractor(t, response, nil)
		intent := e.Extract(context.Background(), "exact count of active agents please")

		assert.True(t, intent.Flag(models.FlagAgentSummary))
		assert.True(t, intent.Flag(models.FlagAgentSummaryFull))
	})
}

func TestExtractSummaryModeMapsToFlags(t *testing.T) {
	response := `{"intent": "agent_status", "confidence": 0.9, "time": {"key": null}, "agent": {"mode": "summary", "scan": "full", "status_filters": ["busy", "on call"]}}`

	e, _ := newTestExtractor(t, response, nil)
	intent := e.Extract(context.Background(), "summary please")

	assert.True(t, intent.Flag(models.FlagAgentSummary))
	assert.True(t, intent.Flag(models.FlagAgentSummaryFull))
	assert.Equal(t, []string{"BUSY", "ON CALL"}, intent.Agent.StatusFilters)
}

func TestExtractNegativeFilterPreserved(t *testing.T) {
	response := `{"intent": "metric_query", "confidence": 0.9, "metric": "leads", "time": {"key": null}, "filters": {"referralid": ["not 0"]}}`

	e, _ := newTestExtractor(t, response, nil)
	intent := e.Extract(context.Background(), "leads where referral id is not 0")

	assert.Equal(t, []string{"not 0"}, intent.Filters["referralid"])
}

func TestExtractGroupByDimensions(t *testing.T) {
	response := `{"intent": "metric_query", "confidence": 0.9, "metric": "revenue", "time": {"key": null}}`

	e, _ := newTestExtractor(t, response, nil)
	intent := e.Extract(context.Background(), "revenue group by city and insurer")

	assert.Equal(t, []string{"city", "insurername"}, intent.Dimensions)
}

func TestExtractWiseGranularity(t *testing.T) {
	response := `{"intent": "metric_query", "confidence": 0.9, "metric": "leads", "time": {"key": null}}`

	e, _ := newTestExtractor(t, response, nil)
	intent := e.Extract(context.Background(), "week wise leads")

	assert.Equal(t, "week", intent.Time.Granularity)
}

func TestExtractScalarFilterCoerced(t *testing.T) {
	response := `{"intent": "metric_query", "confidence": 0.9, "metric": "leads", "time": {"key": null}, "filters": {"mkt_category": "CRM", "_fuzzy_value": "acme brokers"}}`

	e, _ := newTestExtractor(t, response, nil)
	intent := e.Extract(context.Background(), "crm leads for acme brokers")

	assert.Equal(t, []string{"CRM"}, intent.Filters["mkt_category"])
	assert.Equal(t, "acme brokers", intent.FuzzyValue)
}

func TestExtractHintsReachPrompt(t *testing.T) {
	response := `{"intent": "metric_query", "confidence": 0.9, "time": {"key": null}}`

	e, mock := newTestExtractor(t, response, nil)
	e.Extract(context.Background(), "leads today", "revenue means netpremium, not grosspremium")

	assert.Contains(t, mock.LastPrompt, "revenue means netpremium")
}
