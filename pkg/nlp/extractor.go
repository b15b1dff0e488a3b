// Package nlp turns a free-text user message into a structured Intent. The
// model output is treated as an untrusted draft: every field that reaches
// SQL is re-validated or re-derived deterministically afterwards.
package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/jsonutil"
	"github.com/thinktank-analytics/thinktank-engine/pkg/llm"
	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
	"github.com/thinktank-analytics/thinktank-engine/pkg/products"
)

const (
	extractTemperature = 0.0
	defaultConfidence  = 0.7
	fallbackConfidence = 0.3
)

// Extractor drives the LLM draft parse and the deterministic
// post-processing passes.
type Extractor struct {
	client   llm.LLMClient
	resolver *products.Resolver
	logger   *zap.Logger
	now      func() time.Time
}

// NewExtractor creates an extractor over the given LLM client.
func NewExtractor(client llm.LLMClient, resolver *products.Resolver, logger *zap.Logger) *Extractor {
	return &Extractor{
		client:   client,
		resolver: resolver,
		logger:   logger.Named("nlp"),
		now:      time.Now,
	}
}

// Extract parses a user message into an Intent. It is a total function:
// model or parse failures degrade to a low-confidence metric_query carrying
// an ambiguity note, never an error. Optional hints are approved business
// rules injected into the prompt.
func (e *Extractor) Extract(ctx context.Context, text string, hints ...string) *models.Intent {
	raw, err := e.client.GenerateResponse(ctx, e.buildPrompt(text, hints), systemMessage, extractTemperature)
	if err != nil {
		e.logger.Warn("extraction model call failed", zap.Error(err))
		return e.fallback(err)
	}

	intent, err := parseDraft(raw)
	if err != nil {
		e.logger.Warn("extraction draft unparseable", zap.Error(err))
		return e.fallback(err)
	}

	e.validateProducts(text, intent)
	intent.Time = e.augmentTime(text, intent.Time)
	e.detectAgentStatus(text, intent)
	e.detectAgentSummary(text, intent)
	e.applyWiseGroupBy(text, intent)

	for i, s := range intent.Agent.StatusFilters {
		intent.Agent.StatusFilters[i] = strings.ToUpper(s)
	}
	if intent.Agent.Mode == models.AgentModeSummary {
		intent.SetFlag(models.FlagAgentSummary, true)
	}
	if intent.Agent.Scan == models.AgentScanFull {
		intent.SetFlag(models.FlagAgentSummaryFull, true)
	}

	return intent
}

func (e *Extractor) fallback(cause error) *models.Intent {
	return &models.Intent{
		Type:        models.IntentMetricQuery,
		Confidence:  fallbackConfidence,
		Filters:     map[string][]string{},
		Flags:       map[string]bool{models.FlagOnlineOnly: false},
		Ambiguities: []string{fmt.Sprintf("extractor error: %v", cause)},
		Explanation: "fallback extraction after model error",
	}
}

// validateProducts enforces the literal-mention rule: an id proposed by the
// model survives only when one of its aliases occurs in the text with word
// boundaries. The deterministic resolver result is unioned in so short
// aliases the verbatim check skips (e.g. "wc") still resolve. Explicit
// "all products" phrasing clears the filter entirely.
func (e *Extractor) validateProducts(text string, intent *models.Intent) {
	if products.AllProductsRequested(text) {
		intent.Products = nil
		return
	}

	keep := make(map[int]struct{})
	for _, id := range intent.Products {
		if e.resolver.ContainsAlias(text, id) {
			keep[id] = struct{}{}
		}
	}
	for _, id := range e.resolver.Resolve(text) {
		keep[id] = struct{}{}
	}

	ids := make([]int, 0, len(keep))
	for id := range keep {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	intent.Products = ids
}

type draftTime struct {
	Key         json.RawMessage `json:"key"`
	StartDate   json.RawMessage `json:"start_date"`
	EndDate     json.RawMessage `json:"end_date"`
	Granularity json.RawMessage `json:"granularity"`
}

type draftAgent struct {
	Name          json.RawMessage `json:"name"`
	Codes         json.RawMessage `json:"codes"`
	Mode          json.RawMessage `json:"mode"`
	StatusFilters json.RawMessage `json:"status_filters"`
	Fields        json.RawMessage `json:"fields"`
	Scan          json.RawMessage `json:"scan"`
}

type draft struct {
	Intent      string                     `json:"intent"`
	Confidence  *float64                   `json:"confidence"`
	Products    json.RawMessage            `json:"products"`
	Metric      json.RawMessage            `json:"metric"`
	Metrics     json.RawMessage            `json:"metrics"`
	Time        draftTime                  `json:"time"`
	Dimensions  json.RawMessage            `json:"dimensions"`
	Filters     map[string]json.RawMessage `json:"filters"`
	Flags       map[string]bool            `json:"flags"`
	Ambiguities json.RawMessage            `json:"ambiguities"`
	Explanation string                     `json:"explanation"`
	Agent       draftAgent                 `json:"agent"`
}

// parseDraft decodes the model's JSON tolerantly and coerces it into the
// canonical Intent shape with defaults filled in.
func parseDraft(raw string) (*models.Intent, error) {
	payload := jsonutil.StripFences(raw)

	var d draft
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		return nil, fmt.Errorf("decode extraction draft: %w", err)
	}

	intent := &models.Intent{
		Type:        models.IntentType(d.Intent),
		Confidence:  defaultConfidence,
		Products:    jsonutil.FlexibleInts(d.Products),
		Metric:      nullableString(d.Metric),
		Metrics:     jsonutil.FlexibleStrings(d.Metrics),
		Dimensions:  jsonutil.FlexibleStrings(d.Dimensions),
		Filters:     map[string][]string{},
		Flags:       map[string]bool{models.FlagOnlineOnly: false},
		Ambiguities: jsonutil.FlexibleStrings(d.Ambiguities),
		Explanation: d.Explanation,
		Time: models.TimeSpec{
			Key:         nullableString(d.Time.Key),
			StartDate:   jsonutil.FlexibleString(d.Time.StartDate),
			EndDate:     jsonutil.FlexibleString(d.Time.EndDate),
			Granularity: jsonutil.FlexibleString(d.Time.Granularity),
		},
		Agent: models.AgentQuery{
			Name:          jsonutil.FlexibleString(d.Agent.Name),
			Codes:         jsonutil.FlexibleStrings(d.Agent.Codes),
			Mode:          jsonutil.FlexibleString(d.Agent.Mode),
			StatusFilters: jsonutil.FlexibleStrings(d.Agent.StatusFilters),
			Fields:        jsonutil.FlexibleStrings(d.Agent.Fields),
			Scan:          jsonutil.FlexibleString(d.Agent.Scan),
		},
	}

	if !models.ValidIntent(intent.Type) {
		intent.Type = models.IntentMetricQuery
	}
	if d.Confidence != nil {
		intent.Confidence = *d.Confidence
	}
	sort.Ints(intent.Products)

	for key, val := range d.Filters {
		if key == "_fuzzy_value" {
			intent.FuzzyValue = jsonutil.FlexibleString(val)
			continue
		}
		if vals := jsonutil.FlexibleStrings(val); len(vals) > 0 {
			intent.Filters[key] = vals
		} else if s := jsonutil.FlexibleString(val); s != "" {
			intent.Filters[key] = []string{s}
		}
	}
	for flag, set := range d.Flags {
		intent.Flags[flag] = set
	}

	return intent, nil
}

// nullableString is FlexibleString that also treats the literal string
// "null" as absent, which models emit when echoing the template.
func nullableString(raw json.RawMessage) string {
	s := jsonutil.FlexibleString(raw)
	if strings.EqualFold(s, "null") {
		return ""
	}
	return s
}
