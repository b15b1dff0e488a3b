package models

// IntentType classifies what a user turn is asking for.
type IntentType string

const (
	IntentMetricQuery   IntentType = "metric_query"
	IntentFeedback      IntentType = "feedback"
	IntentConversation  IntentType = "conversation"
	IntentClarification IntentType = "clarification"
	IntentAgentStatus   IntentType = "agent_status"
)

// ValidIntent reports whether t is one of the supported intent classes.
func ValidIntent(t IntentType) bool {
	switch t {
	case IntentMetricQuery, IntentFeedback, IntentConversation,
		IntentClarification, IntentAgentStatus:
		return true
	}
	return false
}

// Flag keys carried on Intent.Flags.
const (
	FlagOnlineOnly       = "online_only"
	FlagAgentSummary     = "agent_active_summary"
	FlagAgentSummaryFull = "agent_active_summary_full"
)

// TimeSpec is the normalized time portion of an intent. An explicit
// StartDate/EndDate pair always takes precedence over the named Key.
type TimeSpec struct {
	Key         string `json:"key,omitempty"`        // today, yesterday, this week, ...
	StartDate   string `json:"start_date,omitempty"` // ISO date, paired with EndDate
	EndDate     string `json:"end_date,omitempty"`
	Granularity string `json:"granularity,omitempty"` // month or week
}

// HasRange reports whether an explicit date range is set.
func (t TimeSpec) HasRange() bool {
	return t.StartDate != "" && t.EndDate != ""
}

// Agent scan modes.
const (
	AgentModeSingle  = "single"
	AgentModeSummary = "summary"
	AgentScanSample  = "sample"
	AgentScanFull    = "full"
)

// AgentQuery carries the agent-status sub-intent.
type AgentQuery struct {
	Name          string   `json:"name,omitempty"`
	Codes         []string `json:"codes,omitempty"`
	Mode          string   `json:"mode,omitempty"` // single or summary
	StatusFilters []string `json:"status_filters,omitempty"`
	Fields        []string `json:"fields,omitempty"`
	Scan          string   `json:"scan,omitempty"` // sample or full
}

// Intent is the structured record the entity extractor produces and the SQL
// builder consumes. Products always hold canonical ids; Dimensions and
// Filters keys are validated against the schema registry before they reach
// SQL.
type Intent struct {
	Type        IntentType          `json:"intent"`
	Confidence  float64             `json:"confidence"`
	Products    []int               `json:"products,omitempty"`
	Metric      string              `json:"metric,omitempty"`
	Metrics     []string            `json:"metrics,omitempty"`
	Time        TimeSpec            `json:"time"`
	Dimensions  []string            `json:"dimensions,omitempty"`
	Filters     map[string][]string `json:"filters,omitempty"`
	FuzzyValue  string              `json:"fuzzy_value,omitempty"`
	Flags       map[string]bool     `json:"flags,omitempty"`
	Ambiguities []string            `json:"ambiguities,omitempty"`
	Explanation string              `json:"explanation,omitempty"`
	Agent       AgentQuery          `json:"agent"`
}

// Flag reports whether the named flag is set.
func (i *Intent) Flag(name string) bool {
	return i.Flags != nil && i.Flags[name]
}

// SetFlag sets the named flag, allocating the map if needed.
func (i *Intent) SetFlag(name string, v bool) {
	if i.Flags == nil {
		i.Flags = make(map[string]bool)
	}
	i.Flags[name] = v
}
