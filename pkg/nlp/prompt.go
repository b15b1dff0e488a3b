package nlp

import (
	"fmt"
	"strings"

	"github.com/thinktank-analytics/thinktank-engine/pkg/schema"
)

const systemMessage = "You are a precise, literal information extractor for an insurance analytics bot. Analyze the user message and extract structured fields. Do NOT generate SQL."

// maxProductLines caps the product context to keep the prompt short.
const maxProductLines = 40

func (e *Extractor) buildPrompt(text string, hints []string) string {
	var products strings.Builder
	for i, id := range e.resolver.IDs() {
		if i >= maxProductLines {
			break
		}
		fmt.Fprintf(&products, "- ID %d: %s\n", id, e.resolver.PrimaryAlias(id))
	}

	var hintBlock string
	if len(hints) > 0 {
		hintBlock = "\nApproved business rules from prior expert review (follow them when relevant):\n- " +
			strings.Join(hints, "\n- ") + "\n"
	}

	return fmt.Sprintf(`User Message: %q

Known Insurance Products (id: alias):
%s%s
Rules:
- Be LITERAL. If the user says "fire insurance", return ONLY product id 5.
- Do NOT add related or variant products unless explicitly named.
- If no product is named, return an empty products list.
- Infer the metric only if clearly stated (supported metrics: %s).
- Normalize time into a key like: today, yesterday, this week, last week, this month, last month.
- CRITICAL: If the user provides a direct column condition (e.g., "where referral id is not null", "referralid is 0", "status is not 'Closed'"), extract it LITERALLY. PRESERVE negative words like "not", "isn't", "!=". Example: "referral id is not 0" should be {"referralid": ["not 0"]}.
- If user indicates online bookings, set flags.online_only = true.
- If anything is ambiguous, include a short note in ambiguities.
- If the user asks for multiple metrics, put them in metrics []. If only one, set metric.
- Normalize 'product wise' to dimension "investmenttypeid".
- FINAL CHECK: It is better to return fewer extracted fields than to return incorrect or hallucinated fields. If you are not confident, leave the field empty.

Special handling:
- If the user asks about agent status (e.g., "what is my agent doing", "agent status", "is <agent name> free/on call"), set intent to agent_status.
- For single agent: fill agent.name and/or agent.codes.
- For summaries like "agents active now": set agent.mode="summary". If user asks for exact/full, set agent.scan="full" else "sample".
- If user mentions statuses (pause, busy, idle, available, ready, on call, ringing), set agent.status_filters accordingly.
- If user asks for specific fields from the agent record (AgentName, AgentCode, Status, ConnectedDials, TotalTalkTime, LastUpdatedOn, etc.), list them in agent.fields.

If the user mentions a company/brand or category value but not a clear column, put it in filters._fuzzy_value.
Output strictly as JSON:
{
  "intent": "metric_query|feedback|conversation|clarification|agent_status",
  "confidence": 0.95,
  "products": [5],
  "metric": "leads|bookings|revenue|premium|brokerage|conversion_rate|avg_premium|sum_insured|lives_covered|null",
  "metrics": [],
  "time": { "key": "today|yesterday|this week|last week|this month|last month|null" },
  "dimensions": ["leadassignedagentname"],
  "filters": { "mkt_category": ["CRM"], "_fuzzy_value": null },
  "flags": { "online_only": false },
  "ambiguities": ["..."],
  "explanation": "...",
  "agent": {
    "name": null,
    "codes": [],
    "mode": null,
    "status_filters": [],
    "fields": [],
    "scan": null
  }
}`, text, products.String(), hintBlock, strings.Join(schema.MetricKeys(), ", "))
}
