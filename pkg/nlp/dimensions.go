package nlp

import (
	"regexp"
	"strings"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
	"github.com/thinktank-analytics/thinktank-engine/pkg/schema"
	"github.com/thinktank-analytics/thinktank-engine/pkg/textmatch"
)

// dimensionFuzzyCutoff is deliberately strict: a loose match here would
// group results by an unrelated column.
const dimensionFuzzyCutoff = 90

// Short tokens users actually say, mapped to real columns.
var dimensionAliases = map[string]string{
	"agent":   "leadassignedagentname",
	"product": "investmenttypeid",
	"city":    "city",
	"state":   "state",
	"insurer": "insurername",
	"status":  "booking_status",
}

var (
	wiseRe      = regexp.MustCompile(`([a-zA-Z\s&,-]+?)\s*(?:wise|-wise)\b`)
	groupByRe   = regexp.MustCompile(`group\s+by\s+([a-zA-Z\s,&/]+)`)
	tokenSplitRe = regexp.MustCompile(`\s*(?:,|and|&|/)\s*`)
)

// applyWiseGroupBy generalizes "<token> wise" and "group by <token>" into
// GROUP BY dimensions or a time granularity.
func (e *Extractor) applyWiseGroupBy(text string, intent *models.Intent) {
	t := strings.ToLower(text)

	var tokens []string
	for _, m := range wiseRe.FindAllStringSubmatch(t, -1) {
		tokens = append(tokens, splitTokens(m[1])...)
	}
	for _, m := range groupByRe.FindAllStringSubmatch(t, -1) {
		tokens = append(tokens, splitTokens(m[1])...)
	}
	if len(tokens) == 0 {
		return
	}

	candidates := schema.CategoricalColumns()

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		switch tok {
		case "month", "monthly", "month on month", "month-on-month", "mom":
			intent.Time.Granularity = "month"
			continue
		case "week", "weekly":
			intent.Time.Granularity = "week"
			continue
		}
		if mapped, ok := dimensionAliases[tok]; ok && schema.Exists(mapped) {
			appendDimension(intent, mapped)
			continue
		}
		if name, _, ok := textmatch.BestMatch(tok, candidates, dimensionFuzzyCutoff); ok {
			appendDimension(intent, name)
		}
	}
}

func splitTokens(captured string) []string {
	var out []string
	for _, part := range tokenSplitRe.Split(captured, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func appendDimension(intent *models.Intent, col string) {
	for _, d := range intent.Dimensions {
		if d == col {
			return
		}
	}
	intent.Dimensions = append(intent.Dimensions, col)
}
