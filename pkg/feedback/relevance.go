package feedback

import (
	"fmt"
	"strings"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

// minKeywordLen filters out stopword-sized tokens before matching.
const minKeywordLen = 4

// RelevantLogic selects approved entries whose original query or logic
// statement shares a keyword with the incoming question, formatted as
// prompt-ready rule lines. Matching is naive keyword overlap; entries err
// on the side of inclusion since irrelevant rules cost prompt tokens, not
// correctness.
func RelevantLogic(entries []models.ApprovedLogic, query string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if len(word) >= minKeywordLen {
			keywords = append(keywords, word)
		}
	}
	if len(keywords) == 0 {
		return nil
	}

	var rules []string
	for _, entry := range entries {
		haystack := strings.ToLower(entry.OriginalQuery + " " + entry.LogicStatement)
		for _, word := range keywords {
			if strings.Contains(haystack, word) {
				rules = append(rules, fmt.Sprintf("When asked %q: %s",
					entry.OriginalQuery, entry.LogicStatement))
				break
			}
		}
	}
	return rules
}
