package sqlgen

import (
	"fmt"
	"regexp"
	"strings"

	libinjection "github.com/corazawaf/libinjection-go"
	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/schema"
)

var (
	negationPrefixRe = regexp.MustCompile(`(?i)^(not\s*|!=\s*|<>\s*)`)
	numericLiteralRe = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// buildFilterClauses renders one parenthesized OR-group per filter column.
// Value tokens support the grammar: plain value, "not|!=|<> value",
// "null", "not null". Numeric and string literals are partitioned so each
// gets correct quoting. Columns are processed in sorted order so output is
// deterministic.
func (b *Builder) buildFilterClauses(filters map[string][]string) []string {
	var clauses []string
	for _, col := range sortedKeys(filters) {
		// Unknown columns are dropped silently; anything in the registry is
		// allowed as a literal condition even if not categorical.
		if !schema.Exists(col) {
			continue
		}

		var (
			numeric, str       []string
			notNumeric, notStr []string
			notNullPresent     bool
			nullPresent        bool
		)

		for _, raw := range filters[col] {
			token := strings.TrimSpace(raw)
			switch strings.ToLower(token) {
			case "not null":
				notNullPresent = true
				continue
			case "null":
				nullPresent = true
				continue
			case "":
				continue
			}

			negative := negationPrefixRe.MatchString(token)
			value := strings.TrimSpace(negationPrefixRe.ReplaceAllString(token, ""))
			if value == "" {
				continue
			}
			if b.flaggedLiteral(col, value) {
				continue
			}

			if numericLiteralRe.MatchString(value) {
				if negative {
					notNumeric = append(notNumeric, value)
				} else {
					numeric = append(numeric, value)
				}
			} else {
				quoted := "'" + strings.ReplaceAll(value, "'", "''") + "'"
				if negative {
					notStr = append(notStr, quoted)
				} else {
					str = append(str, quoted)
				}
			}
		}

		var sub []string
		if len(numeric) > 0 {
			sub = append(sub, fmt.Sprintf("%s IN (%s)", col, strings.Join(numeric, ", ")))
		}
		if len(str) > 0 {
			sub = append(sub, fmt.Sprintf("%s IN (%s)", col, strings.Join(str, ", ")))
		}
		if len(notNumeric) > 0 {
			sub = append(sub, fmt.Sprintf("%s NOT IN (%s)", col, strings.Join(notNumeric, ", ")))
		}
		if len(notStr) > 0 {
			sub = append(sub, fmt.Sprintf("%s NOT IN (%s)", col, strings.Join(notStr, ", ")))
		}
		if notNullPresent {
			sub = append(sub, col+" IS NOT NULL")
		}
		if nullPresent {
			sub = append(sub, col+" IS NULL")
		}

		if len(sub) > 0 {
			clauses = append(clauses, "("+strings.Join(sub, " OR ")+")")
		}
	}
	return clauses
}

// flaggedLiteral screens a filter literal with libinjection before it is
// interpolated. A flagged token is dropped, not rejected wholesale, so one
// hostile value cannot suppress an otherwise valid query.
func (b *Builder) flaggedLiteral(col, value string) bool {
	isSQLi, fingerprint := libinjection.IsSQLi(value)
	if isSQLi {
		b.logger.Warn("dropping filter literal flagged as injection",
			zap.String("column", col),
			zap.String("fingerprint", string(fingerprint)))
	}
	return isSQLi
}
