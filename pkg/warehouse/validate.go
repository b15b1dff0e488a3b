// Package warehouse executes generated SQL against the analytics warehouse
// behind a validation gate and a result cache.
package warehouse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/thinktank-analytics/thinktank-engine/pkg/apperrors"
	"github.com/thinktank-analytics/thinktank-engine/pkg/schema"
)

// Statement keywords that must never appear in generated analytics SQL.
var forbiddenKeywords = []string{
	"DROP", "DELETE", "INSERT", "UPDATE", "ALTER", "CREATE", "TRUNCATE",
}

var forbiddenRe = regexp.MustCompile(`\b(` + strings.Join(forbiddenKeywords, "|") + `)\b`)

// ValidateQuery normalizes and validates a query before execution. All
// checks must pass: non-empty, single statement, SELECT-only, no mutating
// keyword anywhere, and it must read the analytics fact table.
// Returns the normalized SQL (trailing semicolon stripped).
func ValidateQuery(sqlText string) (string, error) {
	normalized := stripTrailingSemicolon(strings.TrimSpace(sqlText))
	if normalized == "" {
		return "", apperrors.ErrEmptySQL
	}

	if hasSemicolonOutsideStrings(normalized) {
		return "", fmt.Errorf("%w: multiple statements are not allowed", apperrors.ErrUnsafeSQL)
	}

	upper := strings.ToUpper(normalized)
	if !strings.HasPrefix(upper, "SELECT") {
		return "", fmt.Errorf("%w: only SELECT statements are allowed", apperrors.ErrUnsafeSQL)
	}

	if m := forbiddenRe.FindString(upper); m != "" {
		return "", fmt.Errorf("%w: forbidden keyword %s", apperrors.ErrUnsafeSQL, m)
	}

	if !strings.Contains(normalized, schema.Table) {
		return "", fmt.Errorf("%w: query must read %s", apperrors.ErrUnsafeSQL, schema.Table)
	}

	return normalized, nil
}

// hasSemicolonOutsideStrings reports whether any semicolon appears outside
// of single- or double-quoted literals. After normalization a remaining
// semicolon means a second statement.
func hasSemicolonOutsideStrings(sqlQuery string) bool {
	const (
		stateNormal = iota
		stateSingleQuote
		stateDoubleQuote
	)

	state := stateNormal
	prevChar := rune(0)

	for _, char := range sqlQuery {
		switch state {
		case stateNormal:
			switch char {
			case ';':
				return true
			case '\'':
				state = stateSingleQuote
			case '"':
				state = stateDoubleQuote
			}
		case stateSingleQuote:
			// Both backslash escape (\') and SQL doubled quote ('') end up
			// handled: a doubled quote exits and immediately re-enters.
			if char == '\'' && prevChar != '\\' {
				state = stateNormal
			}
		case stateDoubleQuote:
			if char == '"' && prevChar != '\\' {
				state = stateNormal
			}
		}
		prevChar = char
	}

	return false
}

func stripTrailingSemicolon(sqlQuery string) string {
	sqlQuery = strings.TrimRight(sqlQuery, " \t\n\r")
	if strings.HasSuffix(sqlQuery, ";") {
		sqlQuery = strings.TrimRight(strings.TrimSuffix(sqlQuery, ";"), " \t\n\r")
	}
	return sqlQuery
}
