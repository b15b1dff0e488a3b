// Package sqlgen deterministically compiles a validated Intent into a
// single-table Presto SELECT. The model never writes SQL; everything here is
// assembled from fixed catalog expressions and validated identifiers.
package sqlgen

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
	"github.com/thinktank-analytics/thinktank-engine/pkg/products"
	"github.com/thinktank-analytics/thinktank-engine/pkg/schema"
)

// BuildResult carries the compiled SQL, or just the intent type for
// non-metric intents that short-circuit without SQL.
type BuildResult struct {
	Intent      models.IntentType
	SQL         string
	Explanation string
}

// Builder compiles intents. effectiveColumns supplies the candidate columns
// for the fuzzy LIKE fallback (the distinct-value cache's whitelist plus
// defaults); it may be nil.
type Builder struct {
	resolver         *products.Resolver
	effectiveColumns func() []string
	logger           *zap.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(resolver *products.Resolver, effectiveColumns func() []string, logger *zap.Logger) *Builder {
	return &Builder{
		resolver:         resolver,
		effectiveColumns: effectiveColumns,
		logger:           logger.Named("sqlgen"),
	}
}

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Build compiles the intent. Non-metric intents return a result with no SQL.
func (b *Builder) Build(intent *models.Intent) BuildResult {
	if intent.Type != models.IntentMetricQuery {
		return BuildResult{Intent: intent.Type}
	}

	// Metric resolution: an explicit metrics list wins over the single key,
	// unknown keys fall back to leads.
	metricKey := intent.Metric
	var metricSelects []string
	if len(intent.Metrics) > 0 {
		for _, m := range intent.Metrics {
			if expr, ok := schema.MetricExpression(m); ok {
				metricSelects = append(metricSelects, expr)
			}
		}
		if len(metricSelects) == 0 {
			expr, _ := schema.MetricExpression(schema.MetricLeads)
			metricSelects = []string{expr}
		}
	} else {
		expr, ok := schema.MetricExpression(metricKey)
		if !ok {
			metricKey = schema.MetricLeads
			expr, _ = schema.MetricExpression(schema.MetricLeads)
		}
		metricSelects = []string{expr}
	}

	// Bookings are filed by booking date; everything else by lead date.
	dateColumn := schema.DefaultDateColumn
	if metricKey == schema.MetricBookings || containsMetric(intent.Metrics, schema.MetricBookings) {
		dateColumn = schema.BookingDateColumn
	}

	var where []string

	if len(intent.Products) > 0 {
		ids := make([]string, len(intent.Products))
		for i, id := range intent.Products {
			ids[i] = fmt.Sprintf("%d", id)
		}
		where = append(where, fmt.Sprintf("investmenttypeid IN (%s)", strings.Join(ids, ", ")))
	}

	// Explicit date range takes precedence over a named time pattern.
	if isoDateRe.MatchString(intent.Time.StartDate) && isoDateRe.MatchString(intent.Time.EndDate) {
		where = append(where,
			fmt.Sprintf("DATE(%s) >= DATE '%s'", dateColumn, intent.Time.StartDate),
			fmt.Sprintf("DATE(%s) <= DATE '%s'", dateColumn, intent.Time.EndDate))
	} else if pattern, ok := schema.TimePattern(intent.Time.Key); ok {
		where = append(where, strings.ReplaceAll(pattern, schema.DefaultDateColumn, dateColumn))
	}

	if intent.Flag(models.FlagOnlineOnly) {
		where = append(where, "paymentstatus = 300")
	}

	where = append(where, b.buildFilterClauses(intent.Filters)...)

	// Fuzzy fallback only when no explicit filter claimed the value.
	if intent.FuzzyValue != "" && len(intent.Filters) == 0 {
		if clause := b.buildFuzzyClause(intent.FuzzyValue); clause != "" {
			where = append(where, clause)
		}
	}

	selectParts := metricSelects

	var dimensions []string
	for _, d := range intent.Dimensions {
		if schema.ValidDimension(d) {
			dimensions = append(dimensions, d)
		}
	}
	var groupBy []string
	if len(dimensions) > 0 {
		selectParts = append(append([]string{}, dimensions...), metricSelects...)
		groupBy = append(groupBy, dimensions...)
	}

	if g := intent.Time.Granularity; g == "month" || g == "week" {
		bucketExpr := fmt.Sprintf("DATE_TRUNC('%s', %s)", g, dateColumn)
		if !containsAlias(selectParts, g) {
			selectParts = append([]string{fmt.Sprintf("%s AS %s", bucketExpr, g)}, selectParts...)
		}
		if !containsString(groupBy, bucketExpr) {
			groupBy = append(groupBy, bucketExpr)
		}
	}

	// Product-wise results carry a readable product name next to the id.
	if containsString(dimensions, "investmenttypeid") {
		caseExpr := b.productNameCase()
		if caseExpr != "" {
			kept := make([]string, 0, len(selectParts))
			for _, p := range selectParts {
				if p != "investmenttypeid" {
					kept = append(kept, p)
				}
			}
			selectParts = append([]string{"investmenttypeid", caseExpr + " AS product_name"}, kept...)
			if !containsString(groupBy, caseExpr) {
				groupBy = append(groupBy, caseExpr)
			}
		}
	}

	sql := fmt.Sprintf("SELECT %s FROM %s", strings.Join(selectParts, ", "), schema.Table)
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	if len(groupBy) > 0 {
		sql += " GROUP BY " + strings.Join(groupBy, ", ")
	}

	return BuildResult{
		Intent:      models.IntentMetricQuery,
		SQL:         sql,
		Explanation: buildExplanation(metricKey, intent, dimensions),
	}
}

// productNameCase builds the CASE projection mapping product ids to display
// names, in ascending id order so output is stable.
func (b *Builder) productNameCase() string {
	names := b.resolver.IDNames()
	ids := make([]int, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var whens []string
	for _, id := range ids {
		name := strings.ReplaceAll(names[id], "'", "''")
		whens = append(whens, fmt.Sprintf("WHEN investmenttypeid = %d THEN '%s'", id, name))
	}
	if len(whens) == 0 {
		return ""
	}
	return "CASE " + strings.Join(whens, " ") + " END"
}

// buildFuzzyClause ORs a LIKE probe across every string-typed effective
// column. Deliberately uncapped; wide whitelists make wide ORs.
func (b *Builder) buildFuzzyClause(value string) string {
	var cols []string
	if b.effectiveColumns != nil {
		cols = b.effectiveColumns()
	}
	if schema.Exists("leadassignedagentname") && !containsString(cols, "leadassignedagentname") {
		cols = append(cols, "leadassignedagentname")
	}

	lowered := strings.ReplaceAll(strings.ToLower(value), "'", "''")
	var likes []string
	for _, c := range cols {
		if !schema.StringTyped(c) {
			continue
		}
		likes = append(likes, fmt.Sprintf("LOWER(CAST(%s AS VARCHAR)) LIKE '%%%s%%'", c, lowered))
	}
	if len(likes) == 0 {
		return ""
	}
	b.logger.Debug("fuzzy filter fan-out", zap.Int("columns", len(likes)))
	return "( " + strings.Join(likes, " OR ") + " )"
}

func buildExplanation(metricKey string, intent *models.Intent, dimensions []string) string {
	var parts []string
	if len(intent.Metrics) > 0 {
		parts = append(parts, fmt.Sprintf("Metric: %s", strings.Join(intent.Metrics, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("Metric: %s", metricKey))
	}
	if len(intent.Products) > 0 {
		parts = append(parts, fmt.Sprintf("Products: %v", intent.Products))
	}
	if intent.Time.Key != "" {
		parts = append(parts, fmt.Sprintf("Time: %s", intent.Time.Key))
	}
	if len(dimensions) > 0 {
		parts = append(parts, fmt.Sprintf("Grouped by: %s", strings.Join(dimensions, ", ")))
	}
	for _, col := range sortedKeys(intent.Filters) {
		parts = append(parts, fmt.Sprintf("Filter %s in %v", col, intent.Filters[col]))
	}
	if intent.Flag(models.FlagOnlineOnly) {
		parts = append(parts, "Online payments only (paymentstatus=300)")
	}
	return strings.Join(parts, "; ")
}

func containsMetric(metrics []string, key string) bool {
	return containsString(metrics, key)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// containsAlias reports whether any select part already carries the bucket
// alias, so a user-requested month dimension is not duplicated.
func containsAlias(parts []string, alias string) bool {
	needle := " AS " + alias
	for _, p := range parts {
		if strings.Contains(p, needle) {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
