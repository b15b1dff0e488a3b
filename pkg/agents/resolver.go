package agents

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
	"github.com/thinktank-analytics/thinktank-engine/pkg/schema"
	"github.com/thinktank-analytics/thinktank-engine/pkg/textmatch"
)

// QueryRunner is the warehouse surface the resolver needs.
type QueryRunner interface {
	Run(ctx context.Context, sqlText string, useCache bool) (*models.Table, error)
}

// nameColumns are every column an agent's name can appear in. A person shows
// up under different columns depending on whether they sourced, own, or
// booked the lead.
var nameColumns = []string{
	"leadassignedagentname", "currentlyassigneduser", "leadreportingmanagername",
	"leadreportingmanagername2", "first_assigned_agent", "booking_agent",
	"booking_agent_manager", "booking_agent_manager2",
}

// AllProductsKey keys the unfiltered bucket in per-product agent-id maps.
const AllProductsKey = 0

const (
	suggestNamePool   = 400
	suggestTopK       = 5
	suggestCutoff     = 70
	recentOversample  = 3
	defaultPerProduct = 20
)

// Candidate is one possible agent match for a name query.
type Candidate struct {
	Code string
	Name string
}

// Resolver maps agent names to codes and enumerates agent ids, all through
// warehouse queries against the fact table.
type Resolver struct {
	runner QueryRunner
	logger *zap.Logger
}

// NewResolver creates a resolver over the given warehouse runner.
func NewResolver(runner QueryRunner, logger *zap.Logger) *Resolver {
	return &Resolver{runner: runner, logger: logger.Named("agent-resolver")}
}

// Candidates returns up to limit agents whose name matches, freshest
// activity first. Lookup failures yield an empty slice.
func (r *Resolver) Candidates(ctx context.Context, name string, products []int, limit int) []Candidate {
	safe := escapeName(name)
	if safe == "" {
		return nil
	}
	if limit < 1 {
		limit = 1
	}

	coalesced := "COALESCE(" + strings.Join(nameColumns, ", ") + ")"
	query := fmt.Sprintf(
		"SELECT lead_agentid AS code, %s AS name, MAX(COALESCE(bookingdate, leaddate)) AS last_dt "+
			"FROM %s "+
			"WHERE lead_agentid IS NOT NULL AND TRIM(lead_agentid) <> '' AND %s%s "+
			"GROUP BY lead_agentid, %s "+
			"ORDER BY last_dt DESC "+
			"LIMIT %d",
		coalesced, schema.Table, namePredicate(safe), productFilter(products), coalesced, limit)

	table, err := r.runner.Run(ctx, query, true)
	if err != nil {
		r.logger.Warn("agent candidate lookup failed", zap.String("name", name), zap.Error(err))
		return nil
	}

	var candidates []Candidate
	for _, row := range table.Rows {
		if len(row) < 2 {
			continue
		}
		code := strings.TrimSpace(stringCell(row[0]))
		if code == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			Code: code,
			Name: strings.TrimSpace(stringCell(row[1])),
		})
	}
	return candidates
}

// SuggestNames fuzzy-matches the query against recently active agent names
// for a did-you-mean prompt.
func (r *Resolver) SuggestNames(ctx context.Context, name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	var unions []string
	for _, col := range nameColumns {
		unions = append(unions, fmt.Sprintf(
			"SELECT %s AS name, MAX(COALESCE(bookingdate, leaddate)) AS last_dt FROM %s "+
				"WHERE %s IS NOT NULL AND TRIM(CAST(%s AS VARCHAR)) <> '' GROUP BY %s",
			col, schema.Table, col, col, col))
	}
	query := fmt.Sprintf(
		"SELECT name FROM ( %s ) t WHERE name IS NOT NULL GROUP BY name "+
			"ORDER BY MAX(last_dt) DESC LIMIT %d",
		strings.Join(unions, " UNION ALL "), suggestNamePool)

	table, err := r.runner.Run(ctx, query, true)
	if err != nil {
		r.logger.Warn("agent name suggestion failed", zap.String("name", name), zap.Error(err))
		return nil
	}

	var names []string
	for _, row := range table.Rows {
		if v := strings.TrimSpace(stringCell(row[0])); v != "" {
			names = append(names, v)
		}
	}
	return textmatch.TopMatches(name, names, suggestCutoff, suggestTopK)
}

// RecentAgentIDs returns recently active agent ids per product. Without a
// product filter, one oversampled bucket is returned under AllProductsKey.
func (r *Resolver) RecentAgentIDs(ctx context.Context, products []int, perProduct int) map[int][]string {
	if perProduct < 1 {
		perProduct = defaultPerProduct
	}
	results := make(map[int][]string)

	if len(products) == 0 {
		query := fmt.Sprintf(
			"SELECT lead_agentid, MAX(COALESCE(bookingdate, leaddate)) AS last_dt FROM %s "+
				"WHERE lead_agentid IS NOT NULL AND TRIM(lead_agentid) <> '' "+
				"GROUP BY lead_agentid ORDER BY last_dt DESC LIMIT %d",
			schema.Table, perProduct*recentOversample)
		results[AllProductsKey] = r.collectIDs(ctx, query, true)
		return results
	}

	for _, pid := range products {
		query := fmt.Sprintf(
			"SELECT lead_agentid, MAX(COALESCE(bookingdate, leaddate)) AS last_dt FROM %s "+
				"WHERE investmenttypeid = %d AND lead_agentid IS NOT NULL AND TRIM(lead_agentid) <> '' "+
				"GROUP BY lead_agentid ORDER BY last_dt DESC LIMIT %d",
			schema.Table, pid, perProduct)
		results[pid] = r.collectIDs(ctx, query, true)
	}
	return results
}

// AllAgentIDs enumerates every distinct agent id per product, uncached so a
// full scan reflects the current table. Slow by nature; only the explicit
// full-scan flag reaches here.
func (r *Resolver) AllAgentIDs(ctx context.Context, products []int) map[int][]string {
	results := make(map[int][]string)

	if len(products) == 0 {
		query := fmt.Sprintf(
			"SELECT DISTINCT lead_agentid FROM %s "+
				"WHERE lead_agentid IS NOT NULL AND TRIM(lead_agentid) <> ''",
			schema.Table)
		results[AllProductsKey] = r.collectIDs(ctx, query, false)
		return results
	}

	for _, pid := range products {
		query := fmt.Sprintf(
			"SELECT DISTINCT lead_agentid FROM %s "+
				"WHERE investmenttypeid = %d AND lead_agentid IS NOT NULL AND TRIM(lead_agentid) <> ''",
			schema.Table, pid)
		results[pid] = r.collectIDs(ctx, query, false)
	}
	return results
}

func (r *Resolver) collectIDs(ctx context.Context, query string, useCache bool) []string {
	table, err := r.runner.Run(ctx, query, useCache)
	if err != nil {
		r.logger.Warn("agent id listing failed", zap.Error(err))
		return []string{}
	}
	var ids []string
	for _, row := range table.Rows {
		if len(row) == 0 {
			continue
		}
		if id := strings.TrimSpace(stringCell(row[0])); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// namePredicate matches the name against every known agent-name column.
func namePredicate(safe string) string {
	clauses := make([]string, len(nameColumns))
	for i, col := range nameColumns {
		clauses[i] = fmt.Sprintf("LOWER(CAST(%s AS VARCHAR)) LIKE '%%%s%%'", col, safe)
	}
	return "( " + strings.Join(clauses, " OR ") + " )"
}

func productFilter(products []int) string {
	if len(products) == 0 {
		return ""
	}
	ids := make([]string, len(products))
	for i, pid := range products {
		ids[i] = fmt.Sprintf("%d", pid)
	}
	return " AND investmenttypeid IN (" + strings.Join(ids, ", ") + ")"
}

func escapeName(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(name, "'", "''")))
}

func stringCell(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
