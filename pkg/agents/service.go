package agents

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Lookup outcomes.
const (
	LookupFound     = "found"
	LookupNotFound  = "not_found"
	LookupAmbiguous = "ambiguous"
	LookupNoStatus  = "no_status"
)

// agentCodeRe matches a bare agent code like PW32306.
var agentCodeRe = regexp.MustCompile(`^[A-Za-z]{1,6}\d{2,8}$`)

// IsAgentCode reports whether the string is a literal agent code.
func IsAgentCode(s string) bool {
	return agentCodeRe.MatchString(s)
}

// Extraction sometimes captures trailing location fragments ("Sahil in
// Mumbai") or a bare time phrase as the agent name.
var trailingLocationRe = regexp.MustCompile(`(?i)\bin\s+[A-Za-z\s]+$`)

var timeTokens = map[string]struct{}{
	"today": {}, "yesterday": {}, "this week": {}, "this month": {},
}

// CleanName strips extraction artifacts from a captured agent name. Returns
// "" when nothing usable remains.
func CleanName(name string) string {
	name = strings.TrimSpace(trailingLocationRe.ReplaceAllString(name, ""))
	if _, isTime := timeTokens[strings.ToLower(name)]; isTime {
		return ""
	}
	return name
}

// Lookup is the outcome of a single-agent status request.
type Lookup struct {
	Outcome     string
	Code        string
	Name        string
	Record      StatusRecord
	Candidates  []Candidate // set when Outcome is ambiguous
	Suggestions []string    // set when Outcome is not_found
}

// ProductActivity is one product bucket of an activity summary.
type ProductActivity struct {
	ProductID int // AllProductsKey when unfiltered
	Checked   int
	Matched   int
	Sampled   bool
	Details   []string
}

// SummaryRequest tunes an activity scan.
type SummaryRequest struct {
	Products []int
	Full     bool     // enumerate every agent instead of a recent sample
	Codes    []string // explicit agent codes override enumeration
	Fields   []string // tracker fields to show per agent; default set if empty
	Statuses []string // statuses to count; empty means the default active set
}

// sampleLimit caps how many agents a sampled scan polls per product.
const sampleLimit = 15

// Service runs the agent-status flows on top of the resolver and tracker.
type Service struct {
	client   StatusClient
	resolver *Resolver
	logger   *zap.Logger
}

// NewService creates the agent-status service.
func NewService(client StatusClient, resolver *Resolver, logger *zap.Logger) *Service {
	return &Service{client: client, resolver: resolver, logger: logger.Named("agents")}
}

// LookupAgent resolves a name or code to a single agent and fetches its live
// status. No-match and multi-match cases come back as structured outcomes so
// the caller can ask a clarifying question instead of guessing.
func (s *Service) LookupAgent(ctx context.Context, name string, products []int) *Lookup {
	if IsAgentCode(name) {
		return s.fetchFor(ctx, name, "")
	}

	candidates := s.resolver.Candidates(ctx, name, products, 5)
	if len(candidates) == 0 {
		return &Lookup{
			Outcome:     LookupNotFound,
			Suggestions: s.resolver.SuggestNames(ctx, name),
		}
	}
	if len(candidates) > 1 {
		return &Lookup{Outcome: LookupAmbiguous, Candidates: candidates}
	}
	return s.fetchFor(ctx, candidates[0].Code, candidates[0].Name)
}

func (s *Service) fetchFor(ctx context.Context, code, name string) *Lookup {
	records := s.client.FetchStatus(ctx, code)
	if len(records) == 0 {
		return &Lookup{Outcome: LookupNoStatus, Code: code, Name: name}
	}
	return &Lookup{Outcome: LookupFound, Code: code, Name: name, Record: records[0]}
}

// Summary polls agent status per product and counts matches. With explicit
// status filters only those statuses count; otherwise the default active set
// counts and per-agent detail lines are collected. One failed poll is one
// unknown agent, never a failed summary.
func (s *Service) Summary(ctx context.Context, req SummaryRequest) []ProductActivity {
	var groups map[int][]string
	if req.Full {
		groups = s.resolver.AllAgentIDs(ctx, req.Products)
	} else {
		groups = s.resolver.RecentAgentIDs(ctx, req.Products, sampleLimit)
	}

	fields := req.Fields
	if len(fields) == 0 {
		fields = defaultFields
	}

	wanted := make(map[string]struct{}, len(req.Statuses))
	for _, st := range req.Statuses {
		wanted[strings.ToUpper(st)] = struct{}{}
	}

	pids := make([]int, 0, len(groups))
	for pid := range groups {
		pids = append(pids, pid)
	}
	sort.Ints(pids)

	var activities []ProductActivity
	for _, pid := range pids {
		checkIDs := req.Codes
		if len(checkIDs) == 0 {
			checkIDs = groups[pid]
			if !req.Full && len(checkIDs) > sampleLimit {
				checkIDs = checkIDs[:sampleLimit]
			}
		}

		activity := ProductActivity{
			ProductID: pid,
			Checked:   len(checkIDs),
			Sampled:   !req.Full && len(req.Codes) == 0,
		}
		s.logger.Debug("agent summary scan",
			zap.Int("product", pid), zap.Int("agents", len(checkIDs)))

		for _, aid := range checkIDs {
			records := s.client.FetchStatus(ctx, aid)
			if len(records) == 0 {
				continue
			}
			rec := records[0]
			status := rec.Status()

			if len(wanted) > 0 {
				if _, ok := wanted[status]; ok {
					activity.Matched++
				}
				continue
			}
			if !ActiveStatus(status) {
				continue
			}
			activity.Matched++
			if line := detailLine(rec, fields); line != "" {
				activity.Details = append(activity.Details, line)
			}
		}
		activities = append(activities, activity)
	}
	return activities
}

// detailLine renders one agent's requested fields, name first with the code
// folded in.
func detailLine(rec StatusRecord, fields []string) string {
	var parts []string
	for _, key := range fields {
		val := rec.Field(key)
		if val == "" {
			continue
		}
		switch {
		case key == "AgentName" && rec.Field("AgentCode") != "":
			parts = append(parts, val+" ("+rec.Field("AgentCode")+")")
		case key == "AgentCode":
			// folded into the name part
		default:
			parts = append(parts, key+": "+val)
		}
	}
	return strings.Join(parts, " | ")
}
