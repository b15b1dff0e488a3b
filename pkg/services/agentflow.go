package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/thinktank-analytics/thinktank-engine/pkg/agents"
	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

// maxDetailLines caps the per-agent detail block in a summary reply.
const maxDetailLines = 30

// handleAgentTurn runs a turn inside the agent workflow: either an activity
// summary or a single-agent lookup.
func (s *ConversationService) handleAgentTurn(ctx context.Context, text string) *Reply {
	intent := s.extract(ctx, text)
	lower := strings.ToLower(text)

	isSummary := intent.Agent.Mode == models.AgentModeSummary ||
		containsAny(lower, agentSummaryTriggers)
	if isSummary {
		return s.agentSummaryReply(ctx, intent, text)
	}
	return s.agentLookupReply(ctx, intent, text)
}

// agentLookupReply answers a single-agent status question. Unresolvable and
// ambiguous names come back as clarification prompts, never as a guess.
func (s *ConversationService) agentLookupReply(ctx context.Context, intent *models.Intent, text string) *Reply {
	name := agents.CleanName(intent.Agent.Name)
	if name == "" && len(intent.Agent.Codes) > 0 {
		name = intent.Agent.Codes[0]
	}
	if name == "" {
		return &Reply{
			Text:          "Please provide the agent name or code (e.g., 'PW32306').",
			Clarification: true,
		}
	}

	lookup := s.agents.LookupAgent(ctx, name, intent.Products)
	switch lookup.Outcome {
	case agents.LookupNotFound:
		if len(lookup.Suggestions) > 0 {
			return &Reply{
				Text: fmt.Sprintf("Couldn't find any agent for '%s'. Did you mean: %s?",
					name, strings.Join(lookup.Suggestions, ", ")),
				Clarification: true,
			}
		}
		return &Reply{
			Text: fmt.Sprintf(
				"Couldn't find any agent for '%s'. Try the exact CRM name or provide the agent code.", name),
			Clarification: true,
		}

	case agents.LookupAmbiguous:
		var lines []string
		for _, c := range lookup.Candidates {
			label := c.Name
			if label == "" {
				label = "Unknown"
			}
			lines = append(lines, fmt.Sprintf("- %s (code: %s)", label, c.Code))
		}
		return &Reply{
			Text: "Multiple agents match that name. Please specify the agent code from below:\n" +
				strings.Join(lines, "\n"),
			Clarification: true,
		}

	case agents.LookupNoStatus:
		label := lookup.Name
		if label == "" {
			label = name
		}
		return &Reply{Text: fmt.Sprintf("No live status found for agent '%s' (ID: %s).", label, lookup.Code)}
	}

	fields := intent.Agent.Fields
	if len(fields) == 0 {
		fields = agents.ParseFields(text)
	}
	var lines []string
	for _, key := range fields {
		if val := lookup.Record.Field(key); val != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", key, val))
		}
	}
	header := fmt.Sprintf("Agent live status (ID: %s)", lookup.Code)
	if len(lines) == 0 {
		return &Reply{Text: header + "\nNo additional details available."}
	}
	return &Reply{Text: header + "\n" + strings.Join(lines, "\n")}
}

// agentSummaryReply answers "agents active" style questions by polling the
// tracker across products.
func (s *ConversationService) agentSummaryReply(ctx context.Context, intent *models.Intent, text string) *Reply {
	statuses := intent.Agent.StatusFilters
	if len(statuses) == 0 {
		statuses = agents.ParseStatusFilters(text)
	}
	fields := intent.Agent.Fields
	if len(fields) == 0 {
		fields = agents.ParseFields(text)
	}

	req := agents.SummaryRequest{
		Products: intent.Products,
		Full:     intent.Agent.Scan == models.AgentScanFull || intent.Flag(models.FlagAgentSummaryFull),
		Codes:    intent.Agent.Codes,
		Fields:   fields,
		Statuses: statuses,
	}
	activities := s.agents.Summary(ctx, req)

	if len(activities) == 0 {
		return &Reply{Text: "Agent activity:\nNo agents found in recent activity."}
	}

	var summaryLines, detailLines []string
	for _, act := range activities {
		label := "All Products"
		if act.ProductID != agents.AllProductsKey {
			label = fmt.Sprintf("Product %d", act.ProductID)
		}
		suffix := ""
		if act.Sampled {
			suffix = " (sampled)"
		}
		if len(statuses) > 0 {
			sorted := append([]string(nil), statuses...)
			for i := range sorted {
				sorted[i] = strings.ToUpper(sorted[i])
			}
			sort.Strings(sorted)
			summaryLines = append(summaryLines, fmt.Sprintf("- %s: %d with status %s%s",
				label, act.Matched, strings.Join(sorted, "/"), suffix))
		} else {
			summaryLines = append(summaryLines, fmt.Sprintf("- %s: %d active now%s",
				label, act.Matched, suffix))
		}
		detailLines = append(detailLines, act.Details...)
	}

	out := "Agent activity:\n" + strings.Join(summaryLines, "\n")
	if len(detailLines) > 0 {
		if len(detailLines) > maxDetailLines {
			detailLines = detailLines[:maxDetailLines]
		}
		out += "\n\nActive agents:\n- " + strings.Join(detailLines, "\n- ")
	}
	return &Reply{Text: out}
}
