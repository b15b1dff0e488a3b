package nlp

import (
	"regexp"
	"strings"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

// Phrases that mark an agent-status question even without the word "agent".
var agentTriggerPhrases = []string{
	"agent status", "what is my agent", "what's my agent", "is my agent",
	"is agent", "what is agent doing", "on call", "idle", "busy", "available",
}

var agentSummaryPhrases = []string{
	"agents active", "active agents", "how many agents",
	"agents online", "agents available",
}

var agentFullScanWords = []string{"exact", "full", "complete", "all agents"}

var (
	agentDoingRe    = regexp.MustCompile(`(?i)\bwhat(?:\s+is|'s)\s+([A-Za-z.\-\s]{2,40})\s+doing\b`)
	agentIsFreeRe   = regexp.MustCompile(`(?i)\bis\s+([A-Za-z.\-\s]{2,40})\s+(?:free|busy|available|on\s+call)\b`)
	agentStatusOfRe = regexp.MustCompile(`(?i)\bstatus\s+of\s+([A-Za-z.\-\s]{2,40})\b`)
	agentForOfRe    = regexp.MustCompile(`(?i)\b(?:for|of)\s+([A-Za-z0-9.\-\s]{2,40})`)
	agentAfterRe    = regexp.MustCompile(`(?i)\bagent\s+([A-Za-z0-9.\-\s]{2,40})`)

	forOfStopRe = regexp.MustCompile(`\b(in|on|at|etc)\b`)
	agentStopRe = regexp.MustCompile(`\b(status|doing|in|on|at|etc)\b`)

	agentCodeRe = regexp.MustCompile(`\b[A-Za-z]{1,6}\d{2,8}\b`)
)

// detectAgentStatus is the authoritative pass for agent-status questions:
// it can flip the intent regardless of what the model classified, and pulls
// the agent name and any explicit codes out of the raw text.
func (e *Extractor) detectAgentStatus(text string, intent *models.Intent) {
	t := strings.ToLower(text)

	for _, phrase := range agentTriggerPhrases {
		if strings.Contains(t, phrase) {
			intent.Type = models.IntentAgentStatus
			break
		}
	}

	var name string
	if m := agentDoingRe.FindStringSubmatch(text); m != nil {
		intent.Type = models.IntentAgentStatus
		name = strings.TrimSpace(m[1])
	}
	if name == "" {
		if m := agentIsFreeRe.FindStringSubmatch(text); m != nil {
			intent.Type = models.IntentAgentStatus
			name = strings.TrimSpace(m[1])
		}
	}
	if name == "" {
		if m := agentStatusOfRe.FindStringSubmatch(text); m != nil {
			intent.Type = models.IntentAgentStatus
			name = strings.TrimSpace(m[1])
		}
	}
	// Fallback captures that do not change the intent on their own.
	if name == "" {
		if m := agentForOfRe.FindStringSubmatch(text); m != nil {
			candidate := strings.TrimSpace(forOfStopRe.Split(m[1], 2)[0])
			if len(candidate) >= 2 {
				name = candidate
			}
		}
	}
	if name == "" {
		if m := agentAfterRe.FindStringSubmatch(text); m != nil {
			candidate := strings.TrimSpace(agentStopRe.Split(m[1], 2)[0])
			if len(candidate) >= 2 {
				name = candidate
			}
		}
	}
	if name != "" {
		intent.Agent.Name = name
	}

	for _, code := range agentCodeRe.FindAllString(text, -1) {
		if !containsString(intent.Agent.Codes, code) {
			intent.Agent.Codes = append(intent.Agent.Codes, code)
		}
	}
}

// detectAgentSummary spots "how many agents are active" style questions and
// raises the summary flags the conversation service routes on.
func (e *Extractor) detectAgentSummary(text string, intent *models.Intent) {
	t := strings.ToLower(text)

	summary := false
	for _, phrase := range agentSummaryPhrases {
		if strings.Contains(t, phrase) {
			summary = true
			break
		}
	}
	if !summary {
		return
	}

	intent.SetFlag(models.FlagAgentSummary, true)
	for _, word := range agentFullScanWords {
		if strings.Contains(t, word) {
			intent.SetFlag(models.FlagAgentSummaryFull, true)
			break
		}
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
