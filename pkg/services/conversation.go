// Package services wires extraction, SQL building, execution, masking, and
// the agent-status flows into one conversational turn handler. Every turn
// ends in a user-visible reply; failures at any stage degrade to an
// explanatory message, never a dropped turn.
package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/agents"
	"github.com/thinktank-analytics/thinktank-engine/pkg/feedback"
	"github.com/thinktank-analytics/thinktank-engine/pkg/masking"
	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
	"github.com/thinktank-analytics/thinktank-engine/pkg/results"
	"github.com/thinktank-analytics/thinktank-engine/pkg/sqlgen"
)

// confidenceFloor is the extraction confidence below which a metric query
// turns into a clarification prompt instead of SQL.
const confidenceFloor = 0.6

// Reply is the outcome of one conversation turn.
type Reply struct {
	Text          string `json:"text"`
	SQL           string `json:"sql,omitempty"`
	Explanation   string `json:"explanation,omitempty"`
	ResultID      string `json:"result_id,omitempty"`
	Clarification bool   `json:"clarification,omitempty"`
}

// IntentExtractor produces a structured intent from raw user text.
type IntentExtractor interface {
	Extract(ctx context.Context, text string, hints ...string) *models.Intent
}

// QueryRunner executes validated SQL against the warehouse.
type QueryRunner interface {
	Run(ctx context.Context, sqlText string, useCache bool) (*models.Table, error)
}

// AgentStatus is the agent-lookup surface the conversation needs.
type AgentStatus interface {
	LookupAgent(ctx context.Context, name string, products []int) *agents.Lookup
	Summary(ctx context.Context, req agents.SummaryRequest) []agents.ProductActivity
}

// agentRouteTriggers hard-route a turn into the agent workflow regardless
// of session mode.
var agentRouteTriggers = []string{
	"agents active", "active agents", "agents online", "how many agents",
}

// agentSummaryTriggers mark a summary request inside the agent workflow.
var agentSummaryTriggers = []string{
	"agents active", "active agents", "agents online", "how many agents",
	"how many agents are on", "number of agents",
}

// ConversationService runs user turns end to end.
type ConversationService struct {
	extractor IntentExtractor
	builder   *sqlgen.Builder
	warehouse QueryRunner
	masker    *masking.Masker
	results   *results.Store
	feedback  feedback.Store
	agents    AgentStatus
	sessions  *Sessions
	logger    *zap.Logger
}

// NewConversationService wires the turn handler.
func NewConversationService(
	extractor IntentExtractor,
	builder *sqlgen.Builder,
	warehouse QueryRunner,
	masker *masking.Masker,
	resultStore *results.Store,
	feedbackStore feedback.Store,
	agentStatus AgentStatus,
	sessions *Sessions,
	logger *zap.Logger,
) *ConversationService {
	return &ConversationService{
		extractor: extractor,
		builder:   builder,
		warehouse: warehouse,
		masker:    masker,
		results:   resultStore,
		feedback:  feedbackStore,
		agents:    agentStatus,
		sessions:  sessions,
		logger:    logger.Named("conversation"),
	}
}

// HandleTurn processes one user message and always produces a reply.
func (s *ConversationService) HandleTurn(ctx context.Context, userID, text string) *Reply {
	lower := strings.ToLower(strings.TrimSpace(text))

	switch lower {
	case "menu", "main menu", "start over", "restart":
		s.sessions.End(userID)
		return &Reply{Text: menuText}
	case "end session":
		s.sessions.End(userID)
		return &Reply{Text: "Session ended. " + menuText}
	}

	// Agent-activity questions route to the agent workflow regardless of
	// session mode.
	if s.sessions.Mode(userID) == ModeAgent || containsAny(lower, agentRouteTriggers) {
		return s.handleAgentTurn(ctx, text)
	}

	intent := s.extract(ctx, text)
	s.logger.Debug("intent extracted",
		zap.String("user_id", userID),
		zap.String("intent", string(intent.Type)),
		zap.Float64("confidence", intent.Confidence))

	if intent.Type == models.IntentMetricQuery && intent.Confidence < confidenceFloor {
		return &Reply{
			Text:          "I might be unsure about your request. Could you specify the product or metric?",
			Clarification: true,
		}
	}

	// Instructions and corrections count as feedback even when the
	// extractor classified them otherwise.
	if intent.Type == models.IntentFeedback || LooksLikeFeedback(text) {
		return s.captureFeedback(ctx, userID, text, intent)
	}

	switch intent.Type {
	case models.IntentAgentStatus:
		return s.agentLookupReply(ctx, intent, text)
	case models.IntentMetricQuery:
		return s.metricReply(ctx, userID, text, intent)
	case models.IntentConversation:
		if intent.Explanation != "" {
			return &Reply{Text: intent.Explanation}
		}
		return &Reply{Text: "Hello! Ask me about leads, bookings, or revenue."}
	case models.IntentClarification:
		return &Reply{
			Text:          "Noted. Could you rephrase with the product, metric, or time range you mean?",
			Clarification: true,
		}
	}
	return &Reply{Text: "I'm not sure how to help with that. Try asking about business metrics."}
}

// extract runs extraction with approved business rules as prompt hints.
func (s *ConversationService) extract(ctx context.Context, text string) *models.Intent {
	var hints []string
	if entries, err := s.feedback.ApprovedLogic(ctx); err == nil {
		hints = feedback.RelevantLogic(entries, text)
	}
	return s.extractor.Extract(ctx, text, hints...)
}

// captureFeedback stores the message for expert review, with the extracted
// entities attached so the reviewer sees what the engine understood.
func (s *ConversationService) captureFeedback(ctx context.Context, userID, text string, intent *models.Intent) *Reply {
	_, err := s.feedback.StoreFeedback(ctx, userID, text, text, models.FeedbackContext{Entities: intent})
	if err != nil {
		s.logger.Error("feedback capture failed", zap.Error(err))
	}
	return &Reply{Text: "Thanks for the feedback! We'll review and improve this behavior."}
}

// metricReply runs the extract -> build -> execute -> mask -> store chain.
func (s *ConversationService) metricReply(ctx context.Context, userID, text string, intent *models.Intent) *Reply {
	// A pure agent-activity question with no explicit metric skips SQL.
	explicitMetric := intent.Metric != "" || len(intent.Metrics) > 0
	if intent.Flag(models.FlagAgentSummary) && !explicitMetric {
		return s.agentSummaryReply(ctx, intent, text)
	}

	build := s.builder.Build(intent)
	if build.SQL == "" {
		return &Reply{Text: "I couldn't generate a query for that request."}
	}

	table, err := s.warehouse.Run(ctx, build.SQL, true)
	if err != nil {
		s.logger.Warn("query execution failed", zap.Error(err))
		return &Reply{Text: "Query failed: " + err.Error(), SQL: build.SQL}
	}
	if len(table.Rows) == 0 {
		return &Reply{Text: "No data found for your query.", SQL: build.SQL, Explanation: build.Explanation}
	}

	masked := s.masker.MaskTable(table)
	resultID := s.results.Save(ctx, userID, build.SQL, build.Explanation, masked)

	replyText := formatResult(masked, build.SQL, build.Explanation, resultID)

	// An explicit metric plus the summary flag gets the activity scan
	// appended to the data answer.
	if intent.Flag(models.FlagAgentSummary) {
		summary := s.agentSummaryReply(ctx, intent, text)
		replyText += "\n\n" + summary.Text
	}

	return &Reply{
		Text:        replyText,
		SQL:         build.SQL,
		Explanation: build.Explanation,
		ResultID:    resultID,
	}
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
