// Package agents answers live agent-status questions: resolving names to
// agent codes through warehouse lookups, polling the internal agent tracker
// API, and summarizing activity across products. The tracker is best-effort
// infrastructure; every failure degrades to "status unknown" rather than an
// error surfaced to the user.
package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// statusTimeout bounds a single tracker call so one slow agent lookup
// cannot stall a conversation turn.
const statusTimeout = 8 * time.Second

// StatusRecord is one agent's live state as returned by the tracker API.
type StatusRecord map[string]any

// Field returns the value under key formatted as a string, or "" when the
// key is absent, nil, or empty.
func (r StatusRecord) Field(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	s := fmt.Sprintf("%v", v)
	if s == "" || s == "<nil>" {
		return ""
	}
	return s
}

// Status returns the uppercased Status field.
func (r StatusRecord) Status() string {
	return strings.ToUpper(r.Field("Status"))
}

// StatusClient fetches live status records for an agent code. A nil return
// means the agent is unknown to the tracker or the call failed; callers
// count it as inactive.
type StatusClient interface {
	FetchStatus(ctx context.Context, agentID string) []StatusRecord
}

// HTTPStatusClient talks to the internal agent tracker over HTTP.
type HTTPStatusClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

var _ StatusClient = (*HTTPStatusClient)(nil)

// NewHTTPStatusClient creates a tracker client for the given base URL.
func NewHTTPStatusClient(baseURL string, logger *zap.Logger) *HTTPStatusClient {
	return &HTTPStatusClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: statusTimeout},
		logger:  logger.Named("agent-status"),
	}
}

// FetchStatus calls the tracker's realtime endpoint. The API answers with
// either a JSON list or a single object; both normalize to a slice.
func (c *HTTPStatusClient) FetchStatus(ctx context.Context, agentID string) []StatusRecord {
	endpoint := c.baseURL + "/agentstatus/getagentrealtime/" + url.PathEscape(agentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Warn("bad tracker request", zap.String("agent_id", agentID), zap.Error(err))
		return nil
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("tracker call failed", zap.String("agent_id", agentID), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("tracker returned non-200",
			zap.String("agent_id", agentID), zap.Int("status", resp.StatusCode))
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Debug("tracker body read failed", zap.String("agent_id", agentID), zap.Error(err))
		return nil
	}

	var list []StatusRecord
	if err := json.Unmarshal(body, &list); err == nil {
		return list
	}
	var single StatusRecord
	if err := json.Unmarshal(body, &single); err == nil && len(single) > 0 {
		return []StatusRecord{single}
	}

	c.logger.Debug("tracker response unparseable", zap.String("agent_id", agentID))
	return nil
}
