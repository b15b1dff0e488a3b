package agents

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

type fakeStatusClient struct {
	mu        sync.Mutex
	responses map[string][]StatusRecord
	calls     []string
}

func (f *fakeStatusClient) FetchStatus(ctx context.Context, agentID string) []StatusRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, agentID)
	return f.responses[agentID]
}

type fakeRunner struct {
	mu      sync.Mutex
	queries []string
	// results are keyed by a substring unique to each query shape
	results map[string]*models.Table
	err     error
}

func (f *fakeRunner) Run(ctx context.Context, sqlText string, useCache bool) (*models.Table, error) {
	f.mu.Lock()
	f.queries = append(f.queries, sqlText)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for key, table := range f.results {
		if strings.Contains(sqlText, key) {
			return table, nil
		}
	}
	return &models.Table{}, nil
}

func record(code, name, status string) StatusRecord {
	return StatusRecord{"AgentCode": code, "AgentName": name, "Status": status}
}

func newTestService(client *fakeStatusClient, runner *fakeRunner) *Service {
	return NewService(client, NewResolver(runner, zap.NewNop()), zap.NewNop())
}

func candidateTable(rows ...[]any) *models.Table {
	return &models.Table{Columns: []string{"code", "name", "last_dt"}, Rows: rows}
}

func TestLookupAgentByCode(t *testing.T) {
	client := &fakeStatusClient{responses: map[string][]StatusRecord{
		"PW32306": {record("PW32306", "Sahil Sharma", "READY")},
	}}
	runner := &fakeRunner{}
	s := newTestService(client, runner)

	got := s.LookupAgent(context.Background(), "PW32306", nil)
	require.Equal(t, LookupFound, got.Outcome)
	assert.Equal(t, "PW32306", got.Code)
	assert.Equal(t, "READY", got.Record.Status())

	// A literal code never touches the warehouse.
	assert.Empty(t, runner.queries)
}

func TestLookupAgentResolvesName(t *testing.T) {
	client := &fakeStatusClient{responses: map[string][]StatusRecord{
		"PW32306": {record("PW32306", "Sahil Sharma", "BUSY")},
	}}
	runner := &fakeRunner{results: map[string]*models.Table{
		"AS code": candidateTable([]any{"PW32306", "Sahil Sharma", "2025-08-30"}),
	}}
	s := newTestService(client, runner)

	got := s.LookupAgent(context.Background(), "Sahil Sharma", []int{5})
	require.Equal(t, LookupFound, got.Outcome)
	assert.Equal(t, "PW32306", got.Code)
	assert.Equal(t, "Sahil Sharma", got.Name)

	// The candidate query carries the product scope and the name predicate
	// across every agent-name column, lowercased.
	require.Len(t, runner.queries, 1)
	q := runner.queries[0]
	assert.Contains(t, q, "investmenttypeid IN (5)")
	assert.Contains(t, q, "LOWER(CAST(leadassignedagentname AS VARCHAR)) LIKE '%sahil sharma%'")
	assert.Contains(t, q, "LOWER(CAST(booking_agent_manager2 AS VARCHAR)) LIKE '%sahil sharma%'")
}

func TestLookupAgentAmbiguous(t *testing.T) {
	runner := &fakeRunner{results: map[string]*models.Table{
		"AS code": candidateTable(
			[]any{"PW1111", "Sahil Sharma", "2025-08-30"},
			[]any{"PW2222", "Sahil Verma", "2025-08-29"},
		),
	}}
	s := newTestService(&fakeStatusClient{}, runner)

	got := s.LookupAgent(context.Background(), "Sahil", nil)
	require.Equal(t, LookupAmbiguous, got.Outcome)
	require.Len(t, got.Candidates, 2)
	assert.Equal(t, "PW1111", got.Candidates[0].Code)
}

func TestLookupAgentNotFoundSuggests(t *testing.T) {
	runner := &fakeRunner{results: map[string]*models.Table{
		"UNION ALL": {Columns: []string{"name"}, Rows: [][]any{
			{"Prityush Kumar"}, {"Rakesh Gupta"},
		}},
	}}
	s := newTestService(&fakeStatusClient{}, runner)

	got := s.LookupAgent(context.Background(), "Prityush", nil)
	require.Equal(t, LookupNotFound, got.Outcome)
	assert.Equal(t, []string{"Prityush Kumar"}, got.Suggestions)
}

func TestLookupAgentNoLiveStatus(t *testing.T) {
	runner := &fakeRunner{results: map[string]*models.Table{
		"AS code": candidateTable([]any{"PW9999", "Old Timer", "2024-01-01"}),
	}}
	s := newTestService(&fakeStatusClient{}, runner)

	got := s.LookupAgent(context.Background(), "Old Timer", nil)
	require.Equal(t, LookupNoStatus, got.Outcome)
	assert.Equal(t, "PW9999", got.Code)
}

func TestSummaryCountsDefaultActive(t *testing.T) {
	client := &fakeStatusClient{responses: map[string][]StatusRecord{
		"A1": {record("A1", "Agent One", "READY")},
		"A2": {record("A2", "Agent Two", "PAUSE")},
		// A3 has no tracker record and counts as unknown.
	}}
	runner := &fakeRunner{results: map[string]*models.Table{
		"SELECT lead_agentid, MAX": {Columns: []string{"lead_agentid", "last_dt"}, Rows: [][]any{
			{"A1", nil}, {"A2", nil}, {"A3", nil},
		}},
	}}
	s := newTestService(client, runner)

	got := s.Summary(context.Background(), SummaryRequest{})
	require.Len(t, got, 1)
	assert.Equal(t, AllProductsKey, got[0].ProductID)
	assert.Equal(t, 3, got[0].Checked)
	assert.Equal(t, 1, got[0].Matched)
	assert.True(t, got[0].Sampled)
	require.Len(t, got[0].Details, 1)
	assert.Contains(t, got[0].Details[0], "Agent One (A1)")
	assert.Contains(t, got[0].Details[0], "Status: READY")
}

func TestSummaryStatusFilter(t *testing.T) {
	client := &fakeStatusClient{responses: map[string][]StatusRecord{
		"A1": {record("A1", "Agent One", "READY")},
		"A2": {record("A2", "Agent Two", "PAUSE")},
	}}
	runner := &fakeRunner{results: map[string]*models.Table{
		"SELECT lead_agentid, MAX": {Columns: []string{"lead_agentid", "last_dt"}, Rows: [][]any{
			{"A1", nil}, {"A2", nil},
		}},
	}}
	s := newTestService(client, runner)

	got := s.Summary(context.Background(), SummaryRequest{Statuses: []string{"pause"}})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Matched)
	// Explicit status filters count only; no detail lines.
	assert.Empty(t, got[0].Details)
}

func TestSummaryExplicitCodes(t *testing.T) {
	client := &fakeStatusClient{responses: map[string][]StatusRecord{
		"PW32306": {record("PW32306", "Sahil Sharma", "BUSY")},
	}}
	runner := &fakeRunner{results: map[string]*models.Table{
		"SELECT lead_agentid, MAX": {Columns: []string{"lead_agentid", "last_dt"}, Rows: [][]any{
			{"IGNORED", nil},
		}},
	}}
	s := newTestService(client, runner)

	got := s.Summary(context.Background(), SummaryRequest{Codes: []string{"PW32306"}})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Checked)
	assert.Equal(t, 1, got[0].Matched)
	assert.False(t, got[0].Sampled)
	assert.Equal(t, []string{"PW32306"}, client.calls)
}

func TestSummaryPerProductBuckets(t *testing.T) {
	client := &fakeStatusClient{responses: map[string][]StatusRecord{}}
	runner := &fakeRunner{results: map[string]*models.Table{
		"investmenttypeid = 5":  {Columns: []string{"lead_agentid", "last_dt"}, Rows: [][]any{{"A1", nil}}},
		"investmenttypeid = 13": {Columns: []string{"lead_agentid", "last_dt"}, Rows: [][]any{{"B1", nil}, {"B2", nil}}},
	}}
	s := newTestService(client, runner)

	got := s.Summary(context.Background(), SummaryRequest{Products: []int{13, 5}})
	require.Len(t, got, 2)
	// Buckets come back in product-id order regardless of request order.
	assert.Equal(t, 5, got[0].ProductID)
	assert.Equal(t, 1, got[0].Checked)
	assert.Equal(t, 13, got[1].ProductID)
	assert.Equal(t, 2, got[1].Checked)
}

func TestSummaryFullScanEnumeratesAll(t *testing.T) {
	client := &fakeStatusClient{responses: map[string][]StatusRecord{}}
	runner := &fakeRunner{results: map[string]*models.Table{
		"SELECT DISTINCT lead_agentid": {Columns: []string{"lead_agentid"}, Rows: [][]any{{"A1"}}},
	}}
	s := newTestService(client, runner)

	got := s.Summary(context.Background(), SummaryRequest{Full: true})
	require.Len(t, got, 1)
	assert.False(t, got[0].Sampled)
	require.Len(t, runner.queries, 1)
	assert.Contains(t, runner.queries[0], "SELECT DISTINCT lead_agentid")
}

func TestSummaryResolverFailureIsEmptyBucket(t *testing.T) {
	runner := &fakeRunner{err: assert.AnError}
	s := newTestService(&fakeStatusClient{}, runner)

	got := s.Summary(context.Background(), SummaryRequest{})
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Checked)
	assert.Equal(t, 0, got[0].Matched)
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Sahil", CleanName("Sahil in Mumbai"))
	assert.Equal(t, "Priya Sharma", CleanName("Priya Sharma"))
	assert.Equal(t, "", CleanName("today"))
	assert.Equal(t, "", CleanName("this week"))
}

func TestIsAgentCode(t *testing.T) {
	assert.True(t, IsAgentCode("PW32306"))
	assert.True(t, IsAgentCode("AB12"))
	assert.False(t, IsAgentCode("Sahil"))
	assert.False(t, IsAgentCode("PW1"))
	assert.False(t, IsAgentCode("PW32306 extra"))
}
