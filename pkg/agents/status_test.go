package agents

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchStatusList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/agentstatus/getagentrealtime/PW32306", r.URL.Path)
		w.Write([]byte(`[{"AgentCode":"PW32306","AgentName":"Sahil Sharma","Status":"ready"}]`))
	}))
	defer srv.Close()

	c := NewHTTPStatusClient(srv.URL, zap.NewNop())
	got := c.FetchStatus(context.Background(), "PW32306")
	require.Len(t, got, 1)
	assert.Equal(t, "READY", got[0].Status())
	assert.Equal(t, "Sahil Sharma", got[0].Field("AgentName"))
}

func TestFetchStatusSingleObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"AgentCode":"PW1","Status":"PAUSE"}`))
	}))
	defer srv.Close()

	c := NewHTTPStatusClient(srv.URL, zap.NewNop())
	got := c.FetchStatus(context.Background(), "PW1")
	require.Len(t, got, 1)
	assert.Equal(t, "PAUSE", got[0].Status())
}

func TestFetchStatusFailuresReturnNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPStatusClient(srv.URL, zap.NewNop())
	assert.Nil(t, c.FetchStatus(context.Background(), "PW1"))

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer bad.Close()

	c = NewHTTPStatusClient(bad.URL, zap.NewNop())
	assert.Nil(t, c.FetchStatus(context.Background(), "PW1"))

	// Unreachable endpoint.
	c = NewHTTPStatusClient("http://127.0.0.1:1", zap.NewNop())
	assert.Nil(t, c.FetchStatus(context.Background(), "PW1"))
}

func TestStatusRecordField(t *testing.T) {
	rec := StatusRecord{"TotalCalls": float64(42), "Empty": "", "Null": nil}
	assert.Equal(t, "42", rec.Field("TotalCalls"))
	assert.Equal(t, "", rec.Field("Empty"))
	assert.Equal(t, "", rec.Field("Null"))
	assert.Equal(t, "", rec.Field("Missing"))
}

func TestParseFields(t *testing.T) {
	got := ParseFields("show status and totaltalktime for marine agents")
	assert.Equal(t, []string{"Status", "TotalTalkTime"}, got)

	// No named fields falls back to the default projection.
	got = ParseFields("agents active now")
	assert.Equal(t, defaultFields, got)
}

func TestParseStatusFilters(t *testing.T) {
	assert.Equal(t, []string{"PAUSE", "BUSY"}, ParseStatusFilters("who is on pause or busy"))
	assert.Empty(t, ParseStatusFilters("agents active now"))
}
