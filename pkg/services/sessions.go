package services

import "sync"

// Session modes. An empty mode means the user has not picked a workflow.
const (
	ModeMetrics = "metrics"
	ModeAgent   = "agent"
)

const menuText = "What would you like to do? Reply 'metrics' for business metrics or 'agent status' for live agent lookups."

// Sessions tracks which workflow each user is in.
type Sessions struct {
	mu    sync.Mutex
	modes map[string]string
}

// NewSessions creates an empty session tracker.
func NewSessions() *Sessions {
	return &Sessions{modes: make(map[string]string)}
}

// Mode returns the user's current workflow mode.
func (s *Sessions) Mode(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modes[userID]
}

// SetMode switches the user's workflow.
func (s *Sessions) SetMode(userID, mode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes[userID] = mode
}

// End clears the user's session.
func (s *Sessions) End(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.modes, userID)
}
