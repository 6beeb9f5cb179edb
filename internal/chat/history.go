package chat

import (
	"sync"

	"fanhub-backend/internal/models"
)

// SharedSession buckets turns from callers that did not send a session ID.
const SharedSession = "shared"

// HistoryStore keeps recent conversation turns per session so the model
// can follow up. Turns are capped per session; the oldest fall off.
type HistoryStore struct {
	mu       sync.Mutex
	sessions map[string][]models.ChatMessage
	maxTurns int
}

func NewHistoryStore(maxTurns int) *HistoryStore {
	return &HistoryStore{
		sessions: make(map[string][]models.ChatMessage),
		maxTurns: maxTurns,
	}
}

func (s *HistoryStore) Append(sessionID, role, content string) {
	if sessionID == "" {
		sessionID = SharedSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.sessions[sessionID], models.ChatMessage{Role: role, Content: content})
	if len(turns) > s.maxTurns {
		turns = turns[len(turns)-s.maxTurns:]
	}
	s.sessions[sessionID] = turns
}

// Get returns a copy of the session's turns in order.
func (s *HistoryStore) Get(sessionID string) []models.ChatMessage {
	if sessionID == "" {
		sessionID = SharedSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	turns := s.sessions[sessionID]
	out := make([]models.ChatMessage, len(turns))
	copy(out, turns)
	return out
}

// Clear drops every session. The reset endpoint wipes all history, so a
// fresh conversation starts with nothing to reference.
func (s *HistoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string][]models.ChatMessage)
}
