package models

import "time"

// ChatMessage is a single turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message   string `json:"message"`
	UserName  string `json:"userName,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// ChatResponse is the reply returned to the fan.
type ChatResponse struct {
	Response string `json:"response"`
}

// ChatExchange is one logged question/answer pair, kept for the
// engagement dashboard.
type ChatExchange struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Intent    string    `json:"intent"`
	Source    string    `json:"source"` // cache, predefined, live_data, generative, fallback
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}

// FanNotification is pushed to WebSocket subscribers when a match or
// stream goes live.
type FanNotification struct {
	Topic   string `json:"topic"` // "matches" or "streams"
	Title   string `json:"title"`
	Message string `json:"message"`
	Link    string `json:"link,omitempty"`
}
