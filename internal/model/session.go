package model

import (
	"time"
)

// MessageType identifies the author of a message.
type MessageType string

const (
	MessageTypeUser MessageType = "user"
	MessageTypeAI   MessageType = "ai"
)

// Message is one turn in a Session. IDs are per-session sequence numbers
// assigned as len(messages)+1 at creation; they are not globally unique
// and are not stable under deletion.
type Message struct {
	ID        int         `json:"id"`
	Type      MessageType `json:"type"`
	Content   Localized   `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// Session is a persisted, titled conversation thread. The title is always
// populated in all four languages; LastMessage is a single plain-text
// summary of the most recent message, stored once.
type Session struct {
	ID          string    `json:"id"`
	Title       Localized `json:"title"`
	LastMessage string    `json:"lastMessage"`
	Timestamp   time.Time `json:"timestamp"`
	IsArchived  bool      `json:"isArchived,omitempty"`
	Messages    []Message `json:"messages"`

	// Recency is a derived display string ("14:05", "Yesterday", "3 days
	// ago", "02/11/2023") set on API responses only; it is never persisted.
	Recency string `json:"recency,omitempty"`
}

// Clone returns a deep copy of the session so callers can read it without
// holding the store's lock.
func (s *Session) Clone() *Session {
	out := *s
	out.Messages = make([]Message, len(s.Messages))
	copy(out.Messages, s.Messages)
	return &out
}

// CreateSessionResponse is the response after creating a session.
type CreateSessionResponse struct {
	Session *Session `json:"session"`
}

// ListSessionsResponse is the response for listing sessions.
type ListSessionsResponse struct {
	Sessions []*Session `json:"sessions"`
	Selected string     `json:"selected,omitempty"`
	Total    int        `json:"total"`
}

// SendMessageRequest is the request to send a new user message.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// SendMessageResponse is the response after sending a message.
type SendMessageResponse struct {
	Message *Message `json:"message"`
}

// ListMessagesResponse is the response for listing a session's messages.
type ListMessagesResponse struct {
	Messages []Message `json:"messages"`
	Total    int       `json:"total"`
}
