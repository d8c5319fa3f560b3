package dto

import "time"

type CreateSessionInput struct {
	UserID string `json:"userId"`
	Title  string `json:"title,omitempty"`
}

type AddMessageInput struct {
	SessionID string `json:"-"`
	UserID    string `json:"userId"`
	Content   string `json:"content"`
	Role      string `json:"role"`
}

type ListSessionsInput struct {
	UserID string
	Limit  int
}

type ReplyInput struct {
	SessionID string `json:"-"`
	UserID    string `json:"userId"`
	Text      string `json:"text"`
}

type SessionOutput struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Title        string     `json:"title,omitempty"`
	StartedAt    time.Time  `json:"startedAt"`
	EndedAt      *time.Time `json:"endedAt,omitempty"`
	MessageCount int        `json:"messageCount"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type MessageOutput struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

type OpenOutput struct {
	Session  SessionOutput `json:"session"`
	Greeting MessageOutput `json:"greeting"`
}

type ReplyOutput struct {
	UserMessage MessageOutput `json:"userMessage"`
	Reply       MessageOutput `json:"reply"`
	Fallback    bool          `json:"fallback"`
}

type ExportOutput struct {
	SessionID string `json:"sessionId"`
	Path      string `json:"path"`
	Messages  int    `json:"messages"`
}
