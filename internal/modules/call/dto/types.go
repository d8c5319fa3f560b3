package dto

import "time"

type CreateInput struct {
	UserID string `json:"userId"`
}

type EndInput struct {
	CallID   string `json:"-"`
	Duration int    `json:"duration"`
}

type ListInput struct {
	UserID string
	Limit  int
}

type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ConverseInput struct {
	CallID   string
	Audio    []byte
	Filename string
	History  []Turn
}

type CallOutput struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
	Duration  int        `json:"duration"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type ConverseOutput struct {
	CallID     string `json:"callId"`
	Transcript string `json:"transcript"`
	Reply      string `json:"reply"`
	Fallback   bool   `json:"fallback"`
}
