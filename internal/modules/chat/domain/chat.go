package domain

import (
	"time"

	storedomain "mindmate/internal/modules/store/domain"
)

const (
	Greeting = "Здравствуйте. Я Марк, психолог. Расскажите, что привело вас сюда?"
	Fallback = "Извините, я временно недоступен. Можете рассказать подробнее о том, что вас беспокоит?"

	DefaultSessionLimit = 10
)

type Session struct {
	ID           string
	UserID       string
	Title        string
	StartedAt    time.Time
	EndedAt      *time.Time
	MessageCount int
	CreatedAt    time.Time
}

type Message struct {
	ID        string
	SessionID string
	UserID    string
	Content   string
	Role      storedomain.Role
	Timestamp time.Time
}

// Transcript is a session together with its messages in conversation order.
type Transcript struct {
	Session  Session
	Messages []Message
}

func SessionFromRecord(r storedomain.ChatSessionRecord) Session {
	return Session{
		ID:           r.ID,
		UserID:       r.UserID,
		Title:        r.Title,
		StartedAt:    storedomain.ParseTime(r.StartedAt),
		EndedAt:      storedomain.ParseOptionalTime(r.EndedAt),
		MessageCount: r.MessageCount,
		CreatedAt:    storedomain.ParseTime(r.CreatedAt),
	}
}

func MessageFromRecord(r storedomain.ChatMessageRecord) Message {
	return Message{
		ID:        r.ID,
		SessionID: r.SessionID,
		UserID:    r.UserID,
		Content:   r.Content,
		Role:      r.Role,
		Timestamp: storedomain.ParseTime(r.Timestamp),
	}
}
