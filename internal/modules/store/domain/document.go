package domain

import (
	"encoding/json"
	"fmt"
	"time"

	apperrors "mindmate/internal/platform/errors"
)

// TimeLayout is fixed-width and zero-padded, so stored timestamps order
// correctly under plain string comparison.
const TimeLayout = "2006-01-02T15:04:05.000Z"

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime reads a stored timestamp. Unparseable values decode to the zero time.
func ParseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func ParseOptionalTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	t := ParseTime(value)
	return &t
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) Validate() error {
	switch r {
	case RoleUser, RoleAssistant:
		return nil
	default:
		return fmt.Errorf("%w: unsupported role %q", apperrors.ErrInvalidInput, string(r))
	}
}

type CallStatus string

const (
	CallCompleted CallStatus = "completed"
	CallMissed    CallStatus = "missed"
	CallCancelled CallStatus = "cancelled"
)

type UserRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type ChatSessionRecord struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Title        string `json:"title,omitempty"`
	StartedAt    string `json:"startedAt"`
	EndedAt      string `json:"endedAt,omitempty"`
	MessageCount int    `json:"messageCount"`
	CreatedAt    string `json:"createdAt"`
}

type ChatMessageRecord struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Content   string `json:"content"`
	Role      Role   `json:"role"`
	Timestamp string `json:"timestamp"`
}

type AudioCallRecord struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	StartedAt string     `json:"startedAt"`
	EndedAt   string     `json:"endedAt,omitempty"`
	Duration  int        `json:"duration"`
	Status    CallStatus `json:"status"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt string     `json:"createdAt"`
}

type MeditationSessionRecord struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	MeditationTitle string `json:"meditationTitle"`
	Duration        int    `json:"duration"`
	CompletedAt     string `json:"completedAt"`
	Rating          *int   `json:"rating,omitempty"`
	Notes           string `json:"notes,omitempty"`
	CreatedAt       string `json:"createdAt"`
}

type QuoteRecord struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	CreatedAt string `json:"createdAt"`
}

type QuoteViewRecord struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	QuoteID  string `json:"quoteId"`
	ViewedAt string `json:"viewedAt"`
	Liked    bool   `json:"liked"`
}

type UserStatRecord struct {
	ID                     string `json:"id"`
	UserID                 string `json:"userId"`
	TotalChatSessions      int    `json:"totalChatSessions"`
	TotalAudioCalls        int    `json:"totalAudioCalls"`
	TotalMeditationMinutes int    `json:"totalMeditationMinutes"`
	TotalQuotesViewed      int    `json:"totalQuotesViewed"`
	LastActivity           string `json:"lastActivity,omitempty"`
	CreatedAt              string `json:"createdAt"`
	UpdatedAt              string `json:"updatedAt"`
}

// Document is the whole persisted state: eight collections keyed by record id.
// UserStats is keyed by user id.
type Document struct {
	Users              map[string]UserRecord              `json:"users"`
	ChatSessions       map[string]ChatSessionRecord       `json:"chatSessions"`
	ChatMessages       map[string]ChatMessageRecord       `json:"chatMessages"`
	AudioCalls         map[string]AudioCallRecord         `json:"audioCalls"`
	MeditationSessions map[string]MeditationSessionRecord `json:"meditationSessions"`
	Quotes             map[string]QuoteRecord             `json:"quotes"`
	QuoteViews         map[string]QuoteViewRecord         `json:"quoteViews"`
	UserStats          map[string]UserStatRecord          `json:"userStats"`
}

func NewDocument() Document {
	doc := Document{}
	doc.normalize()
	return doc
}

func (d *Document) normalize() {
	if d.Users == nil {
		d.Users = map[string]UserRecord{}
	}
	if d.ChatSessions == nil {
		d.ChatSessions = map[string]ChatSessionRecord{}
	}
	if d.ChatMessages == nil {
		d.ChatMessages = map[string]ChatMessageRecord{}
	}
	if d.AudioCalls == nil {
		d.AudioCalls = map[string]AudioCallRecord{}
	}
	if d.MeditationSessions == nil {
		d.MeditationSessions = map[string]MeditationSessionRecord{}
	}
	if d.Quotes == nil {
		d.Quotes = map[string]QuoteRecord{}
	}
	if d.QuoteViews == nil {
		d.QuoteViews = map[string]QuoteViewRecord{}
	}
	if d.UserStats == nil {
		d.UserStats = map[string]UserStatRecord{}
	}
}

func Decode(raw []byte) (Document, error) {
	doc := Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}
	doc.normalize()
	return doc, nil
}

func Encode(doc Document) ([]byte, error) {
	doc.normalize()
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return raw, nil
}

func (d Document) UserByEmail(email string) (UserRecord, bool) {
	for _, user := range d.Users {
		if user.Email == email {
			return user, true
		}
	}
	return UserRecord{}, false
}
