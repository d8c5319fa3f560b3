package domain

import (
	"time"

	storedomain "mindmate/internal/modules/store/domain"
)

const DefaultActivityLimit = 10

type Stats struct {
	ID                     string
	UserID                 string
	TotalChatSessions      int
	TotalAudioCalls        int
	TotalMeditationMinutes int
	TotalQuotesViewed      int
	LastActivity           *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func FromRecord(r storedomain.UserStatRecord) Stats {
	return Stats{
		ID:                     r.ID,
		UserID:                 r.UserID,
		TotalChatSessions:      r.TotalChatSessions,
		TotalAudioCalls:        r.TotalAudioCalls,
		TotalMeditationMinutes: r.TotalMeditationMinutes,
		TotalQuotesViewed:      r.TotalQuotesViewed,
		LastActivity:           storedomain.ParseOptionalTime(r.LastActivity),
		CreatedAt:              storedomain.ParseTime(r.CreatedAt),
		UpdatedAt:              storedomain.ParseTime(r.UpdatedAt),
	}
}

type ActivityKind string

const (
	ActivityChat       ActivityKind = "chat"
	ActivityCall       ActivityKind = "audio"
	ActivityMeditation ActivityKind = "meditation"
	ActivityQuote      ActivityKind = "quote"
)

type Activity struct {
	Kind  ActivityKind
	Label string
	At    time.Time
}

// RecentActivity merges the user's records from every source table, newest
// first.
func RecentActivity(doc storedomain.Document, userID string) []Activity {
	var out []Activity
	for _, s := range doc.ChatSessions {
		if s.UserID == userID {
			out = append(out, Activity{Kind: ActivityChat, Label: "Чат с психологом", At: storedomain.ParseTime(s.CreatedAt)})
		}
	}
	for _, c := range doc.AudioCalls {
		if c.UserID == userID {
			out = append(out, Activity{Kind: ActivityCall, Label: "Аудио звонок", At: storedomain.ParseTime(c.CreatedAt)})
		}
	}
	for _, m := range doc.MeditationSessions {
		if m.UserID == userID {
			out = append(out, Activity{Kind: ActivityMeditation, Label: "Медитация: " + m.MeditationTitle, At: storedomain.ParseTime(m.CompletedAt)})
		}
	}
	for _, v := range doc.QuoteViews {
		if v.UserID != userID {
			continue
		}
		label := "Цитата дня"
		if q, ok := doc.Quotes[v.QuoteID]; ok {
			label = "Цитата: " + q.Author
		}
		out = append(out, Activity{Kind: ActivityQuote, Label: label, At: storedomain.ParseTime(v.ViewedAt)})
	}
	return out
}
