package dto

import "time"

type StatsOutput struct {
	ID                     string     `json:"id"`
	UserID                 string     `json:"userId"`
	TotalChatSessions      int        `json:"totalChatSessions"`
	TotalAudioCalls        int        `json:"totalAudioCalls"`
	TotalMeditationMinutes int        `json:"totalMeditationMinutes"`
	TotalQuotesViewed      int        `json:"totalQuotesViewed"`
	LastActivity           *time.Time `json:"lastActivity,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

type ActivityInput struct {
	UserID string
	Limit  int
}

type ActivityOutput struct {
	Kind  string    `json:"type"`
	Label string    `json:"action"`
	At    time.Time `json:"time"`
}
