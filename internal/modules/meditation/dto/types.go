package dto

import "time"

type CreateSessionInput struct {
	UserID          string `json:"userId"`
	MeditationTitle string `json:"meditationTitle"`
	Duration        int    `json:"duration"`
	Rating          *int   `json:"rating,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

type ListInput struct {
	UserID string
	Limit  int
}

type StartInput struct {
	UserID string `json:"userId"`
	Title  string `json:"title"`
}

type CompleteInput struct {
	Rating *int   `json:"rating,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

type SessionOutput struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	MeditationTitle string    `json:"meditationTitle"`
	Duration        int       `json:"duration"`
	CompletedAt     time.Time `json:"completedAt"`
	Rating          *int      `json:"rating,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type StatsOutput struct {
	TotalSessions int     `json:"totalSessions"`
	TotalMinutes  int     `json:"totalMinutes"`
	AvgRating     float64 `json:"avgRating"`
}

type CatalogItemOutput struct {
	Title       string `json:"title"`
	Minutes     int    `json:"minutes"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl"`
}

type ActiveOutput struct {
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	StartedAt time.Time `json:"startedAt"`
}
