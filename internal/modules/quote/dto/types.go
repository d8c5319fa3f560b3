package dto

import "time"

type ViewInput struct {
	UserID  string `json:"userId"`
	QuoteID string `json:"-"`
	Liked   bool   `json:"liked"`
}

type ToggleLikeInput struct {
	UserID  string `json:"userId"`
	QuoteID string `json:"-"`
}

type ListInput struct {
	UserID string
	Limit  int
}

type QuoteOutput struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

type ViewOutput struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	QuoteID  string    `json:"quoteId"`
	ViewedAt time.Time `json:"viewedAt"`
	Liked    bool      `json:"liked"`
}

type ViewedQuoteOutput struct {
	ViewOutput
	Quote QuoteOutput `json:"quote"`
}

type StatsOutput struct {
	TotalViewed int `json:"totalViewed"`
	TotalLiked  int `json:"totalLiked"`
}
