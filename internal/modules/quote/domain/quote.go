package domain

import (
	"time"

	storedomain "mindmate/internal/modules/store/domain"
)

const (
	DefaultViewLimit  = 20
	DefaultLikedLimit = 50
)

type Quote struct {
	ID        string
	Text      string
	Author    string
	Category  string
	CreatedAt time.Time
}

type View struct {
	ID       string
	UserID   string
	QuoteID  string
	ViewedAt time.Time
	Liked    bool
}

// ViewedQuote pairs a view with the quote it points at.
type ViewedQuote struct {
	View  View
	Quote Quote
}

type Stats struct {
	TotalViewed int
	TotalLiked  int
}

func QuoteFromRecord(r storedomain.QuoteRecord) Quote {
	return Quote{ID: r.ID, Text: r.Text, Author: r.Author, Category: r.Category, CreatedAt: storedomain.ParseTime(r.CreatedAt)}
}

func ViewFromRecord(r storedomain.QuoteViewRecord) View {
	return View{ID: r.ID, UserID: r.UserID, QuoteID: r.QuoteID, ViewedAt: storedomain.ParseTime(r.ViewedAt), Liked: r.Liked}
}
