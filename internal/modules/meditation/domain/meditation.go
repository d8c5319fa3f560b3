package domain

import (
	"fmt"
	"time"

	storedomain "mindmate/internal/modules/store/domain"
	apperrors "mindmate/internal/platform/errors"
)

const DefaultListLimit = 20

type Session struct {
	ID              string
	UserID          string
	MeditationTitle string
	Duration        int
	CompletedAt     time.Time
	Rating          *int
	Notes           string
	CreatedAt       time.Time
}

type Stats struct {
	TotalSessions int
	TotalMinutes  int
	AvgRating     float64
}

// Active is a meditation that was started and not yet completed. It lives
// outside the document until it completes.
type Active struct {
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	StartedAt time.Time `json:"started_at"`
}

func SessionFromRecord(r storedomain.MeditationSessionRecord) Session {
	return Session{
		ID:              r.ID,
		UserID:          r.UserID,
		MeditationTitle: r.MeditationTitle,
		Duration:        r.Duration,
		CompletedAt:     storedomain.ParseTime(r.CompletedAt),
		Rating:          r.Rating,
		Notes:           r.Notes,
		CreatedAt:       storedomain.ParseTime(r.CreatedAt),
	}
}

func ValidateRating(rating *int) error {
	if rating == nil {
		return nil
	}
	if *rating < 1 || *rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5, got %d", apperrors.ErrInvalidInput, *rating)
	}
	return nil
}

// ElapsedMinutes counts whole minutes between start and end.
func ElapsedMinutes(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start) / time.Minute)
}
