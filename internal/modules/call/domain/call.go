package domain

import (
	"time"

	storedomain "mindmate/internal/modules/store/domain"
)

const (
	DefaultListLimit = 10

	NotHeard    = "Извините, я вас не расслышал. Повторите, пожалуйста."
	Unavailable = "Извините, я временно недоступен. Давайте попробуем чуть позже."
)

type Call struct {
	ID        string
	UserID    string
	StartedAt time.Time
	EndedAt   *time.Time
	Duration  int
	Status    storedomain.CallStatus
	Notes     string
	CreatedAt time.Time
}

func FromRecord(r storedomain.AudioCallRecord) Call {
	return Call{
		ID:        r.ID,
		UserID:    r.UserID,
		StartedAt: storedomain.ParseTime(r.StartedAt),
		EndedAt:   storedomain.ParseOptionalTime(r.EndedAt),
		Duration:  r.Duration,
		Status:    r.Status,
		Notes:     r.Notes,
		CreatedAt: storedomain.ParseTime(r.CreatedAt),
	}
}
