package service

import (
	"cmp"
	"context"
	"slices"

	"mindmate/internal/modules/meditation/domain"
	storedomain "mindmate/internal/modules/store/domain"
	storein "mindmate/internal/modules/store/port/in"
	"mindmate/internal/platform/clock"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/id"
)

type MeditationService struct {
	clock clock.Clock
	idGen id.Generator
	docs  storein.Documents
}

func NewMeditationService(clock clock.Clock, idGen id.Generator, docs storein.Documents) *MeditationService {
	return &MeditationService{clock: clock, idGen: idGen, docs: docs}
}

// CreateSession records a meditation at completion time.
func (s *MeditationService) CreateSession(ctx context.Context, userID, title string, minutes int, rating *int, notes string) (domain.Session, error) {
	var out domain.Session
	err := s.docs.Update(ctx, func(doc *storedomain.Document) error {
		if _, ok := doc.Users[userID]; !ok {
			return apperrors.ErrNotFound
		}
		now := s.clock.Now()
		stamp := storedomain.FormatTime(now)
		record := storedomain.MeditationSessionRecord{
			ID:              s.idGen.New("meditation"),
			UserID:          userID,
			MeditationTitle: title,
			Duration:        minutes,
			CompletedAt:     stamp,
			Rating:          rating,
			Notes:           notes,
			CreatedAt:       stamp,
		}
		doc.MeditationSessions[record.ID] = record
		doc.RefreshStats(userID, now, func() string { return s.idGen.New("user_stat") })
		out = domain.SessionFromRecord(record)
		return nil
	})
	return out, err
}

// Begin stamps a new active meditation for a known user.
func (s *MeditationService) Begin(ctx context.Context, userID, title string) (domain.Active, error) {
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		if _, ok := doc.Users[userID]; !ok {
			return apperrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return domain.Active{}, err
	}
	return domain.Active{UserID: userID, Title: title, StartedAt: s.clock.Now()}, nil
}

// Finish converts an active meditation into a stored session lasting the
// whole minutes elapsed since it started.
func (s *MeditationService) Finish(ctx context.Context, active domain.Active, rating *int, notes string) (domain.Session, error) {
	minutes := domain.ElapsedMinutes(active.StartedAt, s.clock.Now())
	return s.CreateSession(ctx, active.UserID, active.Title, minutes, rating, notes)
}

func (s *MeditationService) UserSessions(ctx context.Context, userID string, limit int) ([]domain.Session, error) {
	var records []storedomain.MeditationSessionRecord
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		for _, r := range doc.MeditationSessions {
			if r.UserID == userID {
				records = append(records, r)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(records, func(a, b storedomain.MeditationSessionRecord) int {
		return cmp.Or(cmp.Compare(b.CompletedAt, a.CompletedAt), cmp.Compare(b.ID, a.ID))
	})
	if len(records) > limit {
		records = records[:limit]
	}
	out := make([]domain.Session, 0, len(records))
	for _, r := range records {
		out = append(out, domain.SessionFromRecord(r))
	}
	return out, nil
}

func (s *MeditationService) UserStats(ctx context.Context, userID string) (domain.Stats, error) {
	var out domain.Stats
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		summary := doc.MeditationSummaryFor(userID)
		out = domain.Stats{TotalSessions: summary.TotalSessions, TotalMinutes: summary.TotalMinutes, AvgRating: summary.AvgRating}
		return nil
	})
	return out, err
}
