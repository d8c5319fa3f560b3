package service

import (
	"cmp"
	"context"
	"slices"

	"mindmate/internal/modules/stats/domain"
	storedomain "mindmate/internal/modules/store/domain"
	storein "mindmate/internal/modules/store/port/in"
	"mindmate/internal/platform/clock"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/id"
)

type StatsService struct {
	clock clock.Clock
	idGen id.Generator
	docs  storein.Documents
}

func NewStatsService(clock clock.Clock, idGen id.Generator, docs storein.Documents) *StatsService {
	return &StatsService{clock: clock, idGen: idGen, docs: docs}
}

func (s *StatsService) statID() string { return s.idGen.New("user_stat") }

func (s *StatsService) Refresh(ctx context.Context, userID string) (domain.Stats, error) {
	var out domain.Stats
	err := s.docs.Update(ctx, func(doc *storedomain.Document) error {
		if _, ok := doc.Users[userID]; !ok {
			return apperrors.ErrNotFound
		}
		out = domain.FromRecord(doc.RefreshStats(userID, s.clock.Now(), s.statID))
		return nil
	})
	return out, err
}

// Get returns the stored row. A user without one gets a zeroed row, which is
// persisted; counters are not recomputed.
func (s *StatsService) Get(ctx context.Context, userID string) (domain.Stats, error) {
	var out domain.Stats
	present := false
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		if _, ok := doc.Users[userID]; !ok {
			return apperrors.ErrNotFound
		}
		record, ok := doc.UserStats[userID]
		if ok {
			out, present = domain.FromRecord(record), true
		}
		return nil
	})
	if err != nil || present {
		return out, err
	}
	err = s.docs.Update(ctx, func(doc *storedomain.Document) error {
		if _, ok := doc.Users[userID]; !ok {
			return apperrors.ErrNotFound
		}
		record, _ := doc.EnsureStats(userID, s.clock.Now(), s.statID)
		out = domain.FromRecord(record)
		return nil
	})
	return out, err
}

func (s *StatsService) RecentActivity(ctx context.Context, userID string, limit int) ([]domain.Activity, error) {
	var out []domain.Activity
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		out = domain.RecentActivity(doc, userID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(out, func(a, b domain.Activity) int {
		return cmp.Or(b.At.Compare(a.At), cmp.Compare(a.Kind, b.Kind))
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
