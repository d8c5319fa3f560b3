package service

import (
	"cmp"
	"context"
	"slices"

	"mindmate/internal/modules/call/domain"
	storedomain "mindmate/internal/modules/store/domain"
	storein "mindmate/internal/modules/store/port/in"
	"mindmate/internal/platform/clock"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/id"
)

type CallService struct {
	clock clock.Clock
	idGen id.Generator
	docs  storein.Documents
}

func NewCallService(clock clock.Clock, idGen id.Generator, docs storein.Documents) *CallService {
	return &CallService{clock: clock, idGen: idGen, docs: docs}
}

func (s *CallService) statID() string { return s.idGen.New("user_stat") }

// Create records a call that starts now. Every call is stored as completed;
// missed and cancelled are never produced here.
func (s *CallService) Create(ctx context.Context, userID string) (domain.Call, error) {
	var out domain.Call
	err := s.docs.Update(ctx, func(doc *storedomain.Document) error {
		if _, ok := doc.Users[userID]; !ok {
			return apperrors.ErrNotFound
		}
		now := s.clock.Now()
		stamp := storedomain.FormatTime(now)
		record := storedomain.AudioCallRecord{
			ID:        s.idGen.New("audio_call"),
			UserID:    userID,
			StartedAt: stamp,
			Status:    storedomain.CallCompleted,
			CreatedAt: stamp,
		}
		doc.AudioCalls[record.ID] = record
		doc.RefreshStats(userID, now, s.statID)
		out = domain.FromRecord(record)
		return nil
	})
	return out, err
}

func (s *CallService) End(ctx context.Context, callID string, seconds int) (domain.Call, error) {
	var out domain.Call
	err := s.docs.Update(ctx, func(doc *storedomain.Document) error {
		record, ok := doc.AudioCalls[callID]
		if !ok {
			return apperrors.ErrNotFound
		}
		now := s.clock.Now()
		record.EndedAt = storedomain.FormatTime(now)
		record.Duration = seconds
		doc.AudioCalls[callID] = record
		doc.RefreshStats(record.UserID, now, s.statID)
		out = domain.FromRecord(record)
		return nil
	})
	return out, err
}

func (s *CallService) Get(ctx context.Context, callID string) (domain.Call, error) {
	var out domain.Call
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		record, ok := doc.AudioCalls[callID]
		if !ok {
			return apperrors.ErrNotFound
		}
		out = domain.FromRecord(record)
		return nil
	})
	return out, err
}

func (s *CallService) UserCalls(ctx context.Context, userID string, limit int) ([]domain.Call, error) {
	var records []storedomain.AudioCallRecord
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		for _, r := range doc.AudioCalls {
			if r.UserID == userID {
				records = append(records, r)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(records, func(a, b storedomain.AudioCallRecord) int {
		return cmp.Or(cmp.Compare(b.CreatedAt, a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})
	if len(records) > limit {
		records = records[:limit]
	}
	out := make([]domain.Call, 0, len(records))
	for _, r := range records {
		out = append(out, domain.FromRecord(r))
	}
	return out, nil
}
