package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	meditationout "mindmate/internal/modules/meditation/adapter/out"
	"mindmate/internal/modules/meditation/dto"
	meditationin "mindmate/internal/modules/meditation/port/in"
	"mindmate/internal/modules/meditation/service"
	"mindmate/internal/modules/meditation/usecase"
	storeout "mindmate/internal/modules/store/adapter/out"
	storedomain "mindmate/internal/modules/store/domain"
	storeservice "mindmate/internal/modules/store/service"
	"mindmate/internal/platform/clock"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/id"
	"mindmate/internal/platform/logger"
	"mindmate/internal/platform/tx"
)

// steppingClock hands out the queued instants and then repeats the last one.
type steppingClock struct {
	values []time.Time
	idx    int
}

func (s *steppingClock) Now() time.Time {
	if s.idx >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.idx]
	s.idx++
	return v
}

type fixedClock struct{ at time.Time }

func (f fixedClock) Now() time.Time { return f.at }

const userID = "user_1"

func newUsecase(t *testing.T, svcClock clock.Clock) meditationin.Usecase {
	t.Helper()
	base := fixedClock{at: time.Date(2026, 7, 1, 7, 0, 0, 0, time.UTC)}
	docs := storeservice.NewDocumentService(storeout.NewMemoryBackend(), &tx.Serial{}, base, logger.NewNop())
	err := docs.Update(context.Background(), func(doc *storedomain.Document) error {
		doc.Users[userID] = storedomain.UserRecord{ID: userID, Name: "Мария", Email: "maria@example.com"}
		return nil
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	svc := service.NewMeditationService(svcClock, id.Prefixed{Clock: base}, docs)
	active := meditationout.NewFileActiveMeditationStore(filepath.Join(t.TempDir(), "active-meditation.json"))
	return usecase.NewInteractor(svc, active)
}

func rating(v int) *int { return &v }

func TestStatsAverageOnlyRatedSessions(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, fixedClock{at: time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)})
	ctx := context.Background()
	inputs := []dto.CreateSessionInput{
		{UserID: userID, MeditationTitle: "Утренняя медитация", Duration: 10, Rating: rating(5)},
		{UserID: userID, MeditationTitle: "Медитация для сна", Duration: 20},
		{UserID: userID, MeditationTitle: "Снятие стресса", Duration: 15, Rating: rating(3)},
	}
	for _, in := range inputs {
		if _, err := uc.CreateSession(ctx, in); err != nil {
			t.Fatalf("create %s: %v", in.MeditationTitle, err)
		}
	}
	stats, err := uc.GetUserStats(ctx, userID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSessions != 3 || stats.TotalMinutes != 45 || stats.AvgRating != 4 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	empty, _ := uc.GetUserStats(ctx, "user_other")
	if empty.AvgRating != 0 || empty.TotalSessions != 0 {
		t.Fatalf("expected zero stats, got %+v", empty)
	}
}

func TestCreateSessionValidation(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, fixedClock{at: time.Now()})
	ctx := context.Background()
	bad := []dto.CreateSessionInput{
		{UserID: userID},
		{UserID: userID, MeditationTitle: "x", Duration: -1},
		{UserID: userID, MeditationTitle: "x", Rating: rating(6)},
	}
	for _, in := range bad {
		if _, err := uc.CreateSession(ctx, in); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %+v, got %v", in, err)
		}
	}
	if _, err := uc.CreateSession(ctx, dto.CreateSessionInput{UserID: "user_ghost", MeditationTitle: "x"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected unknown user to be rejected, got %v", err)
	}
}

func TestStartCompleteRecordsWholeElapsedMinutes(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 7, 1, 21, 0, 0, 0, time.UTC)
	clk := &steppingClock{values: []time.Time{start, start.Add(12*time.Minute + 59*time.Second)}}
	uc := newUsecase(t, clk)
	ctx := context.Background()

	if _, err := uc.Start(ctx, dto.StartInput{UserID: userID, Title: "Медитация на дыхание"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.Start(ctx, dto.StartInput{UserID: userID, Title: "Другая"}); !errors.Is(err, apperrors.ErrActiveMeditationExists) {
		t.Fatalf("expected active meditation conflict, got %v", err)
	}
	active, err := uc.GetActive(ctx)
	if err != nil || active.Title != "Медитация на дыхание" {
		t.Fatalf("unexpected active %+v (%v)", active, err)
	}

	session, err := uc.Complete(ctx, dto.CompleteInput{Rating: rating(4), Notes: "спокойно"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if session.Duration != 12 || *session.Rating != 4 {
		t.Fatalf("unexpected session %+v", session)
	}
	if _, err := uc.GetActive(ctx); !errors.Is(err, apperrors.ErrNoActiveMeditation) {
		t.Fatalf("active meditation must be cleared, got %v", err)
	}
	if _, err := uc.Complete(ctx, dto.CompleteInput{}); !errors.Is(err, apperrors.ErrNoActiveMeditation) {
		t.Fatalf("expected no active meditation, got %v", err)
	}
}

func TestAbandonDropsActiveWithoutRecording(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, fixedClock{at: time.Date(2026, 7, 2, 6, 0, 0, 0, time.UTC)})
	ctx := context.Background()
	if _, err := uc.Start(ctx, dto.StartInput{UserID: userID, Title: "Снятие стресса"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := uc.Abandon(ctx); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	sessions, _ := uc.GetUserSessions(ctx, dto.ListInput{UserID: userID})
	if len(sessions) != 0 {
		t.Fatalf("abandon must not record a session, got %d", len(sessions))
	}
	if err := uc.Abandon(ctx); !errors.Is(err, apperrors.ErrNoActiveMeditation) {
		t.Fatalf("expected no active meditation, got %v", err)
	}
}

func TestCatalogListsSixGuidedMeditations(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, fixedClock{at: time.Now()})
	items := uc.Catalog(context.Background())
	if len(items) != 6 || items[1].Title != "Медитация для сна" || items[1].Minutes != 20 {
		t.Fatalf("unexpected catalog %+v", items)
	}
}
