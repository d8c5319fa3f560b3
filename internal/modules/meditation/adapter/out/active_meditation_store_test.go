package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	meditationout "mindmate/internal/modules/meditation/adapter/out"
	"mindmate/internal/modules/meditation/domain"
	apperrors "mindmate/internal/platform/errors"
)

func TestActiveMeditationReplacesFileWithoutLeftovers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	store := meditationout.NewFileActiveMeditationStore(filepath.Join(dir, "state", "active-meditation.json"))

	if _, err := store.LoadActive(ctx); !errors.Is(err, apperrors.ErrNoActiveMeditation) {
		t.Fatalf("expected no active meditation, got %v", err)
	}

	first := domain.Active{UserID: "user_1", Title: "Дыхание 4-7-8", StartedAt: time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)}
	second := domain.Active{UserID: "user_1", Title: "Сканирование тела", StartedAt: time.Date(2026, 3, 1, 7, 5, 0, 0, time.UTC)}
	for _, active := range []domain.Active{first, second} {
		if err := store.SaveActive(ctx, active); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	got, err := store.LoadActive(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(second, got); diff != "" {
		t.Fatalf("active mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "state"))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "active-meditation.json" {
		t.Fatalf("unexpected files after save: %v", entries)
	}

	if err := store.ClearActive(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := store.ClearActive(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if _, err := store.LoadActive(ctx); !errors.Is(err, apperrors.ErrNoActiveMeditation) {
		t.Fatalf("expected cleared meditation, got %v", err)
	}
}

func TestActiveMeditationRejectsIncompleteState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "active-meditation.json")
	store := meditationout.NewFileActiveMeditationStore(path)

	if err := store.SaveActive(ctx, domain.Active{UserID: "user_1", Title: "Утро"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input without start stamp, got %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"user_id":"user_1","title":""}`), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := store.LoadActive(ctx); !errors.Is(err, apperrors.ErrNoActiveMeditation) {
		t.Fatalf("expected incomplete file to read as none, got %v", err)
	}
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := store.LoadActive(ctx); err == nil || errors.Is(err, apperrors.ErrNoActiveMeditation) {
		t.Fatalf("expected decode error, got %v", err)
	}
}
