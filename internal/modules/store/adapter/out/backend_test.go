package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	storeadapter "mindmate/internal/modules/store/adapter/out"
	storeout "mindmate/internal/modules/store/port/out"
	apperrors "mindmate/internal/platform/errors"
)

func exerciseBackend(t *testing.T, backend storeout.Backend) {
	t.Helper()
	ctx := context.Background()
	if _, err := backend.Load(ctx); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("%s: expected empty slot to report not found, got %v", backend.Name(), err)
	}
	if err := backend.Store(ctx, []byte(`{"users":{}}`)); err != nil {
		t.Fatalf("%s: store: %v", backend.Name(), err)
	}
	if err := backend.Store(ctx, []byte(`{"quotes":{}}`)); err != nil {
		t.Fatalf("%s: overwrite: %v", backend.Name(), err)
	}
	got, err := backend.Load(ctx)
	if err != nil {
		t.Fatalf("%s: load: %v", backend.Name(), err)
	}
	if string(got) != `{"quotes":{}}` {
		t.Fatalf("%s: expected last write to win, got %s", backend.Name(), got)
	}
	got[0] = 'X'
	again, _ := backend.Load(ctx)
	if string(again) != `{"quotes":{}}` {
		t.Fatalf("%s: load must not alias the slot", backend.Name())
	}
	if err := backend.Close(); err != nil {
		t.Fatalf("%s: close: %v", backend.Name(), err)
	}
}

func TestMemoryBackend(t *testing.T) {
	t.Parallel()
	exerciseBackend(t, storeadapter.NewMemoryBackend())
}

func TestFileBackend(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "store.json")
	exerciseBackend(t, storeadapter.NewFileBackend(path))
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, got %d entries", len(entries))
	}
}

func TestSQLiteBackend(t *testing.T) {
	t.Parallel()
	backend, err := storeadapter.NewSQLiteBackend(filepath.Join(t.TempDir(), "mindmate.db"), "slot-a")
	if err != nil {
		t.Fatalf("open sqlite backend: %v", err)
	}
	exerciseBackend(t, backend)
}

func TestSQLiteBackendSlotsAreIndependent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "mindmate.db")
	a, err := storeadapter.NewSQLiteBackend(path, "a")
	if err != nil {
		t.Fatalf("open a: %v", err)
	}
	defer a.Close()
	if err := a.Store(context.Background(), []byte("{}")); err != nil {
		t.Fatalf("store a: %v", err)
	}
	b, err := storeadapter.NewSQLiteBackend(path, "b")
	if err != nil {
		t.Fatalf("open b: %v", err)
	}
	defer b.Close()
	if _, err := b.Load(context.Background()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("slot b must start empty, got %v", err)
	}
}

func TestRedisBackend(t *testing.T) {
	addr := os.Getenv("MINDMATE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("MINDMATE_TEST_REDIS_ADDR not set")
	}
	backend, err := storeadapter.NewRedisBackend(context.Background(), addr, 0, "mindmate-test-"+t.Name())
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	exerciseBackend(t, backend)
}
