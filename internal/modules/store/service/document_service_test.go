package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	storeadapter "mindmate/internal/modules/store/adapter/out"
	"mindmate/internal/modules/store/domain"
	"mindmate/internal/modules/store/service"
	"mindmate/internal/platform/logger"
	"mindmate/internal/platform/tx"
)

type fixedClock struct{ at time.Time }

func (f fixedClock) Now() time.Time { return f.at }

var now = time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)

func TestEmptyStoreIsSeededOnceAndPersisted(t *testing.T) {
	t.Parallel()
	backend := storeadapter.NewMemoryBackend()
	svc := service.NewDocumentService(backend, &tx.Serial{}, fixedClock{at: now}, logger.NewNop())

	for i := 0; i < 3; i++ {
		err := svc.Read(context.Background(), func(doc domain.Document) error {
			if len(doc.Quotes) != 12 {
				t.Fatalf("expected 12 quotes, got %d", len(doc.Quotes))
			}
			return nil
		})
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
	}
	raw, err := backend.Load(context.Background())
	if err != nil {
		t.Fatalf("seed must be persisted: %v", err)
	}
	doc, err := domain.Decode(raw)
	if err != nil || len(doc.Quotes) != 12 {
		t.Fatalf("persisted seed broken: %v (%d quotes)", err, len(doc.Quotes))
	}
}

func TestCorruptDocumentIsLoggedAndReseeded(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	backend := storeadapter.NewMemoryBackend()
	_ = backend.Store(context.Background(), []byte("{{{ definitely not json"))
	svc := service.NewDocumentService(backend, &tx.Serial{}, fixedClock{at: now}, logger.FromZap(zap.New(core)))

	var quotes int
	if err := svc.Read(context.Background(), func(doc domain.Document) error {
		quotes = len(doc.Quotes)
		return nil
	}); err != nil {
		t.Fatalf("corrupt document must not surface an error: %v", err)
	}
	if quotes != 12 {
		t.Fatalf("expected reseeded quotes, got %d", quotes)
	}
	if logs.FilterMessage("stored document is corrupt, resetting store").Len() != 1 {
		t.Fatalf("expected corruption to be logged once, got %v", logs.All())
	}
	raw, _ := backend.Load(context.Background())
	if _, err := domain.Decode(raw); err != nil {
		t.Fatalf("reseeded document must be valid: %v", err)
	}
}

func TestFailedUpdateLeavesDocumentUntouched(t *testing.T) {
	t.Parallel()
	backend := storeadapter.NewMemoryBackend()
	svc := service.NewDocumentService(backend, &tx.Serial{}, fixedClock{at: now}, nil)
	if _, err := svc.Export(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}
	before, _ := backend.Load(context.Background())

	boom := errors.New("boom")
	err := svc.Update(context.Background(), func(doc *domain.Document) error {
		doc.Users["u"] = domain.UserRecord{ID: "u"}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	after, _ := backend.Load(context.Background())
	if string(before) != string(after) {
		t.Fatalf("document changed after failed update")
	}
}

func TestSerialUpdatesDoNotLoseWrites(t *testing.T) {
	t.Parallel()
	svc := service.NewDocumentService(storeadapter.NewMemoryBackend(), &tx.Serial{}, fixedClock{at: now}, nil)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i))
			_ = svc.Update(context.Background(), func(doc *domain.Document) error {
				doc.Users[id] = domain.UserRecord{ID: id, Email: id + "@x"}
				return nil
			})
		}(i)
	}
	wg.Wait()
	_ = svc.Read(context.Background(), func(doc domain.Document) error {
		if len(doc.Users) != 20 {
			t.Fatalf("expected all 20 writes to survive, got %d", len(doc.Users))
		}
		return nil
	})
}

func TestNoopManagerKeepsLostUpdateRace(t *testing.T) {
	t.Parallel()
	backend := storeadapter.NewMemoryBackend()
	svc := service.NewDocumentService(backend, tx.NoopManager{}, fixedClock{at: now}, nil)
	_, _ = svc.Export(context.Background())

	release := make(chan struct{})
	loaded := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- svc.Update(context.Background(), func(doc *domain.Document) error {
			close(loaded)
			<-release
			doc.Users["slow"] = domain.UserRecord{ID: "slow"}
			return nil
		})
	}()
	<-loaded
	if err := svc.Update(context.Background(), func(doc *domain.Document) error {
		doc.Users["fast"] = domain.UserRecord{ID: "fast"}
		return nil
	}); err != nil {
		t.Fatalf("fast update: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("slow update: %v", err)
	}
	_ = svc.Read(context.Background(), func(doc domain.Document) error {
		if _, ok := doc.Users["fast"]; ok {
			t.Fatalf("without serialization the slower cycle overwrites the faster one")
		}
		return nil
	})
}
