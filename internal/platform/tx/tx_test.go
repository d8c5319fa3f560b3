package tx_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mindmate/internal/platform/tx"
)

func TestSerialDoesNotInterleave(t *testing.T) {
	t.Parallel()
	manager := &tx.Serial{}
	shared := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = manager.Within(context.Background(), func(context.Context) error {
				loaded := shared
				loaded++
				shared = loaded
				return nil
			})
		}()
	}
	wg.Wait()
	if shared != 50 {
		t.Fatalf("expected 50 serialized increments, got %d", shared)
	}
}

func TestSerialRejectsCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := (&tx.Serial{}).Within(ctx, func(context.Context) error {
		called = true
		return nil
	})
	if err == nil || called {
		t.Fatalf("expected cancelled context to short-circuit, err=%v called=%t", err, called)
	}
}

func TestSerialWaiterHonorsDeadline(t *testing.T) {
	t.Parallel()
	manager := &tx.Serial{}
	held := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- manager.Within(context.Background(), func(context.Context) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	called := false
	err := manager.Within(ctx, func(context.Context) error {
		called = true
		return nil
	})
	if !errors.Is(err, context.DeadlineExceeded) || called {
		t.Fatalf("expected waiter to give up, err=%v called=%t", err, called)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("holder: %v", err)
	}
	if err := manager.Within(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatalf("lock not released: %v", err)
	}
}
