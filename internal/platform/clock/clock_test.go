package clock_test

import (
	"testing"
	"time"

	"mindmate/internal/platform/clock"
)

type frozen struct{ at time.Time }

func (f frozen) Now() time.Time { return f.at }

func TestMonotonicAdvancesPastFrozenBase(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 3, 1, 9, 0, 0, 400_000, time.UTC)
	clk := clock.NewMonotonic(frozen{at: at})

	first := clk.Now()
	second := clk.Now()
	third := clk.Now()

	if !first.Equal(at.Truncate(time.Millisecond)) {
		t.Fatalf("expected first tick at base millisecond, got %s", first)
	}
	if second.Sub(first) != time.Millisecond || third.Sub(second) != time.Millisecond {
		t.Fatalf("expected 1ms steps, got %s %s %s", first, second, third)
	}
}

func TestSystemClockIsUTC(t *testing.T) {
	t.Parallel()
	if loc := (clock.SystemClock{}).Now().Location(); loc != time.UTC {
		t.Fatalf("expected UTC, got %s", loc)
	}
}
