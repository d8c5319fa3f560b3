package clock

import (
	"sync"
	"time"
)

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Monotonic never hands out the same millisecond twice. Stored timestamps are
// compared as millisecond ISO strings, so two records stamped inside the same
// millisecond would otherwise tie.
type Monotonic struct {
	base Clock
	mu   sync.Mutex
	last time.Time
}

func NewMonotonic(base Clock) *Monotonic {
	return &Monotonic{base: base}
}

func (m *Monotonic) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.base.Now().UTC().Truncate(time.Millisecond)
	if !now.After(m.last) {
		now = m.last.Add(time.Millisecond)
	}
	m.last = now
	return now
}
