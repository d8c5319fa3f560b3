package tx

import (
	"context"
	"sync"
)

// Manager wraps transactional boundaries for multi-adapter operations.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// Serial admits one boundary at a time. Whole-document load/mutate/save cycles
// run inside it so that two callers in the same process cannot interleave
// between load and save. A caller whose context ends while waiting gives up
// without running fn. The zero value is ready to use.
type Serial struct {
	once sync.Once
	slot chan struct{}
}

func (s *Serial) Within(ctx context.Context, fn func(context.Context) error) error {
	s.once.Do(func() { s.slot = make(chan struct{}, 1) })
	select {
	case s.slot <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.slot }()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
