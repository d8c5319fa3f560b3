package out

import (
	"context"
	"sync"

	storeout "mindmate/internal/modules/store/port/out"
	apperrors "mindmate/internal/platform/errors"
)

// MemoryBackend keeps the slot in process memory. Payloads are copied on the
// way in and out so callers never share a buffer with the slot.
type MemoryBackend struct {
	mu      sync.Mutex
	payload []byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

var _ storeout.Backend = (*MemoryBackend)(nil)

func (b *MemoryBackend) Name() string { return "memory" }

func (b *MemoryBackend) Load(_ context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.payload == nil {
		return nil, apperrors.ErrNotFound
	}
	return append([]byte(nil), b.payload...), nil
}

func (b *MemoryBackend) Store(_ context.Context, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.payload = append([]byte{}, payload...)
	return nil
}

func (b *MemoryBackend) Close() error { return nil }
