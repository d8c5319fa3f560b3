package out

import "context"

// Backend holds exactly one serialized document. Load reports an empty slot
// with apperrors.ErrNotFound.
type Backend interface {
	Name() string
	Load(ctx context.Context) ([]byte, error)
	Store(ctx context.Context, payload []byte) error
	Close() error
}
