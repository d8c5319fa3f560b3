package in

import (
	"context"

	"mindmate/internal/modules/store/domain"
)

// Documents runs whole-document cycles. fn must not call back into Documents.
type Documents interface {
	Read(ctx context.Context, fn func(doc domain.Document) error) error
	Update(ctx context.Context, fn func(doc *domain.Document) error) error
	Export(ctx context.Context) ([]byte, error)
}
