package out

import (
	"context"

	"mindmate/internal/modules/meditation/domain"
)

type ActiveStore interface {
	SaveActive(ctx context.Context, active domain.Active) error
	LoadActive(ctx context.Context) (domain.Active, error)
	ClearActive(ctx context.Context) error
}
