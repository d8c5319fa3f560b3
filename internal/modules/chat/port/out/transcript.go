package out

import (
	"context"

	"mindmate/internal/modules/chat/domain"
)

type TranscriptWriter interface {
	Write(ctx context.Context, transcript domain.Transcript) (string, error)
}
