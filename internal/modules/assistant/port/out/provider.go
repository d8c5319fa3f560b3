package out

import (
	"context"

	"mindmate/internal/modules/assistant/domain"
)

type Completer interface {
	Complete(ctx context.Context, system string, turns []domain.Turn) (string, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}
