package in

import (
	"context"

	"mindmate/internal/modules/assistant/dto"
)

type Usecase interface {
	Complete(ctx context.Context, input dto.CompleteInput) (dto.CompleteOutput, error)
	Transcribe(ctx context.Context, input dto.TranscribeInput) (dto.TranscribeOutput, error)
}
