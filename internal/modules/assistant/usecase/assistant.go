package usecase

import (
	"context"
	"fmt"
	"strings"

	"mindmate/internal/modules/assistant/domain"
	"mindmate/internal/modules/assistant/dto"
	assistantin "mindmate/internal/modules/assistant/port/in"
	"mindmate/internal/modules/assistant/service"
	apperrors "mindmate/internal/platform/errors"
)

type Interactor struct {
	svc *service.AssistantService
}

func NewInteractor(svc *service.AssistantService) assistantin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Complete(ctx context.Context, input dto.CompleteInput) (dto.CompleteOutput, error) {
	turns := make([]domain.Turn, 0, len(input.Turns))
	for _, t := range input.Turns {
		role := domain.Role(t.Role)
		if role != domain.RoleUser && role != domain.RoleAssistant {
			return dto.CompleteOutput{}, fmt.Errorf("%w: unsupported role %q", apperrors.ErrInvalidInput, t.Role)
		}
		if strings.TrimSpace(t.Content) == "" {
			continue
		}
		turns = append(turns, domain.Turn{Role: role, Content: t.Content})
	}
	if len(turns) == 0 {
		return dto.CompleteOutput{}, fmt.Errorf("%w: conversation is empty", apperrors.ErrInvalidInput)
	}
	text, err := i.svc.Complete(ctx, domain.Persona(input.Persona), turns)
	if err != nil {
		return dto.CompleteOutput{}, err
	}
	return dto.CompleteOutput{Text: text}, nil
}

func (i *Interactor) Transcribe(ctx context.Context, input dto.TranscribeInput) (dto.TranscribeOutput, error) {
	if len(input.Audio) == 0 {
		return dto.TranscribeOutput{}, fmt.Errorf("%w: audio is empty", apperrors.ErrInvalidInput)
	}
	filename := input.Filename
	if filename == "" {
		filename = "speech.webm"
	}
	text, err := i.svc.Transcribe(ctx, input.Audio, filename)
	if err != nil {
		return dto.TranscribeOutput{}, err
	}
	return dto.TranscribeOutput{Text: text}, nil
}
