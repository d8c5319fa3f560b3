package usecase

import (
	"context"
	"fmt"
	"strings"

	assistantdto "mindmate/internal/modules/assistant/dto"
	assistantin "mindmate/internal/modules/assistant/port/in"
	"mindmate/internal/modules/call/domain"
	"mindmate/internal/modules/call/dto"
	callin "mindmate/internal/modules/call/port/in"
	"mindmate/internal/modules/call/service"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/logger"
)

type Interactor struct {
	svc       *service.CallService
	assistant assistantin.Usecase
	log       *logger.Logger
}

func NewInteractor(svc *service.CallService, assistant assistantin.Usecase, log *logger.Logger) callin.Usecase {
	if log == nil {
		log = logger.NewNop()
	}
	return &Interactor{svc: svc, assistant: assistant, log: log.With("component", "call")}
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateInput) (dto.CallOutput, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return dto.CallOutput{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	call, err := i.svc.Create(ctx, input.UserID)
	if err != nil {
		return dto.CallOutput{}, err
	}
	return toOutput(call), nil
}

func (i *Interactor) End(ctx context.Context, input dto.EndInput) (dto.CallOutput, error) {
	if input.Duration < 0 {
		return dto.CallOutput{}, fmt.Errorf("%w: duration must be non-negative", apperrors.ErrInvalidInput)
	}
	call, err := i.svc.End(ctx, input.CallID, input.Duration)
	if err != nil {
		return dto.CallOutput{}, err
	}
	return toOutput(call), nil
}

func (i *Interactor) GetUserCalls(ctx context.Context, input dto.ListInput) ([]dto.CallOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	calls, err := i.svc.UserCalls(ctx, input.UserID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CallOutput, 0, len(calls))
	for _, c := range calls {
		out = append(out, toOutput(c))
	}
	return out, nil
}

// Converse turns one spoken utterance into a spoken-style reply. Nothing is
// persisted; the caller keeps the running history.
func (i *Interactor) Converse(ctx context.Context, input dto.ConverseInput) (dto.ConverseOutput, error) {
	if len(input.Audio) == 0 {
		return dto.ConverseOutput{}, fmt.Errorf("%w: audio is empty", apperrors.ErrInvalidInput)
	}
	if _, err := i.svc.Get(ctx, input.CallID); err != nil {
		return dto.ConverseOutput{}, err
	}
	out := dto.ConverseOutput{CallID: input.CallID}
	if i.assistant == nil {
		out.Reply, out.Fallback = domain.Unavailable, true
		return out, nil
	}

	heard, err := i.assistant.Transcribe(ctx, assistantdto.TranscribeInput{Audio: input.Audio, Filename: input.Filename})
	if err != nil || strings.TrimSpace(heard.Text) == "" {
		i.log.Warn("could not transcribe utterance", "call_id", input.CallID, "bytes", len(input.Audio), "error", err)
		out.Reply, out.Fallback = domain.NotHeard, true
		return out, nil
	}
	out.Transcript = heard.Text

	turns := make([]assistantdto.TurnInput, 0, len(input.History)+1)
	for _, t := range input.History {
		turns = append(turns, assistantdto.TurnInput{Role: t.Role, Content: t.Content})
	}
	turns = append(turns, assistantdto.TurnInput{Role: "user", Content: heard.Text})
	answer, err := i.assistant.Complete(ctx, assistantdto.CompleteInput{Persona: "voice", Turns: turns})
	if err != nil {
		i.log.Warn("assistant unavailable during call", "call_id", input.CallID, "error", err)
		out.Reply, out.Fallback = domain.Unavailable, true
		return out, nil
	}
	out.Reply = answer.Text
	return out, nil
}

func toOutput(c domain.Call) dto.CallOutput {
	return dto.CallOutput{
		ID:        c.ID,
		UserID:    c.UserID,
		StartedAt: c.StartedAt,
		EndedAt:   c.EndedAt,
		Duration:  c.Duration,
		Status:    string(c.Status),
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}
