package usecase_test

import (
	"context"
	"errors"
	"testing"

	"mindmate/internal/modules/assistant/domain"
	"mindmate/internal/modules/assistant/dto"
	"mindmate/internal/modules/assistant/service"
	"mindmate/internal/modules/assistant/usecase"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/logger"
)

type recordingCompleter struct {
	system string
	turns  []domain.Turn
	reply  string
	err    error
}

func (r *recordingCompleter) Complete(_ context.Context, system string, turns []domain.Turn) (string, error) {
	r.system = system
	r.turns = turns
	return r.reply, r.err
}

func TestCompleteSelectsPersonaAndSkipsBlankTurns(t *testing.T) {
	t.Parallel()
	completer := &recordingCompleter{reply: " ok "}
	uc := usecase.NewInteractor(service.NewAssistantService(completer, nil, logger.NewNop()))

	out, err := uc.Complete(context.Background(), dto.CompleteInput{
		Persona: "voice",
		Turns:   []dto.TurnInput{{Role: "user", Content: "  "}, {Role: "user", Content: "привет"}},
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.Text != "ok" {
		t.Fatalf("expected trimmed reply, got %q", out.Text)
	}
	if len(completer.turns) != 1 {
		t.Fatalf("blank turns must be dropped, got %d", len(completer.turns))
	}
	voice, _ := domain.PersonaVoice.SystemPrompt()
	if completer.system != voice {
		t.Fatalf("voice persona prompt not used")
	}
}

func TestCompleteValidatesInput(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewAssistantService(&recordingCompleter{reply: "x"}, nil, nil))
	cases := []dto.CompleteInput{
		{},
		{Turns: []dto.TurnInput{{Role: "system", Content: "x"}}},
		{Persona: "poet", Turns: []dto.TurnInput{{Role: "user", Content: "x"}}},
	}
	for _, in := range cases {
		if _, err := uc.Complete(context.Background(), in); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %+v, got %v", in, err)
		}
	}
}

func TestProviderFailureAndMissingTranscriberSurface(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewAssistantService(&recordingCompleter{err: errors.New("timeout")}, nil, nil))
	if _, err := uc.Complete(context.Background(), dto.CompleteInput{Turns: []dto.TurnInput{{Role: "user", Content: "x"}}}); err == nil {
		t.Fatalf("expected provider error")
	}
	if _, err := uc.Transcribe(context.Background(), dto.TranscribeInput{Audio: []byte{1}}); !errors.Is(err, service.ErrNoTranscriber) {
		t.Fatalf("expected missing transcriber error, got %v", err)
	}
}
