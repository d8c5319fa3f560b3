package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mindmate/internal/modules/assistant/domain"
	assistantout "mindmate/internal/modules/assistant/port/out"
	"mindmate/internal/platform/logger"
)

var ErrNoTranscriber = errors.New("speech transcription is not configured")

type AssistantService struct {
	completer   assistantout.Completer
	transcriber assistantout.Transcriber
	log         *logger.Logger
}

// NewAssistantService accepts a nil transcriber; Transcribe then always fails.
func NewAssistantService(completer assistantout.Completer, transcriber assistantout.Transcriber, log *logger.Logger) *AssistantService {
	if log == nil {
		log = logger.NewNop()
	}
	return &AssistantService{completer: completer, transcriber: transcriber, log: log.With("component", "assistant")}
}

func (s *AssistantService) Complete(ctx context.Context, persona domain.Persona, turns []domain.Turn) (string, error) {
	system, err := persona.SystemPrompt()
	if err != nil {
		return "", err
	}
	started := time.Now()
	text, err := s.completer.Complete(ctx, system, turns)
	if err != nil {
		s.log.Warn("completion failed", "persona", string(persona), "turns", len(turns), "error", err)
		return "", fmt.Errorf("complete: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("complete: empty completion")
	}
	s.log.Debug("completion finished", "persona", string(persona), "turns", len(turns), "elapsed", time.Since(started))
	return text, nil
}

func (s *AssistantService) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if s.transcriber == nil {
		return "", ErrNoTranscriber
	}
	text, err := s.transcriber.Transcribe(ctx, audio, filename)
	if err != nil {
		s.log.Warn("transcription failed", "bytes", len(audio), "error", err)
		return "", fmt.Errorf("transcribe: %w", err)
	}
	return strings.TrimSpace(text), nil
}
