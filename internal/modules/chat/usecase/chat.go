package usecase

import (
	"context"
	"fmt"
	"strings"

	assistantdto "mindmate/internal/modules/assistant/dto"
	assistantin "mindmate/internal/modules/assistant/port/in"
	"mindmate/internal/modules/chat/domain"
	"mindmate/internal/modules/chat/dto"
	chatin "mindmate/internal/modules/chat/port/in"
	chatout "mindmate/internal/modules/chat/port/out"
	"mindmate/internal/modules/chat/service"
	storedomain "mindmate/internal/modules/store/domain"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/logger"
)

type Interactor struct {
	svc         *service.ChatService
	assistant   assistantin.Usecase
	transcripts chatout.TranscriptWriter
	log         *logger.Logger
}

// NewInteractor wires the chat usecase. Without an assistant every reply is
// the fallback line; without a transcript writer Export fails.
func NewInteractor(svc *service.ChatService, assistant assistantin.Usecase, transcripts chatout.TranscriptWriter, log *logger.Logger) chatin.Usecase {
	if log == nil {
		log = logger.NewNop()
	}
	return &Interactor{svc: svc, assistant: assistant, transcripts: transcripts, log: log.With("component", "chat")}
}

func (i *Interactor) CreateSession(ctx context.Context, input dto.CreateSessionInput) (dto.SessionOutput, error) {
	if err := requireID("user id", input.UserID); err != nil {
		return dto.SessionOutput{}, err
	}
	session, err := i.svc.CreateSession(ctx, input.UserID, strings.TrimSpace(input.Title))
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) EndSession(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	if err := requireID("session id", sessionID); err != nil {
		return dto.SessionOutput{}, err
	}
	session, err := i.svc.EndSession(ctx, sessionID)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) AddMessage(ctx context.Context, input dto.AddMessageInput) (dto.MessageOutput, error) {
	if err := requireID("session id", input.SessionID); err != nil {
		return dto.MessageOutput{}, err
	}
	if err := requireID("user id", input.UserID); err != nil {
		return dto.MessageOutput{}, err
	}
	role := storedomain.Role(input.Role)
	if err := role.Validate(); err != nil {
		return dto.MessageOutput{}, err
	}
	msg, err := i.svc.AddMessage(ctx, input.SessionID, input.UserID, input.Content, role)
	if err != nil {
		return dto.MessageOutput{}, err
	}
	return toMessageOutput(msg), nil
}

func (i *Interactor) GetMessages(ctx context.Context, sessionID string) ([]dto.MessageOutput, error) {
	messages, err := i.svc.Messages(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MessageOutput, 0, len(messages))
	for _, m := range messages {
		out = append(out, toMessageOutput(m))
	}
	return out, nil
}

func (i *Interactor) GetUserSessions(ctx context.Context, input dto.ListSessionsInput) ([]dto.SessionOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = domain.DefaultSessionLimit
	}
	sessions, err := i.svc.UserSessions(ctx, input.UserID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionOutput(s))
	}
	return out, nil
}

// Open starts a conversation the way the chat screen does: a fresh session
// whose first message is the psychologist's greeting.
func (i *Interactor) Open(ctx context.Context, input dto.CreateSessionInput) (dto.OpenOutput, error) {
	session, err := i.CreateSession(ctx, input)
	if err != nil {
		return dto.OpenOutput{}, err
	}
	greeting, err := i.svc.AddMessage(ctx, session.ID, session.UserID, domain.Greeting, storedomain.RoleAssistant)
	if err != nil {
		return dto.OpenOutput{}, err
	}
	session.MessageCount++
	return dto.OpenOutput{Session: session, Greeting: toMessageOutput(greeting)}, nil
}

func (i *Interactor) Reply(ctx context.Context, input dto.ReplyInput) (dto.ReplyOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return dto.ReplyOutput{}, fmt.Errorf("%w: message text is required", apperrors.ErrInvalidInput)
	}
	userMsg, err := i.AddMessage(ctx, dto.AddMessageInput{SessionID: input.SessionID, UserID: input.UserID, Content: text, Role: string(storedomain.RoleUser)})
	if err != nil {
		return dto.ReplyOutput{}, err
	}
	history, err := i.svc.Messages(ctx, input.SessionID)
	if err != nil {
		return dto.ReplyOutput{}, err
	}

	answer, fallback := i.complete(ctx, history)
	reply, err := i.svc.AddMessage(ctx, input.SessionID, input.UserID, answer, storedomain.RoleAssistant)
	if err != nil {
		return dto.ReplyOutput{}, err
	}
	return dto.ReplyOutput{UserMessage: userMsg, Reply: toMessageOutput(reply), Fallback: fallback}, nil
}

func (i *Interactor) complete(ctx context.Context, history []domain.Message) (string, bool) {
	if i.assistant == nil {
		return domain.Fallback, true
	}
	turns := make([]assistantdto.TurnInput, 0, len(history))
	for _, m := range history {
		turns = append(turns, assistantdto.TurnInput{Role: string(m.Role), Content: m.Content})
	}
	out, err := i.assistant.Complete(ctx, assistantdto.CompleteInput{Persona: "chat", Turns: turns})
	if err != nil {
		i.log.Warn("assistant unavailable, sending fallback", "turns", len(turns), "error", err)
		return domain.Fallback, true
	}
	return out.Text, false
}

func (i *Interactor) Export(ctx context.Context, sessionID string) (dto.ExportOutput, error) {
	if i.transcripts == nil {
		return dto.ExportOutput{}, fmt.Errorf("transcript export is not configured")
	}
	session, err := i.svc.Session(ctx, sessionID)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	messages, err := i.svc.Messages(ctx, sessionID)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	path, err := i.transcripts.Write(ctx, domain.Transcript{Session: session, Messages: messages})
	if err != nil {
		return dto.ExportOutput{}, err
	}
	i.log.Info("transcript exported", "session_id", sessionID, "path", path, "messages", len(messages))
	return dto.ExportOutput{SessionID: sessionID, Path: path, Messages: len(messages)}, nil
}

func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", apperrors.ErrInvalidInput, name)
	}
	return nil
}

func toSessionOutput(s domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		ID:           s.ID,
		UserID:       s.UserID,
		Title:        s.Title,
		StartedAt:    s.StartedAt,
		EndedAt:      s.EndedAt,
		MessageCount: s.MessageCount,
		CreatedAt:    s.CreatedAt,
	}
}

func toMessageOutput(m domain.Message) dto.MessageOutput {
	return dto.MessageOutput{
		ID:        m.ID,
		SessionID: m.SessionID,
		UserID:    m.UserID,
		Content:   m.Content,
		Role:      string(m.Role),
		Timestamp: m.Timestamp,
	}
}
