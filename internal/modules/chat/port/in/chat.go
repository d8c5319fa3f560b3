package in

import (
	"context"

	"mindmate/internal/modules/chat/dto"
)

type Usecase interface {
	CreateSession(ctx context.Context, input dto.CreateSessionInput) (dto.SessionOutput, error)
	EndSession(ctx context.Context, sessionID string) (dto.SessionOutput, error)
	AddMessage(ctx context.Context, input dto.AddMessageInput) (dto.MessageOutput, error)
	GetMessages(ctx context.Context, sessionID string) ([]dto.MessageOutput, error)
	GetUserSessions(ctx context.Context, input dto.ListSessionsInput) ([]dto.SessionOutput, error)
	Open(ctx context.Context, input dto.CreateSessionInput) (dto.OpenOutput, error)
	Reply(ctx context.Context, input dto.ReplyInput) (dto.ReplyOutput, error)
	Export(ctx context.Context, sessionID string) (dto.ExportOutput, error)
}
