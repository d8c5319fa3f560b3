package in

import (
	"context"

	"mindmate/internal/modules/chat/dto"
	chatin "mindmate/internal/modules/chat/port/in"
)

type CLIHandler struct {
	usecase chatin.Usecase
}

func NewCLIHandler(usecase chatin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Open(ctx context.Context, userID, title string) (dto.OpenOutput, error) {
	return h.usecase.Open(ctx, dto.CreateSessionInput{UserID: userID, Title: title})
}

func (h CLIHandler) Say(ctx context.Context, sessionID, userID, text string) (dto.ReplyOutput, error) {
	return h.usecase.Reply(ctx, dto.ReplyInput{SessionID: sessionID, UserID: userID, Text: text})
}

func (h CLIHandler) End(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	return h.usecase.EndSession(ctx, sessionID)
}

func (h CLIHandler) History(ctx context.Context, sessionID string) ([]dto.MessageOutput, error) {
	return h.usecase.GetMessages(ctx, sessionID)
}

func (h CLIHandler) Sessions(ctx context.Context, userID string, limit int) ([]dto.SessionOutput, error) {
	return h.usecase.GetUserSessions(ctx, dto.ListSessionsInput{UserID: userID, Limit: limit})
}

func (h CLIHandler) Export(ctx context.Context, sessionID string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, sessionID)
}
