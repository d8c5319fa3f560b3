package in

import (
	"context"

	"mindmate/internal/modules/call/dto"
	callin "mindmate/internal/modules/call/port/in"
)

type CLIHandler struct {
	usecase callin.Usecase
}

func NewCLIHandler(usecase callin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, userID string) (dto.CallOutput, error) {
	return h.usecase.Create(ctx, dto.CreateInput{UserID: userID})
}

func (h CLIHandler) End(ctx context.Context, callID string, seconds int) (dto.CallOutput, error) {
	return h.usecase.End(ctx, dto.EndInput{CallID: callID, Duration: seconds})
}

func (h CLIHandler) List(ctx context.Context, userID string, limit int) ([]dto.CallOutput, error) {
	return h.usecase.GetUserCalls(ctx, dto.ListInput{UserID: userID, Limit: limit})
}

func (h CLIHandler) Say(ctx context.Context, callID string, audio []byte, filename string) (dto.ConverseOutput, error) {
	return h.usecase.Converse(ctx, dto.ConverseInput{CallID: callID, Audio: audio, Filename: filename})
}
