package in

import (
	"context"

	"mindmate/internal/modules/meditation/dto"
	meditationin "mindmate/internal/modules/meditation/port/in"
)

type CLIHandler struct {
	usecase meditationin.Usecase
}

func NewCLIHandler(usecase meditationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Catalog(ctx context.Context) []dto.CatalogItemOutput {
	return h.usecase.Catalog(ctx)
}

func (h CLIHandler) Log(ctx context.Context, input dto.CreateSessionInput) (dto.SessionOutput, error) {
	return h.usecase.CreateSession(ctx, input)
}

func (h CLIHandler) Start(ctx context.Context, userID, title string) (dto.ActiveOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{UserID: userID, Title: title})
}

func (h CLIHandler) Active(ctx context.Context) (dto.ActiveOutput, error) {
	return h.usecase.GetActive(ctx)
}

func (h CLIHandler) Complete(ctx context.Context, rating *int, notes string) (dto.SessionOutput, error) {
	return h.usecase.Complete(ctx, dto.CompleteInput{Rating: rating, Notes: notes})
}

func (h CLIHandler) Abandon(ctx context.Context) error {
	return h.usecase.Abandon(ctx)
}

func (h CLIHandler) History(ctx context.Context, userID string, limit int) ([]dto.SessionOutput, error) {
	return h.usecase.GetUserSessions(ctx, dto.ListInput{UserID: userID, Limit: limit})
}

func (h CLIHandler) Stats(ctx context.Context, userID string) (dto.StatsOutput, error) {
	return h.usecase.GetUserStats(ctx, userID)
}
