package in

import (
	"context"

	"mindmate/internal/modules/stats/dto"
	statsin "mindmate/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context, userID string) (dto.StatsOutput, error) {
	return h.usecase.Get(ctx, userID)
}

func (h CLIHandler) Refresh(ctx context.Context, userID string) (dto.StatsOutput, error) {
	return h.usecase.Refresh(ctx, userID)
}

func (h CLIHandler) Activity(ctx context.Context, userID string, limit int) ([]dto.ActivityOutput, error) {
	return h.usecase.RecentActivity(ctx, dto.ActivityInput{UserID: userID, Limit: limit})
}
