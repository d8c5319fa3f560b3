package in

import (
	"context"

	"mindmate/internal/modules/meditation/dto"
)

type Usecase interface {
	CreateSession(ctx context.Context, input dto.CreateSessionInput) (dto.SessionOutput, error)
	GetUserSessions(ctx context.Context, input dto.ListInput) ([]dto.SessionOutput, error)
	GetUserStats(ctx context.Context, userID string) (dto.StatsOutput, error)
	Catalog(ctx context.Context) []dto.CatalogItemOutput
	Start(ctx context.Context, input dto.StartInput) (dto.ActiveOutput, error)
	GetActive(ctx context.Context) (dto.ActiveOutput, error)
	Complete(ctx context.Context, input dto.CompleteInput) (dto.SessionOutput, error)
	Abandon(ctx context.Context) error
}
