package in

import (
	"context"

	"mindmate/internal/modules/stats/dto"
)

type Usecase interface {
	Refresh(ctx context.Context, userID string) (dto.StatsOutput, error)
	Get(ctx context.Context, userID string) (dto.StatsOutput, error)
	RecentActivity(ctx context.Context, input dto.ActivityInput) ([]dto.ActivityOutput, error)
}
