package in

import (
	"context"

	"mindmate/internal/modules/quote/dto"
)

type Usecase interface {
	GetAll(ctx context.Context) ([]dto.QuoteOutput, error)
	View(ctx context.Context, input dto.ViewInput) (dto.ViewOutput, error)
	ToggleLike(ctx context.Context, input dto.ToggleLikeInput) (dto.ViewOutput, error)
	GetUserViews(ctx context.Context, input dto.ListInput) ([]dto.ViewedQuoteOutput, error)
	GetUserLikedQuotes(ctx context.Context, input dto.ListInput) ([]dto.ViewedQuoteOutput, error)
	GetUserQuoteStats(ctx context.Context, userID string) (dto.StatsOutput, error)
}
