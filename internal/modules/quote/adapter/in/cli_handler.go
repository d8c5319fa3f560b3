package in

import (
	"context"

	"mindmate/internal/modules/quote/dto"
	quotein "mindmate/internal/modules/quote/port/in"
)

type CLIHandler struct {
	usecase quotein.Usecase
}

func NewCLIHandler(usecase quotein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.QuoteOutput, error) {
	return h.usecase.GetAll(ctx)
}

func (h CLIHandler) View(ctx context.Context, userID, quoteID string, liked bool) (dto.ViewOutput, error) {
	return h.usecase.View(ctx, dto.ViewInput{UserID: userID, QuoteID: quoteID, Liked: liked})
}

func (h CLIHandler) ToggleLike(ctx context.Context, userID, quoteID string) (dto.ViewOutput, error) {
	return h.usecase.ToggleLike(ctx, dto.ToggleLikeInput{UserID: userID, QuoteID: quoteID})
}

func (h CLIHandler) Views(ctx context.Context, userID string, limit int) ([]dto.ViewedQuoteOutput, error) {
	return h.usecase.GetUserViews(ctx, dto.ListInput{UserID: userID, Limit: limit})
}

func (h CLIHandler) Liked(ctx context.Context, userID string, limit int) ([]dto.ViewedQuoteOutput, error) {
	return h.usecase.GetUserLikedQuotes(ctx, dto.ListInput{UserID: userID, Limit: limit})
}

func (h CLIHandler) Stats(ctx context.Context, userID string) (dto.StatsOutput, error) {
	return h.usecase.GetUserQuoteStats(ctx, userID)
}
