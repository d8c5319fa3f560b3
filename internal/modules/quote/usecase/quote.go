package usecase

import (
	"context"
	"fmt"
	"strings"

	"mindmate/internal/modules/quote/domain"
	"mindmate/internal/modules/quote/dto"
	quotein "mindmate/internal/modules/quote/port/in"
	"mindmate/internal/modules/quote/service"
	apperrors "mindmate/internal/platform/errors"
)

type Interactor struct {
	svc *service.QuoteService
}

func NewInteractor(svc *service.QuoteService) quotein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GetAll(ctx context.Context) ([]dto.QuoteOutput, error) {
	quotes, err := i.svc.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuoteOutput, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, toQuoteOutput(q))
	}
	return out, nil
}

func (i *Interactor) View(ctx context.Context, input dto.ViewInput) (dto.ViewOutput, error) {
	if err := requirePair(input.UserID, input.QuoteID); err != nil {
		return dto.ViewOutput{}, err
	}
	view, err := i.svc.View(ctx, input.UserID, input.QuoteID, input.Liked)
	if err != nil {
		return dto.ViewOutput{}, err
	}
	return toViewOutput(view), nil
}

func (i *Interactor) ToggleLike(ctx context.Context, input dto.ToggleLikeInput) (dto.ViewOutput, error) {
	if err := requirePair(input.UserID, input.QuoteID); err != nil {
		return dto.ViewOutput{}, err
	}
	view, err := i.svc.ToggleLike(ctx, input.UserID, input.QuoteID)
	if err != nil {
		return dto.ViewOutput{}, err
	}
	return toViewOutput(view), nil
}

func (i *Interactor) GetUserViews(ctx context.Context, input dto.ListInput) ([]dto.ViewedQuoteOutput, error) {
	return i.list(ctx, input, false, domain.DefaultViewLimit)
}

func (i *Interactor) GetUserLikedQuotes(ctx context.Context, input dto.ListInput) ([]dto.ViewedQuoteOutput, error) {
	return i.list(ctx, input, true, domain.DefaultLikedLimit)
}

func (i *Interactor) list(ctx context.Context, input dto.ListInput, likedOnly bool, defaultLimit int) ([]dto.ViewedQuoteOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	viewed, err := i.svc.UserViews(ctx, input.UserID, likedOnly, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ViewedQuoteOutput, 0, len(viewed))
	for _, v := range viewed {
		out = append(out, dto.ViewedQuoteOutput{ViewOutput: toViewOutput(v.View), Quote: toQuoteOutput(v.Quote)})
	}
	return out, nil
}

func (i *Interactor) GetUserQuoteStats(ctx context.Context, userID string) (dto.StatsOutput, error) {
	stats, err := i.svc.UserStats(ctx, userID)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return dto.StatsOutput{TotalViewed: stats.TotalViewed, TotalLiked: stats.TotalLiked}, nil
}

func requirePair(userID, quoteID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(quoteID) == "" {
		return fmt.Errorf("%w: user id and quote id are required", apperrors.ErrInvalidInput)
	}
	return nil
}

func toQuoteOutput(q domain.Quote) dto.QuoteOutput {
	return dto.QuoteOutput{ID: q.ID, Text: q.Text, Author: q.Author, Category: q.Category, CreatedAt: q.CreatedAt}
}

func toViewOutput(v domain.View) dto.ViewOutput {
	return dto.ViewOutput{ID: v.ID, UserID: v.UserID, QuoteID: v.QuoteID, ViewedAt: v.ViewedAt, Liked: v.Liked}
}
