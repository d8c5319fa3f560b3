package usecase

import (
	"context"
	"fmt"
	"strings"

	"mindmate/internal/modules/stats/domain"
	"mindmate/internal/modules/stats/dto"
	statsin "mindmate/internal/modules/stats/port/in"
	"mindmate/internal/modules/stats/service"
	apperrors "mindmate/internal/platform/errors"
)

type Interactor struct {
	svc *service.StatsService
}

func NewInteractor(svc *service.StatsService) statsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Refresh(ctx context.Context, userID string) (dto.StatsOutput, error) {
	if err := requireUser(userID); err != nil {
		return dto.StatsOutput{}, err
	}
	stats, err := i.svc.Refresh(ctx, userID)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return toOutput(stats), nil
}

func (i *Interactor) Get(ctx context.Context, userID string) (dto.StatsOutput, error) {
	if err := requireUser(userID); err != nil {
		return dto.StatsOutput{}, err
	}
	stats, err := i.svc.Get(ctx, userID)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return toOutput(stats), nil
}

func (i *Interactor) RecentActivity(ctx context.Context, input dto.ActivityInput) ([]dto.ActivityOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = domain.DefaultActivityLimit
	}
	items, err := i.svc.RecentActivity(ctx, input.UserID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityOutput, 0, len(items))
	for _, a := range items {
		out = append(out, dto.ActivityOutput{Kind: string(a.Kind), Label: a.Label, At: a.At})
	}
	return out, nil
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	return nil
}

func toOutput(s domain.Stats) dto.StatsOutput {
	return dto.StatsOutput{
		ID:                     s.ID,
		UserID:                 s.UserID,
		TotalChatSessions:      s.TotalChatSessions,
		TotalAudioCalls:        s.TotalAudioCalls,
		TotalMeditationMinutes: s.TotalMeditationMinutes,
		TotalQuotesViewed:      s.TotalQuotesViewed,
		LastActivity:           s.LastActivity,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}
}
