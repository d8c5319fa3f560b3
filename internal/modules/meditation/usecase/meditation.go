package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mindmate/internal/modules/meditation/domain"
	"mindmate/internal/modules/meditation/dto"
	meditationin "mindmate/internal/modules/meditation/port/in"
	meditationout "mindmate/internal/modules/meditation/port/out"
	"mindmate/internal/modules/meditation/service"
	apperrors "mindmate/internal/platform/errors"
)

type Interactor struct {
	svc         *service.MeditationService
	activeStore meditationout.ActiveStore
}

func NewInteractor(svc *service.MeditationService, activeStore meditationout.ActiveStore) meditationin.Usecase {
	return &Interactor{svc: svc, activeStore: activeStore}
}

func (i *Interactor) CreateSession(ctx context.Context, input dto.CreateSessionInput) (dto.SessionOutput, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return dto.SessionOutput{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(input.MeditationTitle) == "" {
		return dto.SessionOutput{}, fmt.Errorf("%w: meditation title is required", apperrors.ErrInvalidInput)
	}
	if input.Duration < 0 {
		return dto.SessionOutput{}, fmt.Errorf("%w: duration must be non-negative", apperrors.ErrInvalidInput)
	}
	if err := domain.ValidateRating(input.Rating); err != nil {
		return dto.SessionOutput{}, err
	}
	session, err := i.svc.CreateSession(ctx, input.UserID, input.MeditationTitle, input.Duration, input.Rating, input.Notes)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) GetUserSessions(ctx context.Context, input dto.ListInput) ([]dto.SessionOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	sessions, err := i.svc.UserSessions(ctx, input.UserID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionOutput(s))
	}
	return out, nil
}

func (i *Interactor) GetUserStats(ctx context.Context, userID string) (dto.StatsOutput, error) {
	stats, err := i.svc.UserStats(ctx, userID)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return dto.StatsOutput{TotalSessions: stats.TotalSessions, TotalMinutes: stats.TotalMinutes, AvgRating: stats.AvgRating}, nil
}

func (i *Interactor) Catalog(context.Context) []dto.CatalogItemOutput {
	items := domain.Catalog()
	out := make([]dto.CatalogItemOutput, 0, len(items))
	for _, item := range items {
		out = append(out, dto.CatalogItemOutput{Title: item.Title, Minutes: item.Minutes, Description: item.Description, VideoURL: item.VideoURL})
	}
	return out
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.ActiveOutput, error) {
	if strings.TrimSpace(input.UserID) == "" || strings.TrimSpace(input.Title) == "" {
		return dto.ActiveOutput{}, fmt.Errorf("%w: user id and title are required", apperrors.ErrInvalidInput)
	}
	_, err := i.activeStore.LoadActive(ctx)
	if err == nil {
		return dto.ActiveOutput{}, apperrors.ErrActiveMeditationExists
	}
	if !errors.Is(err, apperrors.ErrNoActiveMeditation) {
		return dto.ActiveOutput{}, err
	}

	active, err := i.svc.Begin(ctx, input.UserID, strings.TrimSpace(input.Title))
	if err != nil {
		return dto.ActiveOutput{}, err
	}
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return dto.ActiveOutput{}, err
	}
	return toActiveOutput(active), nil
}

func (i *Interactor) GetActive(ctx context.Context) (dto.ActiveOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return dto.ActiveOutput{}, err
	}
	return toActiveOutput(active), nil
}

func (i *Interactor) Complete(ctx context.Context, input dto.CompleteInput) (dto.SessionOutput, error) {
	if err := domain.ValidateRating(input.Rating); err != nil {
		return dto.SessionOutput{}, err
	}
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	session, err := i.svc.Finish(ctx, active, input.Rating, input.Notes)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

// Abandon drops the active meditation without recording anything.
func (i *Interactor) Abandon(ctx context.Context) error {
	if _, err := i.activeStore.LoadActive(ctx); err != nil {
		return err
	}
	return i.activeStore.ClearActive(ctx)
}

func toSessionOutput(s domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		ID:              s.ID,
		UserID:          s.UserID,
		MeditationTitle: s.MeditationTitle,
		Duration:        s.Duration,
		CompletedAt:     s.CompletedAt,
		Rating:          s.Rating,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
	}
}

func toActiveOutput(a domain.Active) dto.ActiveOutput {
	return dto.ActiveOutput{UserID: a.UserID, Title: a.Title, StartedAt: a.StartedAt}
}
