package usecase

import (
	"context"
	"fmt"
	"strings"

	"mindmate/internal/modules/user/domain"
	"mindmate/internal/modules/user/dto"
	userin "mindmate/internal/modules/user/port/in"
	"mindmate/internal/modules/user/service"
	apperrors "mindmate/internal/platform/errors"
)

type Interactor struct {
	svc *service.UserService
}

func NewInteractor(svc *service.UserService) userin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GetByID(ctx context.Context, id string) (dto.UserOutput, error) {
	if strings.TrimSpace(id) == "" {
		return dto.UserOutput{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	user, err := i.svc.GetByID(ctx, id)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) GetByEmail(ctx context.Context, email string) (dto.UserOutput, error) {
	email = strings.TrimSpace(email)
	if err := domain.ValidateEmail(email); err != nil {
		return dto.UserOutput{}, err
	}
	user, err := i.svc.GetByEmail(ctx, email)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) GetOrCreate(ctx context.Context, input dto.GetOrCreateInput) (dto.UserOutput, error) {
	email := strings.TrimSpace(input.Email)
	if err := domain.ValidateEmail(email); err != nil {
		return dto.UserOutput{}, err
	}
	user, err := i.svc.GetOrCreate(ctx, email, displayName(input.Name))
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.UserOutput, error) {
	if strings.TrimSpace(input.ID) == "" {
		return dto.UserOutput{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	patch := domain.Patch{Name: input.Name, Avatar: input.Avatar}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if err := domain.ValidateEmail(email); err != nil {
			return dto.UserOutput{}, err
		}
		patch.Email = &email
	}
	user, err := i.svc.Update(ctx, input.ID, patch)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) (dto.UserOutput, error) {
	email := strings.TrimSpace(input.Email)
	if err := domain.ValidateEmail(email); err != nil {
		return dto.UserOutput{}, err
	}
	user, err := i.svc.Register(ctx, email, displayName(input.Name))
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

// Login only resolves the account by email; there is no credential check.
func (i *Interactor) Login(ctx context.Context, email string) (dto.UserOutput, error) {
	return i.GetByEmail(ctx, email)
}

func displayName(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return domain.DefaultName
}

func toOutput(u domain.User) dto.UserOutput {
	return dto.UserOutput{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
