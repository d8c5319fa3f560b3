package in

import (
	"context"

	"mindmate/internal/modules/user/dto"
)

type Usecase interface {
	GetByID(ctx context.Context, id string) (dto.UserOutput, error)
	GetByEmail(ctx context.Context, email string) (dto.UserOutput, error)
	GetOrCreate(ctx context.Context, input dto.GetOrCreateInput) (dto.UserOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.UserOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) (dto.UserOutput, error)
	Login(ctx context.Context, email string) (dto.UserOutput, error)
}
