package in

import (
	"context"

	"mindmate/internal/modules/user/dto"
	userin "mindmate/internal/modules/user/port/in"
)

type CLIHandler struct {
	usecase userin.Usecase
}

func NewCLIHandler(usecase userin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) GetOrCreate(ctx context.Context, email, name string) (dto.UserOutput, error) {
	return h.usecase.GetOrCreate(ctx, dto.GetOrCreateInput{Email: email, Name: name})
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.UserOutput, error) {
	return h.usecase.GetByID(ctx, id)
}

func (h CLIHandler) Find(ctx context.Context, email string) (dto.UserOutput, error) {
	return h.usecase.GetByEmail(ctx, email)
}

func (h CLIHandler) Update(ctx context.Context, input dto.UpdateInput) (dto.UserOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Register(ctx context.Context, email, name string) (dto.UserOutput, error) {
	return h.usecase.Register(ctx, dto.RegisterInput{Email: email, Name: name})
}

func (h CLIHandler) Login(ctx context.Context, email string) (dto.UserOutput, error) {
	return h.usecase.Login(ctx, email)
}
