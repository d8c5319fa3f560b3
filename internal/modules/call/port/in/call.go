package in

import (
	"context"

	"mindmate/internal/modules/call/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateInput) (dto.CallOutput, error)
	End(ctx context.Context, input dto.EndInput) (dto.CallOutput, error)
	GetUserCalls(ctx context.Context, input dto.ListInput) ([]dto.CallOutput, error)
	Converse(ctx context.Context, input dto.ConverseInput) (dto.ConverseOutput, error)
}
