package in

import (
	"context"

	"mindmate/internal/modules/billing/dto"
)

type Usecase interface {
	CreatePayment(ctx context.Context, input dto.CreatePaymentInput) (dto.PaymentOutput, error)
	ProcessSuccess(ctx context.Context, input dto.ProcessInput) (dto.ProcessOutput, error)
	PaymentURL(paymentID string) string
	TestMethods() []dto.TestMethodOutput
	Simulate(ctx context.Context, input dto.SimulateInput) dto.SimulateOutput
}
