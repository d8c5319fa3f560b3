package in

import (
	"context"

	"mindmate/internal/modules/billing/dto"
	billingin "mindmate/internal/modules/billing/port/in"
)

type CLIHandler struct {
	usecase billingin.Usecase
}

func NewCLIHandler(usecase billingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, userID string, amount float64, description string) (dto.PaymentOutput, error) {
	return h.usecase.CreatePayment(ctx, dto.CreatePaymentInput{UserID: userID, Amount: amount, Description: description})
}

func (h CLIHandler) Confirm(ctx context.Context, paymentID, userID string) (dto.ProcessOutput, error) {
	return h.usecase.ProcessSuccess(ctx, dto.ProcessInput{PaymentID: paymentID, UserID: userID})
}

func (h CLIHandler) Methods() []dto.TestMethodOutput {
	return h.usecase.TestMethods()
}

func (h CLIHandler) Simulate(ctx context.Context, action, userID string) dto.SimulateOutput {
	return h.usecase.Simulate(ctx, dto.SimulateInput{Action: action, UserID: userID})
}
