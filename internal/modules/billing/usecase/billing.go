package usecase

import (
	"context"
	"fmt"
	"strings"

	"mindmate/internal/modules/billing/domain"
	"mindmate/internal/modules/billing/dto"
	billingin "mindmate/internal/modules/billing/port/in"
	"mindmate/internal/modules/billing/service"
	apperrors "mindmate/internal/platform/errors"
)

type Interactor struct {
	svc *service.PaymentService
}

func NewInteractor(svc *service.PaymentService) billingin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) CreatePayment(ctx context.Context, input dto.CreatePaymentInput) (dto.PaymentOutput, error) {
	req := domain.PaymentRequest{
		Amount:      input.Amount,
		Currency:    strings.ToUpper(strings.TrimSpace(input.Currency)),
		Description: input.Description,
		UserID:      strings.TrimSpace(input.UserID),
		Plan:        input.Plan,
	}
	if req.Currency == "" {
		req.Currency = "RUB"
	}
	if req.Plan == "" {
		req.Plan = domain.PlanPremium
	}
	if err := req.Validate(); err != nil {
		return dto.PaymentOutput{}, err
	}
	payment, err := i.svc.Create(ctx, req)
	if err != nil {
		return dto.PaymentOutput{}, err
	}
	return dto.PaymentOutput{
		ID:           payment.ID,
		Status:       string(payment.Status),
		Confirmation: dto.Confirmation{Type: "redirect", ConfirmationURL: payment.ConfirmationURL},
	}, nil
}

func (i *Interactor) ProcessSuccess(ctx context.Context, input dto.ProcessInput) (dto.ProcessOutput, error) {
	if strings.TrimSpace(input.PaymentID) == "" {
		return dto.ProcessOutput{}, fmt.Errorf("%w: payment id is required", apperrors.ErrInvalidInput)
	}
	return dto.ProcessOutput{Success: i.svc.ProcessSuccess(ctx, input.PaymentID, input.UserID)}, nil
}

func (i *Interactor) PaymentURL(paymentID string) string {
	return i.svc.PaymentURL(paymentID)
}

func (i *Interactor) TestMethods() []dto.TestMethodOutput {
	methods := domain.TestMethods()
	out := make([]dto.TestMethodOutput, 0, len(methods))
	for _, m := range methods {
		out = append(out, dto.TestMethodOutput{Name: m.Name, Description: m.Description, Action: m.Action})
	}
	return out
}

func (i *Interactor) Simulate(_ context.Context, input dto.SimulateInput) dto.SimulateOutput {
	result := i.svc.Simulate(input.Action, input.UserID)
	return dto.SimulateOutput{Success: result.Success, PaymentID: result.PaymentID}
}
