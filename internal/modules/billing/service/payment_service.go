package service

import (
	"context"
	"fmt"

	"mindmate/internal/modules/billing/domain"
	billingout "mindmate/internal/modules/billing/port/out"
	"mindmate/internal/platform/id"
	"mindmate/internal/platform/logger"
)

type PaymentService struct {
	idGen   id.Generator
	gateway billingout.Gateway
	log     *logger.Logger
}

func NewPaymentService(idGen id.Generator, gateway billingout.Gateway, log *logger.Logger) *PaymentService {
	if log == nil {
		log = logger.NewNop()
	}
	return &PaymentService{idGen: idGen, gateway: gateway, log: log.With("component", "billing")}
}

func (s *PaymentService) Create(ctx context.Context, req domain.PaymentRequest) (domain.Payment, error) {
	payment, err := s.gateway.Create(ctx, s.idGen.New("payment"), req)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("create payment: %w", err)
	}
	s.log.Info("payment created", "payment_id", payment.ID, "user_id", req.UserID, "amount", req.Amount, "currency", req.Currency)
	return payment, nil
}

// ProcessSuccess reports whether the payment settled; gateway failures are
// logged and reported as an unsettled payment.
func (s *PaymentService) ProcessSuccess(ctx context.Context, paymentID, userID string) bool {
	ok, err := s.gateway.Confirm(ctx, paymentID, userID)
	if err != nil {
		s.log.Error("payment confirmation failed", "payment_id", paymentID, "user_id", userID, "error", err)
		return false
	}
	s.log.Info("payment processed", "payment_id", paymentID, "user_id", userID, "settled", ok)
	return ok
}

func (s *PaymentService) PaymentURL(paymentID string) string {
	return s.gateway.PaymentURL(paymentID)
}

func (s *PaymentService) Simulate(action, userID string) domain.SimulationResult {
	switch action {
	case domain.ActionTestCancel:
		s.log.Info("simulating payment cancellation", "user_id", userID)
		return domain.SimulationResult{Success: false}
	case domain.ActionInstantSuccess:
		s.log.Info("simulating instant payment success", "user_id", userID)
	default:
		s.log.Info("simulating bank card payment", "user_id", userID, "action", action)
	}
	return domain.SimulationResult{Success: true, PaymentID: s.idGen.New("payment")}
}
