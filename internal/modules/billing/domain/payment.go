package domain

import (
	"fmt"

	apperrors "mindmate/internal/platform/errors"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusCanceled  Status = "canceled"
)

const PlanPremium = "premium"

type PaymentRequest struct {
	Amount      float64
	Currency    string
	Description string
	UserID      string
	Plan        string
}

func (r PaymentRequest) Validate() error {
	switch {
	case r.UserID == "":
		return fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	case r.Amount <= 0:
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidInput)
	case r.Plan != PlanPremium:
		return fmt.Errorf("%w: unknown plan %q", apperrors.ErrInvalidInput, r.Plan)
	}
	return nil
}

type Payment struct {
	ID              string
	Status          Status
	ConfirmationURL string
}

// TestMethod is one of the simulated checkout options offered in test mode.
type TestMethod struct {
	Name        string
	Description string
	Action      string
}

const (
	ActionTestCard       = "test_card"
	ActionInstantSuccess = "instant_success"
	ActionTestCancel     = "test_cancel"
)

func TestMethods() []TestMethod {
	return []TestMethod{
		{Name: "Тестовая карта", Description: "Номер: 5555 5555 5555 4444, CVC: 123, Срок: 12/30", Action: ActionTestCard},
		{Name: "Мгновенная оплата", Description: "Симуляция успешного платежа", Action: ActionInstantSuccess},
		{Name: "Тест отмены", Description: "Симуляция отмены платежа", Action: ActionTestCancel},
	}
}

type SimulationResult struct {
	Success   bool
	PaymentID string
}
