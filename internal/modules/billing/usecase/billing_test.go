package usecase_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	billingout "mindmate/internal/modules/billing/adapter/out"
	"mindmate/internal/modules/billing/dto"
	billingin "mindmate/internal/modules/billing/port/in"
	"mindmate/internal/modules/billing/service"
	"mindmate/internal/modules/billing/usecase"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/logger"
)

type counterID struct{ n int }

func (c *counterID) New(prefix string) string {
	c.n++
	return prefix + "_" + strings.Repeat("x", c.n)
}

const returnURL = "http://localhost:5173/subscription?payment=success"

func newUsecase(testMode bool) billingin.Usecase {
	gateway := billingout.NewStubGateway(billingout.StubConfig{ShopID: "123456", SecretKey: "test_secret_key", ReturnURL: returnURL, TestMode: testMode})
	return usecase.NewInteractor(service.NewPaymentService(&counterID{}, gateway, logger.NewNop()))
}

func TestCreatePaymentIsPendingWithRedirect(t *testing.T) {
	t.Parallel()
	uc := newUsecase(true)
	out, err := uc.CreatePayment(context.Background(), dto.CreatePaymentInput{Amount: 990, UserID: "user_1", Description: "Премиум"})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if out.Status != "pending" || out.Confirmation.Type != "redirect" || !strings.HasPrefix(out.ID, "payment_") {
		t.Fatalf("unexpected payment %+v", out)
	}
	u, err := url.Parse(out.Confirmation.ConfirmationURL)
	if err != nil {
		t.Fatalf("parse confirmation url: %v", err)
	}
	q := u.Query()
	if q.Get("payment") != "success" || q.Get("payment_id") != out.ID || q.Get("user_id") != "user_1" {
		t.Fatalf("unexpected confirmation query %v", q)
	}
}

func TestCreatePaymentValidatesAndRefusesLiveMode(t *testing.T) {
	t.Parallel()
	uc := newUsecase(true)
	if _, err := uc.CreatePayment(context.Background(), dto.CreatePaymentInput{UserID: "user_1"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if _, err := uc.CreatePayment(context.Background(), dto.CreatePaymentInput{UserID: "user_1", Amount: 1, Plan: "gold"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid plan, got %v", err)
	}
	if _, err := newUsecase(false).CreatePayment(context.Background(), dto.CreatePaymentInput{UserID: "user_1", Amount: 1}); err == nil {
		t.Fatalf("live mode must be refused")
	}
}

func TestSimulateActions(t *testing.T) {
	t.Parallel()
	uc := newUsecase(true)
	ctx := context.Background()
	if out := uc.Simulate(ctx, dto.SimulateInput{Action: "instant_success", UserID: "u"}); !out.Success || out.PaymentID == "" {
		t.Fatalf("instant success must succeed with an id: %+v", out)
	}
	if out := uc.Simulate(ctx, dto.SimulateInput{Action: "test_cancel", UserID: "u"}); out.Success || out.PaymentID != "" {
		t.Fatalf("cancel must fail without id: %+v", out)
	}
	if out := uc.Simulate(ctx, dto.SimulateInput{Action: "anything", UserID: "u"}); !out.Success {
		t.Fatalf("unknown action behaves like the test card: %+v", out)
	}
	if len(uc.TestMethods()) != 3 {
		t.Fatalf("expected three test methods")
	}
	if got := uc.PaymentURL("payment_1"); !strings.Contains(got, "status=success") || !strings.Contains(got, "payment_id=payment_1") {
		t.Fatalf("unexpected payment url %s", got)
	}
	processed, err := uc.ProcessSuccess(ctx, dto.ProcessInput{PaymentID: "payment_1", UserID: "u"})
	if err != nil || !processed.Success {
		t.Fatalf("process success: %+v %v", processed, err)
	}
}
