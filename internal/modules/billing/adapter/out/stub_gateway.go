package out

import (
	"context"
	"fmt"
	"net/url"

	"mindmate/internal/modules/billing/domain"
	billingout "mindmate/internal/modules/billing/port/out"
)

type StubConfig struct {
	ShopID    string
	SecretKey string
	ReturnURL string
	TestMode  bool
}

// StubGateway simulates a Yookassa checkout: nothing leaves the process and
// every payment confirms.
type StubGateway struct {
	cfg StubConfig
}

func NewStubGateway(cfg StubConfig) *StubGateway {
	return &StubGateway{cfg: cfg}
}

var _ billingout.Gateway = (*StubGateway)(nil)

func (g *StubGateway) Create(_ context.Context, paymentID string, req domain.PaymentRequest) (domain.Payment, error) {
	if !g.cfg.TestMode {
		return domain.Payment{}, fmt.Errorf("shop %s: live payments are not supported", g.cfg.ShopID)
	}
	confirmation, err := g.withQuery(map[string]string{"payment_id": paymentID, "user_id": req.UserID})
	if err != nil {
		return domain.Payment{}, err
	}
	return domain.Payment{ID: paymentID, Status: domain.StatusPending, ConfirmationURL: confirmation}, nil
}

func (g *StubGateway) Confirm(context.Context, string, string) (bool, error) {
	return true, nil
}

func (g *StubGateway) PaymentURL(paymentID string) string {
	out, err := g.withQuery(map[string]string{"payment_id": paymentID, "status": "success"})
	if err != nil {
		return g.cfg.ReturnURL
	}
	return out
}

func (g *StubGateway) withQuery(params map[string]string) (string, error) {
	u, err := url.Parse(g.cfg.ReturnURL)
	if err != nil {
		return "", fmt.Errorf("parse return url: %w", err)
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
