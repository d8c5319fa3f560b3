package out

import (
	"context"

	"mindmate/internal/modules/billing/domain"
)

// Gateway is the payment provider. Implementations decide how a payment id
// maps to a redirect and whether a payment has settled.
type Gateway interface {
	Create(ctx context.Context, paymentID string, req domain.PaymentRequest) (domain.Payment, error)
	Confirm(ctx context.Context, paymentID, userID string) (bool, error)
	PaymentURL(paymentID string) string
}
