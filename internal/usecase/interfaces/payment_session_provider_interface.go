package interfaces

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"installworks/internal/domain/entities"
)

// PaymentSession is the redirect handle returned by the external provider.
// Creating a session records nothing against the order's amount paid; capture
// is a separate verified fact.

type PaymentSession struct {
	SessionID   string
	RedirectURL string
}

// PaymentCapture is the provider's answer to a verification call.

type PaymentCapture struct {
	Captured bool
	Amount   decimal.Decimal
	Payload  json.RawMessage
}

// IPaymentSessionProvider abstracts the hosted-checkout provider (e.g.
// Mercado Pago). Verification can be transiently unreachable; callers treat
// its errors as retryable.

type IPaymentSessionProvider interface {
	CreateSession(ctx context.Context, orderID, orderNumber string, amount decimal.Decimal, currency string, paymentType entities.PaymentType) (PaymentSession, error)
	VerifySession(ctx context.Context, sessionID string) (PaymentCapture, error)
}
