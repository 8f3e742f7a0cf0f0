package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"installworks/internal/domain/entities"
)

// IPaymentEventRepository abstracts DynamoDB persistence for PaymentEvent.
// Events are append-only; MarkCompleted is the only mutation.

type IPaymentEventRepository interface {
	Create(ctx context.Context, e entities.PaymentEvent) (entities.PaymentEvent, error)
	GetByID(ctx context.Context, id string) (entities.PaymentEvent, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.PaymentEvent, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentEvent, error)
	MarkCompleted(ctx context.Context, id string, amount decimal.Decimal, paidAt time.Time, providerPayload json.RawMessage) (entities.PaymentEvent, error)
}
