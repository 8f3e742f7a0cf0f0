package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"installworks/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Mutators return the updated order, or a zero-value order (nil error) when
// the target row does not exist or a conditional write lost — callers map
// that to their own not-found/conflict sentinels.

type IOrderRepository interface {
	// CreateForQuote writes the order together with a per-quote guard item in
	// one transaction; a second accept of the same quote is a rejected write
	// and returns a zero-value order.
	CreateForQuote(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Order, error)
	// RetractForQuote removes the order materialized from a quote along with
	// its guard item. No-op if none exists.
	RetractForQuote(ctx context.Context, quoteID string) error

	AddAmountPaid(ctx context.Context, id string, amount decimal.Decimal) (entities.Order, error)
	SetAgreementSigned(ctx context.Context, id string, at time.Time) (entities.Order, error)
	SetSchedule(ctx context.Context, id string, at time.Time, window string, estimatedHours int) (entities.Order, error)
	SetOverride(ctx context.Context, id string, override bool, status entities.OrderStatus, notes string) (entities.Order, error)
	SetStoredStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)

	AssignEngineer(ctx context.Context, id, engineerID string) (entities.Order, error)
	SetEngineerProgress(ctx context.Context, id string, status entities.EngineerJobStatus, notes string) (entities.Order, error)
	// SetSignOff with a nil timestamp clears the sign-off facts (reopen).
	SetSignOff(ctx context.Context, id string, signedOffAt *time.Time, signature string, status entities.EngineerJobStatus) (entities.Order, error)
	SetEvidence(ctx context.Context, id string, evidence map[string][]string) (entities.Order, error)
	SetQANotes(ctx context.Context, id, notes string) (entities.Order, error)
}
