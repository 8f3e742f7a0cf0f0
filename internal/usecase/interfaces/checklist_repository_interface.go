package interfaces

import (
	"context"

	"installworks/internal/domain/entities"
)

// IChecklistRepository abstracts the per-order completion checklist items.

type IChecklistRepository interface {
	// PutItems replaces the checklist for an order.
	PutItems(ctx context.Context, orderID string, items []entities.ChecklistItem) error
	ListByOrderID(ctx context.Context, orderID string) ([]entities.ChecklistItem, error)
	// SetItemDone returns a zero-value item (nil error) when the position
	// does not exist.
	SetItemDone(ctx context.Context, orderID string, position int, done bool) (entities.ChecklistItem, error)
}

// IActivityLogRepository is the append-only audit trail for fact-reversing
// or override actions.

type IActivityLogRepository interface {
	Append(ctx context.Context, e entities.ActivityEvent) (entities.ActivityEvent, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.ActivityEvent, error)
}

// IPaymentPolicyRepository stores the single tenant-wide payment policy item.

type IPaymentPolicyRepository interface {
	Get(ctx context.Context) (entities.PaymentPolicy, error)
	Put(ctx context.Context, p entities.PaymentPolicy) (entities.PaymentPolicy, error)
}
