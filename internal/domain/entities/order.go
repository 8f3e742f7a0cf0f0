package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the canonical lifecycle token shown to both the admin and
// client views. It is derived from order facts on every read; the stored
// field is refreshed opportunistically for list screens and is authoritative
// only while StatusOverride is set.

type OrderStatus string

const (
	OrderStatusAwaitingPayment        OrderStatus = "awaiting_payment"
	OrderStatusAwaitingAgreement      OrderStatus = "awaiting_agreement"
	OrderStatusAwaitingInstallBooking OrderStatus = "awaiting_install_booking"
	OrderStatusScheduled              OrderStatus = "scheduled"
	OrderStatusInProgress             OrderStatus = "in_progress"
	OrderStatusCompleted              OrderStatus = "completed"
	OrderStatusCancelled              OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusAwaitingPayment, OrderStatusAwaitingAgreement,
		OrderStatusAwaitingInstallBooking, OrderStatusScheduled,
		OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// EngineerJobStatus is the engineer-facing progress token, independent of the
// canonical lifecycle status.

type EngineerJobStatus string

const (
	EngineerJobStatusAssigned          EngineerJobStatus = "assigned"
	EngineerJobStatusInProgress        EngineerJobStatus = "in_progress"
	EngineerJobStatusChecklistComplete EngineerJobStatus = "checklist_complete"
	EngineerJobStatusSignedOff         EngineerJobStatus = "signed_off"
)

// Order is the unit of work materialized from an accepted quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - guard item "quote#<quote_id>" in the same table enforces
//     one order per quote (transactional put)
//
// DepositAmount and PaymentStage are frozen at materialization time from the
// tenant payment policy; later policy edits must not alter existing orders.
// JobAddress is a snapshot of the client address at acceptance time.

type Order struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	QuoteID     string          `json:"quote_id"`
	ClientID    string          `json:"client_id"`
	Total       decimal.Decimal `json:"total"`
	Deposit     decimal.Decimal `json:"deposit"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	Currency    string          `json:"currency"`
	Stage       PaymentStage    `json:"payment_stage"`
	JobAddress  string          `json:"job_address"`

	Status         OrderStatus `json:"status"`
	StatusOverride bool        `json:"status_override"`
	OverrideNotes  string      `json:"override_notes,omitempty"`

	AgreementSignedAt  *time.Time `json:"agreement_signed_at,omitempty"`
	ScheduledInstallAt *time.Time `json:"scheduled_install_at,omitempty"`
	InstallWindow      string     `json:"install_window,omitempty"`
	EstimatedHours     int        `json:"estimated_hours,omitempty"`

	EngineerID        string            `json:"engineer_id,omitempty"`
	EngineerStatus    EngineerJobStatus `json:"engineer_status,omitempty"`
	EngineerNotes     string            `json:"engineer_notes,omitempty"`
	SignedOffAt       *time.Time        `json:"signed_off_at,omitempty"`
	EngineerSignature string            `json:"engineer_signature,omitempty"`

	// Evidence holds installation image references keyed by category.
	Evidence map[string][]string `json:"evidence,omitempty"`

	QANotes   string    `json:"qa_notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
