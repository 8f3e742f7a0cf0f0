package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStage is the tenant-wide rule for how an order is paid.

type PaymentStage string

const (
	PaymentStageDeposit PaymentStage = "deposit"
	PaymentStageFull    PaymentStage = "full"
	PaymentStageStaged  PaymentStage = "staged"
)

type DepositType string

const (
	DepositTypePercentage DepositType = "percentage"
	DepositTypeFixed      DepositType = "fixed"
)

// PaymentPolicy is tenant-wide configuration read at order materialization
// time only. It is persisted as a single settings item; changing it never
// recomputes deposits on existing orders.

type PaymentPolicy struct {
	Stage        PaymentStage    `json:"stage"`
	DepositType  DepositType     `json:"deposit_type"`
	DepositValue decimal.Decimal `json:"deposit_value"`
	Currency     string          `json:"currency"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type PaymentType string

const (
	PaymentTypeDeposit PaymentType = "deposit"
	PaymentTypeBalance PaymentType = "balance"
	PaymentTypeOther   PaymentType = "other"
)

type PaymentEventStatus string

const (
	PaymentEventStatusPending   PaymentEventStatus = "pending"
	PaymentEventStatusCompleted PaymentEventStatus = "completed"
)

// PaymentEvent is an append-only record of a payment session and, once
// verified, the money captured for it. Creating a session records a pending
// event only; amount_paid on the order moves when the capture is verified.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//   - GSI2 (session_id-index): session_id
//
// ProviderPayloadRaw keeps the provider response (JSON) for audit.

type PaymentEvent struct {
	ID        string             `json:"id"`
	OrderID   string             `json:"order_id"`
	SessionID string             `json:"session_id"`
	Type      PaymentType        `json:"type"`
	Status    PaymentEventStatus `json:"status"`
	Amount    decimal.Decimal    `json:"amount"`
	PaidAt    *time.Time         `json:"paid_at,omitempty"`
	CreatedAt time.Time          `json:"created_at"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
