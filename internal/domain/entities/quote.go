package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// QuoteItem is a priced line on a quote. TotalPrice is computed once from
// quantity and unit price when the quote is created.

type QuoteItem struct {
	ID        string            `json:"id"`
	Product   string            `json:"product"`
	Quantity  int               `json:"quantity"`
	UnitPrice decimal.Decimal   `json:"unit_price"`
	Total     decimal.Decimal   `json:"total"`
	Config    map[string]string `json:"config,omitempty"`
}

// Quote is a priced proposal sent to a client.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (share_token-index): share_token
//
// An accepted quote materializes exactly one Order; rejection of a quote that
// already produced an order retracts that order. ShareToken allows a
// read-only unauthenticated projection while Shareable is set.

type Quote struct {
	ID          string          `json:"id"`
	QuoteNumber string          `json:"quote_number"`
	ClientID    string          `json:"client_id"`
	Items       []QuoteItem     `json:"items"`
	Total       decimal.Decimal `json:"total"`
	Currency    string          `json:"currency"`

	DepositRequired bool        `json:"deposit_required"`
	Status          QuoteStatus `json:"status"`

	ShareToken string     `json:"share_token,omitempty"`
	Shareable  bool       `json:"shareable"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`

	SentAt     *time.Time `json:"sent_at,omitempty"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expired reports whether the quote has an expiry in the past relative to now.
func (q Quote) Expired(now time.Time) bool {
	return q.ExpiresAt != nil && q.ExpiresAt.Before(now)
}
