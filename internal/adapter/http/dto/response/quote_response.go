package response

import (
	"time"

	"installworks/internal/domain/entities"
)

type QuoteItemResponse struct {
	ID        string            `json:"id"`
	Product   string            `json:"product"`
	Quantity  int               `json:"quantity"`
	UnitPrice string            `json:"unit_price"`
	Total     string            `json:"total"`
	Config    map[string]string `json:"config,omitempty"`
}

type QuoteResponse struct {
	ID          string              `json:"id"`
	QuoteNumber string              `json:"quote_number"`
	ClientID    string              `json:"client_id"`
	Items       []QuoteItemResponse `json:"items"`
	Total       string              `json:"total"`
	Currency    string              `json:"currency"`
	Status      string              `json:"status"`
	Shareable   bool                `json:"shareable"`
	ShareToken  string              `json:"share_token,omitempty"`
	ExpiresAt   *time.Time          `json:"expires_at,omitempty"`
	SentAt      *time.Time          `json:"sent_at,omitempty"`
	AcceptedAt  *time.Time          `json:"accepted_at,omitempty"`
	RejectedAt  *time.Time          `json:"rejected_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			ID:        it.ID,
			Product:   it.Product,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Total:     it.Total.StringFixed(2),
			Config:    it.Config,
		})
	}
	return QuoteResponse{
		ID:          q.ID,
		QuoteNumber: q.QuoteNumber,
		ClientID:    q.ClientID,
		Items:       items,
		Total:       q.Total.StringFixed(2),
		Currency:    q.Currency,
		Status:      string(q.Status),
		Shareable:   q.Shareable,
		ShareToken:  q.ShareToken,
		ExpiresAt:   q.ExpiresAt,
		SentAt:      q.SentAt,
		AcceptedAt:  q.AcceptedAt,
		RejectedAt:  q.RejectedAt,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

// SharedQuoteResponse is the unauthenticated projection behind the share
// token: no client id, no share token echo, no internal timestamps.
type SharedQuoteResponse struct {
	QuoteNumber string              `json:"quote_number"`
	Items       []QuoteItemResponse `json:"items"`
	Total       string              `json:"total"`
	Currency    string              `json:"currency"`
	Status      string              `json:"status"`
	ExpiresAt   *time.Time          `json:"expires_at,omitempty"`
}

func FromQuoteShared(q entities.Quote) SharedQuoteResponse {
	full := FromQuote(q)
	return SharedQuoteResponse{
		QuoteNumber: full.QuoteNumber,
		Items:       full.Items,
		Total:       full.Total,
		Currency:    full.Currency,
		Status:      full.Status,
		ExpiresAt:   full.ExpiresAt,
	}
}
