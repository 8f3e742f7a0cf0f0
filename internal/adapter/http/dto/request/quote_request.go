package request

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"installworks/internal/usecase"
)

var ErrInvalidMoneyValue = errors.New("invalid money value")

type QuoteItemRequest struct {
	Product   string            `json:"product" binding:"required"`
	Quantity  int               `json:"quantity" binding:"required"`
	UnitPrice string            `json:"unit_price" binding:"required"`
	Config    map[string]string `json:"config"`
}

// CreateQuoteRequest carries operator-entered quote lines. Money arrives as
// decimal strings so amounts survive the wire without float drift.
type CreateQuoteRequest struct {
	ClientID  string             `json:"client_id" binding:"required"`
	Currency  string             `json:"currency"`
	Shareable bool               `json:"shareable"`
	ExpiresAt *time.Time         `json:"expires_at"`
	Items     []QuoteItemRequest `json:"items" binding:"required"`
}

func (r CreateQuoteRequest) ToDraft() (usecase.QuoteDraft, error) {
	items := make([]usecase.QuoteItemDraft, 0, len(r.Items))
	for _, it := range r.Items {
		price, err := decimal.NewFromString(it.UnitPrice)
		if err != nil {
			return usecase.QuoteDraft{}, ErrInvalidMoneyValue
		}
		items = append(items, usecase.QuoteItemDraft{
			Product:   it.Product,
			Quantity:  it.Quantity,
			UnitPrice: price,
			Config:    it.Config,
		})
	}
	return usecase.QuoteDraft{
		ClientID:  r.ClientID,
		Currency:  r.Currency,
		Items:     items,
		Shareable: r.Shareable,
		ExpiresAt: r.ExpiresAt,
	}, nil
}

type SetShareableRequest struct {
	Shareable *bool `json:"shareable" binding:"required"`
}
