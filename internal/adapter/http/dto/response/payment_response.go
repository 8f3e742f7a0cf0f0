package response

import (
	"time"

	"installworks/internal/domain/entities"
)

type PaymentEventResponse struct {
	ID        string     `json:"id"`
	OrderID   string     `json:"order_id"`
	SessionID string     `json:"session_id"`
	Type      string     `json:"type"`
	Status    string     `json:"status"`
	Amount    string     `json:"amount"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromPaymentEvent(e entities.PaymentEvent) PaymentEventResponse {
	return PaymentEventResponse{
		ID:        e.ID,
		OrderID:   e.OrderID,
		SessionID: e.SessionID,
		Type:      string(e.Type),
		Status:    string(e.Status),
		Amount:    e.Amount.StringFixed(2),
		PaidAt:    e.PaidAt,
		CreatedAt: e.CreatedAt,
	}
}

func FromPaymentEvents(events []entities.PaymentEvent) []PaymentEventResponse {
	out := make([]PaymentEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromPaymentEvent(e))
	}
	return out
}

// PaymentSessionResponse is returned when a hosted-checkout session opens.
type PaymentSessionResponse struct {
	Event       PaymentEventResponse `json:"event"`
	RedirectURL string               `json:"redirect_url"`
}
