package response

import (
	"time"

	"installworks/internal/domain/entities"
)

type PaymentPolicyResponse struct {
	Stage        string    `json:"stage"`
	DepositType  string    `json:"deposit_type,omitempty"`
	DepositValue string    `json:"deposit_value,omitempty"`
	Currency     string    `json:"currency"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromPaymentPolicy(p entities.PaymentPolicy) PaymentPolicyResponse {
	resp := PaymentPolicyResponse{
		Stage:     string(p.Stage),
		Currency:  p.Currency,
		UpdatedAt: p.UpdatedAt,
	}
	if p.DepositType != "" {
		resp.DepositType = string(p.DepositType)
		resp.DepositValue = p.DepositValue.String()
	}
	return resp
}
