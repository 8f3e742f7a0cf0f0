package request

import (
	"github.com/shopspring/decimal"

	"installworks/internal/domain/entities"
)

// PaymentPolicyRequest is the admin payload for the tenant payment policy.
// DepositValue is a decimal string (a percentage or a fixed amount depending
// on deposit_type).
type PaymentPolicyRequest struct {
	Stage        string `json:"stage" binding:"required"`
	DepositType  string `json:"deposit_type"`
	DepositValue string `json:"deposit_value"`
	Currency     string `json:"currency" binding:"required"`
}

func (r PaymentPolicyRequest) ToEntity() (entities.PaymentPolicy, error) {
	value := decimal.Zero
	if r.DepositValue != "" {
		var err error
		value, err = decimal.NewFromString(r.DepositValue)
		if err != nil {
			return entities.PaymentPolicy{}, ErrInvalidMoneyValue
		}
	}
	return entities.PaymentPolicy{
		Stage:        entities.PaymentStage(r.Stage),
		DepositType:  entities.DepositType(r.DepositType),
		DepositValue: value,
		Currency:     r.Currency,
	}, nil
}
