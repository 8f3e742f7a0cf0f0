package lifecycle

import (
	"github.com/shopspring/decimal"

	"installworks/internal/domain/entities"
)

type PaymentAction string

const (
	PaymentActionNone    PaymentAction = "none"
	PaymentActionDeposit PaymentAction = "deposit"
	PaymentActionBalance PaymentAction = "balance"
)

// Plan describes the order's current payment position: what is still owed and
// which payment action, if any, is available next.

type Plan struct {
	Outstanding decimal.Decimal `json:"outstanding"`
	NextAction  PaymentAction   `json:"next_action"`
	NextAmount  decimal.Decimal `json:"next_amount"`
	FullyPaid   bool            `json:"fully_paid"`
	Overpaid    bool            `json:"overpaid"`
}

// BuildPlan computes the payment plan from order facts. It is pure and
// idempotent; it runs on every render and poll.
//
// Outstanding never goes below zero: overpayment is surfaced as a flag, not
// subtracted into a negative balance.
func BuildPlan(total, deposit, paid decimal.Decimal, stage entities.PaymentStage) Plan {
	outstanding := total.Sub(paid)
	overpaid := outstanding.Sign() < 0
	if overpaid {
		outstanding = decimal.Zero
	}

	plan := Plan{
		Outstanding: outstanding,
		NextAction:  PaymentActionNone,
		NextAmount:  decimal.Zero,
		Overpaid:    overpaid,
	}

	depositStage := stage == entities.PaymentStageDeposit || stage == entities.PaymentStageStaged
	switch {
	case depositStage && paid.LessThan(deposit):
		plan.NextAction = PaymentActionDeposit
		plan.NextAmount = decimal.Min(deposit, outstanding)
	case paid.LessThan(total):
		plan.NextAction = PaymentActionBalance
		plan.NextAmount = outstanding
	default:
		plan.FullyPaid = true
	}
	return plan
}
