package lifecycle

import (
	"testing"

	"installworks/internal/domain/entities"
)

func TestBuildPlan(t *testing.T) {
	cases := []struct {
		name        string
		total       string
		deposit     string
		paid        string
		stage       entities.PaymentStage
		outstanding string
		action      PaymentAction
		amount      string
		fullyPaid   bool
		overpaid    bool
	}{
		{
			name:        "deposit due before anything paid",
			total:       "1000.00",
			deposit:     "250.00",
			paid:        "0",
			stage:       entities.PaymentStageDeposit,
			outstanding: "1000.00",
			action:      PaymentActionDeposit,
			amount:      "250.00",
		},
		{
			name:        "balance due once deposit cleared",
			total:       "1000.00",
			deposit:     "250.00",
			paid:        "250.00",
			stage:       entities.PaymentStageDeposit,
			outstanding: "750.00",
			action:      PaymentActionBalance,
			amount:      "750.00",
		},
		{
			name:        "partial deposit still asks for the deposit",
			total:       "1000.00",
			deposit:     "250.00",
			paid:        "100.00",
			stage:       entities.PaymentStageStaged,
			outstanding: "900.00",
			action:      PaymentActionDeposit,
			amount:      "250.00",
		},
		{
			name:        "deposit request never exceeds outstanding",
			total:       "200.00",
			deposit:     "250.00",
			paid:        "0",
			stage:       entities.PaymentStageDeposit,
			outstanding: "200.00",
			action:      PaymentActionDeposit,
			amount:      "200.00",
		},
		{
			name:        "full stage skips straight to balance",
			total:       "1000.00",
			deposit:     "1000.00",
			paid:        "0",
			stage:       entities.PaymentStageFull,
			outstanding: "1000.00",
			action:      PaymentActionBalance,
			amount:      "1000.00",
		},
		{
			name:        "exactly paid",
			total:       "1000.00",
			deposit:     "250.00",
			paid:        "1000.00",
			stage:       entities.PaymentStageDeposit,
			outstanding: "0",
			action:      PaymentActionNone,
			amount:      "0",
			fullyPaid:   true,
		},
		{
			name:        "overpaid floors outstanding at zero",
			total:       "1000.00",
			deposit:     "250.00",
			paid:        "1100.00",
			stage:       entities.PaymentStageDeposit,
			outstanding: "0",
			action:      PaymentActionNone,
			amount:      "0",
			fullyPaid:   true,
			overpaid:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := BuildPlan(dec(tc.total), dec(tc.deposit), dec(tc.paid), tc.stage)
			if !plan.Outstanding.Equal(dec(tc.outstanding)) {
				t.Fatalf("outstanding: expected %s, got %s", tc.outstanding, plan.Outstanding)
			}
			if plan.NextAction != tc.action {
				t.Fatalf("next action: expected %s, got %s", tc.action, plan.NextAction)
			}
			if !plan.NextAmount.Equal(dec(tc.amount)) {
				t.Fatalf("next amount: expected %s, got %s", tc.amount, plan.NextAmount)
			}
			if plan.FullyPaid != tc.fullyPaid {
				t.Fatalf("fully paid: expected %v, got %v", tc.fullyPaid, plan.FullyPaid)
			}
			if plan.Overpaid != tc.overpaid {
				t.Fatalf("overpaid: expected %v, got %v", tc.overpaid, plan.Overpaid)
			}
		})
	}
}
