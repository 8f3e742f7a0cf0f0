package lifecycle

import (
	"testing"
	"time"

	"installworks/internal/domain/entities"
)

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestDerive(t *testing.T) {
	signed := ts("2026-03-01T10:00:00Z")
	install := ts("2026-03-15T09:00:00Z")
	done := ts("2026-03-15T17:00:00Z")

	cases := []struct {
		name   string
		facts  Facts
		status entities.OrderStatus
		active StepKey
	}{
		{
			name: "nothing paid awaits payment",
			facts: Facts{
				Total: dec("1000"), Deposit: dec("250"), Paid: dec("0"),
				Stage: entities.PaymentStageDeposit,
			},
			status: entities.OrderStatusAwaitingPayment,
			active: StepPayment,
		},
		{
			name: "partial deposit still awaits payment",
			facts: Facts{
				Total: dec("1000"), Deposit: dec("250"), Paid: dec("249.99"),
				Stage: entities.PaymentStageDeposit,
			},
			status: entities.OrderStatusAwaitingPayment,
			active: StepPayment,
		},
		{
			name: "deposit met moves to agreement",
			facts: Facts{
				Total: dec("1000"), Deposit: dec("250"), Paid: dec("250"),
				Stage: entities.PaymentStageDeposit,
			},
			status: entities.OrderStatusAwaitingAgreement,
			active: StepAgreement,
		},
		{
			name: "full stage needs the full total",
			facts: Facts{
				Total: dec("1000"), Deposit: dec("1000"), Paid: dec("999.99"),
				Stage: entities.PaymentStageFull,
			},
			status: entities.OrderStatusAwaitingPayment,
			active: StepPayment,
		},
		{
			name: "signed moves to install booking",
			facts: Facts{
				Total: dec("1000"), Deposit: dec("250"), Paid: dec("250"),
				Stage: entities.PaymentStageDeposit, SignedAt: signed,
			},
			status: entities.OrderStatusAwaitingInstallBooking,
			active: StepScheduling,
		},
		{
			name: "booked install is scheduled",
			facts: Facts{
				Total: dec("1000"), Deposit: dec("250"), Paid: dec("250"),
				Stage: entities.PaymentStageDeposit, SignedAt: signed, InstallAt: install,
			},
			status: entities.OrderStatusScheduled,
			active: StepCompletion,
		},
		{
			name: "engineer started shows in progress",
			facts: Facts{
				Total: dec("1000"), Deposit: dec("250"), Paid: dec("250"),
				Stage: entities.PaymentStageDeposit, SignedAt: signed, InstallAt: install,
				EngineerStatus: entities.EngineerJobStatusInProgress,
			},
			status: entities.OrderStatusInProgress,
			active: StepCompletion,
		},
		{
			name: "checklist complete still in progress",
			facts: Facts{
				Total: dec("1000"), Deposit: dec("250"), Paid: dec("250"),
				Stage: entities.PaymentStageDeposit, SignedAt: signed, InstallAt: install,
				EngineerStatus: entities.EngineerJobStatusChecklistComplete,
			},
			status: entities.OrderStatusInProgress,
			active: StepCompletion,
		},
		{
			name: "signed off is completed",
			facts: Facts{
				Total: dec("1000"), Deposit: dec("250"), Paid: dec("1000"),
				Stage: entities.PaymentStageDeposit, SignedAt: signed, InstallAt: install,
				SignedOffAt: done, EngineerStatus: entities.EngineerJobStatusSignedOff,
			},
			status: entities.OrderStatusCompleted,
			active: StepCompletion,
		},
		{
			name: "agreement signed early keeps payment active",
			facts: Facts{
				Total: dec("1000"), Deposit: dec("250"), Paid: dec("0"),
				Stage: entities.PaymentStageDeposit, SignedAt: signed,
			},
			status: entities.OrderStatusAwaitingPayment,
			active: StepPayment,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view := Derive(tc.facts)
			if view.Status != tc.status {
				t.Fatalf("status: expected %s, got %s", tc.status, view.Status)
			}
			if view.Overridden {
				t.Fatalf("unexpected overridden flag")
			}
			assertSingleActive(t, view, tc.active)
		})
	}
}

func TestDeriveOverride(t *testing.T) {
	facts := Facts{
		Total: dec("1000"), Deposit: dec("250"), Paid: dec("250"),
		Stage:    entities.PaymentStageDeposit,
		SignedAt: ts("2026-03-01T10:00:00Z"),
		Override: true, OverrideStatus: entities.OrderStatusCancelled,
	}

	view := Derive(facts)
	if !view.Overridden {
		t.Fatalf("expected overridden view")
	}
	if view.Status != entities.OrderStatusCancelled {
		t.Fatalf("expected override token, got %s", view.Status)
	}

	// Steps are still computed from the underlying facts.
	if !view.Steps[0].Complete || !view.Steps[1].Complete {
		t.Fatalf("override must not hide step completion: %+v", view.Steps)
	}
	assertSingleActive(t, view, StepScheduling)
}

func TestDeriveIsPure(t *testing.T) {
	facts := Facts{
		Total: dec("500"), Deposit: dec("100"), Paid: dec("100"),
		Stage: entities.PaymentStageStaged,
	}
	first := Derive(facts)
	for i := 0; i < 5; i++ {
		again := Derive(facts)
		if again.Status != first.Status || len(again.Steps) != len(first.Steps) {
			t.Fatalf("derivation is not stable: %+v vs %+v", first, again)
		}
		for j := range first.Steps {
			if again.Steps[j] != first.Steps[j] {
				t.Fatalf("step %d drifted: %+v vs %+v", j, first.Steps[j], again.Steps[j])
			}
		}
	}
}

func TestCanSchedule(t *testing.T) {
	signed := ts("2026-03-01T10:00:00Z")

	cases := []struct {
		name  string
		facts Facts
		want  bool
	}{
		{
			name: "paid and signed",
			facts: Facts{
				Total: dec("1000"), Deposit: dec("250"), Paid: dec("250"),
				Stage: entities.PaymentStageDeposit, SignedAt: signed,
			},
			want: true,
		},
		{
			name: "signed but deposit short",
			facts: Facts{
				Total: dec("1000"), Deposit: dec("250"), Paid: dec("200"),
				Stage: entities.PaymentStageDeposit, SignedAt: signed,
			},
			want: false,
		},
		{
			name: "paid but unsigned",
			facts: Facts{
				Total: dec("1000"), Deposit: dec("250"), Paid: dec("1000"),
				Stage: entities.PaymentStageDeposit,
			},
			want: false,
		},
		{
			name: "full stage requires the whole total",
			facts: Facts{
				Total: dec("1000"), Deposit: dec("1000"), Paid: dec("250"),
				Stage: entities.PaymentStageFull, SignedAt: signed,
			},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanSchedule(tc.facts); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFactsFromOrder(t *testing.T) {
	signed := ts("2026-03-01T10:00:00Z")
	order := entities.Order{
		Total:             dec("1000"),
		Deposit:           dec("250"),
		AmountPaid:        dec("250"),
		Stage:             entities.PaymentStageDeposit,
		AgreementSignedAt: signed,
		Status:            entities.OrderStatusCancelled,
		StatusOverride:    true,
	}

	facts := FactsFromOrder(order)
	if !facts.Override || facts.OverrideStatus != entities.OrderStatusCancelled {
		t.Fatalf("override not carried: %+v", facts)
	}

	order.StatusOverride = false
	facts = FactsFromOrder(order)
	if facts.Override || facts.OverrideStatus != "" {
		t.Fatalf("stored status must not leak into facts without the override flag: %+v", facts)
	}
}

func assertSingleActive(t *testing.T, view View, want StepKey) {
	t.Helper()
	var active []StepKey
	for _, s := range view.Steps {
		if s.Active {
			active = append(active, s.Key)
		}
	}
	if len(active) != 1 {
		t.Fatalf("expected exactly one active step, got %v", active)
	}
	if active[0] != want {
		t.Fatalf("expected active step %s, got %s", want, active[0])
	}
}
