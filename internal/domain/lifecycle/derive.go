package lifecycle

import (
	"time"

	"github.com/shopspring/decimal"

	"installworks/internal/domain/entities"
)

type StepKey string

const (
	StepPayment    StepKey = "payment"
	StepAgreement  StepKey = "agreement"
	StepScheduling StepKey = "scheduling"
	StepCompletion StepKey = "completion"
)

// Step is one entry of the 4-step progress view. Exactly one step is active
// for any order: the first incomplete step in order, or the last step when
// everything is complete.

type Step struct {
	Key      StepKey `json:"key"`
	Complete bool    `json:"complete"`
	Active   bool    `json:"active"`
}

// Facts are the raw persisted order facts the lifecycle is derived from.
// Nothing here is itself derived state.

type Facts struct {
	Total     decimal.Decimal
	Deposit   decimal.Decimal
	Paid      decimal.Decimal
	Stage     entities.PaymentStage
	SignedAt  *time.Time
	InstallAt *time.Time

	SignedOffAt    *time.Time
	EngineerStatus entities.EngineerJobStatus

	Override       bool
	OverrideStatus entities.OrderStatus
}

// View is the derived lifecycle: the canonical status plus the progress
// steps. When Overridden is set the status is the administrator's token and
// the steps are display-only.

type View struct {
	Status     entities.OrderStatus `json:"status"`
	Overridden bool                 `json:"overridden"`
	Steps      []Step               `json:"steps"`
}

// FactsFromOrder extracts derivation inputs from a stored order.
func FactsFromOrder(o entities.Order) Facts {
	f := Facts{
		Total:          o.Total,
		Deposit:        o.Deposit,
		Paid:           o.AmountPaid,
		Stage:          o.Stage,
		SignedAt:       o.AgreementSignedAt,
		InstallAt:      o.ScheduledInstallAt,
		SignedOffAt:    o.SignedOffAt,
		EngineerStatus: o.EngineerStatus,
		Override:       o.StatusOverride,
	}
	if o.StatusOverride {
		f.OverrideStatus = o.Status
	}
	return f
}

// PaymentThreshold is the amount that completes the payment step: the deposit
// under a deposit/staged policy, the full total under a full policy.
func PaymentThreshold(f Facts) decimal.Decimal {
	if f.Stage == entities.PaymentStageFull {
		return f.Total
	}
	return f.Deposit
}

// Derive computes the canonical status and progress steps from raw facts.
//
// Pure: same facts always yield the same view, so re-running it on a poll or
// a repeated change notification can never disagree with itself.
//
// Out-of-order completions (agreement signed before payment, via an admin
// backdoor) stay visible in the Complete flags, but the Active marker is
// always the first incomplete step left-to-right.
func Derive(f Facts) View {
	steps := []Step{
		{Key: StepPayment, Complete: f.Paid.GreaterThanOrEqual(PaymentThreshold(f))},
		{Key: StepAgreement, Complete: f.SignedAt != nil},
		{Key: StepScheduling, Complete: f.InstallAt != nil},
		{Key: StepCompletion, Complete: f.SignedOffAt != nil},
	}

	active := len(steps) - 1
	for i := range steps {
		if !steps[i].Complete {
			active = i
			break
		}
	}
	steps[active].Active = true

	view := View{Steps: steps}
	if f.Override {
		view.Overridden = true
		view.Status = f.OverrideStatus
		return view
	}

	switch active {
	case 0:
		view.Status = entities.OrderStatusAwaitingPayment
	case 1:
		view.Status = entities.OrderStatusAwaitingAgreement
	case 2:
		view.Status = entities.OrderStatusAwaitingInstallBooking
	default:
		switch {
		case steps[3].Complete:
			view.Status = entities.OrderStatusCompleted
		case f.EngineerStatus == entities.EngineerJobStatusInProgress,
			f.EngineerStatus == entities.EngineerJobStatusChecklistComplete:
			view.Status = entities.OrderStatusInProgress
		default:
			view.Status = entities.OrderStatusScheduled
		}
	}
	return view
}

// CanSchedule is the agreement gate: client-facing scheduling is reachable
// only once both the payment and agreement steps are complete.
func CanSchedule(f Facts) bool {
	return f.Paid.GreaterThanOrEqual(PaymentThreshold(f)) && f.SignedAt != nil
}
