package response

import (
	"time"

	"installworks/internal/domain/entities"
	"installworks/internal/domain/lifecycle"
)

type OrderResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	QuoteID     string `json:"quote_id"`
	ClientID    string `json:"client_id"`
	Total       string `json:"total"`
	Deposit     string `json:"deposit"`
	AmountPaid  string `json:"amount_paid"`
	Currency    string `json:"currency"`
	Stage       string `json:"payment_stage"`
	JobAddress  string `json:"job_address"`

	Status         string `json:"status"`
	StatusOverride bool   `json:"status_override"`
	OverrideNotes  string `json:"override_notes,omitempty"`

	AgreementSignedAt  *time.Time `json:"agreement_signed_at,omitempty"`
	ScheduledInstallAt *time.Time `json:"scheduled_install_at,omitempty"`
	InstallWindow      string     `json:"install_window,omitempty"`
	EstimatedHours     int        `json:"estimated_hours,omitempty"`

	EngineerID     string     `json:"engineer_id,omitempty"`
	EngineerStatus string     `json:"engineer_status,omitempty"`
	SignedOffAt    *time.Time `json:"signed_off_at,omitempty"`

	Evidence map[string][]string `json:"evidence,omitempty"`
	QANotes  string              `json:"qa_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		QuoteID:            o.QuoteID,
		ClientID:           o.ClientID,
		Total:              o.Total.StringFixed(2),
		Deposit:            o.Deposit.StringFixed(2),
		AmountPaid:         o.AmountPaid.StringFixed(2),
		Currency:           o.Currency,
		Stage:              string(o.Stage),
		JobAddress:         o.JobAddress,
		Status:             string(o.Status),
		StatusOverride:     o.StatusOverride,
		OverrideNotes:      o.OverrideNotes,
		AgreementSignedAt:  o.AgreementSignedAt,
		ScheduledInstallAt: o.ScheduledInstallAt,
		InstallWindow:      o.InstallWindow,
		EstimatedHours:     o.EstimatedHours,
		EngineerID:         o.EngineerID,
		EngineerStatus:     string(o.EngineerStatus),
		SignedOffAt:        o.SignedOffAt,
		Evidence:           o.Evidence,
		QANotes:            o.QANotes,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

// OrderViewResponse combines the stored order with its freshly derived
// lifecycle view and payment plan. This is what both admin and client
// dashboards render.
type OrderViewResponse struct {
	Order    OrderResponse       `json:"order"`
	Status   string              `json:"status"`
	Override bool                `json:"overridden"`
	Steps    []lifecycle.Step    `json:"steps"`
	Payment  PaymentPlanResponse `json:"payment"`
}

type PaymentPlanResponse struct {
	Outstanding string `json:"outstanding"`
	NextAction  string `json:"next_action"`
	NextAmount  string `json:"next_amount"`
	FullyPaid   bool   `json:"fully_paid"`
	Overpaid    bool   `json:"overpaid"`
}

func FromOrderView(o entities.Order, view lifecycle.View, plan lifecycle.Plan) OrderViewResponse {
	return OrderViewResponse{
		Order:    FromOrder(o),
		Status:   string(view.Status),
		Override: view.Overridden,
		Steps:    view.Steps,
		Payment: PaymentPlanResponse{
			Outstanding: plan.Outstanding.StringFixed(2),
			NextAction:  string(plan.NextAction),
			NextAmount:  plan.NextAmount.StringFixed(2),
			FullyPaid:   plan.FullyPaid,
			Overpaid:    plan.Overpaid,
		},
	}
}

type ActivityEventResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromActivityEvents(events []entities.ActivityEvent) []ActivityEventResponse {
	out := make([]ActivityEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ActivityEventResponse{
			ID:        e.ID,
			OrderID:   e.OrderID,
			Actor:     e.Actor,
			Action:    string(e.Action),
			Reason:    e.Reason,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
