package entities

import "time"

type ActivityAction string

const (
	ActivityActionReaccess        ActivityAction = "reaccess"
	ActivityActionOverrideSet     ActivityAction = "override_set"
	ActivityActionOverrideCleared ActivityAction = "override_cleared"
	ActivityActionCancelled       ActivityAction = "cancelled"
	ActivityActionAdminScheduled  ActivityAction = "admin_scheduled"
	ActivityActionSignedOff       ActivityAction = "signed_off"
)

// ActivityEvent is an append-only audit record for actions that change or
// reverse lifecycle facts (reopening a signed-off order, manual overrides,
// administrative scheduling).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id

type ActivityEvent struct {
	ID        string         `json:"id"`
	OrderID   string         `json:"order_id"`
	Actor     string         `json:"actor"`
	Action    ActivityAction `json:"action"`
	Reason    string         `json:"reason,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
