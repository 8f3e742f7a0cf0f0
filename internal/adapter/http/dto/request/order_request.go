package request

import "time"

type OverrideRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
	Actor  string `json:"actor" binding:"required"`
}

type ClearOverrideRequest struct {
	Actor string `json:"actor" binding:"required"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
	Actor  string `json:"actor" binding:"required"`
}

// AdminScheduleRequest sets an install date directly, bypassing the
// payment/agreement gate. The action is written to the activity log.
type AdminScheduleRequest struct {
	InstallAt      time.Time `json:"install_at" binding:"required"`
	Window         string    `json:"window"`
	EstimatedHours int       `json:"estimated_hours"`
	Actor          string    `json:"actor" binding:"required"`
}

type AssignEngineerRequest struct {
	EngineerID string `json:"engineer_id" binding:"required"`
}

type QANotesRequest struct {
	Notes string `json:"notes" binding:"required"`
}
