package request

// BookInstallRequest is the client-facing booking payload. Date is a
// calendar day (YYYY-MM-DD); one booking blocks the engineer's whole day.
type BookInstallRequest struct {
	EngineerID     string `json:"engineer_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Window         string `json:"window"`
	EstimatedHours int    `json:"estimated_hours"`
}

type BlockedDateRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}
