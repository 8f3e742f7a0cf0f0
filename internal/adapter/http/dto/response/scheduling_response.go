package response

import (
	"time"

	"installworks/internal/domain/entities"
)

type BlockedDateResponse struct {
	ClientID  string    `json:"client_id"`
	Date      string    `json:"date"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromBlockedDate(b entities.BlockedDate) BlockedDateResponse {
	return BlockedDateResponse{
		ClientID:  b.ClientID,
		Date:      b.Date,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

func FromBlockedDates(dates []entities.BlockedDate) []BlockedDateResponse {
	out := make([]BlockedDateResponse, 0, len(dates))
	for _, b := range dates {
		out = append(out, FromBlockedDate(b))
	}
	return out
}

type AvailabilityResponse struct {
	EngineerID string `json:"engineer_id"`
	Date       string `json:"date"`
	Available  bool   `json:"available"`
	Reason     string `json:"reason,omitempty"`
}
