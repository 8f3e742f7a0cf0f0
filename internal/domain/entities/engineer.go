package entities

import "time"

// Engineer is an installer who can be assigned to orders. Available is a
// declared flag consulted at booking time; an unavailable engineer cannot
// accept new install dates.

type Engineer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

// Booking reserves one engineer for one whole day. One install date blocks
// the entire day for that engineer.
//
// Storage model (DynamoDB):
//   - PK: engineer_id, SK: date (YYYY-MM-DD)
//
// The composite key plus a conditional put makes double-booking a rejected
// write instead of a silent overwrite.

type Booking struct {
	EngineerID string    `json:"engineer_id"`
	Date       string    `json:"date"`
	OrderID    string    `json:"order_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChecklistItem is one named boolean on an order's completion checklist.
// "Checklist complete" is never stored; it is recomputed from items on read.
//
// Storage model (DynamoDB):
//   - PK: order_id, SK: position

type ChecklistItem struct {
	OrderID  string `json:"order_id"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Done     bool   `json:"done"`
}

// ChecklistComplete reports whether every item is done. An empty checklist is
// not complete; sign-off always requires at least one checked item.
func ChecklistComplete(items []ChecklistItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if !it.Done {
			return false
		}
	}
	return true
}
