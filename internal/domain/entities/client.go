package entities

import "time"

// Client is the customer a quote is addressed to. Address is copied onto the
// order at acceptance time; later edits here do not touch historical orders.

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// DateLayout is the calendar-date format used for bookings and blocked dates.
const DateLayout = "2006-01-02"

// BlockedDate is a client-declared day of unavailability, consulted (never
// mutated) by the scheduling step.
//
// Storage model (DynamoDB):
//   - PK: client_id, SK: date (YYYY-MM-DD)

type BlockedDate struct {
	ClientID  string    `json:"client_id"`
	Date      string    `json:"date"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
