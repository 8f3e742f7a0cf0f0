package interfaces

import (
	"context"

	"installworks/internal/domain/entities"
)

// IBookingRepository abstracts the (engineer, date) day-level reservations.

type IBookingRepository interface {
	// Create is a conditional put keyed on (engineer_id, date); when the day
	// is already taken it returns a zero-value booking and no error.
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByEngineerAndDate(ctx context.Context, engineerID, date string) (entities.Booking, error)
	DeleteByEngineerAndDate(ctx context.Context, engineerID, date string) error
}

// IBlockedDateRepository abstracts client-declared unavailability dates.

type IBlockedDateRepository interface {
	Create(ctx context.Context, b entities.BlockedDate) (entities.BlockedDate, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.BlockedDate, error)
}

// IEngineerRepository abstracts DynamoDB persistence for Engineer.

type IEngineerRepository interface {
	Create(ctx context.Context, e entities.Engineer) (entities.Engineer, error)
	GetByID(ctx context.Context, id string) (entities.Engineer, error)
	SetAvailable(ctx context.Context, id string, available bool) (entities.Engineer, error)
}

// IClientRepository abstracts DynamoDB persistence for Client.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
}
