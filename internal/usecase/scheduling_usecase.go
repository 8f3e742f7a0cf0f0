package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"installworks/internal/domain/entities"
	"installworks/internal/domain/lifecycle"
	"installworks/internal/usecase/interfaces"
)

var (
	ErrDateUnavailable   = errors.New("date unavailable")
	ErrBlockedDateInPast = errors.New("blocked date in the past")
	ErrInvalidDate       = errors.New("invalid date")
	ErrSchedulingLocked  = errors.New("scheduling locked until payment and agreement complete")
	ErrEngineerNotFound  = errors.New("engineer not found")
)

// ISchedulingUseCase books installation dates and manages client blocked
// dates. Booking is the client-facing path and sits behind the agreement
// gate; administrators bypass the gate via the order usecase.

type ISchedulingUseCase interface {
	Book(ctx context.Context, orderID, engineerID, date, window string, estimatedHours int) (entities.Order, error)
	CheckDate(ctx context.Context, engineerID, clientID, date string) error
	AddBlockedDate(ctx context.Context, clientID, date, reason string) (entities.BlockedDate, error)
	ListBlockedDates(ctx context.Context, clientID string) ([]entities.BlockedDate, error)
}

type SchedulingUseCase struct {
	orderRepo    interfaces.IOrderRepository
	bookingRepo  interfaces.IBookingRepository
	engineerRepo interfaces.IEngineerRepository
	blockedRepo  interfaces.IBlockedDateRepository
	publisher    interfaces.IStatusPublisher
}

var _ ISchedulingUseCase = (*SchedulingUseCase)(nil)

func NewSchedulingUseCase(
	orderRepo interfaces.IOrderRepository,
	bookingRepo interfaces.IBookingRepository,
	engineerRepo interfaces.IEngineerRepository,
	blockedRepo interfaces.IBlockedDateRepository,
	publisher interfaces.IStatusPublisher,
) *SchedulingUseCase {
	return &SchedulingUseCase{
		orderRepo:    orderRepo,
		bookingRepo:  bookingRepo,
		engineerRepo: engineerRepo,
		blockedRepo:  blockedRepo,
		publisher:    publisher,
	}
}

// Book validates the proposed install date against the constraint set and
// reserves the engineer's day. The (engineer, date) reservation is a
// conditional write: two concurrent bookings for the same day resolve to one
// winner and one ErrDateUnavailable, never a silent double-booking.
func (u *SchedulingUseCase) Book(ctx context.Context, orderID, engineerID, date, window string, estimatedHours int) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	day, err := parseDay(date)
	if err != nil {
		return entities.Order{}, err
	}

	o, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !lifecycle.CanSchedule(lifecycle.FactsFromOrder(o)) {
		log.Printf("[scheduling][usecase] gate closed order_id=%s", o.ID)
		return entities.Order{}, ErrSchedulingLocked
	}

	if err := u.CheckDate(ctx, engineerID, o.ClientID, date); err != nil {
		return entities.Order{}, err
	}

	booking, err := u.bookingRepo.Create(ctx, entities.Booking{
		EngineerID: strings.TrimSpace(engineerID),
		Date:       date,
		OrderID:    o.ID,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if booking.EngineerID == "" {
		// Lost the conditional write to a concurrent booking.
		log.Printf("[scheduling][usecase] day already reserved engineer_id=%s date=%s", engineerID, date)
		return entities.Order{}, ErrDateUnavailable
	}

	updated, err := u.orderRepo.SetSchedule(ctx, o.ID, day, window, estimatedHours)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if updated.EngineerID != booking.EngineerID {
		if assigned, err := u.orderRepo.AssignEngineer(ctx, updated.ID, booking.EngineerID); err == nil && assigned.ID != "" {
			updated = assigned
		}
	}
	log.Printf("[scheduling][usecase] booked order_id=%s engineer_id=%s date=%s", updated.ID, booking.EngineerID, date)

	if !updated.StatusOverride {
		derived := lifecycle.Derive(lifecycle.FactsFromOrder(updated))
		if derived.Status != updated.Status {
			if refreshed, err := u.orderRepo.SetStoredStatus(ctx, updated.ID, derived.Status); err == nil && refreshed.ID != "" {
				updated = refreshed
			}
		}
	}
	if u.publisher != nil {
		u.publisher.Publish(updated.ID, lifecycle.Derive(lifecycle.FactsFromOrder(updated)))
	}
	return updated, nil
}

// CheckDate applies the constraint set without reserving anything: engineer
// declared available, day not already taken, date not blocked by the client.
func (u *SchedulingUseCase) CheckDate(ctx context.Context, engineerID, clientID, date string) error {
	engineerID = strings.TrimSpace(engineerID)
	if engineerID == "" {
		return ErrEngineerNotFound
	}
	if _, err := parseDay(date); err != nil {
		return err
	}

	eng, err := u.engineerRepo.GetByID(ctx, engineerID)
	if err != nil {
		return err
	}
	if eng.ID == "" {
		return ErrEngineerNotFound
	}
	if !eng.Available {
		log.Printf("[scheduling][usecase] engineer unavailable engineer_id=%s", engineerID)
		return ErrDateUnavailable
	}

	existing, err := u.bookingRepo.GetByEngineerAndDate(ctx, engineerID, date)
	if err != nil {
		return err
	}
	if existing.EngineerID != "" {
		return ErrDateUnavailable
	}

	blocked, err := u.blockedRepo.ListByClientID(ctx, clientID)
	if err != nil {
		return err
	}
	for _, b := range blocked {
		if b.Date == date {
			log.Printf("[scheduling][usecase] client blocked date client_id=%s date=%s", clientID, date)
			return ErrDateUnavailable
		}
	}
	return nil
}

// AddBlockedDate records a client-declared unavailable day. Past dates are
// rejected at creation time.
func (u *SchedulingUseCase) AddBlockedDate(ctx context.Context, clientID, date, reason string) (entities.BlockedDate, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.BlockedDate{}, ErrClientNotFound
	}
	day, err := parseDay(date)
	if err != nil {
		return entities.BlockedDate{}, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if day.Before(today) {
		return entities.BlockedDate{}, ErrBlockedDateInPast
	}

	return u.blockedRepo.Create(ctx, entities.BlockedDate{
		ClientID:  clientID,
		Date:      date,
		Reason:    strings.TrimSpace(reason),
		CreatedAt: time.Now().UTC(),
	})
}

func (u *SchedulingUseCase) ListBlockedDates(ctx context.Context, clientID string) ([]entities.BlockedDate, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrClientNotFound
	}
	return u.blockedRepo.ListByClientID(ctx, clientID)
}

func parseDay(date string) (time.Time, error) {
	day, err := time.ParseInLocation(entities.DateLayout, strings.TrimSpace(date), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}
