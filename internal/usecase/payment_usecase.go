package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"installworks/internal/domain/entities"
	"installworks/internal/domain/lifecycle"
	"installworks/internal/usecase/interfaces"
)

var (
	ErrInvalidSessionID           = errors.New("invalid session id")
	ErrPaymentSessionNotFound     = errors.New("payment session not found")
	ErrNothingToPay               = errors.New("order is fully paid")
	ErrPaymentVerificationFailed  = errors.New("payment verification failed")
	ErrPaymentNotCaptured         = errors.New("payment not captured")
	ErrPaymentProviderUnavailable = errors.New("payment provider not configured")
)

// IPaymentUseCase drives the staged payment flow.
//
// A session is a redirect to the external provider and records a pending
// event only; the order's amount paid moves when Confirm verifies the
// capture with the provider. Abandoned sessions leave the order untouched.

type IPaymentUseCase interface {
	StartSession(ctx context.Context, orderID string) (entities.PaymentEvent, string, error)
	Confirm(ctx context.Context, sessionID string) (entities.Order, entities.PaymentEvent, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentEvent, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentEventRepository
	orderRepo interfaces.IOrderRepository
	provider  interfaces.IPaymentSessionProvider
	publisher interfaces.IStatusPublisher
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentEventRepository,
	orderRepo interfaces.IOrderRepository,
	provider interfaces.IPaymentSessionProvider,
	publisher interfaces.IStatusPublisher,
) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orderRepo: orderRepo, provider: provider, publisher: publisher}
}

// StartSession resolves the next payment action for the order and opens a
// provider session for exactly that amount.
func (u *PaymentUseCase) StartSession(ctx context.Context, orderID string) (entities.PaymentEvent, string, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.PaymentEvent{}, "", ErrInvalidOrderID
	}
	if u.provider == nil {
		return entities.PaymentEvent{}, "", ErrPaymentProviderUnavailable
	}

	o, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.PaymentEvent{}, "", err
	}
	if o.ID == "" {
		return entities.PaymentEvent{}, "", ErrOrderNotFound
	}

	plan := lifecycle.BuildPlan(o.Total, o.Deposit, o.AmountPaid, o.Stage)
	if plan.NextAction == lifecycle.PaymentActionNone {
		log.Printf("[payment][usecase] nothing to pay order_id=%s paid=%s", o.ID, o.AmountPaid)
		return entities.PaymentEvent{}, "", ErrNothingToPay
	}

	paymentType := entities.PaymentTypeBalance
	if plan.NextAction == lifecycle.PaymentActionDeposit {
		paymentType = entities.PaymentTypeDeposit
	}

	log.Printf("[payment][usecase] session start order_id=%s type=%s amount=%s", o.ID, paymentType, plan.NextAmount)
	session, err := u.provider.CreateSession(ctx, o.ID, o.OrderNumber, plan.NextAmount, o.Currency, paymentType)
	if err != nil {
		log.Printf("[payment][usecase] provider session failed order_id=%s err=%v", o.ID, err)
		return entities.PaymentEvent{}, "", err
	}

	event := entities.PaymentEvent{
		ID:        uuid.NewString(),
		OrderID:   o.ID,
		SessionID: session.SessionID,
		Type:      paymentType,
		Status:    entities.PaymentEventStatusPending,
		Amount:    plan.NextAmount,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, event)
	if err != nil {
		return entities.PaymentEvent{}, "", err
	}
	log.Printf("[payment][usecase] session created order_id=%s session_id=%s event_id=%s", o.ID, session.SessionID, created.ID)
	return created, session.RedirectURL, nil
}

// Confirm verifies a session with the provider and, on capture, marks the
// event completed and moves the order's amount paid. Verification being
// unreachable is retryable: the pending event stays pending and the caller
// may try again.
func (u *PaymentUseCase) Confirm(ctx context.Context, sessionID string) (entities.Order, entities.PaymentEvent, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Order{}, entities.PaymentEvent{}, ErrInvalidSessionID
	}
	if u.provider == nil {
		return entities.Order{}, entities.PaymentEvent{}, ErrPaymentProviderUnavailable
	}

	event, err := u.repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return entities.Order{}, entities.PaymentEvent{}, err
	}
	if event.ID == "" {
		return entities.Order{}, entities.PaymentEvent{}, ErrPaymentSessionNotFound
	}

	if event.Status == entities.PaymentEventStatusCompleted {
		// Duplicate confirmation. Nothing to apply twice.
		o, err := u.orderRepo.GetByID(ctx, event.OrderID)
		if err != nil {
			return entities.Order{}, entities.PaymentEvent{}, err
		}
		return o, event, nil
	}

	capture, err := u.provider.VerifySession(ctx, sessionID)
	if err != nil {
		log.Printf("[payment][usecase] verification unreachable session_id=%s err=%v", sessionID, err)
		return entities.Order{}, entities.PaymentEvent{}, fmt.Errorf("%w: %v", ErrPaymentVerificationFailed, err)
	}
	if !capture.Captured {
		log.Printf("[payment][usecase] not captured session_id=%s", sessionID)
		return entities.Order{}, entities.PaymentEvent{}, ErrPaymentNotCaptured
	}

	amount := capture.Amount
	if amount.Sign() <= 0 {
		amount = event.Amount
	}

	now := time.Now().UTC()
	completed, err := u.repo.MarkCompleted(ctx, event.ID, amount, now, capture.Payload)
	if err != nil {
		return entities.Order{}, entities.PaymentEvent{}, err
	}

	o, err := u.orderRepo.AddAmountPaid(ctx, event.OrderID, amount)
	if err != nil {
		return entities.Order{}, entities.PaymentEvent{}, err
	}
	if o.ID == "" {
		return entities.Order{}, entities.PaymentEvent{}, ErrOrderNotFound
	}
	log.Printf("[payment][usecase] capture applied order_id=%s session_id=%s amount=%s paid=%s", o.ID, sessionID, amount, o.AmountPaid)

	if !o.StatusOverride {
		derived := lifecycle.Derive(lifecycle.FactsFromOrder(o))
		if derived.Status != o.Status {
			if refreshed, err := u.orderRepo.SetStoredStatus(ctx, o.ID, derived.Status); err == nil && refreshed.ID != "" {
				o = refreshed
			}
		}
	}
	if u.publisher != nil {
		u.publisher.Publish(o.ID, lifecycle.Derive(lifecycle.FactsFromOrder(o)))
	}
	return o, completed, nil
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentEvent, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}
