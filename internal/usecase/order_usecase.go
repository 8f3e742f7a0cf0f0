package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"installworks/internal/domain/entities"
	"installworks/internal/domain/lifecycle"
	"installworks/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrOrderExistsForQuote = errors.New("order already exists for quote")
	ErrClientNotFound      = errors.New("client not found")
	ErrPaymentIncomplete   = errors.New("payment step incomplete")
	ErrInvalidStatusToken  = errors.New("invalid status token")
)

// IOrderUseCase exposes order lifecycle operations.
//
// The canonical status is never trusted from storage: every read re-derives
// it from raw facts unless the manual override flag is set.

type IOrderUseCase interface {
	MaterializeFromQuote(ctx context.Context, q entities.Quote) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetView(ctx context.Context, id string) (entities.Order, lifecycle.View, lifecycle.Plan, error)
	SignAgreement(ctx context.Context, id string) (entities.Order, error)
	SetManualOverride(ctx context.Context, id string, status entities.OrderStatus, notes, actor string) (entities.Order, error)
	ClearManualOverride(ctx context.Context, id, actor string) (entities.Order, error)
	Cancel(ctx context.Context, id, reason, actor string) (entities.Order, error)
	AdminSchedule(ctx context.Context, id string, at time.Time, window string, estimatedHours int, actor string) (entities.Order, error)
	AssignEngineer(ctx context.Context, orderID, engineerID string) (entities.Order, error)
	SetQANotes(ctx context.Context, id, notes string) (entities.Order, error)
	ListActivity(ctx context.Context, orderID string) ([]entities.ActivityEvent, error)
}

type OrderUseCase struct {
	repo         interfaces.IOrderRepository
	clientRepo   interfaces.IClientRepository
	policyRepo   interfaces.IPaymentPolicyRepository
	engineerRepo interfaces.IEngineerRepository
	activityRepo interfaces.IActivityLogRepository
	publisher    interfaces.IStatusPublisher
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	clientRepo interfaces.IClientRepository,
	policyRepo interfaces.IPaymentPolicyRepository,
	engineerRepo interfaces.IEngineerRepository,
	activityRepo interfaces.IActivityLogRepository,
	publisher interfaces.IStatusPublisher,
) *OrderUseCase {
	return &OrderUseCase{
		repo:         repo,
		clientRepo:   clientRepo,
		policyRepo:   policyRepo,
		engineerRepo: engineerRepo,
		activityRepo: activityRepo,
		publisher:    publisher,
	}
}

// newOrderNumber builds a human-readable, collision-resistant order number:
// a date component plus a random uuid suffix.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("IW-%s-%s", now.UTC().Format("20060102"), suffix)
}

// MaterializeFromQuote converts an accepted quote into a new order.
//
// The deposit is resolved once from the current payment policy and frozen on
// the order; the job address is a snapshot of the client address. If policy
// resolution fails nothing is written.
func (u *OrderUseCase) MaterializeFromQuote(ctx context.Context, q entities.Quote) (entities.Order, error) {
	log.Printf("[order][usecase] materialize start quote_id=%s total=%s", q.ID, q.Total)
	if strings.TrimSpace(q.ID) == "" {
		return entities.Order{}, ErrInvalidQuoteID
	}

	client, err := u.clientRepo.GetByID(ctx, q.ClientID)
	if err != nil {
		return entities.Order{}, err
	}
	if client.ID == "" {
		log.Printf("[order][usecase] client not found quote_id=%s client_id=%s", q.ID, q.ClientID)
		return entities.Order{}, ErrClientNotFound
	}

	policy, err := u.policyRepo.Get(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	deposit, err := lifecycle.ResolveDeposit(policy, q.Total)
	if err != nil {
		log.Printf("[order][usecase] deposit resolution failed quote_id=%s err=%v", q.ID, err)
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:          uuid.NewString(),
		OrderNumber: newOrderNumber(now),
		QuoteID:     q.ID,
		ClientID:    client.ID,
		Total:       q.Total,
		Deposit:     deposit,
		AmountPaid:  decimal.Zero,
		Currency:    policy.Currency,
		Stage:       policy.Stage,
		JobAddress:  client.Address,
		Status:      entities.OrderStatusAwaitingPayment,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.CreateForQuote(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	if created.ID == "" {
		log.Printf("[order][usecase] quote already materialized quote_id=%s", q.ID)
		return entities.Order{}, ErrOrderExistsForQuote
	}
	log.Printf("[order][usecase] materialize success quote_id=%s order_id=%s number=%s deposit=%s",
		q.ID, created.ID, created.OrderNumber, created.Deposit)
	u.publish(created)
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// GetView returns the order with its re-derived lifecycle view and payment
// plan. This is the single read path both the admin and client UIs consume.
func (u *OrderUseCase) GetView(ctx context.Context, id string) (entities.Order, lifecycle.View, lifecycle.Plan, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, lifecycle.View{}, lifecycle.Plan{}, err
	}
	view := lifecycle.Derive(lifecycle.FactsFromOrder(o))
	plan := lifecycle.BuildPlan(o.Total, o.Deposit, o.AmountPaid, o.Stage)
	return o, view, plan, nil
}

// SignAgreement is the client-facing signing entry point. It is gated on the
// payment step being complete; an administrator can backdate a signature
// directly at the repository layer, which the deriver tolerates.
func (u *OrderUseCase) SignAgreement(ctx context.Context, id string) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.AgreementSignedAt != nil {
		return o, nil
	}

	facts := lifecycle.FactsFromOrder(o)
	if !o.AmountPaid.GreaterThanOrEqual(lifecycle.PaymentThreshold(facts)) {
		log.Printf("[order][usecase] agreement blocked, payment incomplete order_id=%s paid=%s", o.ID, o.AmountPaid)
		return entities.Order{}, ErrPaymentIncomplete
	}

	updated, err := u.repo.SetAgreementSigned(ctx, o.ID, time.Now().UTC())
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] agreement signed order_id=%s", updated.ID)
	updated = u.refreshStatus(ctx, updated)
	u.publish(updated)
	return updated, nil
}

func (u *OrderUseCase) SetManualOverride(ctx context.Context, id string, status entities.OrderStatus, notes, actor string) (entities.Order, error) {
	if !status.Valid() {
		return entities.Order{}, ErrInvalidStatusToken
	}
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	updated, err := u.repo.SetOverride(ctx, o.ID, true, status, notes)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	u.audit(ctx, updated.ID, actor, entities.ActivityActionOverrideSet, notes)
	log.Printf("[order][usecase] manual override set order_id=%s status=%s actor=%s", updated.ID, status, actor)
	u.publish(updated)
	return updated, nil
}

func (u *OrderUseCase) ClearManualOverride(ctx context.Context, id, actor string) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	facts := lifecycle.FactsFromOrder(o)
	facts.Override = false
	derived := lifecycle.Derive(facts)

	updated, err := u.repo.SetOverride(ctx, o.ID, false, derived.Status, "")
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	u.audit(ctx, updated.ID, actor, entities.ActivityActionOverrideCleared, "")
	log.Printf("[order][usecase] manual override cleared order_id=%s derived=%s actor=%s", updated.ID, derived.Status, actor)
	u.publish(updated)
	return updated, nil
}

// Cancel is the explicit administrator terminal state. It is stored as an
// override: cancellation is never derivable from facts.
func (u *OrderUseCase) Cancel(ctx context.Context, id, reason, actor string) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	updated, err := u.repo.SetOverride(ctx, o.ID, true, entities.OrderStatusCancelled, reason)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	u.audit(ctx, updated.ID, actor, entities.ActivityActionCancelled, reason)
	log.Printf("[order][usecase] cancelled order_id=%s actor=%s", updated.ID, actor)
	u.publish(updated)
	return updated, nil
}

// AdminSchedule sets an install date without the agreement gate. Allowed for
// administrators only and always audited; client self-service goes through
// the scheduling usecase instead.
func (u *OrderUseCase) AdminSchedule(ctx context.Context, id string, at time.Time, window string, estimatedHours int, actor string) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	updated, err := u.repo.SetSchedule(ctx, o.ID, at.UTC(), window, estimatedHours)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	u.audit(ctx, updated.ID, actor, entities.ActivityActionAdminScheduled, at.UTC().Format(time.RFC3339))
	log.Printf("[order][usecase] admin scheduled order_id=%s at=%s actor=%s", updated.ID, at.UTC().Format(time.RFC3339), actor)
	updated = u.refreshStatus(ctx, updated)
	u.publish(updated)
	return updated, nil
}

func (u *OrderUseCase) AssignEngineer(ctx context.Context, orderID, engineerID string) (entities.Order, error) {
	engineerID = strings.TrimSpace(engineerID)
	if engineerID == "" {
		return entities.Order{}, ErrEngineerNotFound
	}
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	eng, err := u.engineerRepo.GetByID(ctx, engineerID)
	if err != nil {
		return entities.Order{}, err
	}
	if eng.ID == "" {
		return entities.Order{}, ErrEngineerNotFound
	}

	updated, err := u.repo.AssignEngineer(ctx, o.ID, eng.ID)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] engineer assigned order_id=%s engineer_id=%s", updated.ID, eng.ID)
	u.publish(updated)
	return updated, nil
}

func (u *OrderUseCase) SetQANotes(ctx context.Context, id, notes string) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	updated, err := u.repo.SetQANotes(ctx, o.ID, notes)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) ListActivity(ctx context.Context, orderID string) ([]entities.ActivityEvent, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.activityRepo.ListByOrderID(ctx, orderID)
}

// refreshStatus rewrites the stored status field for list screens after a
// fact change. The stored value is advisory; read paths re-derive.
func (u *OrderUseCase) refreshStatus(ctx context.Context, o entities.Order) entities.Order {
	if o.StatusOverride {
		return o
	}
	derived := lifecycle.Derive(lifecycle.FactsFromOrder(o))
	if derived.Status == o.Status {
		return o
	}
	updated, err := u.repo.SetStoredStatus(ctx, o.ID, derived.Status)
	if err != nil || updated.ID == "" {
		log.Printf("[order][usecase] stored status refresh failed order_id=%s err=%v", o.ID, err)
		return o
	}
	return updated
}

func (u *OrderUseCase) publish(o entities.Order) {
	if u.publisher == nil {
		return
	}
	u.publisher.Publish(o.ID, lifecycle.Derive(lifecycle.FactsFromOrder(o)))
}

func (u *OrderUseCase) audit(ctx context.Context, orderID, actor string, action entities.ActivityAction, reason string) {
	if u.activityRepo == nil {
		return
	}
	_, err := u.activityRepo.Append(ctx, entities.ActivityEvent{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Actor:     actor,
		Action:    action,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[order][usecase] activity append failed order_id=%s action=%s err=%v", orderID, action, err)
	}
}
