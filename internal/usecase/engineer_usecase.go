package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"installworks/internal/domain/entities"
	"installworks/internal/domain/lifecycle"
	"installworks/internal/usecase/interfaces"
)

var (
	ErrChecklistIncomplete   = errors.New("checklist incomplete")
	ErrMissingSignature      = errors.New("missing signature")
	ErrSignOffNotConfirmed   = errors.New("sign-off not confirmed")
	ErrNotSignedOff          = errors.New("order not signed off")
	ErrAlreadySignedOff      = errors.New("order already signed off")
	ErrNoEngineerAssigned    = errors.New("no engineer assigned")
	ErrEvidenceRequired      = errors.New("installation evidence required")
	ErrInvalidChecklist      = errors.New("invalid checklist")
	ErrChecklistItemNotFound = errors.New("checklist item not found")
)

// IEngineerUseCase is the engineer completion workflow:
// assigned -> in_progress -> checklist_complete -> signed_off, with a
// reopen ("reaccess") transition back to in_progress that clears the
// sign-off facts and is always audited.

type IEngineerUseCase interface {
	SetupChecklist(ctx context.Context, orderID string, itemNames []string) ([]entities.ChecklistItem, error)
	GetChecklist(ctx context.Context, orderID string) ([]entities.ChecklistItem, bool, error)
	Start(ctx context.Context, orderID, notes string) (entities.Order, error)
	SetChecklistItem(ctx context.Context, orderID string, position int, done bool) (entities.Order, []entities.ChecklistItem, error)
	SignOff(ctx context.Context, orderID string, confirmed bool, signer, notes string) (entities.Order, error)
	Reopen(ctx context.Context, orderID, actor, reason string) (entities.Order, error)
	PutEvidence(ctx context.Context, orderID, category string, refs []string, replace bool) (entities.Order, error)
}

type EngineerUseCase struct {
	orderRepo     interfaces.IOrderRepository
	checklistRepo interfaces.IChecklistRepository
	activityRepo  interfaces.IActivityLogRepository
	notifier      interfaces.INotificationDispatcher
	publisher     interfaces.IStatusPublisher
}

var _ IEngineerUseCase = (*EngineerUseCase)(nil)

func NewEngineerUseCase(
	orderRepo interfaces.IOrderRepository,
	checklistRepo interfaces.IChecklistRepository,
	activityRepo interfaces.IActivityLogRepository,
	notifier interfaces.INotificationDispatcher,
	publisher interfaces.IStatusPublisher,
) *EngineerUseCase {
	return &EngineerUseCase{
		orderRepo:     orderRepo,
		checklistRepo: checklistRepo,
		activityRepo:  activityRepo,
		notifier:      notifier,
		publisher:     publisher,
	}
}

func (u *EngineerUseCase) SetupChecklist(ctx context.Context, orderID string, itemNames []string) ([]entities.ChecklistItem, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if len(itemNames) == 0 {
		return nil, ErrInvalidChecklist
	}

	items := make([]entities.ChecklistItem, 0, len(itemNames))
	for i, name := range itemNames {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, ErrInvalidChecklist
		}
		items = append(items, entities.ChecklistItem{OrderID: orderID, Position: i + 1, Name: name})
	}
	if err := u.checklistRepo.PutItems(ctx, orderID, items); err != nil {
		return nil, err
	}
	log.Printf("[engineer][usecase] checklist set order_id=%s items=%d", orderID, len(items))
	return items, nil
}

// GetChecklist returns the items and whether they are all done. The complete
// flag is recomputed on every read, never stored.
func (u *EngineerUseCase) GetChecklist(ctx context.Context, orderID string) ([]entities.ChecklistItem, bool, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, false, ErrInvalidOrderID
	}
	items, err := u.checklistRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	return items, entities.ChecklistComplete(items), nil
}

// Start moves an assigned order into in_progress.
func (u *EngineerUseCase) Start(ctx context.Context, orderID, notes string) (entities.Order, error) {
	o, err := u.getOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.EngineerID == "" {
		return entities.Order{}, ErrNoEngineerAssigned
	}
	if o.SignedOffAt != nil {
		return entities.Order{}, ErrAlreadySignedOff
	}

	updated, err := u.orderRepo.SetEngineerProgress(ctx, o.ID, entities.EngineerJobStatusInProgress, notes)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[engineer][usecase] started order_id=%s engineer_id=%s", updated.ID, updated.EngineerID)
	u.publish(updated)
	return updated, nil
}

// SetChecklistItem toggles one item and re-evaluates the engineer status:
// all items done moves to checklist_complete, unticking after that drops
// back to in_progress.
func (u *EngineerUseCase) SetChecklistItem(ctx context.Context, orderID string, position int, done bool) (entities.Order, []entities.ChecklistItem, error) {
	o, err := u.getOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, nil, err
	}
	if o.SignedOffAt != nil {
		return entities.Order{}, nil, ErrAlreadySignedOff
	}

	item, err := u.checklistRepo.SetItemDone(ctx, o.ID, position, done)
	if err != nil {
		return entities.Order{}, nil, err
	}
	if item.OrderID == "" {
		return entities.Order{}, nil, ErrChecklistItemNotFound
	}

	items, err := u.checklistRepo.ListByOrderID(ctx, o.ID)
	if err != nil {
		return entities.Order{}, nil, err
	}

	next := entities.EngineerJobStatusInProgress
	if entities.ChecklistComplete(items) {
		next = entities.EngineerJobStatusChecklistComplete
	}
	if o.EngineerStatus != next {
		updated, err := u.orderRepo.SetEngineerProgress(ctx, o.ID, next, o.EngineerNotes)
		if err != nil {
			return entities.Order{}, nil, err
		}
		if updated.ID != "" {
			o = updated
		}
	}
	return o, items, nil
}

// SignOff is the engineer's completion attestation. It requires an explicit
// confirmation, a non-empty signer name and a fully complete checklist; on
// any failure nothing is written. The admin notification afterwards is
// fire-and-forget: a delivery failure is logged and never rolls back the
// sign-off.
func (u *EngineerUseCase) SignOff(ctx context.Context, orderID string, confirmed bool, signer, notes string) (entities.Order, error) {
	o, err := u.getOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.SignedOffAt != nil {
		return entities.Order{}, ErrAlreadySignedOff
	}
	if !confirmed {
		return entities.Order{}, ErrSignOffNotConfirmed
	}
	signer = strings.TrimSpace(signer)
	if signer == "" {
		return entities.Order{}, ErrMissingSignature
	}

	items, err := u.checklistRepo.ListByOrderID(ctx, o.ID)
	if err != nil {
		return entities.Order{}, err
	}
	if !entities.ChecklistComplete(items) {
		log.Printf("[engineer][usecase] sign-off blocked, checklist incomplete order_id=%s", o.ID)
		return entities.Order{}, ErrChecklistIncomplete
	}
	if signOffRequiresEvidence() && len(o.Evidence) == 0 {
		log.Printf("[engineer][usecase] sign-off blocked, evidence required order_id=%s", o.ID)
		return entities.Order{}, ErrEvidenceRequired
	}

	now := time.Now().UTC()
	updated, err := u.orderRepo.SetSignOff(ctx, o.ID, &now, signer, entities.EngineerJobStatusSignedOff)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if notes != "" {
		if withNotes, err := u.orderRepo.SetEngineerProgress(ctx, updated.ID, entities.EngineerJobStatusSignedOff, notes); err == nil && withNotes.ID != "" {
			updated = withNotes
		}
	}
	log.Printf("[engineer][usecase] signed off order_id=%s signer=%q", updated.ID, signer)

	if u.notifier != nil {
		if err := u.notifier.Dispatch(ctx, "engineer_signed_off", map[string]any{
			"order_id":     updated.ID,
			"order_number": updated.OrderNumber,
			"signer":       signer,
			"signed_at":    now.Format(time.RFC3339),
		}); err != nil {
			log.Printf("[engineer][usecase] admin notification failed order_id=%s err=%v", updated.ID, err)
		}
	}

	updated = u.refreshStatus(ctx, updated)
	u.publish(updated)
	return updated, nil
}

// Reopen ("reaccess") reverses a sign-off: it clears the sign-off timestamp
// and signature and returns the order to in_progress. Because it reverses a
// terminal-looking fact it must be audited; failure to write the activity
// event fails the reopen.
func (u *EngineerUseCase) Reopen(ctx context.Context, orderID, actor, reason string) (entities.Order, error) {
	o, err := u.getOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.SignedOffAt == nil {
		return entities.Order{}, ErrNotSignedOff
	}

	if _, err := u.activityRepo.Append(ctx, entities.ActivityEvent{
		ID:        uuid.NewString(),
		OrderID:   o.ID,
		Actor:     strings.TrimSpace(actor),
		Action:    entities.ActivityActionReaccess,
		Reason:    strings.TrimSpace(reason),
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		log.Printf("[engineer][usecase] reopen audit failed order_id=%s err=%v", o.ID, err)
		return entities.Order{}, err
	}

	updated, err := u.orderRepo.SetSignOff(ctx, o.ID, nil, "", entities.EngineerJobStatusInProgress)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[engineer][usecase] reopened order_id=%s actor=%s", updated.ID, actor)
	updated = u.refreshStatus(ctx, updated)
	u.publish(updated)
	return updated, nil
}

// PutEvidence appends or replaces installation image references for one
// category. Independent of checklist state; conventionally done before
// sign-off.
func (u *EngineerUseCase) PutEvidence(ctx context.Context, orderID, category string, refs []string, replace bool) (entities.Order, error) {
	category = strings.TrimSpace(category)
	if category == "" || len(refs) == 0 {
		return entities.Order{}, ErrInvalidChecklist
	}
	o, err := u.getOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	evidence := make(map[string][]string, len(o.Evidence)+1)
	for k, v := range o.Evidence {
		evidence[k] = v
	}
	if replace {
		evidence[category] = refs
	} else {
		evidence[category] = append(evidence[category], refs...)
	}

	updated, err := u.orderRepo.SetEvidence(ctx, o.ID, evidence)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[engineer][usecase] evidence updated order_id=%s category=%s refs=%d replace=%t", updated.ID, category, len(refs), replace)
	return updated, nil
}

func (u *EngineerUseCase) getOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *EngineerUseCase) refreshStatus(ctx context.Context, o entities.Order) entities.Order {
	if o.StatusOverride {
		return o
	}
	derived := lifecycle.Derive(lifecycle.FactsFromOrder(o))
	if derived.Status == o.Status {
		return o
	}
	updated, err := u.orderRepo.SetStoredStatus(ctx, o.ID, derived.Status)
	if err != nil || updated.ID == "" {
		return o
	}
	return updated
}

func (u *EngineerUseCase) publish(o entities.Order) {
	if u.publisher == nil {
		return
	}
	u.publisher.Publish(o.ID, lifecycle.Derive(lifecycle.FactsFromOrder(o)))
}

// Whether sign-off requires uploaded evidence is configurable; the default
// mirrors the historical behavior of not requiring it.
func signOffRequiresEvidence() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SIGNOFF_REQUIRE_EVIDENCE")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
