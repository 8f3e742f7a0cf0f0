package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"installworks/internal/domain/entities"
	"installworks/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuoteInput  = errors.New("invalid quote input")
	ErrQuoteExpired       = errors.New("quote expired")
	ErrQuoteAlreadyClosed = errors.New("quote already accepted or rejected")
	ErrQuoteNotShareable  = errors.New("quote not shareable")
)

// QuoteItemDraft is the operator-entered line used to build a quote.

type QuoteItemDraft struct {
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal
	Config    map[string]string
}

type QuoteDraft struct {
	ClientID  string
	Currency  string
	Items     []QuoteItemDraft
	Shareable bool
	ExpiresAt *time.Time
}

// IQuoteUseCase exposes quote operations. Accepting a quote materializes
// exactly one order; rejecting a quote that already produced an order
// retracts it.

type IQuoteUseCase interface {
	Create(ctx context.Context, draft QuoteDraft) (entities.Quote, error)
	Send(ctx context.Context, id string) (entities.Quote, error)
	Accept(ctx context.Context, id string) (entities.Quote, entities.Order, error)
	Reject(ctx context.Context, id string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetSharedByToken(ctx context.Context, token string) (entities.Quote, error)
	SetShareable(ctx context.Context, id string, shareable bool) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo      interfaces.IQuoteRepository
	orderRepo interfaces.IOrderRepository
	orders    IOrderUseCase
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, orderRepo interfaces.IOrderRepository, orders IOrderUseCase) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, orderRepo: orderRepo, orders: orders}
}

func (u *QuoteUseCase) Create(ctx context.Context, draft QuoteDraft) (entities.Quote, error) {
	clientID := strings.TrimSpace(draft.ClientID)
	if clientID == "" || len(draft.Items) == 0 {
		return entities.Quote{}, ErrInvalidQuoteInput
	}

	total := decimal.Zero
	items := make([]entities.QuoteItem, 0, len(draft.Items))
	for _, it := range draft.Items {
		if strings.TrimSpace(it.Product) == "" || it.Quantity <= 0 || it.UnitPrice.Sign() <= 0 {
			return entities.Quote{}, ErrInvalidQuoteInput
		}
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, entities.QuoteItem{
			ID:        uuid.NewString(),
			Product:   strings.TrimSpace(it.Product),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     lineTotal,
			Config:    it.Config,
		})
		total = total.Add(lineTotal)
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		QuoteNumber: newQuoteNumber(now),
		ClientID:    clientID,
		Items:       items,
		Total:       total,
		Currency:    strings.ToUpper(strings.TrimSpace(draft.Currency)),
		Status:      entities.QuoteStatusDraft,
		ShareToken:  uuid.NewString(),
		Shareable:   draft.Shareable,
		ExpiresAt:   draft.ExpiresAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] created quote_id=%s number=%s total=%s items=%d", created.ID, created.QuoteNumber, created.Total, len(created.Items))
	return created, nil
}

func (u *QuoteUseCase) Send(ctx context.Context, id string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusDraft && q.Status != entities.QuoteStatusSent {
		return entities.Quote{}, ErrQuoteAlreadyClosed
	}
	return u.updateStatus(ctx, q.ID, entities.QuoteStatusSent)
}

// Accept transitions the quote to accepted and materializes the order. The
// order is created first: if materialization fails (for example an invalid
// payment policy) the quote is left untouched, so no accepted quote ever
// exists without a usable order.
func (u *QuoteUseCase) Accept(ctx context.Context, id string) (entities.Quote, entities.Order, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, entities.Order{}, err
	}
	switch q.Status {
	case entities.QuoteStatusDraft, entities.QuoteStatusSent:
	default:
		return entities.Quote{}, entities.Order{}, ErrQuoteAlreadyClosed
	}
	if q.Expired(time.Now().UTC()) {
		return entities.Quote{}, entities.Order{}, ErrQuoteExpired
	}

	order, err := u.orders.MaterializeFromQuote(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] accept aborted, materialization failed quote_id=%s err=%v", q.ID, err)
		return entities.Quote{}, entities.Order{}, err
	}

	updated, err := u.updateStatus(ctx, q.ID, entities.QuoteStatusAccepted)
	if err != nil {
		return entities.Quote{}, entities.Order{}, err
	}
	log.Printf("[quote][usecase] accepted quote_id=%s order_id=%s", updated.ID, order.ID)
	return updated, order, nil
}

// Reject marks the quote rejected and retracts any order it materialized.
func (u *QuoteUseCase) Reject(ctx context.Context, id string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status == entities.QuoteStatusRejected {
		return q, nil
	}

	updated, err := u.updateStatus(ctx, q.ID, entities.QuoteStatusRejected)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := u.orderRepo.RetractForQuote(ctx, q.ID); err != nil {
		log.Printf("[quote][usecase] order retraction failed quote_id=%s err=%v", q.ID, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] rejected quote_id=%s", updated.ID)
	return updated, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// GetSharedByToken is the unauthenticated public projection, gated by the
// shareable flag and expiry.
func (u *QuoteUseCase) GetSharedByToken(ctx context.Context, token string) (entities.Quote, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	q, err := u.repo.GetByShareToken(ctx, token)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if !q.Shareable {
		return entities.Quote{}, ErrQuoteNotShareable
	}
	if q.Expired(time.Now().UTC()) {
		return entities.Quote{}, ErrQuoteExpired
	}
	return q, nil
}

func (u *QuoteUseCase) SetShareable(ctx context.Context, id string, shareable bool) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	updated, err := u.repo.SetShareable(ctx, q.ID, shareable)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) updateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	updated, err := u.repo.UpdateStatus(ctx, id, status, time.Now().UTC())
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func newQuoteNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return "QT-" + now.UTC().Format("20060102") + "-" + suffix
}
