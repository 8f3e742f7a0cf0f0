package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"installworks/internal/domain/entities"
	mock_interfaces "installworks/internal/usecase/interfaces/mocks"
)

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("missing client", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), QuoteDraft{
			Items: []QuoteItemDraft{{Product: "boiler", Quantity: 1, UnitPrice: mustDecimal("100")}},
		})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), QuoteDraft{ClientID: "client-1"})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("non positive unit price", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), QuoteDraft{
			ClientID: "client-1",
			Items:    []QuoteItemDraft{{Product: "boiler", Quantity: 1, UnitPrice: mustDecimal("0")}},
		})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("totals computed from lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if len(q.Items) != 2 {
					t.Fatalf("expected 2 items, got %d", len(q.Items))
				}
				if !q.Items[0].Total.Equal(mustDecimal("599.98")) {
					t.Fatalf("expected line total 599.98, got %s", q.Items[0].Total)
				}
				if !q.Total.Equal(mustDecimal("719.97")) {
					t.Fatalf("expected quote total 719.97, got %s", q.Total)
				}
				if q.Status != entities.QuoteStatusDraft || q.ShareToken == "" {
					t.Fatalf("unexpected new quote: %+v", q)
				}
				if q.Currency != "GBP" {
					t.Fatalf("expected normalized currency, got %q", q.Currency)
				}
				return q, nil
			})

		_, err := uc.Create(context.Background(), QuoteDraft{
			ClientID: "client-1",
			Currency: " gbp ",
			Items: []QuoteItemDraft{
				{Product: "boiler", Quantity: 2, UnitPrice: mustDecimal("299.99")},
				{Product: "fitting kit", Quantity: 3, UnitPrice: mustDecimal("39.99")},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_Accept(t *testing.T) {
	t.Run("closed quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").
			Return(entities.Quote{ID: "quote-1", Status: entities.QuoteStatusRejected}, nil)

		_, _, err := uc.Accept(context.Background(), "quote-1")
		if !errors.Is(err, ErrQuoteAlreadyClosed) {
			t.Fatalf("expected ErrQuoteAlreadyClosed, got %v", err)
		}
	})

	t.Run("expired quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		past := time.Now().UTC().Add(-time.Hour)
		repo.EXPECT().GetByID(gomock.Any(), "quote-1").
			Return(entities.Quote{ID: "quote-1", Status: entities.QuoteStatusSent, ExpiresAt: &past}, nil)

		_, _, err := uc.Accept(context.Background(), "quote-1")
		if !errors.Is(err, ErrQuoteExpired) {
			t.Fatalf("expected ErrQuoteExpired, got %v", err)
		}
	})

	t.Run("materialization failure leaves quote untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		orderUC, m := newOrderUseCaseWithMocks(ctrl)
		uc := NewQuoteUseCase(repo, m.repo, orderUC)

		quote := entities.Quote{
			ID:       "quote-1",
			ClientID: "client-1",
			Total:    mustDecimal("500.00"),
			Status:   entities.QuoteStatusSent,
		}
		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(quote, nil)
		m.clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{}, nil)
		// No UpdateStatus expectation: the quote must stay in sent.

		_, _, err := uc.Accept(context.Background(), "quote-1")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success materializes then marks accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		orderUC, m := newOrderUseCaseWithMocks(ctrl)
		uc := NewQuoteUseCase(repo, m.repo, orderUC)

		quote := entities.Quote{
			ID:       "quote-1",
			ClientID: "client-1",
			Total:    mustDecimal("500.00"),
			Status:   entities.QuoteStatusSent,
		}
		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(quote, nil)
		m.clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").
			Return(entities.Client{ID: "client-1", Address: "1 High St"}, nil)
		m.policyRepo.EXPECT().Get(gomock.Any()).
			Return(entities.PaymentPolicy{Stage: entities.PaymentStageFull, Currency: "GBP"}, nil)
		m.repo.EXPECT().CreateForQuote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
				return o, nil
			})
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
		repo.EXPECT().UpdateStatus(gomock.Any(), "quote-1", entities.QuoteStatusAccepted, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, status entities.QuoteStatus, at time.Time) (entities.Quote, error) {
				q := quote
				q.Status = status
				q.AcceptedAt = &at
				return q, nil
			})

		accepted, order, err := uc.Accept(context.Background(), "quote-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if accepted.Status != entities.QuoteStatusAccepted {
			t.Fatalf("expected accepted, got %s", accepted.Status)
		}
		if order.QuoteID != "quote-1" {
			t.Fatalf("expected order linked to quote, got %+v", order)
		}
	})
}

func TestQuoteUseCase_Reject(t *testing.T) {
	t.Run("already rejected is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").
			Return(entities.Quote{ID: "quote-1", Status: entities.QuoteStatusRejected}, nil)

		q, err := uc.Reject(context.Background(), "quote-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusRejected {
			t.Fatalf("expected rejected, got %s", q.Status)
		}
	})

	t.Run("rejection retracts the materialized order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewQuoteUseCase(repo, orderRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").
			Return(entities.Quote{ID: "quote-1", Status: entities.QuoteStatusAccepted}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "quote-1", entities.QuoteStatusRejected, gomock.Any()).
			Return(entities.Quote{ID: "quote-1", Status: entities.QuoteStatusRejected}, nil)
		orderRepo.EXPECT().RetractForQuote(gomock.Any(), "quote-1").Return(nil)

		q, err := uc.Reject(context.Background(), "quote-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusRejected {
			t.Fatalf("expected rejected, got %s", q.Status)
		}
	})
}

func TestQuoteUseCase_GetSharedByToken(t *testing.T) {
	t.Run("not shareable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().GetByShareToken(gomock.Any(), "token-1").
			Return(entities.Quote{ID: "quote-1", Shareable: false}, nil)

		_, err := uc.GetSharedByToken(context.Background(), "token-1")
		if !errors.Is(err, ErrQuoteNotShareable) {
			t.Fatalf("expected ErrQuoteNotShareable, got %v", err)
		}
	})

	t.Run("expired share link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		past := time.Now().UTC().Add(-time.Minute)
		repo.EXPECT().GetByShareToken(gomock.Any(), "token-1").
			Return(entities.Quote{ID: "quote-1", Shareable: true, ExpiresAt: &past}, nil)

		_, err := uc.GetSharedByToken(context.Background(), "token-1")
		if !errors.Is(err, ErrQuoteExpired) {
			t.Fatalf("expected ErrQuoteExpired, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().GetByShareToken(gomock.Any(), "token-1").Return(entities.Quote{}, nil)

		_, err := uc.GetSharedByToken(context.Background(), "token-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("shareable and live", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().GetByShareToken(gomock.Any(), "token-1").
			Return(entities.Quote{ID: "quote-1", Shareable: true, Status: entities.QuoteStatusSent}, nil)

		q, err := uc.GetSharedByToken(context.Background(), "token-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID != "quote-1" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}
