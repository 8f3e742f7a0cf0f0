package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"installworks/internal/domain/entities"
	"installworks/internal/domain/lifecycle"
	mock_interfaces "installworks/internal/usecase/interfaces/mocks"
)

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type orderMocks struct {
	repo         *mock_interfaces.MockIOrderRepository
	clientRepo   *mock_interfaces.MockIClientRepository
	policyRepo   *mock_interfaces.MockIPaymentPolicyRepository
	engineerRepo *mock_interfaces.MockIEngineerRepository
	activityRepo *mock_interfaces.MockIActivityLogRepository
	publisher    *mock_interfaces.MockIStatusPublisher
}

func newOrderUseCaseWithMocks(ctrl *gomock.Controller) (*OrderUseCase, orderMocks) {
	m := orderMocks{
		repo:         mock_interfaces.NewMockIOrderRepository(ctrl),
		clientRepo:   mock_interfaces.NewMockIClientRepository(ctrl),
		policyRepo:   mock_interfaces.NewMockIPaymentPolicyRepository(ctrl),
		engineerRepo: mock_interfaces.NewMockIEngineerRepository(ctrl),
		activityRepo: mock_interfaces.NewMockIActivityLogRepository(ctrl),
		publisher:    mock_interfaces.NewMockIStatusPublisher(ctrl),
	}
	uc := NewOrderUseCase(m.repo, m.clientRepo, m.policyRepo, m.engineerRepo, m.activityRepo, m.publisher)
	return uc, m
}

func TestOrderUseCase_MaterializeFromQuote(t *testing.T) {
	quote := entities.Quote{
		ID:       "quote-1",
		ClientID: "client-1",
		Total:    mustDecimal("1000.00"),
		Currency: "GBP",
		Status:   entities.QuoteStatusAccepted,
	}

	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.MaterializeFromQuote(context.Background(), entities.Quote{ID: "  "})
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCaseWithMocks(ctrl)

		m.clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{}, nil)

		_, err := uc.MaterializeFromQuote(context.Background(), quote)
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("invalid policy aborts before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCaseWithMocks(ctrl)

		m.clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").
			Return(entities.Client{ID: "client-1", Address: "1 High St"}, nil)
		m.policyRepo.EXPECT().Get(gomock.Any()).Return(entities.PaymentPolicy{
			Stage:        entities.PaymentStageDeposit,
			DepositType:  entities.DepositTypePercentage,
			DepositValue: mustDecimal("150"),
		}, nil)

		_, err := uc.MaterializeFromQuote(context.Background(), quote)
		if !errors.Is(err, lifecycle.ErrInvalidPolicy) {
			t.Fatalf("expected ErrInvalidPolicy, got %v", err)
		}
	})

	t.Run("quote already materialized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCaseWithMocks(ctrl)

		m.clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").
			Return(entities.Client{ID: "client-1", Address: "1 High St"}, nil)
		m.policyRepo.EXPECT().Get(gomock.Any()).Return(entities.PaymentPolicy{
			Stage:    entities.PaymentStageFull,
			Currency: "GBP",
		}, nil)
		m.repo.EXPECT().CreateForQuote(gomock.Any(), gomock.Any()).Return(entities.Order{}, nil)

		_, err := uc.MaterializeFromQuote(context.Background(), quote)
		if !errors.Is(err, ErrOrderExistsForQuote) {
			t.Fatalf("expected ErrOrderExistsForQuote, got %v", err)
		}
	})

	t.Run("success freezes deposit and snapshots address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCaseWithMocks(ctrl)

		m.clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").
			Return(entities.Client{ID: "client-1", Address: "1 High St"}, nil)
		m.policyRepo.EXPECT().Get(gomock.Any()).Return(entities.PaymentPolicy{
			Stage:        entities.PaymentStageDeposit,
			DepositType:  entities.DepositTypePercentage,
			DepositValue: mustDecimal("25"),
			Currency:     "GBP",
		}, nil)
		m.repo.EXPECT().CreateForQuote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.OrderNumber == "" {
					t.Fatalf("expected generated ids, got %+v", o)
				}
				if o.QuoteID != "quote-1" || o.ClientID != "client-1" {
					t.Fatalf("unexpected linkage: %+v", o)
				}
				if !o.Deposit.Equal(mustDecimal("250.00")) {
					t.Fatalf("expected deposit 250.00, got %s", o.Deposit)
				}
				if o.JobAddress != "1 High St" {
					t.Fatalf("expected address snapshot, got %q", o.JobAddress)
				}
				if o.Status != entities.OrderStatusAwaitingPayment {
					t.Fatalf("expected awaiting_payment, got %s", o.Status)
				}
				if o.Stage != entities.PaymentStageDeposit || o.Currency != "GBP" {
					t.Fatalf("policy not frozen on order: %+v", o)
				}
				return o, nil
			})
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		created, err := uc.MaterializeFromQuote(context.Background(), quote)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created.AmountPaid.IsZero() {
			t.Fatalf("new order must start unpaid, got %s", created.AmountPaid)
		}
	})
}

func TestOrderUseCase_GetView(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)

		_, _, _, err := uc.GetView(context.Background(), "order-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("derives status and plan from facts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{
			ID:         "order-1",
			Total:      mustDecimal("1000.00"),
			Deposit:    mustDecimal("250.00"),
			AmountPaid: mustDecimal("250.00"),
			Stage:      entities.PaymentStageDeposit,
			Status:     entities.OrderStatusAwaitingPayment,
		}, nil)

		_, view, plan, err := uc.GetView(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Status != entities.OrderStatusAwaitingAgreement {
			t.Fatalf("stale stored status must not win: got %s", view.Status)
		}
		if plan.NextAction != lifecycle.PaymentActionBalance || !plan.Outstanding.Equal(mustDecimal("750.00")) {
			t.Fatalf("unexpected plan: %+v", plan)
		}
	})
}

func TestOrderUseCase_SignAgreement(t *testing.T) {
	t.Run("payment incomplete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{
			ID:         "order-1",
			Total:      mustDecimal("1000.00"),
			Deposit:    mustDecimal("250.00"),
			AmountPaid: mustDecimal("100.00"),
			Stage:      entities.PaymentStageDeposit,
		}, nil)

		_, err := uc.SignAgreement(context.Background(), "order-1")
		if !errors.Is(err, ErrPaymentIncomplete) {
			t.Fatalf("expected ErrPaymentIncomplete, got %v", err)
		}
	})

	t.Run("already signed is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCaseWithMocks(ctrl)

		signed := time.Now().UTC()
		m.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{
			ID:                "order-1",
			AgreementSignedAt: &signed,
		}, nil)

		o, err := uc.SignAgreement(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.AgreementSignedAt == nil {
			t.Fatalf("expected existing signature preserved")
		}
	})

	t.Run("signs once deposit met", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCaseWithMocks(ctrl)

		stored := entities.Order{
			ID:         "order-1",
			Total:      mustDecimal("1000.00"),
			Deposit:    mustDecimal("250.00"),
			AmountPaid: mustDecimal("250.00"),
			Stage:      entities.PaymentStageDeposit,
			Status:     entities.OrderStatusAwaitingPayment,
		}
		m.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(stored, nil)
		m.repo.EXPECT().SetAgreementSigned(gomock.Any(), "order-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, at time.Time) (entities.Order, error) {
				o := stored
				o.AgreementSignedAt = &at
				return o, nil
			})
		m.repo.EXPECT().SetStoredStatus(gomock.Any(), "order-1", entities.OrderStatusAwaitingInstallBooking).
			DoAndReturn(func(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
				o := stored
				now := time.Now().UTC()
				o.AgreementSignedAt = &now
				o.Status = status
				return o, nil
			})
		m.publisher.EXPECT().Publish("order-1", gomock.Any())

		o, err := uc.SignAgreement(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.AgreementSignedAt == nil {
			t.Fatalf("expected signature timestamp")
		}
	})
}

func TestOrderUseCase_ManualOverride(t *testing.T) {
	t.Run("invalid status token", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.SetManualOverride(context.Background(), "order-1", "paused", "", "admin")
		if !errors.Is(err, ErrInvalidStatusToken) {
			t.Fatalf("expected ErrInvalidStatusToken, got %v", err)
		}
	})

	t.Run("set override audits and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCaseWithMocks(ctrl)

		stored := entities.Order{ID: "order-1", Total: mustDecimal("100"), Deposit: mustDecimal("100")}
		m.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(stored, nil)
		m.repo.EXPECT().SetOverride(gomock.Any(), "order-1", true, entities.OrderStatusCompleted, "handled offline").
			DoAndReturn(func(_ context.Context, id string, override bool, status entities.OrderStatus, notes string) (entities.Order, error) {
				o := stored
				o.StatusOverride = true
				o.Status = status
				o.OverrideNotes = notes
				return o, nil
			})
		m.activityRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev entities.ActivityEvent) (entities.ActivityEvent, error) {
				if ev.Action != entities.ActivityActionOverrideSet || ev.Actor != "admin" {
					t.Fatalf("unexpected audit event: %+v", ev)
				}
				return ev, nil
			})
		m.publisher.EXPECT().Publish("order-1", gomock.Any()).
			Do(func(_ string, view lifecycle.View) {
				if !view.Overridden || view.Status != entities.OrderStatusCompleted {
					t.Fatalf("published view must carry the override: %+v", view)
				}
			})

		o, err := uc.SetManualOverride(context.Background(), "order-1", entities.OrderStatusCompleted, "handled offline", "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !o.StatusOverride {
			t.Fatalf("expected override flag set")
		}
	})

	t.Run("clear override stores the derived status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCaseWithMocks(ctrl)

		signed := time.Now().UTC()
		stored := entities.Order{
			ID:                "order-1",
			Total:             mustDecimal("1000.00"),
			Deposit:           mustDecimal("250.00"),
			AmountPaid:        mustDecimal("250.00"),
			Stage:             entities.PaymentStageDeposit,
			AgreementSignedAt: &signed,
			Status:            entities.OrderStatusCancelled,
			StatusOverride:    true,
		}
		m.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(stored, nil)
		m.repo.EXPECT().SetOverride(gomock.Any(), "order-1", false, entities.OrderStatusAwaitingInstallBooking, "").
			DoAndReturn(func(_ context.Context, id string, override bool, status entities.OrderStatus, notes string) (entities.Order, error) {
				o := stored
				o.StatusOverride = false
				o.Status = status
				return o, nil
			})
		m.activityRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev entities.ActivityEvent) (entities.ActivityEvent, error) {
				if ev.Action != entities.ActivityActionOverrideCleared {
					t.Fatalf("unexpected audit action: %s", ev.Action)
				}
				return ev, nil
			})
		m.publisher.EXPECT().Publish("order-1", gomock.Any())

		o, err := uc.ClearManualOverride(context.Background(), "order-1", "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.StatusOverride {
			t.Fatalf("expected override cleared")
		}
	})
}

func TestOrderUseCase_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newOrderUseCaseWithMocks(ctrl)

	stored := entities.Order{ID: "order-1", Total: mustDecimal("100"), Deposit: mustDecimal("100")}
	m.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(stored, nil)
	m.repo.EXPECT().SetOverride(gomock.Any(), "order-1", true, entities.OrderStatusCancelled, "client withdrew").
		DoAndReturn(func(_ context.Context, id string, override bool, status entities.OrderStatus, notes string) (entities.Order, error) {
			o := stored
			o.StatusOverride = true
			o.Status = status
			return o, nil
		})
	m.activityRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev entities.ActivityEvent) (entities.ActivityEvent, error) {
			if ev.Action != entities.ActivityActionCancelled || ev.Reason != "client withdrew" {
				t.Fatalf("unexpected audit event: %+v", ev)
			}
			return ev, nil
		})
	m.publisher.EXPECT().Publish("order-1", gomock.Any())

	o, err := uc.Cancel(context.Background(), "order-1", "client withdrew", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != entities.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", o.Status)
	}
}

func TestOrderUseCase_AdminSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newOrderUseCaseWithMocks(ctrl)

	// Unpaid and unsigned: the admin path bypasses the gate.
	stored := entities.Order{
		ID:      "order-1",
		Total:   mustDecimal("1000.00"),
		Deposit: mustDecimal("250.00"),
		Stage:   entities.PaymentStageDeposit,
		Status:  entities.OrderStatusAwaitingPayment,
	}
	at := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	m.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(stored, nil)
	m.repo.EXPECT().SetSchedule(gomock.Any(), "order-1", at, "am", 4).
		DoAndReturn(func(_ context.Context, id string, when time.Time, window string, hours int) (entities.Order, error) {
			o := stored
			o.ScheduledInstallAt = &when
			o.InstallWindow = window
			o.EstimatedHours = hours
			return o, nil
		})
	m.activityRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev entities.ActivityEvent) (entities.ActivityEvent, error) {
			if ev.Action != entities.ActivityActionAdminScheduled {
				t.Fatalf("unexpected audit action: %s", ev.Action)
			}
			return ev, nil
		})
	m.publisher.EXPECT().Publish("order-1", gomock.Any())

	o, err := uc.AdminSchedule(context.Background(), "order-1", at, "am", 4, "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ScheduledInstallAt == nil || !o.ScheduledInstallAt.Equal(at) {
		t.Fatalf("expected install at %s, got %v", at, o.ScheduledInstallAt)
	}
}

func TestOrderUseCase_AssignEngineer(t *testing.T) {
	t.Run("engineer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1"}, nil)
		m.engineerRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engineer{}, nil)

		_, err := uc.AssignEngineer(context.Background(), "order-1", "eng-1")
		if !errors.Is(err, ErrEngineerNotFound) {
			t.Fatalf("expected ErrEngineerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1"}, nil)
		m.engineerRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engineer{ID: "eng-1"}, nil)
		m.repo.EXPECT().AssignEngineer(gomock.Any(), "order-1", "eng-1").
			Return(entities.Order{ID: "order-1", EngineerID: "eng-1"}, nil)
		m.publisher.EXPECT().Publish("order-1", gomock.Any())

		o, err := uc.AssignEngineer(context.Background(), "order-1", "eng-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.EngineerID != "eng-1" {
			t.Fatalf("expected engineer assigned, got %+v", o)
		}
	})
}
