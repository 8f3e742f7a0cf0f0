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

type engineerMocks struct {
	orderRepo     *mock_interfaces.MockIOrderRepository
	checklistRepo *mock_interfaces.MockIChecklistRepository
	activityRepo  *mock_interfaces.MockIActivityLogRepository
	notifier      *mock_interfaces.MockINotificationDispatcher
	publisher     *mock_interfaces.MockIStatusPublisher
}

func newEngineerUseCaseWithMocks(ctrl *gomock.Controller) (*EngineerUseCase, engineerMocks) {
	m := engineerMocks{
		orderRepo:     mock_interfaces.NewMockIOrderRepository(ctrl),
		checklistRepo: mock_interfaces.NewMockIChecklistRepository(ctrl),
		activityRepo:  mock_interfaces.NewMockIActivityLogRepository(ctrl),
		notifier:      mock_interfaces.NewMockINotificationDispatcher(ctrl),
		publisher:     mock_interfaces.NewMockIStatusPublisher(ctrl),
	}
	uc := NewEngineerUseCase(m.orderRepo, m.checklistRepo, m.activityRepo, m.notifier, m.publisher)
	return uc, m
}

func assignedOrder() entities.Order {
	signed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	install := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	return entities.Order{
		ID:                 "order-1",
		OrderNumber:        "IW-20260301-ABC123",
		Total:              mustDecimal("1000.00"),
		Deposit:            mustDecimal("250.00"),
		AmountPaid:         mustDecimal("1000.00"),
		Stage:              entities.PaymentStageDeposit,
		AgreementSignedAt:  &signed,
		ScheduledInstallAt: &install,
		EngineerID:         "eng-1",
		EngineerStatus:     entities.EngineerJobStatusAssigned,
		Status:             entities.OrderStatusScheduled,
	}
}

func TestEngineerUseCase_SetupChecklist(t *testing.T) {
	t.Run("empty checklist rejected", func(t *testing.T) {
		uc := NewEngineerUseCase(nil, nil, nil, nil, nil)
		_, err := uc.SetupChecklist(context.Background(), "order-1", nil)
		if !errors.Is(err, ErrInvalidChecklist) {
			t.Fatalf("expected ErrInvalidChecklist, got %v", err)
		}
	})

	t.Run("blank item rejected", func(t *testing.T) {
		uc := NewEngineerUseCase(nil, nil, nil, nil, nil)
		_, err := uc.SetupChecklist(context.Background(), "order-1", []string{"fit boiler", "  "})
		if !errors.Is(err, ErrInvalidChecklist) {
			t.Fatalf("expected ErrInvalidChecklist, got %v", err)
		}
	})

	t.Run("items numbered from one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		m.checklistRepo.EXPECT().PutItems(gomock.Any(), "order-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, orderID string, items []entities.ChecklistItem) error {
				if len(items) != 2 {
					t.Fatalf("expected 2 items, got %d", len(items))
				}
				if items[0].Position != 1 || items[1].Position != 2 {
					t.Fatalf("unexpected positions: %+v", items)
				}
				if items[0].Name != "fit boiler" {
					t.Fatalf("expected trimmed name, got %q", items[0].Name)
				}
				return nil
			})

		items, err := uc.SetupChecklist(context.Background(), "order-1", []string{" fit boiler ", "test pressure"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items back, got %d", len(items))
		}
	})
}

func TestEngineerUseCase_Start(t *testing.T) {
	t.Run("no engineer assigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		o := assignedOrder()
		o.EngineerID = ""
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(o, nil)

		_, err := uc.Start(context.Background(), "order-1", "")
		if !errors.Is(err, ErrNoEngineerAssigned) {
			t.Fatalf("expected ErrNoEngineerAssigned, got %v", err)
		}
	})

	t.Run("start moves to in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		stored := assignedOrder()
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(stored, nil)
		m.orderRepo.EXPECT().SetEngineerProgress(gomock.Any(), "order-1", entities.EngineerJobStatusInProgress, "on site").
			DoAndReturn(func(_ context.Context, id string, status entities.EngineerJobStatus, notes string) (entities.Order, error) {
				o := stored
				o.EngineerStatus = status
				o.EngineerNotes = notes
				return o, nil
			})
		m.publisher.EXPECT().Publish("order-1", gomock.Any())

		o, err := uc.Start(context.Background(), "order-1", "on site")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.EngineerStatus != entities.EngineerJobStatusInProgress {
			t.Fatalf("expected in_progress, got %s", o.EngineerStatus)
		}
	})
}

func TestEngineerUseCase_SetChecklistItem(t *testing.T) {
	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(assignedOrder(), nil)
		m.checklistRepo.EXPECT().SetItemDone(gomock.Any(), "order-1", 9, true).
			Return(entities.ChecklistItem{}, nil)

		_, _, err := uc.SetChecklistItem(context.Background(), "order-1", 9, true)
		if !errors.Is(err, ErrChecklistItemNotFound) {
			t.Fatalf("expected ErrChecklistItemNotFound, got %v", err)
		}
	})

	t.Run("last item done moves to checklist complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		stored := assignedOrder()
		stored.EngineerStatus = entities.EngineerJobStatusInProgress
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(stored, nil)
		m.checklistRepo.EXPECT().SetItemDone(gomock.Any(), "order-1", 2, true).
			Return(entities.ChecklistItem{OrderID: "order-1", Position: 2, Name: "test pressure", Done: true}, nil)
		m.checklistRepo.EXPECT().ListByOrderID(gomock.Any(), "order-1").
			Return([]entities.ChecklistItem{
				{OrderID: "order-1", Position: 1, Name: "fit boiler", Done: true},
				{OrderID: "order-1", Position: 2, Name: "test pressure", Done: true},
			}, nil)
		m.orderRepo.EXPECT().SetEngineerProgress(gomock.Any(), "order-1", entities.EngineerJobStatusChecklistComplete, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, status entities.EngineerJobStatus, notes string) (entities.Order, error) {
				o := stored
				o.EngineerStatus = status
				return o, nil
			})

		o, items, err := uc.SetChecklistItem(context.Background(), "order-1", 2, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.EngineerStatus != entities.EngineerJobStatusChecklistComplete {
			t.Fatalf("expected checklist_complete, got %s", o.EngineerStatus)
		}
		if len(items) != 2 {
			t.Fatalf("expected items back, got %d", len(items))
		}
	})

	t.Run("unticking drops back to in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		stored := assignedOrder()
		stored.EngineerStatus = entities.EngineerJobStatusChecklistComplete
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(stored, nil)
		m.checklistRepo.EXPECT().SetItemDone(gomock.Any(), "order-1", 1, false).
			Return(entities.ChecklistItem{OrderID: "order-1", Position: 1, Name: "fit boiler"}, nil)
		m.checklistRepo.EXPECT().ListByOrderID(gomock.Any(), "order-1").
			Return([]entities.ChecklistItem{
				{OrderID: "order-1", Position: 1, Name: "fit boiler"},
				{OrderID: "order-1", Position: 2, Name: "test pressure", Done: true},
			}, nil)
		m.orderRepo.EXPECT().SetEngineerProgress(gomock.Any(), "order-1", entities.EngineerJobStatusInProgress, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, status entities.EngineerJobStatus, notes string) (entities.Order, error) {
				o := stored
				o.EngineerStatus = status
				return o, nil
			})

		o, _, err := uc.SetChecklistItem(context.Background(), "order-1", 1, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.EngineerStatus != entities.EngineerJobStatusInProgress {
			t.Fatalf("expected in_progress, got %s", o.EngineerStatus)
		}
	})
}

func TestEngineerUseCase_SignOff(t *testing.T) {
	completeItems := []entities.ChecklistItem{
		{OrderID: "order-1", Position: 1, Name: "fit boiler", Done: true},
		{OrderID: "order-1", Position: 2, Name: "test pressure", Done: true},
	}

	t.Run("not confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(assignedOrder(), nil)

		_, err := uc.SignOff(context.Background(), "order-1", false, "J. Smith", "")
		if !errors.Is(err, ErrSignOffNotConfirmed) {
			t.Fatalf("expected ErrSignOffNotConfirmed, got %v", err)
		}
	})

	t.Run("missing signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(assignedOrder(), nil)

		_, err := uc.SignOff(context.Background(), "order-1", true, "   ", "")
		if !errors.Is(err, ErrMissingSignature) {
			t.Fatalf("expected ErrMissingSignature, got %v", err)
		}
	})

	t.Run("checklist incomplete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(assignedOrder(), nil)
		m.checklistRepo.EXPECT().ListByOrderID(gomock.Any(), "order-1").
			Return([]entities.ChecklistItem{
				{OrderID: "order-1", Position: 1, Name: "fit boiler", Done: true},
				{OrderID: "order-1", Position: 2, Name: "test pressure"},
			}, nil)

		_, err := uc.SignOff(context.Background(), "order-1", true, "J. Smith", "")
		if !errors.Is(err, ErrChecklistIncomplete) {
			t.Fatalf("expected ErrChecklistIncomplete, got %v", err)
		}
	})

	t.Run("already signed off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		o := assignedOrder()
		now := time.Now().UTC()
		o.SignedOffAt = &now
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(o, nil)

		_, err := uc.SignOff(context.Background(), "order-1", true, "J. Smith", "")
		if !errors.Is(err, ErrAlreadySignedOff) {
			t.Fatalf("expected ErrAlreadySignedOff, got %v", err)
		}
	})

	t.Run("evidence required when configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		t.Setenv("SIGNOFF_REQUIRE_EVIDENCE", "true")
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(assignedOrder(), nil)
		m.checklistRepo.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return(completeItems, nil)

		_, err := uc.SignOff(context.Background(), "order-1", true, "J. Smith", "")
		if !errors.Is(err, ErrEvidenceRequired) {
			t.Fatalf("expected ErrEvidenceRequired, got %v", err)
		}
	})

	t.Run("notification failure does not roll back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		stored := assignedOrder()
		stored.EngineerStatus = entities.EngineerJobStatusChecklistComplete
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(stored, nil)
		m.checklistRepo.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return(completeItems, nil)
		m.orderRepo.EXPECT().SetSignOff(gomock.Any(), "order-1", gomock.Any(), "J. Smith", entities.EngineerJobStatusSignedOff).
			DoAndReturn(func(_ context.Context, id string, at *time.Time, signature string, status entities.EngineerJobStatus) (entities.Order, error) {
				o := stored
				o.SignedOffAt = at
				o.EngineerSignature = signature
				o.EngineerStatus = status
				return o, nil
			})
		m.notifier.EXPECT().Dispatch(gomock.Any(), "engineer_signed_off", gomock.Any()).
			Return(errors.New("webhook down"))
		m.orderRepo.EXPECT().SetStoredStatus(gomock.Any(), "order-1", entities.OrderStatusCompleted).
			DoAndReturn(func(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
				o := stored
				now := time.Now().UTC()
				o.SignedOffAt = &now
				o.Status = status
				return o, nil
			})
		m.publisher.EXPECT().Publish("order-1", gomock.Any())

		o, err := uc.SignOff(context.Background(), "order-1", true, "J. Smith", "")
		if err != nil {
			t.Fatalf("sign-off must survive a notification failure: %v", err)
		}
		if o.Status != entities.OrderStatusCompleted {
			t.Fatalf("expected completed, got %s", o.Status)
		}
	})
}

func TestEngineerUseCase_Reopen(t *testing.T) {
	t.Run("not signed off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(assignedOrder(), nil)

		_, err := uc.Reopen(context.Background(), "order-1", "admin", "missed snag")
		if !errors.Is(err, ErrNotSignedOff) {
			t.Fatalf("expected ErrNotSignedOff, got %v", err)
		}
	})

	t.Run("audit failure fails the reopen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		o := assignedOrder()
		now := time.Now().UTC()
		o.SignedOffAt = &now
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(o, nil)
		m.activityRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
			Return(entities.ActivityEvent{}, errors.New("table offline"))

		_, err := uc.Reopen(context.Background(), "order-1", "admin", "missed snag")
		if err == nil {
			t.Fatalf("expected audit failure to propagate")
		}
	})

	t.Run("reopen clears sign-off facts and audits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		stored := assignedOrder()
		now := time.Now().UTC()
		stored.SignedOffAt = &now
		stored.EngineerSignature = "J. Smith"
		stored.EngineerStatus = entities.EngineerJobStatusSignedOff
		stored.Status = entities.OrderStatusCompleted

		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(stored, nil)
		m.activityRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev entities.ActivityEvent) (entities.ActivityEvent, error) {
				if ev.Action != entities.ActivityActionReaccess || ev.Actor != "admin" || ev.Reason != "missed snag" {
					t.Fatalf("unexpected audit event: %+v", ev)
				}
				return ev, nil
			})
		m.orderRepo.EXPECT().SetSignOff(gomock.Any(), "order-1", nil, "", entities.EngineerJobStatusInProgress).
			DoAndReturn(func(_ context.Context, id string, at *time.Time, signature string, status entities.EngineerJobStatus) (entities.Order, error) {
				o := stored
				o.SignedOffAt = nil
				o.EngineerSignature = ""
				o.EngineerStatus = status
				return o, nil
			})
		m.orderRepo.EXPECT().SetStoredStatus(gomock.Any(), "order-1", entities.OrderStatusInProgress).
			DoAndReturn(func(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
				o := stored
				o.SignedOffAt = nil
				o.EngineerSignature = ""
				o.EngineerStatus = entities.EngineerJobStatusInProgress
				o.Status = status
				return o, nil
			})
		m.publisher.EXPECT().Publish("order-1", gomock.Any())

		o, err := uc.Reopen(context.Background(), "order-1", "admin", "missed snag")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.SignedOffAt != nil || o.EngineerSignature != "" {
			t.Fatalf("sign-off facts must be cleared: %+v", o)
		}
		if o.Status != entities.OrderStatusInProgress {
			t.Fatalf("expected in_progress, got %s", o.Status)
		}
	})
}

func TestEngineerUseCase_PutEvidence(t *testing.T) {
	t.Run("missing category", func(t *testing.T) {
		uc := NewEngineerUseCase(nil, nil, nil, nil, nil)
		_, err := uc.PutEvidence(context.Background(), "order-1", "  ", []string{"s3://bucket/1.jpg"}, false)
		if !errors.Is(err, ErrInvalidChecklist) {
			t.Fatalf("expected ErrInvalidChecklist, got %v", err)
		}
	})

	t.Run("append merges with existing refs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		stored := assignedOrder()
		stored.Evidence = map[string][]string{"before": {"s3://bucket/1.jpg"}}
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(stored, nil)
		m.orderRepo.EXPECT().SetEvidence(gomock.Any(), "order-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, evidence map[string][]string) (entities.Order, error) {
				if len(evidence["before"]) != 2 {
					t.Fatalf("expected appended refs, got %+v", evidence)
				}
				o := stored
				o.Evidence = evidence
				return o, nil
			})

		o, err := uc.PutEvidence(context.Background(), "order-1", "before", []string{"s3://bucket/2.jpg"}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(o.Evidence["before"]) != 2 {
			t.Fatalf("unexpected evidence: %+v", o.Evidence)
		}
	})

	t.Run("replace swaps the category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngineerUseCaseWithMocks(ctrl)

		stored := assignedOrder()
		stored.Evidence = map[string][]string{"after": {"s3://bucket/old.jpg"}}
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(stored, nil)
		m.orderRepo.EXPECT().SetEvidence(gomock.Any(), "order-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, evidence map[string][]string) (entities.Order, error) {
				if len(evidence["after"]) != 1 || evidence["after"][0] != "s3://bucket/new.jpg" {
					t.Fatalf("expected replaced refs, got %+v", evidence)
				}
				o := stored
				o.Evidence = evidence
				return o, nil
			})

		_, err := uc.PutEvidence(context.Background(), "order-1", "after", []string{"s3://bucket/new.jpg"}, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
