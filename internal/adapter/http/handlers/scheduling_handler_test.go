package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"installworks/internal/adapter/http/handlers/mocks"
	"installworks/internal/domain/entities"
	"installworks/internal/usecase"
)

func TestSchedulingHandler_BookInstall(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewSchedulingHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/install-booking", h.BookInstall)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/install-booking", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gate closed maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewSchedulingHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/install-booking", h.BookInstall)

		uc.EXPECT().Book(gomock.Any(), "order-1", "eng-1", "2026-04-10", "am", 4).
			Return(entities.Order{}, usecase.ErrSchedulingLocked)

		body := `{"engineer_id":"eng-1","date":"2026-04-10","window":"am","estimated_hours":4}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/install-booking", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if resp["code"] != "SCHEDULING_LOCKED" {
			t.Fatalf("expected SCHEDULING_LOCKED, got %v", resp["code"])
		}
	})

	t.Run("date taken maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewSchedulingHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/install-booking", h.BookInstall)

		uc.EXPECT().Book(gomock.Any(), "order-1", "eng-1", "2026-04-10", "", 0).
			Return(entities.Order{}, usecase.ErrDateUnavailable)

		body := `{"engineer_id":"eng-1","date":"2026-04-10"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/install-booking", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns the scheduled order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewSchedulingHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/install-booking", h.BookInstall)

		uc.EXPECT().Book(gomock.Any(), "order-1", "eng-1", "2026-04-10", "am", 4).
			Return(entities.Order{
				ID:         "order-1",
				EngineerID: "eng-1",
				Status:     entities.OrderStatusScheduled,
			}, nil)

		body := `{"engineer_id":"eng-1","date":"2026-04-10","window":"am","estimated_hours":4}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/install-booking", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["status"] != "scheduled" {
			t.Fatalf("expected scheduled, got %v", resp["status"])
		}
	})
}

func TestSchedulingHandler_CheckAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing query params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewSchedulingHandler(uc)

		r := gin.New()
		r.GET("/v1/scheduling/availability", h.CheckAvailability)

		req := httptest.NewRequest(http.MethodGet, "/v1/scheduling/availability?engineer_id=eng-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unavailable date is a 200 with available false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewSchedulingHandler(uc)

		r := gin.New()
		r.GET("/v1/scheduling/availability", h.CheckAvailability)

		uc.EXPECT().CheckDate(gomock.Any(), "eng-1", "client-1", "2026-04-10").
			Return(usecase.ErrDateUnavailable)

		req := httptest.NewRequest(http.MethodGet, "/v1/scheduling/availability?engineer_id=eng-1&client_id=client-1&date=2026-04-10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["available"] != false {
			t.Fatalf("expected available=false, got %v", resp["available"])
		}
	})

	t.Run("unknown engineer is a 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewSchedulingHandler(uc)

		r := gin.New()
		r.GET("/v1/scheduling/availability", h.CheckAvailability)

		uc.EXPECT().CheckDate(gomock.Any(), "eng-x", "", "2026-04-10").
			Return(usecase.ErrEngineerNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/scheduling/availability?engineer_id=eng-x&date=2026-04-10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSchedulingHandler_AddBlockedDate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("past date maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewSchedulingHandler(uc)

		r := gin.New()
		r.POST("/v1/clients/:id/blocked-dates", h.AddBlockedDate)

		uc.EXPECT().AddBlockedDate(gomock.Any(), "client-1", "2020-01-01", "").
			Return(entities.BlockedDate{}, usecase.ErrBlockedDateInPast)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients/client-1/blocked-dates", bytes.NewBufferString(`{"date":"2020-01-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewSchedulingHandler(uc)

		r := gin.New()
		r.POST("/v1/clients/:id/blocked-dates", h.AddBlockedDate)

		uc.EXPECT().AddBlockedDate(gomock.Any(), "client-1", "2026-05-01", "holiday").
			Return(entities.BlockedDate{ClientID: "client-1", Date: "2026-05-01", Reason: "holiday"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients/client-1/blocked-dates", bytes.NewBufferString(`{"date":"2026-05-01","reason":"holiday"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
