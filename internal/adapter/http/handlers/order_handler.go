package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "installworks/internal/adapter/http/dto/request"
	response "installworks/internal/adapter/http/dto/response"
	"installworks/internal/domain/entities"
	"installworks/internal/usecase"
	"installworks/internal/usecase/interfaces"
	"installworks/pkg"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler serves the derived order view and the admin lifecycle
// operations (override, cancel, direct scheduling, engineer assignment).

type OrderHandler struct {
	usecase   usecase.IOrderUseCase
	quotes    usecase.IQuoteUseCase
	directory usecase.IDirectoryUseCase
	renderer  interfaces.IDocumentRenderer
}

func NewOrderHandler(uc usecase.IOrderUseCase, quotes usecase.IQuoteUseCase, directory usecase.IDirectoryUseCase, renderer interfaces.IDocumentRenderer) *OrderHandler {
	return &OrderHandler{usecase: uc, quotes: quotes, directory: directory, renderer: renderer}
}

// GetOrder returns the stored order together with the re-derived lifecycle
// view and payment plan. The stored status field is never trusted here.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, view, plan, err := h.usecase.GetView(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderView(o, view, plan))
}

// GetProgress is the polling fallback for the websocket channel. Deriving is
// pure, so a poll racing a push converges on the same view.
func (h *OrderHandler) GetProgress(c *gin.Context) {
	_, view, plan, err := h.usecase.GetView(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     view.Status,
		"overridden": view.Overridden,
		"steps":      view.Steps,
		"payment": response.PaymentPlanResponse{
			Outstanding: plan.Outstanding.StringFixed(2),
			NextAction:  string(plan.NextAction),
			NextAmount:  plan.NextAmount.StringFixed(2),
			FullyPaid:   plan.FullyPaid,
			Overpaid:    plan.Overpaid,
		},
	})
}

func (h *OrderHandler) SignAgreement(c *gin.Context) {
	o, err := h.usecase.SignAgreement(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) SetOverride(c *gin.Context) {
	var payload request.OverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.SetManualOverride(c.Request.Context(), c.Param("id"), entities.OrderStatus(payload.Status), payload.Notes, payload.Actor)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) ClearOverride(c *gin.Context) {
	var payload request.ClearOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.ClearManualOverride(c.Request.Context(), c.Param("id"), payload.Actor)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	var payload request.CancelOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.Reason, payload.Actor)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// AdminSchedule sets an install date without the payment/agreement gate.
// The bypass is recorded in the activity log.
func (h *OrderHandler) AdminSchedule(c *gin.Context) {
	var payload request.AdminScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.AdminSchedule(c.Request.Context(), c.Param("id"), payload.InstallAt, payload.Window, payload.EstimatedHours, payload.Actor)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) AssignEngineer(c *gin.Context) {
	var payload request.AssignEngineerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.AssignEngineer(c.Request.Context(), c.Param("id"), payload.EngineerID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) SetQANotes(c *gin.Context) {
	var payload request.QANotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.SetQANotes(c.Request.Context(), c.Param("id"), payload.Notes)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) ListActivity(c *gin.Context) {
	events, err := h.usecase.ListActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromActivityEvents(events))
}

func (h *OrderHandler) RenderAgreementDocument(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.usecase.GetByID(ctx, c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	q, err := h.quotes.GetByID(ctx, o.QuoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	client, err := h.directory.GetClient(ctx, o.ClientID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := h.renderer.RenderAgreement(ctx, o, q, client)
	if err != nil {
		appErr := pkg.NewDomainError("DOCUMENT_RENDER_FAILED", "Failed to render agreement document", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", doc)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidStatusToken):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEngineerNotFound):
		return pkg.NewDomainErrorSimple("ENGINEER_NOT_FOUND", "Engineer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentIncomplete):
		return pkg.NewDomainErrorSimple("PAYMENT_INCOMPLETE", "Payment step is not complete", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderExistsForQuote):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "An order already exists for this quote", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
