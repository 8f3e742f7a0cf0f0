package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "installworks/internal/adapter/http/dto/request"
	response "installworks/internal/adapter/http/dto/response"
	"installworks/internal/usecase"
	"installworks/pkg"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler drives the staged payment flow: open a provider session,
// confirm a capture, list the order's payment events.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// StartSession opens a hosted-checkout session for the next payment action
// on the order. Only a pending event is recorded; amount paid is untouched
// until the capture is confirmed.
func (h *PaymentHandler) StartSession(c *gin.Context) {
	event, redirectURL, err := h.usecase.StartSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.PaymentSessionResponse{
		Event:       response.FromPaymentEvent(event),
		RedirectURL: redirectURL,
	})
}

func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	order, event, err := h.usecase.Confirm(c.Request.Context(), payload.SessionID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order": response.FromOrder(order),
		"event": response.FromPaymentEvent(event),
	})
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	events, err := h.usecase.ListByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentEvents(events))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentSessionNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_SESSION_NOT_FOUND", "Payment session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNothingToPay):
		return pkg.NewDomainErrorSimple("NOTHING_TO_PAY", "Order is fully paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotCaptured):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_CAPTURED", "Payment has not been captured by the provider", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentVerificationFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_VERIFICATION_FAILED", "Could not verify the payment with the provider", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentProviderUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
