package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "installworks/internal/adapter/http/dto/request"
	response "installworks/internal/adapter/http/dto/response"
	"installworks/internal/domain/lifecycle"
	"installworks/internal/usecase"
	"installworks/internal/usecase/interfaces"
	"installworks/pkg"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles quote creation, the send/accept/reject transitions,
// the public share view and quote document rendering.

type QuoteHandler struct {
	usecase   usecase.IQuoteUseCase
	directory usecase.IDirectoryUseCase
	renderer  interfaces.IDocumentRenderer
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, directory usecase.IDirectoryUseCase, renderer interfaces.IDocumentRenderer) *QuoteHandler {
	return &QuoteHandler{usecase: uc, directory: directory, renderer: renderer}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	draft, err := payload.ToDraft()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), draft)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	q, err := h.usecase.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// AcceptQuote materializes the order for the quote; the order is returned
// alongside the accepted quote so clients don't need a second round-trip.
func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	q, o, err := h.usecase.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"quote": response.FromQuote(q),
		"order": response.FromOrder(o),
	})
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	q, err := h.usecase.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) SetShareable(c *gin.Context) {
	var payload request.SetShareableRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Shareable == nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.SetShareable(c.Request.Context(), c.Param("id"), *payload.Shareable)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// GetSharedQuote is the unauthenticated read-only projection behind the
// share token.
func (h *QuoteHandler) GetSharedQuote(c *gin.Context) {
	q, err := h.usecase.GetSharedByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteShared(q))
}

func (h *QuoteHandler) RenderQuoteDocument(c *gin.Context) {
	ctx := c.Request.Context()

	q, err := h.usecase.GetByID(ctx, c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	client, err := h.directory.GetClient(ctx, q.ClientID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := h.renderer.RenderQuote(ctx, q, client)
	if err != nil {
		appErr := pkg.NewDomainError("DOCUMENT_RENDER_FAILED", "Failed to render quote document", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", doc)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteExpired):
		return pkg.NewDomainErrorSimple("QUOTE_EXPIRED", "Quote has expired", http.StatusGone)
	case errors.Is(err, usecase.ErrQuoteAlreadyClosed):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_CLOSED", "Quote already accepted or rejected", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotShareable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_SHAREABLE", "Quote is not shared", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderExistsForQuote):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "An order already exists for this quote", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrInvalidPolicy), errors.Is(err, lifecycle.ErrInvalidOrderTotal):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_POLICY", "Payment policy cannot produce a deposit for this order", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
