package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "installworks/internal/adapter/http/dto/request"
	response "installworks/internal/adapter/http/dto/response"
	"installworks/internal/domain/entities"
	"installworks/internal/usecase"
	"installworks/pkg"
)

var errInvalidEngineerPayload = pkg.NewDomainErrorSimple("INVALID_ENGINEER_INPUT", "Invalid engineer payload", http.StatusBadRequest)

// EngineerHandler exposes the engineer completion workflow: checklist
// management, job start, sign-off, reopen and evidence upload.

type EngineerHandler struct {
	usecase usecase.IEngineerUseCase
}

func NewEngineerHandler(uc usecase.IEngineerUseCase) *EngineerHandler {
	return &EngineerHandler{usecase: uc}
}

func (h *EngineerHandler) SetupChecklist(c *gin.Context) {
	var payload request.SetupChecklistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngineerPayload.HTTPStatus, errInvalidEngineerPayload.ToHTTPError())
		return
	}

	items, err := h.usecase.SetupChecklist(c.Request.Context(), c.Param("id"), payload.Items)
	if err != nil {
		appErr := mapEngineerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChecklist(c.Param("id"), items, entities.ChecklistComplete(items)))
}

func (h *EngineerHandler) GetChecklist(c *gin.Context) {
	items, complete, err := h.usecase.GetChecklist(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEngineerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChecklist(c.Param("id"), items, complete))
}

func (h *EngineerHandler) StartJob(c *gin.Context) {
	// Body is optional for start.
	var payload request.StartJobRequest
	_ = c.ShouldBindJSON(&payload)

	o, err := h.usecase.Start(c.Request.Context(), c.Param("id"), payload.Notes)
	if err != nil {
		appErr := mapEngineerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *EngineerHandler) SetChecklistItem(c *gin.Context) {
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		c.JSON(errInvalidEngineerPayload.HTTPStatus, errInvalidEngineerPayload.ToHTTPError())
		return
	}

	var payload request.ChecklistItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Done == nil {
		c.JSON(errInvalidEngineerPayload.HTTPStatus, errInvalidEngineerPayload.ToHTTPError())
		return
	}

	o, items, err := h.usecase.SetChecklistItem(c.Request.Context(), c.Param("id"), position, *payload.Done)
	if err != nil {
		appErr := mapEngineerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order":     response.FromOrder(o),
		"checklist": response.FromChecklist(c.Param("id"), items, entities.ChecklistComplete(items)),
	})
}

func (h *EngineerHandler) SignOff(c *gin.Context) {
	var payload request.SignOffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngineerPayload.HTTPStatus, errInvalidEngineerPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.SignOff(c.Request.Context(), c.Param("id"), payload.Confirmed, payload.Signer, payload.Notes)
	if err != nil {
		appErr := mapEngineerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// Reopen reverses a sign-off. It always writes an audit record; if the
// record cannot be written the reopen fails.
func (h *EngineerHandler) Reopen(c *gin.Context) {
	var payload request.ReopenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngineerPayload.HTTPStatus, errInvalidEngineerPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.Reopen(c.Request.Context(), c.Param("id"), payload.Actor, payload.Reason)
	if err != nil {
		appErr := mapEngineerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *EngineerHandler) PutEvidence(c *gin.Context) {
	var payload request.EvidenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngineerPayload.HTTPStatus, errInvalidEngineerPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.PutEvidence(c.Request.Context(), c.Param("id"), payload.Category, payload.Refs, payload.Replace)
	if err != nil {
		appErr := mapEngineerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func mapEngineerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidChecklist):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChecklistItemNotFound):
		return pkg.NewDomainErrorSimple("CHECKLIST_ITEM_NOT_FOUND", "Checklist item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoEngineerAssigned):
		return pkg.NewDomainErrorSimple("NO_ENGINEER_ASSIGNED", "No engineer assigned to this order", http.StatusConflict)
	case errors.Is(err, usecase.ErrChecklistIncomplete):
		return pkg.NewDomainErrorSimple("CHECKLIST_INCOMPLETE", "Completion checklist is not finished", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingSignature):
		return pkg.NewDomainErrorSimple("MISSING_SIGNATURE", "Sign-off requires a signature", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSignOffNotConfirmed):
		return pkg.NewDomainErrorSimple("SIGNOFF_NOT_CONFIRMED", "Sign-off requires explicit confirmation", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEvidenceRequired):
		return pkg.NewDomainErrorSimple("EVIDENCE_REQUIRED", "Installation evidence is required before sign-off", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAlreadySignedOff):
		return pkg.NewDomainErrorSimple("ALREADY_SIGNED_OFF", "Order is already signed off", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotSignedOff):
		return pkg.NewDomainErrorSimple("NOT_SIGNED_OFF", "Order is not signed off", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
