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

var errInvalidDirectoryPayload = pkg.NewDomainErrorSimple("INVALID_DIRECTORY_INPUT", "Invalid payload", http.StatusBadRequest)

// DirectoryHandler manages the clients and engineers referenced by quotes
// and bookings.

type DirectoryHandler struct {
	usecase usecase.IDirectoryUseCase
}

func NewDirectoryHandler(uc usecase.IDirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{usecase: uc}
}

func (h *DirectoryHandler) CreateClient(c *gin.Context) {
	var payload request.CreateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDirectoryPayload.HTTPStatus, errInvalidDirectoryPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.CreateClient(c.Request.Context(), payload.Name, payload.Email, payload.Phone, payload.Address)
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

func (h *DirectoryHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *DirectoryHandler) CreateEngineer(c *gin.Context) {
	var payload request.CreateEngineerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDirectoryPayload.HTTPStatus, errInvalidDirectoryPayload.ToHTTPError())
		return
	}

	engineer, err := h.usecase.CreateEngineer(c.Request.Context(), payload.Name, payload.Email, payload.Available)
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEngineer(engineer))
}

func (h *DirectoryHandler) GetEngineer(c *gin.Context) {
	engineer, err := h.usecase.GetEngineer(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEngineer(engineer))
}

func (h *DirectoryHandler) SetEngineerAvailability(c *gin.Context) {
	var payload request.EngineerAvailabilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Available == nil {
		c.JSON(errInvalidDirectoryPayload.HTTPStatus, errInvalidDirectoryPayload.ToHTTPError())
		return
	}

	engineer, err := h.usecase.SetEngineerAvailability(c.Request.Context(), c.Param("id"), *payload.Available)
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEngineer(engineer))
}

func mapDirectoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientInput), errors.Is(err, usecase.ErrInvalidEngineerInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEngineerNotFound):
		return pkg.NewDomainErrorSimple("ENGINEER_NOT_FOUND", "Engineer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientAlreadyExists):
		return pkg.NewDomainErrorSimple("CLIENT_ALREADY_EXISTS", "Client already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrEngineerExists):
		return pkg.NewDomainErrorSimple("ENGINEER_ALREADY_EXISTS", "Engineer already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
