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

var errInvalidSchedulingPayload = pkg.NewDomainErrorSimple("INVALID_SCHEDULING_INPUT", "Invalid scheduling payload", http.StatusBadRequest)

// SchedulingHandler books install dates (client-facing, behind the
// agreement gate) and manages client blocked dates.

type SchedulingHandler struct {
	usecase usecase.ISchedulingUseCase
}

func NewSchedulingHandler(uc usecase.ISchedulingUseCase) *SchedulingHandler {
	return &SchedulingHandler{usecase: uc}
}

func (h *SchedulingHandler) BookInstall(c *gin.Context) {
	var payload request.BookInstallRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSchedulingPayload.HTTPStatus, errInvalidSchedulingPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.Book(c.Request.Context(), c.Param("id"), payload.EngineerID, payload.Date, payload.Window, payload.EstimatedHours)
	if err != nil {
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// CheckAvailability answers whether a date could be booked right now, without
// reserving anything.
func (h *SchedulingHandler) CheckAvailability(c *gin.Context) {
	engineerID := c.Query("engineer_id")
	clientID := c.Query("client_id")
	date := c.Query("date")
	if engineerID == "" || date == "" {
		c.JSON(errInvalidSchedulingPayload.HTTPStatus, errInvalidSchedulingPayload.ToHTTPError())
		return
	}

	resp := response.AvailabilityResponse{EngineerID: engineerID, Date: date, Available: true}
	if err := h.usecase.CheckDate(c.Request.Context(), engineerID, clientID, date); err != nil {
		switch {
		case errors.Is(err, usecase.ErrDateUnavailable):
			resp.Available = false
			resp.Reason = "date unavailable"
		case errors.Is(err, usecase.ErrEngineerNotFound):
			appErr := mapSchedulingError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		default:
			appErr := mapSchedulingError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SchedulingHandler) AddBlockedDate(c *gin.Context) {
	var payload request.BlockedDateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSchedulingPayload.HTTPStatus, errInvalidSchedulingPayload.ToHTTPError())
		return
	}

	blocked, err := h.usecase.AddBlockedDate(c.Request.Context(), c.Param("id"), payload.Date, payload.Reason)
	if err != nil {
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBlockedDate(blocked))
}

func (h *SchedulingHandler) ListBlockedDates(c *gin.Context) {
	blocked, err := h.usecase.ListBlockedDates(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBlockedDates(blocked))
}

func mapSchedulingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBlockedDateInPast):
		return pkg.NewDomainErrorSimple("BLOCKED_DATE_IN_PAST", "Blocked date is in the past", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEngineerNotFound):
		return pkg.NewDomainErrorSimple("ENGINEER_NOT_FOUND", "Engineer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDateUnavailable):
		return pkg.NewDomainErrorSimple("DATE_UNAVAILABLE", "Requested date is unavailable", http.StatusConflict)
	case errors.Is(err, usecase.ErrSchedulingLocked):
		return pkg.NewDomainErrorSimple("SCHEDULING_LOCKED", "Scheduling requires completed payment and signed agreement", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
