package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "installworks/internal/adapter/http/dto/request"
	response "installworks/internal/adapter/http/dto/response"
	"installworks/internal/domain/lifecycle"
	"installworks/internal/usecase"
	"installworks/pkg"
)

var errInvalidPolicyPayload = pkg.NewDomainErrorSimple("INVALID_POLICY_INPUT", "Invalid payment policy payload", http.StatusBadRequest)

// SettingsHandler manages the tenant-wide payment policy.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) GetPaymentPolicy(c *gin.Context) {
	p, err := h.usecase.GetPaymentPolicy(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentPolicy(p))
}

func (h *SettingsHandler) PutPaymentPolicy(c *gin.Context) {
	var payload request.PaymentPolicyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	policy, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.PutPaymentPolicy(c.Request.Context(), policy)
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentPolicy(saved))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, lifecycle.ErrInvalidPolicy):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_POLICY", "Payment policy is invalid", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
