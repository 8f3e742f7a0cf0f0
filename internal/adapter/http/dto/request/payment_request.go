package request

// ConfirmPaymentRequest asks the service to verify a session's capture with
// the provider. Confirmation is idempotent per session.
type ConfirmPaymentRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
