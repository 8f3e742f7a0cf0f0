package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"

	"installworks/internal/domain/entities"
	"installworks/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoProviderNotConfigured = errors.New("mercado pago provider not configured")
var ErrInvalidSessionID = errors.New("invalid payment session id")

// MercadoPagoSessionProvider creates hosted payment sessions and verifies
// captures against the Mercado Pago Payments API. In mock mode (for local
// development and CI) sessions are kept in memory and verify as captured.

type MercadoPagoSessionProvider struct {
	client   payment.Client
	mockMode bool

	mu           sync.Mutex
	mockSessions map[string]decimal.Decimal
}

var _ interfaces.IPaymentSessionProvider = (*MercadoPagoSessionProvider)(nil)

func NewMercadoPagoSessionProvider(accessToken string) (*MercadoPagoSessionProvider, error) {
	if isPaymentProviderMockEnabled() {
		log.Printf("[payment][provider] mock mode enabled")
		return &MercadoPagoSessionProvider{
			mockMode:     true,
			mockSessions: make(map[string]decimal.Decimal),
		}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][provider] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][provider] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][provider] Mercado Pago client initialized")

	return &MercadoPagoSessionProvider{client: payment.NewClient(cfg)}, nil
}

// paymentView is the slice of the provider response this service reads.
// It is decoded from the SDK response's JSON form so the provider payload
// stored on payment events and the fields used here stay consistent.
type paymentView struct {
	ID                 int64   `json:"id"`
	Status             string  `json:"status"`
	TransactionAmount  float64 `json:"transaction_amount"`
	PointOfInteraction struct {
		TransactionData struct {
			TicketURL string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func (p *MercadoPagoSessionProvider) CreateSession(ctx context.Context, orderID, orderNumber string, amount decimal.Decimal, currency string, paymentType entities.PaymentType) (interfaces.PaymentSession, error) {
	if p != nil && p.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		p.mu.Lock()
		p.mockSessions[id] = amount
		p.mu.Unlock()

		log.Printf("[payment][provider] mock session created session_id=%s order=%s amount=%s", id, orderNumber, amount.StringFixed(2))
		return interfaces.PaymentSession{
			SessionID:   id,
			RedirectURL: fmt.Sprintf("https://sandbox.mercadopago.com/checkout/%s", id),
		}, nil
	}

	if p == nil || p.client == nil {
		log.Printf("[payment][provider] provider not configured")
		return interfaces.PaymentSession{}, ErrMercadoPagoProviderNotConfigured
	}

	amt, _ := amount.Round(2).Float64()
	payload, err := json.Marshal(map[string]any{
		"transaction_amount": amt,
		"description":        fmt.Sprintf("%s %s", paymentType, orderNumber),
		"external_reference": orderID,
		"payment_method_id":  getenvDefault("MERCADOPAGO_PAYMENT_METHOD", "pix"),
		"payer": map[string]any{
			"email": getenvDefault("MERCADOPAGO_PAYER_EMAIL", "payments@installworks.local"),
		},
	})
	if err != nil {
		return interfaces.PaymentSession{}, err
	}

	var req payment.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		log.Printf("[payment][provider] payload unmarshal failed err=%v", err)
		return interfaces.PaymentSession{}, err
	}

	resp, err := p.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][provider] sdk create failed order=%s err=%v", orderNumber, err)
		return interfaces.PaymentSession{}, err
	}

	view, _, err := decodePaymentView(resp)
	if err != nil {
		return interfaces.PaymentSession{}, err
	}
	log.Printf("[payment][provider] session created session_id=%d order=%s status=%s", view.ID, orderNumber, view.Status)

	return interfaces.PaymentSession{
		SessionID:   strconv.FormatInt(view.ID, 10),
		RedirectURL: view.PointOfInteraction.TransactionData.TicketURL,
	}, nil
}

func (p *MercadoPagoSessionProvider) VerifySession(ctx context.Context, sessionID string) (interfaces.PaymentCapture, error) {
	if p != nil && p.mockMode {
		p.mu.Lock()
		amount, ok := p.mockSessions[sessionID]
		p.mu.Unlock()
		if !ok {
			return interfaces.PaymentCapture{}, ErrInvalidSessionID
		}

		payload, _ := json.Marshal(map[string]any{
			"id":            sessionID,
			"status":        "approved",
			"status_detail": "accredited",
			"date_approved": time.Now().UTC().Format(time.RFC3339Nano),
		})
		log.Printf("[payment][provider] mock verify session_id=%s captured=true amount=%s", sessionID, amount.StringFixed(2))
		return interfaces.PaymentCapture{Captured: true, Amount: amount, Payload: payload}, nil
	}

	if p == nil || p.client == nil {
		log.Printf("[payment][provider] provider not configured")
		return interfaces.PaymentCapture{}, ErrMercadoPagoProviderNotConfigured
	}

	id, err := strconv.Atoi(sessionID)
	if err != nil {
		return interfaces.PaymentCapture{}, ErrInvalidSessionID
	}

	resp, err := p.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][provider] sdk get failed session_id=%s err=%v", sessionID, err)
		return interfaces.PaymentCapture{}, err
	}

	view, raw, err := decodePaymentView(resp)
	if err != nil {
		return interfaces.PaymentCapture{}, err
	}
	captured := view.Status == "approved"
	log.Printf("[payment][provider] verify session_id=%s provider_status=%s captured=%t", sessionID, view.Status, captured)

	return interfaces.PaymentCapture{
		Captured: captured,
		Amount:   decimal.NewFromFloat(view.TransactionAmount).Round(2),
		Payload:  raw,
	}, nil
}

func decodePaymentView(resp any) (paymentView, json.RawMessage, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][provider] response marshal failed err=%v", err)
		return paymentView{}, nil, err
	}
	var view paymentView
	if err := json.Unmarshal(raw, &view); err != nil {
		log.Printf("[payment][provider] response decode failed err=%v", err)
		return paymentView{}, nil, err
	}
	return view, raw, nil
}

func isPaymentProviderMockEnabled() bool {
	for _, key := range []string{"PAYMENT_PROVIDER_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
