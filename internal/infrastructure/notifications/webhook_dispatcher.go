package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"installworks/internal/usecase/interfaces"
)

// WebhookDispatcher posts admin notification events as JSON to the endpoint
// configured via ADMIN_WEBHOOK_URL. When no endpoint is configured events are
// logged and dropped; notification delivery never gates a workflow.

type WebhookDispatcher struct {
	url        string
	httpClient *http.Client
}

var _ interfaces.INotificationDispatcher = (*WebhookDispatcher)(nil)

func NewWebhookDispatcher() *WebhookDispatcher {
	url := os.Getenv("ADMIN_WEBHOOK_URL")
	if url == "" {
		log.Printf("[notifications][dispatcher] ADMIN_WEBHOOK_URL not set, events will be logged only")
	}
	return &WebhookDispatcher{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *WebhookDispatcher) Dispatch(ctx context.Context, event string, payload map[string]any) error {
	body, err := json.Marshal(map[string]any{
		"event":       event,
		"payload":     payload,
		"occurred_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	if d.url == "" {
		log.Printf("[notifications][dispatcher] event=%s payload=%s", event, string(body))
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		log.Printf("[notifications][dispatcher] delivery failed event=%s err=%v", event, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("[notifications][dispatcher] delivery rejected event=%s status=%d", event, resp.StatusCode)
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	log.Printf("[notifications][dispatcher] delivered event=%s status=%d", event, resp.StatusCode)
	return nil
}
