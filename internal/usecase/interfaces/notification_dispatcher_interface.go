package interfaces

import "context"

// INotificationDispatcher delivers fire-and-forget events (engineer
// completed a job, order reopened) to administrators. Delivery failures are
// logged by callers, never propagated to the triggering workflow.

type INotificationDispatcher interface {
	Dispatch(ctx context.Context, event string, payload map[string]any) error
}
