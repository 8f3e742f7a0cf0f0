package interfaces

import "installworks/internal/domain/lifecycle"

// IStatusPublisher fans a freshly derived lifecycle view out to interested
// sessions (admin and client views run as independent processes). Publishing
// is idempotent: the deriver is pure, so a duplicated notification or a
// notification racing a periodic poll re-derives the same view.

type IStatusPublisher interface {
	Publish(orderID string, view lifecycle.View)
}
