package interfaces

import (
	"context"
	"time"

	"installworks/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByShareToken(ctx context.Context, token string) (entities.Quote, error)
	// UpdateStatus also stamps the matching lifecycle timestamp
	// (sent_at / accepted_at / rejected_at) for the new status.
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, at time.Time) (entities.Quote, error)
	SetShareable(ctx context.Context, id string, shareable bool) (entities.Quote, error)
}
