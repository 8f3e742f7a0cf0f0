package interfaces

import (
	"context"

	"installworks/internal/domain/entities"
)

// IDocumentRenderer produces renderable quote/agreement content. It is a
// best-effort external collaborator; callers surface failures without
// blocking lifecycle state.

type IDocumentRenderer interface {
	RenderQuote(ctx context.Context, q entities.Quote, c entities.Client) ([]byte, error)
	RenderAgreement(ctx context.Context, o entities.Order, q entities.Quote, c entities.Client) ([]byte, error)
}
