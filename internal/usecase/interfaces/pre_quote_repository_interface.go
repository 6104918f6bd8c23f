package interfaces

import (
	"context"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
)

// IPreQuoteRepository abstracts DynamoDB persistence for PreQuote.
//
// The ticket is the primary key: Create fails with ErrAlreadyExists when the
// ticket is taken. Lookups return zero values when nothing matches.
type IPreQuoteRepository interface {
	Create(ctx context.Context, q entities.PreQuote) (entities.PreQuote, error)
	GetByTicket(ctx context.Context, ticket string) (entities.PreQuote, error)
	ListByEmail(ctx context.Context, email string) ([]entities.PreQuote, error)
	ListByPartner(ctx context.Context, kind entities.PartnerKind, name string) ([]entities.PreQuote, error)
	UpdateStatus(ctx context.Context, ticket string, status entities.PreQuoteStatus) (entities.PreQuote, error)
}
