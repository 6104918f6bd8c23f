package interfaces

import (
	"context"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
)

// IPartnerRepository abstracts DynamoDB persistence for Partner requests.
//
// List with an empty status returns every partner. Update replaces the stored
// item and returns a zero value when the id does not exist.
type IPartnerRepository interface {
	Create(ctx context.Context, p entities.Partner) (entities.Partner, error)
	GetByID(ctx context.Context, id string) (entities.Partner, error)
	List(ctx context.Context, status entities.PartnerStatus) ([]entities.Partner, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Partner, error)
	Update(ctx context.Context, p entities.Partner) (entities.Partner, error)
	Delete(ctx context.Context, id string) (bool, error)
}
