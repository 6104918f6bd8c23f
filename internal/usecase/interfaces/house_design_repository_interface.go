package interfaces

import (
	"context"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
)

// IHouseDesignRepository abstracts DynamoDB persistence for HouseDesign.
//
// Designs are created once, at the end of the house questionnaire, and never
// updated. GetByID returns a zero-value design when the id is unknown.
type IHouseDesignRepository interface {
	Create(ctx context.Context, d entities.HouseDesign) (entities.HouseDesign, error)
	GetByID(ctx context.Context, id string) (entities.HouseDesign, error)
}
