package interfaces

import (
	"context"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
)

// ICatalogSource provides the builder, supplier and bank options offered by
// the assistant. It always returns a usable catalog.
type ICatalogSource interface {
	Catalog(ctx context.Context) entities.Catalog
}
