package interfaces

import (
	"context"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
)

// IImageGenerator abstracts the text-to-image provider (e.g. OpenAI).
//
// GenerateImage never fails: every provider problem degrades to a placeholder
// reference. The result is a remote URL or a data:image/png;base64 payload.
type IImageGenerator interface {
	GenerateImage(ctx context.Context, kind entities.ImageKind, prompt string) string
}

// IImageFetcher resolves an image reference into raw bytes.
type IImageFetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// IPdfRenderer lays out the house design report. render may be nil, in which
// case the render page is omitted.
type IPdfRenderer interface {
	RenderHouseDesign(d entities.HouseDesign, blueprint, render []byte) (entities.Document, error)
}
