package response

import (
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/pricing"
)

type HouseDesignResponse struct {
	ID                     string    `json:"id"`
	HouseType              string    `json:"house_type"`
	AreaVaras              int       `json:"area_varas"`
	Bedrooms               int       `json:"bedrooms"`
	Bathrooms              int       `json:"bathrooms"`
	Department             string    `json:"department"`
	Municipality           string    `json:"municipality"`
	Neighborhood           string    `json:"neighborhood"`
	HasPool                bool      `json:"has_pool"`
	AdditionalNotes        string    `json:"additional_notes"`
	EstimatedCost          int64     `json:"estimated_cost"`
	EstimatedCostFormatted string    `json:"estimated_cost_formatted"`
	BlueprintImageRef      string    `json:"blueprint_image_ref"`
	RenderImageRef         string    `json:"render_image_ref,omitempty"`
	PdfURL                 string    `json:"pdf_url"`
	CreatedAt              time.Time `json:"created_at"`
}

// FromHouseDesign maps a design; basePath is the route prefix the PDF link is
// built on (e.g. "/v1/ai/house-design").
func FromHouseDesign(d entities.HouseDesign, basePath string) HouseDesignResponse {
	return HouseDesignResponse{
		ID:                     d.ID,
		HouseType:              d.HouseType,
		AreaVaras:              d.AreaVaras,
		Bedrooms:               d.Bedrooms,
		Bathrooms:              d.Bathrooms,
		Department:             d.Department,
		Municipality:           d.Municipality,
		Neighborhood:           d.Neighborhood,
		HasPool:                d.HasPool,
		AdditionalNotes:        d.AdditionalNotes,
		EstimatedCost:          d.EstimatedCost,
		EstimatedCostFormatted: "L. " + pricing.FormatLempiras(d.EstimatedCost),
		BlueprintImageRef:      d.BlueprintRef,
		RenderImageRef:         d.RenderRef,
		PdfURL:                 basePath + "/" + d.ID + "/pdf",
		CreatedAt:              d.CreatedAt,
	}
}
