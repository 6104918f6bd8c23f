package request

import "github.com/Iris-Sagastume/construct-ia/internal/domain/entities"

// HouseDesignRequest is the house form submitted to /ai/house-image. Every
// field is optional; missing values take the sanitization defaults.
type HouseDesignRequest struct {
	HouseType       FlexString `json:"house_type"`
	AreaVaras       FlexString `json:"area_varas"`
	Bedrooms        FlexString `json:"bedrooms"`
	Bathrooms       FlexString `json:"bathrooms"`
	Department      FlexString `json:"department"`
	Municipality    FlexString `json:"municipality"`
	Neighborhood    FlexString `json:"neighborhood"`
	Pool            FlexString `json:"pool"`
	AdditionalNotes FlexString `json:"additional_notes"`
}

func (r HouseDesignRequest) ToAttributes() entities.HouseAttributes {
	return entities.HouseAttributes{
		HouseType:       r.HouseType.String(),
		AreaVaras:       r.AreaVaras.String(),
		Bedrooms:        r.Bedrooms.String(),
		Bathrooms:       r.Bathrooms.String(),
		Department:      r.Department.String(),
		Municipality:    r.Municipality.String(),
		Neighborhood:    r.Neighborhood.String(),
		Pool:            r.Pool.String(),
		AdditionalNotes: r.AdditionalNotes.String(),
	}
}
