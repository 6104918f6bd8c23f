package entities

import "time"

// HouseDesign is the persisted snapshot of a completed house questionnaire:
// sanitized attributes, the estimated cost and the two generated images.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Image references are either a remote URL or an inline
// "data:image/png;base64,..." payload.
type HouseDesign struct {
	ID              string    `json:"id"`
	HouseType       string    `json:"house_type"`
	AreaVaras       int       `json:"area_varas"`
	Bedrooms        int       `json:"bedrooms"`
	Bathrooms       int       `json:"bathrooms"`
	Department      string    `json:"department"`
	Municipality    string    `json:"municipality"`
	Neighborhood    string    `json:"neighborhood"`
	HasPool         bool      `json:"has_pool"`
	AdditionalNotes string    `json:"additional_notes"`
	EstimatedCost   int64     `json:"estimated_cost"`
	BlueprintRef    string    `json:"blueprint_image_ref"`
	RenderRef       string    `json:"render_image_ref,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// HouseAttributes are the raw answers captured by the intake questionnaire,
// before sanitization. Keys follow the question order.
type HouseAttributes struct {
	HouseType       string `json:"house_type"`
	AreaVaras       string `json:"area_varas"`
	Bedrooms        string `json:"bedrooms"`
	Bathrooms       string `json:"bathrooms"`
	Department      string `json:"department"`
	Municipality    string `json:"municipality"`
	Neighborhood    string `json:"neighborhood"`
	Pool            string `json:"pool"`
	AdditionalNotes string `json:"additional_notes"`
}
