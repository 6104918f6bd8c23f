package response

import (
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
)

type PartnerResponse struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	InterestRate *float64  `json:"interest_rate"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromPartner(p entities.Partner) PartnerResponse {
	return PartnerResponse{
		ID:           p.ID,
		Kind:         string(p.Kind),
		Name:         p.Name,
		Email:        p.Email,
		InterestRate: p.InterestRate,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromPartners(items []entities.Partner) []PartnerResponse {
	out := make([]PartnerResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPartner(p))
	}
	return out
}
