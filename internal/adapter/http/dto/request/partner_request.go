package request

import (
	"strings"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase"
)

// CreatePartnerRequest registers a builder, hardware store or bank. The
// request always starts as PENDIENTE.
type CreatePartnerRequest struct {
	Kind         string   `json:"kind" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required"`
	InterestRate *float64 `json:"interest_rate"`
}

func (r CreatePartnerRequest) ToEntity() entities.Partner {
	return entities.Partner{
		Kind:         entities.PartnerKind(strings.ToUpper(strings.TrimSpace(r.Kind))),
		Name:         r.Name,
		Email:        r.Email,
		InterestRate: r.InterestRate,
	}
}

// UpdatePartnerRequest is a partial update; absent fields are left unchanged.
type UpdatePartnerRequest struct {
	Kind         *string  `json:"kind"`
	Name         *string  `json:"name"`
	Email        *string  `json:"email"`
	InterestRate *float64 `json:"interest_rate"`
	Status       *string  `json:"status"`
}

func (r UpdatePartnerRequest) ToPatch() usecase.PartnerPatch {
	patch := usecase.PartnerPatch{
		Name:         r.Name,
		Email:        r.Email,
		InterestRate: r.InterestRate,
	}
	if r.Kind != nil {
		kind := entities.PartnerKind(strings.ToUpper(strings.TrimSpace(*r.Kind)))
		patch.Kind = &kind
	}
	if r.Status != nil {
		status := entities.PartnerStatus(strings.ToUpper(strings.TrimSpace(*r.Status)))
		patch.Status = &status
	}
	return patch
}
