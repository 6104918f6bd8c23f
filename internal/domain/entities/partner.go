package entities

import (
	"strings"
	"time"
)

// PartnerKind is the kind of allied company offered during intake.
type PartnerKind string

const (
	PartnerKindConstructora PartnerKind = "CONSTRUCTORA"
	PartnerKindFerreteria   PartnerKind = "FERRETERIA"
	PartnerKindBanco        PartnerKind = "BANCO"
)

func (k PartnerKind) Valid() bool {
	switch k {
	case PartnerKindConstructora, PartnerKindFerreteria, PartnerKindBanco:
		return true
	}
	return false
}

// PartnerStatus is the onboarding state of a partner request ("solicitud").
type PartnerStatus string

const (
	PartnerStatusPendiente PartnerStatus = "PENDIENTE"
	PartnerStatusAprobada  PartnerStatus = "APROBADA"
	PartnerStatusRechazada PartnerStatus = "RECHAZADA"
)

func (s PartnerStatus) Valid() bool {
	switch s {
	case PartnerStatusPendiente, PartnerStatusAprobada, PartnerStatusRechazada:
		return true
	}
	return false
}

// Partner is an onboarding request from a builder, hardware store or bank.
// Only APROBADA partners are offered by the assistant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
type Partner struct {
	ID           string        `json:"id"`
	Kind         PartnerKind   `json:"kind"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	InterestRate *float64      `json:"interest_rate,omitempty"`
	Status       PartnerStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Bank is a bank catalog entry with its reference interest rate (0 when none).
type Bank struct {
	Name string  `json:"name" yaml:"name"`
	Rate float64 `json:"rate" yaml:"rate"`
}

// Catalog is the set of options offered by the assistant for one session.
type Catalog struct {
	Builders  []string `json:"builders" yaml:"builders"`
	Suppliers []string `json:"suppliers" yaml:"suppliers"`
	Banks     []Bank   `json:"banks" yaml:"banks"`
}

// BankNames returns the bank names in catalog order.
func (c Catalog) BankNames() []string {
	names := make([]string, 0, len(c.Banks))
	for _, b := range c.Banks {
		names = append(names, b.Name)
	}
	return names
}

// IsNoPreference reports whether an option is one of the "sin preferencia" entries.
func IsNoPreference(option string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(option)), "sin preferencia")
}
