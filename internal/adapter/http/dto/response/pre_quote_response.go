package response

import (
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase"
)

type PreQuoteResponse struct {
	Ticket         string    `json:"ticket"`
	HouseDesignID  string    `json:"house_design_id"`
	Builder        *string   `json:"builder"`
	Supplier       *string   `json:"supplier"`
	BankName       *string   `json:"bank_name"`
	BankRate       *float64  `json:"bank_rate"`
	ContactEmail   string    `json:"contact_email"`
	ContactPhone   string    `json:"contact_phone"`
	ContactMode    string    `json:"contact_mode"`
	ContactPlace   *string   `json:"contact_place"`
	VirtualChannel *string   `json:"virtual_channel"`
	EstimatedCost  int64     `json:"estimated_cost"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromPreQuote(q entities.PreQuote) PreQuoteResponse {
	return PreQuoteResponse{
		Ticket:         q.Ticket,
		HouseDesignID:  q.HouseDesignID,
		Builder:        q.Builder,
		Supplier:       q.Supplier,
		BankName:       q.BankName,
		BankRate:       q.BankRate,
		ContactEmail:   q.ContactEmail,
		ContactPhone:   q.ContactPhone,
		ContactMode:    string(q.ContactMode),
		ContactPlace:   q.ContactPlace,
		VirtualChannel: q.VirtualChannel,
		EstimatedCost:  q.EstimatedCost,
		Status:         string(q.Status),
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

func FromPreQuotes(items []entities.PreQuote) []PreQuoteResponse {
	out := make([]PreQuoteResponse, 0, len(items))
	for _, q := range items {
		out = append(out, FromPreQuote(q))
	}
	return out
}

// AllyPreQuoteResponse is a pre-quote listed for the partner it references.
type AllyPreQuoteResponse struct {
	PreQuoteResponse
	PartnerKind string `json:"partner_kind"`
	PartnerName string `json:"partner_name"`
}

func FromAllyPreQuotes(items []usecase.AllyPreQuote) []AllyPreQuoteResponse {
	out := make([]AllyPreQuoteResponse, 0, len(items))
	for _, it := range items {
		out = append(out, AllyPreQuoteResponse{
			PreQuoteResponse: FromPreQuote(it.PreQuote),
			PartnerKind:      string(it.Partner.Kind),
			PartnerName:      it.Partner.Name,
		})
	}
	return out
}
