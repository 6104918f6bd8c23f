package request

import (
	"math"
	"strings"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
)

// CreatePreQuoteRequest is an explicit pre-quote registration.
type CreatePreQuoteRequest struct {
	Ticket         string   `json:"ticket" binding:"required"`
	HouseDesignID  string   `json:"house_design_id" binding:"required"`
	Builder        *string  `json:"builder"`
	Supplier       *string  `json:"supplier"`
	BankName       *string  `json:"bank_name"`
	BankRate       *float64 `json:"bank_rate"`
	ContactEmail   string   `json:"contact_email" binding:"required"`
	ContactPhone   string   `json:"contact_phone" binding:"required"`
	ContactMode    string   `json:"contact_mode" binding:"required"`
	ContactPlace   *string  `json:"contact_place"`
	VirtualChannel *string  `json:"virtual_channel"`
	EstimatedCost  float64  `json:"estimated_cost" binding:"required,gt=0"`
	Status         string   `json:"status"`
}

func (r CreatePreQuoteRequest) ToEntity() entities.PreQuote {
	return entities.PreQuote{
		Ticket:         r.Ticket,
		HouseDesignID:  r.HouseDesignID,
		Builder:        trimmedOrNil(r.Builder),
		Supplier:       trimmedOrNil(r.Supplier),
		BankName:       trimmedOrNil(r.BankName),
		BankRate:       r.BankRate,
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
		ContactMode:    entities.ContactMode(strings.ToUpper(strings.TrimSpace(r.ContactMode))),
		ContactPlace:   trimmedOrNil(r.ContactPlace),
		VirtualChannel: trimmedOrNil(r.VirtualChannel),
		EstimatedCost:  int64(math.Round(r.EstimatedCost)),
		Status:         entities.PreQuoteStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
	}
}

// UpdatePreQuoteStatusRequest is the back-office status change.
type UpdatePreQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdatePreQuoteStatusRequest) ResolveStatus() entities.PreQuoteStatus {
	return entities.PreQuoteStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
