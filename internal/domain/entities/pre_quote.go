package entities

import "time"

// PreQuoteStatus represents the back-office lifecycle of a pre-quote.
//
// New pre-quotes issued from the assistant start as PENDIENTE; the remaining
// transitions are driven by back-office actions.
type PreQuoteStatus string

const (
	PreQuoteStatusBorrador  PreQuoteStatus = "BORRADOR"
	PreQuoteStatusPendiente PreQuoteStatus = "PENDIENTE"
	PreQuoteStatusEnviada   PreQuoteStatus = "ENVIADA"
	PreQuoteStatusAceptada  PreQuoteStatus = "ACEPTADA"
	PreQuoteStatusRechazada PreQuoteStatus = "RECHAZADA"
)

func (s PreQuoteStatus) Valid() bool {
	switch s {
	case PreQuoteStatusBorrador, PreQuoteStatusPendiente, PreQuoteStatusEnviada, PreQuoteStatusAceptada, PreQuoteStatusRechazada:
		return true
	}
	return false
}

// ContactMode is how the customer wants to formalize the proposal.
type ContactMode string

const (
	ContactModePresencial ContactMode = "PRESENCIAL"
	ContactModeVirtual    ContactMode = "VIRTUAL"
)

// VirtualChannel is the platform used for a virtual meeting.
type VirtualChannel string

const (
	VirtualChannelWhatsApp   VirtualChannel = "WhatsApp"
	VirtualChannelZoom       VirtualChannel = "Zoom"
	VirtualChannelGoogleMeet VirtualChannel = "Google Meet"
)

// PreQuote is the outcome of a completed intake session.
//
// Storage model (DynamoDB):
//   - PK: ticket
//   - GSI1 (contact_email-index): contact_email
//
// Builder, Supplier, Bank, BankRate, ContactPlace and VirtualChannel are
// optional and nil when not chosen.
type PreQuote struct {
	Ticket         string         `json:"ticket"`
	HouseDesignID  string         `json:"house_design_id"`
	Builder        *string        `json:"builder,omitempty"`
	Supplier       *string        `json:"supplier,omitempty"`
	BankName       *string        `json:"bank_name,omitempty"`
	BankRate       *float64       `json:"bank_rate,omitempty"`
	ContactEmail   string         `json:"contact_email"`
	ContactPhone   string         `json:"contact_phone"`
	ContactMode    ContactMode    `json:"contact_mode"`
	ContactPlace   *string        `json:"contact_place,omitempty"`
	VirtualChannel *string        `json:"virtual_channel,omitempty"`
	EstimatedCost  int64          `json:"estimated_cost"`
	Status         PreQuoteStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
