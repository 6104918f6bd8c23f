package intake

import (
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
)

// Session is one customer's run through the conversation. The catalog is
// fixed when the session is created.
type Session struct {
	ID        string
	Catalog   entities.Catalog
	CreatedAt time.Time
	UpdatedAt time.Time

	state state
}

func NewSession(id string, catalog entities.Catalog, now time.Time) *Session {
	return &Session{
		ID:        id,
		Catalog:   catalog,
		CreatedAt: now,
		UpdatedAt: now,
		state:     selectBuilder{},
	}
}

func (s *Session) Phase() Phase {
	return s.state.phase()
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	SessionID           string                   `json:"session_id"`
	Phase               Phase                    `json:"phase"`
	HouseAttributeIndex *int                     `json:"house_attribute_index,omitempty"`
	CurrentQuestion     string                   `json:"current_question,omitempty"`
	HouseAttributes     entities.HouseAttributes `json:"house_attributes"`
	Builder             *string                  `json:"builder,omitempty"`
	Supplier            *string                  `json:"supplier,omitempty"`
	Bank                *entities.Bank           `json:"bank,omitempty"`
	ContactStep         ContactStep              `json:"contact_step,omitempty"`
	Contact             *Contact                 `json:"contact,omitempty"`
	DesignID            string                   `json:"design_id,omitempty"`
	EstimatedCost       *int64                   `json:"estimated_cost,omitempty"`
	BlueprintRef        string                   `json:"blueprint_image_ref,omitempty"`
	RenderRef           string                   `json:"render_image_ref,omitempty"`
	Ticket              string                   `json:"ticket,omitempty"`
	QuotePersisted      bool                     `json:"quote_persisted"`
	PdfAvailable        bool                     `json:"pdf_available"`
	QuickReplies        []QuickReply             `json:"quick_replies,omitempty"`
	CreatedAt           time.Time                `json:"created_at"`
	UpdatedAt           time.Time                `json:"updated_at"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:    s.ID,
		Phase:        s.state.phase(),
		QuickReplies: quickReplies(s.state, s.Catalog),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}

	switch st := s.state.(type) {
	case selectBuilder:
	case collectHouse:
		idx := st.cursor
		snap.HouseAttributeIndex = &idx
		snap.CurrentQuestion = houseQuestions[st.cursor].key
		snap.HouseAttributes = st.answers
		snap.Builder = optional(st.builder)
	case confirmContinue:
		snap.HouseAttributes = st.answers
		snap.Builder = optional(st.builder)
		snap.applyDesign(st.design)
	case selectSupplier:
		snap.HouseAttributes = st.answers
		snap.Builder = optional(st.builder)
		snap.applyDesign(st.design)
	case selectBank:
		snap.HouseAttributes = st.answers
		snap.Builder = optional(st.builder)
		snap.Supplier = optional(st.supplier)
		snap.applyDesign(st.design)
	case collectContact:
		snap.HouseAttributes = st.answers
		snap.Builder = optional(st.builder)
		snap.Supplier = optional(st.supplier)
		bank := st.bank
		snap.Bank = &bank
		snap.ContactStep = st.contact.step
		snap.Contact = &Contact{Email: st.contact.email, Phone: st.contact.phone, Mode: st.contact.mode}
		snap.applyDesign(st.design)
	case ticketIssued:
		snap.HouseAttributes = st.answers
		snap.Builder = optional(st.builder)
		snap.Supplier = optional(st.supplier)
		bank := st.bank
		snap.Bank = &bank
		contact := st.contact
		snap.Contact = &contact
		snap.Ticket = st.ticket
		snap.QuotePersisted = st.persisted
		snap.applyDesign(st.design)
	}
	return snap
}

func (snap *Snapshot) applyDesign(d design) {
	cost := d.estimatedCost
	snap.DesignID = d.id
	snap.EstimatedCost = &cost
	snap.BlueprintRef = d.blueprintRef
	snap.RenderRef = d.renderRef
	snap.PdfAvailable = d.id != ""
}
