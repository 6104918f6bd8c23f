// Package intake implements the assistant conversation that walks a customer
// from builder selection to a pre-quote ticket.
//
// The conversation is a finite state machine. Each phase is its own type and
// Machine.transition is the only place phases change. A Session must not be
// advanced concurrently; callers serialize access per session.
package intake

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/options"
)

// ErrTicketTaken is returned by a PreQuoteCreator when the ticket already exists.
var ErrTicketTaken = errors.New("ticket already taken")

const defaultTicketAttempts = 5

// DesignGenerator turns the completed questionnaire into a persisted house
// design (cost estimate and generated images included).
type DesignGenerator interface {
	GenerateDesign(ctx context.Context, answers entities.HouseAttributes) (entities.HouseDesign, error)
}

// PreQuoteCreator persists the pre-quote issued at the end of the conversation.
type PreQuoteCreator interface {
	CreatePreQuote(ctx context.Context, q entities.PreQuote) (entities.PreQuote, error)
}

// Machine drives sessions. It holds no per-session state.
type Machine struct {
	designs        DesignGenerator
	quotes         PreQuoteCreator
	newTicket      func() string
	ticketAttempts int
}

type Option func(*Machine)

// WithTicketGenerator replaces the random ticket generator.
func WithTicketGenerator(fn func() string) Option {
	return func(m *Machine) { m.newTicket = fn }
}

// WithTicketAttempts bounds how many tickets are tried when one is taken.
func WithTicketAttempts(n int) Option {
	return func(m *Machine) {
		if n > 0 {
			m.ticketAttempts = n
		}
	}
}

func NewMachine(designs DesignGenerator, quotes PreQuoteCreator, opts ...Option) *Machine {
	m := &Machine{
		designs:        designs,
		quotes:         quotes,
		newTicket:      NewTicket,
		ticketAttempts: defaultTicketAttempts,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open returns the opening messages of a fresh session.
func (m *Machine) Open(s *Session) []Message {
	return openingMessages(s.Catalog)
}

// Reset drops every answer and selection and starts over.
func (m *Machine) Reset(s *Session) []Message {
	s.state = selectBuilder{}
	return append([]Message{say(msgResetAck)}, openingMessages(s.Catalog)...)
}

// Advance processes one user message. Blank input is ignored.
func (m *Machine) Advance(ctx context.Context, s *Session, input string) []Message {
	text := strings.TrimSpace(input)
	if text == "" {
		return nil
	}
	if isResetKeyword(text) {
		return m.Reset(s)
	}
	next, replies := m.transition(ctx, s, s.state, text)
	if next.phase() != s.state.phase() {
		log.Printf("[intake][machine] transition session_id=%s from=%s to=%s", s.ID, s.state.phase(), next.phase())
	}
	s.state = next
	return replies
}

func (m *Machine) transition(ctx context.Context, s *Session, st state, text string) (state, []Message) {
	lower := strings.ToLower(text)

	switch cur := st.(type) {
	case selectBuilder:
		builder := options.Resolve(text, s.Catalog.Builders)
		return collectHouse{builder: builder}, []Message{
			builderChosenMessage(builder),
			say(msgHouseIntro),
			say(houseQuestions[0].question),
		}

	case collectHouse:
		answers := cur.answers
		houseQuestions[cur.cursor].capture(&answers, text)
		if cur.cursor < len(houseQuestions)-1 {
			next := collectHouse{builder: cur.builder, cursor: cur.cursor + 1, answers: answers}
			return next, []Message{say(houseQuestions[next.cursor].question)}
		}
		replies := []Message{say(msgThinking)}
		hd, err := m.designs.GenerateDesign(ctx, answers)
		if err != nil {
			log.Printf("[intake][machine] design generation failed session_id=%s err=%v", s.ID, err)
			// Stay on the last question so the customer can re-submit.
			return collectHouse{builder: cur.builder, cursor: cur.cursor, answers: answers}, append(replies, say(msgDesignFailed))
		}
		d := design{
			id:            hd.ID,
			estimatedCost: hd.EstimatedCost,
			blueprintRef:  hd.BlueprintRef,
			renderRef:     hd.RenderRef,
		}
		return confirmContinue{builder: cur.builder, answers: answers, design: d}, append(replies, designMessages(cur.builder, d)...)

	case confirmContinue:
		if !strings.HasPrefix(lower, "s") {
			return cur, []Message{say(msgStopped)}
		}
		return selectSupplier{builder: cur.builder, answers: cur.answers, design: cur.design}, []Message{
			say(msgSupplierPrompt),
			say(options.Format("Opciones de ferretería:", s.Catalog.Suppliers)),
		}

	case selectSupplier:
		supplier := options.Resolve(text, s.Catalog.Suppliers)
		return selectBank{builder: cur.builder, supplier: supplier, answers: cur.answers, design: cur.design}, []Message{
			supplierChosenMessage(supplier),
			say(msgBankPrompt),
			bankOptionsMessage(s.Catalog.Banks),
		}

	case selectBank:
		bank := resolveBank(text, s.Catalog.Banks)
		next := collectContact{
			builder:  cur.builder,
			supplier: cur.supplier,
			bank:     bank,
			answers:  cur.answers,
			design:   cur.design,
			contact:  contactDraft{step: ContactStepEmail},
		}
		return next, []Message{bankChosenMessage(bank), say(msgContactIntro), say(msgAskEmail)}

	case collectContact:
		return m.collectContact(ctx, s, cur, text, lower)

	case ticketIssued:
		return cur, []Message{say(msgAlreadyIssued)}
	}

	return st, nil
}

func (m *Machine) collectContact(ctx context.Context, s *Session, cur collectContact, text, lower string) (state, []Message) {
	next := cur
	switch cur.contact.step {
	case ContactStepEmail:
		next.contact.email = text
		next.contact.step = ContactStepPhone
		return next, []Message{say(msgAskPhone)}

	case ContactStepPhone:
		next.contact.phone = text
		next.contact.step = ContactStepMode
		return next, []Message{say(msgAskMode)}

	case ContactStepMode:
		if strings.HasPrefix(lower, "p") {
			next.contact.mode = entities.ContactModePresencial
			next.contact.step = ContactStepPlace
			return next, []Message{say(msgAskPlace)}
		}
		next.contact.mode = entities.ContactModeVirtual
		next.contact.step = ContactStepVirtual
		return next, []Message{say(msgAskVirtual)}

	case ContactStepPlace:
		return m.issueTicket(ctx, s, cur, Contact{
			Email: cur.contact.email,
			Phone: cur.contact.phone,
			Mode:  entities.ContactModePresencial,
			Place: text,
		})

	case ContactStepVirtual:
		return m.issueTicket(ctx, s, cur, Contact{
			Email:          cur.contact.email,
			Phone:          cur.contact.phone,
			Mode:           entities.ContactModeVirtual,
			VirtualChannel: parseVirtualChannel(lower),
		})
	}
	return cur, nil
}

// issueTicket persists the pre-quote and moves to TICKET_ISSUED. Persistence
// is best-effort: the ticket is shown even when the write fails.
func (m *Machine) issueTicket(ctx context.Context, s *Session, cur collectContact, contact Contact) (state, []Message) {
	done := ticketIssued{
		builder:  cur.builder,
		supplier: cur.supplier,
		bank:     cur.bank,
		answers:  cur.answers,
		design:   cur.design,
		contact:  contact,
	}

	for attempt := 1; attempt <= m.ticketAttempts; attempt++ {
		done.ticket = m.newTicket()
		_, err := m.quotes.CreatePreQuote(ctx, preQuoteFrom(done))
		if err == nil {
			done.persisted = true
			break
		}
		if errors.Is(err, ErrTicketTaken) {
			log.Printf("[intake][machine] ticket collision session_id=%s ticket=%s attempt=%d", s.ID, done.ticket, attempt)
			continue
		}
		log.Printf("[intake][machine] pre-quote persistence failed session_id=%s ticket=%s err=%v", s.ID, done.ticket, err)
		break
	}

	return done, summaryMessages(done)
}

func preQuoteFrom(t ticketIssued) entities.PreQuote {
	q := entities.PreQuote{
		Ticket:        t.ticket,
		HouseDesignID: t.design.id,
		Builder:       optional(t.builder),
		Supplier:      optional(t.supplier),
		BankName:      optional(t.bank.Name),
		ContactEmail:  t.contact.Email,
		ContactPhone:  t.contact.Phone,
		ContactMode:   t.contact.Mode,
		ContactPlace:  optional(t.contact.Place),
		EstimatedCost: t.design.estimatedCost,
	}
	if t.bank.Name != "" {
		rate := t.bank.Rate
		q.BankRate = &rate
	}
	if t.contact.VirtualChannel != "" {
		ch := string(t.contact.VirtualChannel)
		q.VirtualChannel = &ch
	}
	return q
}

// resolveBank resolves the input against bank names; an unknown name falls
// back to the last bank in the catalog.
func resolveBank(text string, banks []entities.Bank) entities.Bank {
	if len(banks) == 0 {
		return entities.Bank{Name: options.Resolve(text, nil)}
	}
	names := make([]string, 0, len(banks))
	for _, b := range banks {
		names = append(names, b.Name)
	}
	chosen := options.Resolve(text, names)
	for _, b := range banks {
		if b.Name == chosen {
			return b
		}
	}
	return banks[len(banks)-1]
}

func parseVirtualChannel(lower string) entities.VirtualChannel {
	switch {
	case strings.HasPrefix(lower, "2") || strings.Contains(lower, "zoom"):
		return entities.VirtualChannelZoom
	case strings.HasPrefix(lower, "3") || strings.Contains(lower, "meet"):
		return entities.VirtualChannelGoogleMeet
	default:
		return entities.VirtualChannelWhatsApp
	}
}

func isResetKeyword(text string) bool {
	lower := strings.ToLower(text)
	return lower == "reiniciar" || lower == "reset"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
