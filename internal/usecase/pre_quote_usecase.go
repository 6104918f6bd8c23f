package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/intake"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces"
)

var (
	ErrPreQuoteNotFound     = errors.New("pre-quote not found")
	ErrInvalidTicket        = errors.New("invalid ticket")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidContactPhone  = errors.New("invalid contact phone")
	ErrInvalidContactMode   = errors.New("invalid contact mode")
	ErrInvalidEstimatedCost = errors.New("invalid estimated cost")
	ErrInvalidPreQuoteState = errors.New("invalid pre-quote status")

	// ErrPreQuoteAlreadyExists matches intake.ErrTicketTaken so the assistant
	// can retry with a fresh ticket.
	ErrPreQuoteAlreadyExists = fmt.Errorf("pre-quote already exists: %w", intake.ErrTicketTaken)
)

// AllyPreQuote is a pre-quote as seen by the approved partner it references.
type AllyPreQuote struct {
	PreQuote entities.PreQuote
	Partner  entities.Partner
}

// IPreQuoteUseCase exposes pre-quote operations:
//   - POST /assistant/pre-quotes => CreatePreQuote()
//   - GET /assistant/pre-quotes?email= => ListByEmail()
//   - GET /assistant/pre-quotes/{ticket}?email= => GetByTicket()
//   - PATCH /assistant/pre-quotes/{ticket}/status => UpdateStatus()
//   - GET /allies/pre-quotes?email= => ListForAlly()
type IPreQuoteUseCase interface {
	CreatePreQuote(ctx context.Context, q entities.PreQuote) (entities.PreQuote, error)
	ListByEmail(ctx context.Context, email string) ([]entities.PreQuote, error)
	GetByTicket(ctx context.Context, ticket, email string) (entities.PreQuote, error)
	UpdateStatus(ctx context.Context, ticket string, status entities.PreQuoteStatus) (entities.PreQuote, error)
	ListForAlly(ctx context.Context, email string) ([]AllyPreQuote, error)
}

type PreQuoteUseCase struct {
	repo     interfaces.IPreQuoteRepository
	designs  interfaces.IHouseDesignRepository
	partners interfaces.IPartnerRepository
}

var (
	_ IPreQuoteUseCase       = (*PreQuoteUseCase)(nil)
	_ intake.PreQuoteCreator = (*PreQuoteUseCase)(nil)
)

func NewPreQuoteUseCase(
	repo interfaces.IPreQuoteRepository,
	designs interfaces.IHouseDesignRepository,
	partners interfaces.IPartnerRepository,
) *PreQuoteUseCase {
	return &PreQuoteUseCase{repo: repo, designs: designs, partners: partners}
}

func (u *PreQuoteUseCase) CreatePreQuote(ctx context.Context, q entities.PreQuote) (entities.PreQuote, error) {
	q.Ticket = strings.TrimSpace(q.Ticket)
	q.HouseDesignID = strings.TrimSpace(q.HouseDesignID)
	q.ContactEmail = strings.TrimSpace(q.ContactEmail)
	q.ContactPhone = strings.TrimSpace(q.ContactPhone)

	switch {
	case q.Ticket == "":
		return entities.PreQuote{}, ErrInvalidTicket
	case q.EstimatedCost <= 0:
		return entities.PreQuote{}, ErrInvalidEstimatedCost
	case q.ContactEmail == "":
		return entities.PreQuote{}, ErrInvalidEmail
	case q.ContactPhone == "":
		return entities.PreQuote{}, ErrInvalidContactPhone
	case q.ContactMode != entities.ContactModePresencial && q.ContactMode != entities.ContactModeVirtual:
		return entities.PreQuote{}, ErrInvalidContactMode
	case q.HouseDesignID == "":
		return entities.PreQuote{}, ErrInvalidHouseDesignID
	}

	if q.Status == "" {
		q.Status = entities.PreQuoteStatusPendiente
	} else if !q.Status.Valid() {
		return entities.PreQuote{}, ErrInvalidPreQuoteState
	}

	// The pre-quote must reference an existing design.
	d, err := u.designs.GetByID(ctx, q.HouseDesignID)
	if err != nil {
		return entities.PreQuote{}, err
	}
	if d.ID == "" {
		return entities.PreQuote{}, ErrHouseDesignNotFound
	}

	now := time.Now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.PreQuote{}, ErrPreQuoteAlreadyExists
		}
		return entities.PreQuote{}, err
	}
	log.Printf("[prequote][usecase] created ticket=%s house_design_id=%s", created.Ticket, created.HouseDesignID)
	return created, nil
}

func (u *PreQuoteUseCase) ListByEmail(ctx context.Context, email string) ([]entities.PreQuote, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidEmail
	}

	items, err := u.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	sortPreQuotesNewestFirst(items)
	return items, nil
}

// GetByTicket returns ErrPreQuoteNotFound when email is given and does not
// match the stored contact email.
func (u *PreQuoteUseCase) GetByTicket(ctx context.Context, ticket, email string) (entities.PreQuote, error) {
	ticket = strings.TrimSpace(ticket)
	if ticket == "" {
		return entities.PreQuote{}, ErrInvalidTicket
	}

	q, err := u.repo.GetByTicket(ctx, ticket)
	if err != nil {
		return entities.PreQuote{}, err
	}
	if q.Ticket == "" {
		return entities.PreQuote{}, ErrPreQuoteNotFound
	}
	if email = strings.TrimSpace(email); email != "" && q.ContactEmail != email {
		return entities.PreQuote{}, ErrPreQuoteNotFound
	}
	return q, nil
}

func (u *PreQuoteUseCase) UpdateStatus(ctx context.Context, ticket string, status entities.PreQuoteStatus) (entities.PreQuote, error) {
	ticket = strings.TrimSpace(ticket)
	if ticket == "" {
		return entities.PreQuote{}, ErrInvalidTicket
	}
	if !status.Valid() {
		return entities.PreQuote{}, ErrInvalidPreQuoteState
	}

	updated, err := u.repo.UpdateStatus(ctx, ticket, status)
	if err != nil {
		return entities.PreQuote{}, err
	}
	if updated.Ticket == "" {
		return entities.PreQuote{}, ErrPreQuoteNotFound
	}
	return updated, nil
}

// ListForAlly finds the caller's most recent approved partner request and
// returns the pre-quotes that chose that partner. No approved request yields
// an empty list.
func (u *PreQuoteUseCase) ListForAlly(ctx context.Context, email string) ([]AllyPreQuote, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidEmail
	}

	requests, err := u.partners.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	var partner entities.Partner
	for _, p := range requests {
		if p.Status != entities.PartnerStatusAprobada {
			continue
		}
		if partner.ID == "" || p.CreatedAt.After(partner.CreatedAt) {
			partner = p
		}
	}
	if partner.ID == "" {
		return []AllyPreQuote{}, nil
	}

	items, err := u.repo.ListByPartner(ctx, partner.Kind, partner.Name)
	if err != nil {
		return nil, err
	}
	sortPreQuotesNewestFirst(items)

	out := make([]AllyPreQuote, 0, len(items))
	for _, q := range items {
		out = append(out, AllyPreQuote{PreQuote: q, Partner: partner})
	}
	return out, nil
}

func sortPreQuotesNewestFirst(items []entities.PreQuote) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
