package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPartnerNotFound      = errors.New("partner request not found")
	ErrInvalidPartnerID     = errors.New("invalid partner request id")
	ErrInvalidPartnerKind   = errors.New("invalid partner kind")
	ErrInvalidPartnerName   = errors.New("invalid partner name")
	ErrInvalidPartnerStatus = errors.New("invalid partner status")
)

const (
	noPreferenceSupplier = "Sin preferencia de ferretería"
	noPreferenceBank     = "Sin preferencia de banco"
)

// PartnerPatch carries the fields of a partial update; nil means unchanged.
type PartnerPatch struct {
	Kind         *entities.PartnerKind
	Name         *string
	Email        *string
	InterestRate *float64
	Status       *entities.PartnerStatus
}

// IPartnerUseCase exposes partner request ("solicitud") operations and the
// catalog the assistant offers.
type IPartnerUseCase interface {
	Create(ctx context.Context, p entities.Partner) (entities.Partner, error)
	List(ctx context.Context, status entities.PartnerStatus) ([]entities.Partner, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Partner, error)
	GetByID(ctx context.Context, id string) (entities.Partner, error)
	Update(ctx context.Context, id string, patch PartnerPatch) (entities.Partner, error)
	Delete(ctx context.Context, id string) error
	Catalog(ctx context.Context) entities.Catalog
}

type PartnerUseCase struct {
	repo     interfaces.IPartnerRepository
	fallback entities.Catalog
}

var (
	_ IPartnerUseCase           = (*PartnerUseCase)(nil)
	_ interfaces.ICatalogSource = (*PartnerUseCase)(nil)
)

// NewPartnerUseCase takes the catalog used when no partner of a kind is approved.
func NewPartnerUseCase(repo interfaces.IPartnerRepository, fallback entities.Catalog) *PartnerUseCase {
	return &PartnerUseCase{repo: repo, fallback: fallback}
}

func (u *PartnerUseCase) Create(ctx context.Context, p entities.Partner) (entities.Partner, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	if !p.Kind.Valid() {
		return entities.Partner{}, ErrInvalidPartnerKind
	}
	if p.Name == "" {
		return entities.Partner{}, ErrInvalidPartnerName
	}
	if p.Email == "" {
		return entities.Partner{}, ErrInvalidEmail
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.Status = entities.PartnerStatusPendiente
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

// List returns every partner request when status is empty.
func (u *PartnerUseCase) List(ctx context.Context, status entities.PartnerStatus) ([]entities.Partner, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidPartnerStatus
	}
	items, err := u.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	sortPartnersNewestFirst(items)
	return items, nil
}

func (u *PartnerUseCase) ListByEmail(ctx context.Context, email string) ([]entities.Partner, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidEmail
	}
	items, err := u.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	sortPartnersNewestFirst(items)
	return items, nil
}

func (u *PartnerUseCase) GetByID(ctx context.Context, id string) (entities.Partner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Partner{}, ErrInvalidPartnerID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Partner{}, err
	}
	if p.ID == "" {
		return entities.Partner{}, ErrPartnerNotFound
	}
	return p, nil
}

func (u *PartnerUseCase) Update(ctx context.Context, id string, patch PartnerPatch) (entities.Partner, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Partner{}, err
	}

	if patch.Kind != nil {
		if !patch.Kind.Valid() {
			return entities.Partner{}, ErrInvalidPartnerKind
		}
		p.Kind = *patch.Kind
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil && strings.TrimSpace(*patch.Email) != "" {
		p.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.InterestRate != nil {
		rate := *patch.InterestRate
		p.InterestRate = &rate
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return entities.Partner{}, ErrInvalidPartnerStatus
		}
		p.Status = *patch.Status
	}
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Partner{}, err
	}
	if updated.ID == "" {
		return entities.Partner{}, ErrPartnerNotFound
	}
	return updated, nil
}

func (u *PartnerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPartnerID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPartnerNotFound
	}
	return nil
}

// Catalog builds the assistant options from approved partners. Each list
// falls back to the configured catalog when no partner of that kind is
// approved, or when partners cannot be read at all.
func (u *PartnerUseCase) Catalog(ctx context.Context) entities.Catalog {
	approved, err := u.repo.List(ctx, entities.PartnerStatusAprobada)
	if err != nil {
		log.Printf("[partner][usecase] catalog fallback err=%v", err)
		return u.fallback
	}
	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].CreatedAt.Before(approved[j].CreatedAt)
	})

	var c entities.Catalog
	for _, p := range approved {
		switch p.Kind {
		case entities.PartnerKindConstructora:
			c.Builders = append(c.Builders, p.Name)
		case entities.PartnerKindFerreteria:
			c.Suppliers = append(c.Suppliers, p.Name)
		case entities.PartnerKindBanco:
			b := entities.Bank{Name: p.Name}
			if p.InterestRate != nil {
				b.Rate = *p.InterestRate
			}
			c.Banks = append(c.Banks, b)
		}
	}

	if len(c.Builders) == 0 {
		c.Builders = u.fallback.Builders
	}
	if len(c.Suppliers) == 0 {
		c.Suppliers = u.fallback.Suppliers
	} else if !hasNoPreference(c.Suppliers) {
		c.Suppliers = append(c.Suppliers, noPreferenceSupplier)
	}
	if len(c.Banks) == 0 {
		c.Banks = u.fallback.Banks
	} else if !hasNoPreference(c.BankNames()) {
		c.Banks = append(c.Banks, entities.Bank{Name: noPreferenceBank})
	}
	return c
}

func hasNoPreference(options []string) bool {
	for _, o := range options {
		if strings.Contains(strings.ToLower(o), "sin preferencia") {
			return true
		}
	}
	return false
}

func sortPartnersNewestFirst(items []entities.Partner) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
