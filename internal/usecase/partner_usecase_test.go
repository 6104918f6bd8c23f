package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	mock_interfaces "github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testFallbackCatalog = entities.Catalog{
	Builders:  []string{"Inversiones Acrópolis"},
	Suppliers: []string{"Ferretería Monterroso", "Sin preferencia de ferretería"},
	Banks:     []entities.Bank{{Name: "Banco Atlántida", Rate: 9.5}, {Name: "Sin preferencia de banco"}},
}

func newPartnerUseCase(t *testing.T) (*PartnerUseCase, *mock_interfaces.MockIPartnerRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIPartnerRepository(ctrl)
	return NewPartnerUseCase(repo, testFallbackCatalog), repo
}

func TestPartnerUseCase_Create(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		uc := NewPartnerUseCase(nil, testFallbackCatalog)
		_, err := uc.Create(context.Background(), entities.Partner{Kind: "CAFETERIA", Name: "x", Email: "x@y"})
		if !errors.Is(err, ErrInvalidPartnerKind) {
			t.Fatalf("expected ErrInvalidPartnerKind, got %v", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		uc := NewPartnerUseCase(nil, testFallbackCatalog)
		_, err := uc.Create(context.Background(), entities.Partner{Kind: entities.PartnerKindBanco, Email: "x@y"})
		if !errors.Is(err, ErrInvalidPartnerName) {
			t.Fatalf("expected ErrInvalidPartnerName, got %v", err)
		}
	})

	t.Run("starts pending", func(t *testing.T) {
		uc, repo := newPartnerUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Partner{})).DoAndReturn(
			func(_ context.Context, p entities.Partner) (entities.Partner, error) {
				if p.ID == "" || p.Status != entities.PartnerStatusPendiente || p.CreatedAt.IsZero() {
					t.Fatalf("unexpected partner: %+v", p)
				}
				return p, nil
			},
		)

		rate := 11.25
		res, err := uc.Create(context.Background(), entities.Partner{
			Kind: entities.PartnerKindBanco, Name: " Banco Ficohsa ", Email: "b@f.hn", InterestRate: &rate,
			Status: entities.PartnerStatusAprobada,
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Name != "Banco Ficohsa" || *res.InterestRate != 11.25 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestPartnerUseCase_List(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc := NewPartnerUseCase(nil, testFallbackCatalog)
		_, err := uc.List(context.Background(), "ARCHIVADA")
		if !errors.Is(err, ErrInvalidPartnerStatus) {
			t.Fatalf("expected ErrInvalidPartnerStatus, got %v", err)
		}
	})

	t.Run("all", func(t *testing.T) {
		uc, repo := newPartnerUseCase(t)
		repo.EXPECT().List(gomock.Any(), entities.PartnerStatus("")).Return([]entities.Partner{{ID: "p1"}}, nil)

		items, err := uc.List(context.Background(), "")
		if err != nil || len(items) != 1 {
			t.Fatalf("unexpected result items=%+v err=%v", items, err)
		}
	})
}

func TestPartnerUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo := newPartnerUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Partner{}, nil)

		_, err := uc.Update(context.Background(), "p1", PartnerPatch{})
		if !errors.Is(err, ErrPartnerNotFound) {
			t.Fatalf("expected ErrPartnerNotFound, got %v", err)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		uc, repo := newPartnerUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Partner{
			ID: "p1", Kind: entities.PartnerKindFerreteria, Name: "Ferretería Central", Email: "f@c.hn", Status: entities.PartnerStatusPendiente,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Partner) (entities.Partner, error) { return p, nil },
		)

		status := entities.PartnerStatusAprobada
		empty := ""
		res, err := uc.Update(context.Background(), "p1", PartnerPatch{Status: &status, Name: &empty})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Status != entities.PartnerStatusAprobada || res.Name != "Ferretería Central" || res.UpdatedAt.IsZero() {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc, repo := newPartnerUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Partner{ID: "p1"}, nil)

		status := entities.PartnerStatus("ARCHIVADA")
		_, err := uc.Update(context.Background(), "p1", PartnerPatch{Status: &status})
		if !errors.Is(err, ErrInvalidPartnerStatus) {
			t.Fatalf("expected ErrInvalidPartnerStatus, got %v", err)
		}
	})
}

func TestPartnerUseCase_Delete(t *testing.T) {
	uc, repo := newPartnerUseCase(t)
	repo.EXPECT().Delete(gomock.Any(), "p1").Return(false, nil)

	if err := uc.Delete(context.Background(), "p1"); !errors.Is(err, ErrPartnerNotFound) {
		t.Fatalf("expected ErrPartnerNotFound, got %v", err)
	}
}

func TestPartnerUseCase_Catalog(t *testing.T) {
	t.Run("fallback when nothing approved", func(t *testing.T) {
		uc, repo := newPartnerUseCase(t)
		repo.EXPECT().List(gomock.Any(), entities.PartnerStatusAprobada).Return(nil, nil)

		c := uc.Catalog(context.Background())
		if len(c.Builders) != 1 || c.Builders[0] != "Inversiones Acrópolis" {
			t.Fatalf("unexpected builders %+v", c.Builders)
		}
		if len(c.Banks) != 2 || c.Banks[0].Rate != 9.5 {
			t.Fatalf("unexpected banks %+v", c.Banks)
		}
	})

	t.Run("fallback on repo error", func(t *testing.T) {
		uc, repo := newPartnerUseCase(t)
		repo.EXPECT().List(gomock.Any(), entities.PartnerStatusAprobada).Return(nil, errors.New("db"))

		c := uc.Catalog(context.Background())
		if len(c.Suppliers) != 2 {
			t.Fatalf("unexpected suppliers %+v", c.Suppliers)
		}
	})

	t.Run("approved partners with no-preference entries", func(t *testing.T) {
		uc, repo := newPartnerUseCase(t)
		base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		rate := 12.0
		repo.EXPECT().List(gomock.Any(), entities.PartnerStatusAprobada).Return([]entities.Partner{
			{Kind: entities.PartnerKindConstructora, Name: "Constructora Valle", CreatedAt: base.Add(time.Minute)},
			{Kind: entities.PartnerKindConstructora, Name: "Constructora Norte", CreatedAt: base},
			{Kind: entities.PartnerKindFerreteria, Name: "Ferretería Central", CreatedAt: base},
			{Kind: entities.PartnerKindBanco, Name: "Banco Ficohsa", InterestRate: &rate, CreatedAt: base},
			{Kind: entities.PartnerKindBanco, Name: "Banco sin tasa", CreatedAt: base.Add(time.Minute)},
		}, nil)

		c := uc.Catalog(context.Background())
		if len(c.Builders) != 2 || c.Builders[0] != "Constructora Norte" {
			t.Fatalf("unexpected builders %+v", c.Builders)
		}
		if len(c.Suppliers) != 2 || c.Suppliers[1] != "Sin preferencia de ferretería" {
			t.Fatalf("unexpected suppliers %+v", c.Suppliers)
		}
		if len(c.Banks) != 3 || c.Banks[0].Rate != 12 || c.Banks[1].Rate != 0 || c.Banks[2].Name != "Sin preferencia de banco" {
			t.Fatalf("unexpected banks %+v", c.Banks)
		}
	})

	t.Run("existing no-preference entry is not duplicated", func(t *testing.T) {
		uc, repo := newPartnerUseCase(t)
		repo.EXPECT().List(gomock.Any(), entities.PartnerStatusAprobada).Return([]entities.Partner{
			{Kind: entities.PartnerKindFerreteria, Name: "Ferretería Central"},
			{Kind: entities.PartnerKindFerreteria, Name: "Sin preferencia"},
		}, nil)

		c := uc.Catalog(context.Background())
		if len(c.Suppliers) != 2 {
			t.Fatalf("unexpected suppliers %+v", c.Suppliers)
		}
		if len(c.Builders) != 1 || c.Builders[0] != "Inversiones Acrópolis" {
			t.Fatalf("expected fallback builders, got %+v", c.Builders)
		}
	})
}
