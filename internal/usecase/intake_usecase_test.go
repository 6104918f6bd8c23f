package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/intake"
	mock_interfaces "github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type stubDesigns struct{}

func (stubDesigns) GenerateDesign(context.Context, entities.HouseAttributes) (entities.HouseDesign, error) {
	return entities.HouseDesign{ID: "hd-1", EstimatedCost: 900_000, BlueprintRef: "bp", RenderRef: "rd"}, nil
}

type stubQuotes struct{ err error }

func (s stubQuotes) CreatePreQuote(_ context.Context, q entities.PreQuote) (entities.PreQuote, error) {
	return q, s.err
}

type intakeMocks struct {
	store   *mock_interfaces.MockIIntakeSessionStore
	catalog *mock_interfaces.MockICatalogSource
	metrics *mock_interfaces.MockIMetricsRecorder
}

// newIntakeUseCase wires a store mock that keeps the last created session.
func newIntakeUseCase(t *testing.T, quotes stubQuotes) (*IntakeUseCase, intakeMocks) {
	ctrl := gomock.NewController(t)
	m := intakeMocks{
		store:   mock_interfaces.NewMockIIntakeSessionStore(ctrl),
		catalog: mock_interfaces.NewMockICatalogSource(ctrl),
		metrics: mock_interfaces.NewMockIMetricsRecorder(ctrl),
	}

	var held *intake.Session
	m.store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *intake.Session) error {
			held = s
			return nil
		},
	).AnyTimes()
	m.store.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, fn func(*intake.Session) error) (bool, error) {
			if held == nil || held.ID != id {
				return false, nil
			}
			return true, fn(held)
		},
	).AnyTimes()
	m.catalog.EXPECT().Catalog(gomock.Any()).Return(testFallbackCatalog).AnyTimes()

	machine := intake.NewMachine(stubDesigns{}, quotes)
	return NewIntakeUseCase(machine, m.store, m.catalog, m.metrics), m
}

var fullConversation = []string{
	"1",
	"moderna", "200", "3", "2", "Cortés", "San Pedro Sula", "Jardines del Valle", "no", "no",
	"sí", "1", "1",
	"ana@example.com", "+504 9999-9999", "virtual", "1",
}

func TestIntakeUseCase_Start(t *testing.T) {
	uc, _ := newIntakeUseCase(t, stubQuotes{})

	snap, replies, err := uc.Start(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if snap.SessionID == "" || snap.Phase != intake.PhaseSelectBuilder {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if len(replies) != 3 {
		t.Fatalf("expected 3 opening messages, got %d", len(replies))
	}
	if len(snap.QuickReplies) != 1 || snap.QuickReplies[0].Value != "Inversiones Acrópolis" {
		t.Fatalf("unexpected quick replies: %+v", snap.QuickReplies)
	}
}

func TestIntakeUseCase_SendToTicket(t *testing.T) {
	uc, m := newIntakeUseCase(t, stubQuotes{})
	m.metrics.EXPECT().IncTicketIssued(true).Times(1)

	snap, _, err := uc.Start(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var last []intake.Message
	for _, in := range fullConversation {
		snap, last, err = uc.Send(context.Background(), snap.SessionID, in)
		if err != nil {
			t.Fatalf("send %q: %v", in, err)
		}
	}

	if snap.Phase != intake.PhaseTicketIssued || !snap.QuotePersisted || snap.Ticket == "" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if !snap.PdfAvailable || snap.DesignID != "hd-1" {
		t.Fatalf("expected design on snapshot: %+v", snap)
	}
	if len(last) != 4 {
		t.Fatalf("expected 4 summary messages, got %d", len(last))
	}

	// Terminal phase: further input does not issue another ticket.
	snap2, replies, err := uc.Send(context.Background(), snap.SessionID, "hola")
	if err != nil || snap2.Ticket != snap.Ticket || len(replies) != 1 {
		t.Fatalf("unexpected terminal behavior snap=%+v replies=%+v err=%v", snap2, replies, err)
	}
}

func TestIntakeUseCase_PersistenceFailureCounted(t *testing.T) {
	uc, m := newIntakeUseCase(t, stubQuotes{err: errors.New("dynamodb unavailable")})
	m.metrics.EXPECT().IncTicketIssued(false).Times(1)

	snap, _, _ := uc.Start(context.Background())
	var err error
	for _, in := range fullConversation {
		snap, _, err = uc.Send(context.Background(), snap.SessionID, in)
		if err != nil {
			t.Fatalf("send %q: %v", in, err)
		}
	}
	if snap.Phase != intake.PhaseTicketIssued || snap.QuotePersisted {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestIntakeUseCase_Reset(t *testing.T) {
	uc, _ := newIntakeUseCase(t, stubQuotes{})
	snap, _, _ := uc.Start(context.Background())

	if _, _, err := uc.Send(context.Background(), snap.SessionID, "1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	snap, replies, err := uc.Reset(context.Background(), snap.SessionID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if snap.Phase != intake.PhaseSelectBuilder || len(replies) != 4 {
		t.Fatalf("unexpected reset result snap=%+v replies=%d", snap, len(replies))
	}
}

func TestIntakeUseCase_UnknownSession(t *testing.T) {
	uc, _ := newIntakeUseCase(t, stubQuotes{})

	if _, _, err := uc.Send(context.Background(), "missing", "1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := uc.Get(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, _, err := uc.Reset(context.Background(), " "); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
}

func TestIntakeUseCase_BlankInputIgnored(t *testing.T) {
	uc, _ := newIntakeUseCase(t, stubQuotes{})
	snap, _, _ := uc.Start(context.Background())

	after, replies, err := uc.Send(context.Background(), snap.SessionID, "   ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(replies) != 0 || after.Phase != intake.PhaseSelectBuilder {
		t.Fatalf("expected no-op, got phase=%s replies=%d", after.Phase, len(replies))
	}
}
