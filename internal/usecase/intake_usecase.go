package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/intake"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("intake session not found")
	ErrInvalidSessionID = errors.New("invalid intake session id")
)

// IIntakeUseCase hosts the assistant conversation. Every call returns the
// session snapshot after the operation together with the assistant replies
// it produced.
type IIntakeUseCase interface {
	Start(ctx context.Context) (intake.Snapshot, []intake.Message, error)
	Send(ctx context.Context, sessionID, text string) (intake.Snapshot, []intake.Message, error)
	Reset(ctx context.Context, sessionID string) (intake.Snapshot, []intake.Message, error)
	Get(ctx context.Context, sessionID string) (intake.Snapshot, error)
}

type IntakeUseCase struct {
	machine *intake.Machine
	store   interfaces.IIntakeSessionStore
	catalog interfaces.ICatalogSource
	metrics interfaces.IMetricsRecorder
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(
	machine *intake.Machine,
	store interfaces.IIntakeSessionStore,
	catalog interfaces.ICatalogSource,
	metrics interfaces.IMetricsRecorder,
) *IntakeUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &IntakeUseCase{machine: machine, store: store, catalog: catalog, metrics: metrics}
}

func (u *IntakeUseCase) Start(ctx context.Context) (intake.Snapshot, []intake.Message, error) {
	s := intake.NewSession(uuid.NewString(), u.catalog.Catalog(ctx), time.Now().UTC())
	replies := u.machine.Open(s)
	if err := u.store.Create(ctx, s); err != nil {
		return intake.Snapshot{}, nil, err
	}
	log.Printf("[intake][usecase] session started session_id=%s builders=%d suppliers=%d banks=%d",
		s.ID, len(s.Catalog.Builders), len(s.Catalog.Suppliers), len(s.Catalog.Banks))
	return s.Snapshot(), replies, nil
}

func (u *IntakeUseCase) Send(ctx context.Context, sessionID, text string) (intake.Snapshot, []intake.Message, error) {
	var replies []intake.Message
	snap, err := u.withSession(ctx, sessionID, func(s *intake.Session) {
		before := s.Phase()
		replies = u.machine.Advance(ctx, s, text)
		after := s.Phase()
		if before != intake.PhaseTicketIssued && after == intake.PhaseTicketIssued {
			u.metrics.IncTicketIssued(s.Snapshot().QuotePersisted)
		}
	})
	if err != nil {
		return intake.Snapshot{}, nil, err
	}
	return snap, replies, nil
}

func (u *IntakeUseCase) Reset(ctx context.Context, sessionID string) (intake.Snapshot, []intake.Message, error) {
	var replies []intake.Message
	snap, err := u.withSession(ctx, sessionID, func(s *intake.Session) {
		replies = u.machine.Reset(s)
	})
	if err != nil {
		return intake.Snapshot{}, nil, err
	}
	log.Printf("[intake][usecase] session reset session_id=%s", snap.SessionID)
	return snap, replies, nil
}

func (u *IntakeUseCase) Get(ctx context.Context, sessionID string) (intake.Snapshot, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return intake.Snapshot{}, ErrInvalidSessionID
	}

	var snap intake.Snapshot
	found, err := u.store.Update(ctx, sessionID, func(s *intake.Session) error {
		snap = s.Snapshot()
		return nil
	})
	if err != nil {
		return intake.Snapshot{}, err
	}
	if !found {
		return intake.Snapshot{}, ErrSessionNotFound
	}
	return snap, nil
}

// withSession runs fn while holding the session exclusively and returns the
// snapshot taken before the lock is released.
func (u *IntakeUseCase) withSession(ctx context.Context, sessionID string, fn func(s *intake.Session)) (intake.Snapshot, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return intake.Snapshot{}, ErrInvalidSessionID
	}

	var snap intake.Snapshot
	found, err := u.store.Update(ctx, sessionID, func(s *intake.Session) error {
		fn(s)
		s.UpdatedAt = time.Now().UTC()
		snap = s.Snapshot()
		return nil
	})
	if err != nil {
		return intake.Snapshot{}, err
	}
	if !found {
		return intake.Snapshot{}, ErrSessionNotFound
	}
	return snap, nil
}
