package repository

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/intake"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces"
)

const DefaultIntakeSessionTTL = 2 * time.Hour

type sessionEntry struct {
	mu       sync.Mutex
	session  *intake.Session
	lastSeen time.Time
}

// IntakeSessionMemoryStore keeps assistant sessions in process memory.
// Sessions idle for longer than the TTL are dropped. Each session has its own
// lock, so messages for different sessions are processed in parallel.
type IntakeSessionMemoryStore struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	ttl     time.Duration
	now     func() time.Time
}

var _ interfaces.IIntakeSessionStore = (*IntakeSessionMemoryStore)(nil)

func NewIntakeSessionMemoryStore(ttl time.Duration) *IntakeSessionMemoryStore {
	if ttl <= 0 {
		ttl = DefaultIntakeSessionTTL
	}
	return &IntakeSessionMemoryStore{
		entries: make(map[string]*sessionEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *IntakeSessionMemoryStore) Create(_ context.Context, session *intake.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[session.ID] = &sessionEntry{session: session, lastSeen: s.now()}
	return nil
}

func (s *IntakeSessionMemoryStore) Update(ctx context.Context, id string, fn func(*intake.Session) error) (bool, error) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if ok && s.now().Sub(e.lastSeen) > s.ttl {
		delete(s.entries, id)
		ok = false
	}
	if ok {
		e.lastSeen = s.now()
	}
	s.mu.Unlock()
	if !ok {
		return false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return true, err
	}
	return true, fn(e.session)
}

// Sweep drops expired sessions and returns how many were removed.
func (s *IntakeSessionMemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored sessions, expired ones included.
func (s *IntakeSessionMemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// RunJanitor sweeps expired sessions every interval until ctx is done.
func (s *IntakeSessionMemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("[intake][store] expired sessions removed=%d", n)
			}
		}
	}
}
