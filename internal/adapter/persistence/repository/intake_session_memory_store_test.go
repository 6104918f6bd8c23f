package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/intake"
)

func TestIntakeSessionMemoryStore(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	newStore := func() *IntakeSessionMemoryStore {
		s := NewIntakeSessionMemoryStore(time.Hour)
		s.now = func() time.Time { return now }
		return s
	}

	t.Run("unknown session", func(t *testing.T) {
		s := newStore()
		found, err := s.Update(context.Background(), "missing", func(*intake.Session) error { return nil })
		if found || err != nil {
			t.Fatalf("expected not found, got found=%v err=%v", found, err)
		}
	})

	t.Run("update runs with the stored session", func(t *testing.T) {
		s := newStore()
		sess := intake.NewSession("s1", entities.Catalog{}, now)
		if err := s.Create(context.Background(), sess); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		var got *intake.Session
		found, err := s.Update(context.Background(), "s1", func(x *intake.Session) error {
			got = x
			return errors.New("boom")
		})
		if !found || err == nil || err.Error() != "boom" || got != sess {
			t.Fatalf("unexpected result found=%v err=%v", found, err)
		}
	})

	t.Run("expired sessions are dropped", func(t *testing.T) {
		s := newStore()
		_ = s.Create(context.Background(), intake.NewSession("s1", entities.Catalog{}, now))
		_ = s.Create(context.Background(), intake.NewSession("s2", entities.Catalog{}, now))

		now = now.Add(30 * time.Minute)
		if found, _ := s.Update(context.Background(), "s2", func(*intake.Session) error { return nil }); !found {
			t.Fatalf("expected s2 to be alive")
		}

		now = now.Add(45 * time.Minute)
		if removed := s.Sweep(); removed != 1 {
			t.Fatalf("expected 1 removed, got %d", removed)
		}
		if s.Len() != 1 {
			t.Fatalf("expected 1 session left, got %d", s.Len())
		}

		now = now.Add(2 * time.Hour)
		if found, _ := s.Update(context.Background(), "s2", func(*intake.Session) error { return nil }); found {
			t.Fatalf("expected s2 to be expired")
		}
	})

	t.Run("updates for one session are serialized", func(t *testing.T) {
		s := NewIntakeSessionMemoryStore(time.Hour)
		_ = s.Create(context.Background(), intake.NewSession("s1", entities.Catalog{}, time.Now()))

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			active  int
			overlap bool
		)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = s.Update(context.Background(), "s1", func(*intake.Session) error {
					mu.Lock()
					active++
					if active > 1 {
						overlap = true
					}
					mu.Unlock()
					time.Sleep(time.Millisecond)
					mu.Lock()
					active--
					mu.Unlock()
					return nil
				})
			}()
		}
		wg.Wait()
		if overlap {
			t.Fatalf("expected exclusive access per session")
		}
	})
}
