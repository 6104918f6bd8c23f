package interfaces

import (
	"context"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/intake"
)

// IIntakeSessionStore keeps live assistant sessions.
//
// Update runs fn with exclusive access to the session, so two messages for the
// same session are never processed at the same time. It reports false when the
// session is unknown or expired.
type IIntakeSessionStore interface {
	Create(ctx context.Context, s *intake.Session) error
	Update(ctx context.Context, id string, fn func(s *intake.Session) error) (bool, error)
}
