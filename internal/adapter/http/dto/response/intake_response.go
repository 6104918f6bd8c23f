package response

import "github.com/Iris-Sagastume/construct-ia/internal/domain/intake"

// SessionResponse is returned by every assistant session route.
type SessionResponse struct {
	Session  intake.Snapshot  `json:"session"`
	Messages []intake.Message `json:"messages"`
}

func FromSession(snap intake.Snapshot, messages []intake.Message) SessionResponse {
	if messages == nil {
		messages = []intake.Message{}
	}
	return SessionResponse{Session: snap, Messages: messages}
}
