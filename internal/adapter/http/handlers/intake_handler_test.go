package handlers

import (
	"net/http"
	"testing"

	"github.com/Iris-Sagastume/construct-ia/internal/adapter/http/handlers/mocks"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/intake"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newIntakeRouter(uc usecase.IIntakeUseCase) *gin.Engine {
	h := NewIntakeHandler(uc)
	r := gin.New()
	r.POST("/v1/assistant/sessions", h.StartSession)
	r.GET("/v1/assistant/sessions/:session_id", h.GetSession)
	r.POST("/v1/assistant/sessions/:session_id/messages", h.SendMessage)
	r.POST("/v1/assistant/sessions/:session_id/reset", h.ResetSession)
	return r
}

func TestIntakeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		uc.EXPECT().Start(gomock.Any()).Return(
			intake.Snapshot{SessionID: "s-1", Phase: intake.PhaseSelectBuilder},
			[]intake.Message{{Role: "assistant", Content: "Bienvenido"}},
			nil,
		)

		w := perform(newIntakeRouter(uc), http.MethodPost, "/v1/assistant/sessions", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Session  intake.Snapshot  `json:"session"`
			Messages []intake.Message `json:"messages"`
		}
		decodeBody(t, w, &body)
		if body.Session.SessionID != "s-1" || len(body.Messages) != 1 {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("send forwards text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		uc.EXPECT().Send(gomock.Any(), "s-1", "Inversiones Acrópolis").Return(
			intake.Snapshot{SessionID: "s-1", Phase: intake.PhaseCollectHouseAttributes}, nil, nil,
		)

		w := perform(newIntakeRouter(uc), http.MethodPost, "/v1/assistant/sessions/s-1/messages", `{"text":"Inversiones Acrópolis"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("send invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIIntakeUseCase(ctrl)

		w := perform(newIntakeRouter(uc), http.MethodPost, "/v1/assistant/sessions/s-1/messages", "{")
		expectErrorCode(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any(), "gone").Return(intake.Snapshot{}, usecase.ErrSessionNotFound)

		w := perform(newIntakeRouter(uc), http.MethodGet, "/v1/assistant/sessions/gone", "")
		expectErrorCode(t, w, http.StatusNotFound, "SESSION_NOT_FOUND")
	})

	t.Run("reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		uc.EXPECT().Reset(gomock.Any(), "s-1").Return(
			intake.Snapshot{SessionID: "s-1", Phase: intake.PhaseSelectBuilder},
			[]intake.Message{{Role: "assistant", Content: "De acuerdo"}},
			nil,
		)

		w := perform(newIntakeRouter(uc), http.MethodPost, "/v1/assistant/sessions/s-1/reset", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
