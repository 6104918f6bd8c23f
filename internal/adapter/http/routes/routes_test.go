package routes

import (
	"testing"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func TestRouteGroups(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")

	partner := handlers.NewPartnerHandler(nil)
	preQuote := handlers.NewPreQuoteHandler(nil)
	addPingRoutes(v1)
	addAssistantRoutes(v1, handlers.NewIntakeHandler(nil), preQuote, partner)
	addAIRoutes(v1, handlers.NewHouseDesignHandler(nil, "/v1"+PathAI+PathHouseDesign))
	addPartnerRoutes(v1, partner, preQuote)

	registered := map[string]bool{}
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}

	for _, want := range []string{
		"GET /v1/ping",
		"GET /v1/assistant/catalog",
		"POST /v1/assistant/sessions",
		"GET /v1/assistant/sessions/:session_id",
		"POST /v1/assistant/sessions/:session_id/messages",
		"POST /v1/assistant/sessions/:session_id/reset",
		"POST /v1/assistant/pre-quotes",
		"GET /v1/assistant/pre-quotes",
		"GET /v1/assistant/pre-quotes/:ticket",
		"PATCH /v1/assistant/pre-quotes/:ticket/status",
		"POST /v1/ai/house-image",
		"GET /v1/ai/house-design/:id",
		"GET /v1/ai/house-design/:id/pdf",
		"GET /v1/allies/pre-quotes",
		"POST /v1/solicitudes",
		"GET /v1/solicitudes",
		"GET /v1/solicitudes/my",
		"GET /v1/solicitudes/:id",
		"PUT /v1/solicitudes/:id",
		"DELETE /v1/solicitudes/:id",
	} {
		if !registered[want] {
			t.Fatalf("route %s not registered", want)
		}
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		t.Setenv("TICKET_MAX_ATTEMPTS", "")
		if got := envInt("TICKET_MAX_ATTEMPTS", 5); got != 5 {
			t.Fatalf("expected default 5, got %d", got)
		}
		t.Setenv("TICKET_MAX_ATTEMPTS", "8")
		if got := envInt("TICKET_MAX_ATTEMPTS", 5); got != 8 {
			t.Fatalf("expected 8, got %d", got)
		}
		t.Setenv("TICKET_MAX_ATTEMPTS", "-1")
		if got := envInt("TICKET_MAX_ATTEMPTS", 5); got != 5 {
			t.Fatalf("expected default for negative value, got %d", got)
		}
	})

	t.Run("duration", func(t *testing.T) {
		t.Setenv("INTAKE_SESSION_TTL", "30m")
		if got := envDuration("INTAKE_SESSION_TTL", time.Hour); got != 30*time.Minute {
			t.Fatalf("expected 30m, got %v", got)
		}
		t.Setenv("INTAKE_SESSION_TTL", "soon")
		if got := envDuration("INTAKE_SESSION_TTL", time.Hour); got != time.Hour {
			t.Fatalf("expected default, got %v", got)
		}
	})
}
