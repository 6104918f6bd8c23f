package imagegen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
	N       int    `json:"n"`
}

func newImagesServer(t *testing.T, status int, body string, got *recordedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/images/generations" {
			http.NotFound(w, r)
			return
		}
		if got != nil {
			_ = json.NewDecoder(r.Body).Decode(got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

type recorder struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *recorder) ObserveImageRequest(_, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}
func (r *recorder) ObserveDesignGeneration(bool, time.Duration) {}
func (r *recorder) IncTicketIssued(bool)                        {}

func TestGenerateImage_B64(t *testing.T) {
	var got recordedRequest
	srv := newImagesServer(t, http.StatusOK, `{"created":1,"data":[{"b64_json":"iVBORw0KGgo="}]}`, &got)
	rec := &recorder{}

	g := NewOpenAIImageGenerator("sk-test", srv.URL+"/v1", WithMetrics(rec))
	ref := g.GenerateImage(context.Background(), entities.ImageKindBlueprint, "Genera un PLANO")

	require.Equal(t, "data:image/png;base64,iVBORw0KGgo=", ref)
	require.Equal(t, "gpt-image-1", got.Model)
	require.Equal(t, "1024x1024", got.Size)
	require.Equal(t, "high", got.Quality)
	require.Equal(t, 1, got.N)
	require.Equal(t, "Genera un PLANO", got.Prompt)
	require.Equal(t, []string{OutcomeSuccess}, rec.outcomes)
}

func TestGenerateImage_URL(t *testing.T) {
	srv := newImagesServer(t, http.StatusOK, `{"created":1,"data":[{"url":"https://cdn.example.com/a.png"}]}`, nil)

	g := NewOpenAIImageGenerator("sk-test", srv.URL+"/v1")
	require.Equal(t, "https://cdn.example.com/a.png", g.GenerateImage(context.Background(), entities.ImageKindRender, "p"))
}

func TestGenerateImage_FallsBackToPlaceholder(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		outcome string
	}{
		{"provider error", http.StatusBadRequest, `{"error":{"message":"Billing hard limit has been reached","type":"billing_error","code":"billing_hard_limit_reached"}}`, OutcomeProviderError},
		{"server error", http.StatusInternalServerError, `{"error":{"message":"boom","type":"server_error"}}`, OutcomeProviderError},
		{"empty data", http.StatusOK, `{"created":1,"data":[]}`, OutcomeEmpty},
		{"unusable item", http.StatusOK, `{"created":1,"data":[{}]}`, OutcomeEmpty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newImagesServer(t, tc.status, tc.body, nil)
			rec := &recorder{}

			g := NewOpenAIImageGenerator("sk-test", srv.URL+"/v1", WithMetrics(rec))
			ref := g.GenerateImage(context.Background(), entities.ImageKindBlueprint, "p")

			require.Equal(t, PlaceholderImageURL, ref)
			require.Equal(t, []string{tc.outcome}, rec.outcomes)
		})
	}
}

func TestGenerateImage_NoAPIKey(t *testing.T) {
	rec := &recorder{}
	g := NewOpenAIImageGenerator("", "http://127.0.0.1:1", WithMetrics(rec))

	require.Equal(t, PlaceholderImageURL, g.GenerateImage(context.Background(), entities.ImageKindBlueprint, "p"))
	require.Equal(t, []string{OutcomeNoAPIKey}, rec.outcomes)
}

func TestGenerateImage_MockMode(t *testing.T) {
	g := NewOpenAIImageGenerator("", "", WithMockMode(true))

	ref := g.GenerateImage(context.Background(), entities.ImageKindRender, "p")
	require.True(t, strings.HasPrefix(ref, dataURLPrefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(ref, dataURLPrefix))
	require.NoError(t, err)
	require.Equal(t, "\x89PNG", string(raw[:4]))
}

func TestNewOpenAIImageGeneratorFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("IMAGE_GENERATOR_MOCK", "on")

	g := NewOpenAIImageGeneratorFromEnv(nil)
	require.True(t, g.mockMode)
	require.Nil(t, g.client)
}
