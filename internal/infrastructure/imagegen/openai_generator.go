// Package imagegen generates the design images with the OpenAI Images API.
package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces"

	"github.com/sashabaranov/go-openai"
)

const (
	PlaceholderImageURL = "https://via.placeholder.com/1024x1024.png?text=Plano+no+disponible"

	DefaultModel   = "gpt-image-1"
	DefaultSize    = openai.CreateImageSize1024x1024
	DefaultQuality = "high"

	dataURLPrefix = "data:image/png;base64,"
)

// Outcomes reported to the metrics recorder.
const (
	OutcomeSuccess       = "success"
	OutcomeNoAPIKey      = "no_api_key"
	OutcomeMock          = "mock"
	OutcomeProviderError = "provider_error"
	OutcomeEmpty         = "empty_response"
)

type imageCreator interface {
	CreateImage(ctx context.Context, request openai.ImageRequest) (openai.ImageResponse, error)
}

// OpenAIImageGenerator never returns an error: a missing API key, a provider
// failure or an unusable response all yield PlaceholderImageURL.
type OpenAIImageGenerator struct {
	client   imageCreator
	metrics  interfaces.IMetricsRecorder
	mockMode bool
	model    string
	size     string
	quality  string
}

var _ interfaces.IImageGenerator = (*OpenAIImageGenerator)(nil)

type Option func(*OpenAIImageGenerator)

func WithMetrics(m interfaces.IMetricsRecorder) Option {
	return func(g *OpenAIImageGenerator) { g.metrics = m }
}

func WithModel(model string) Option {
	return func(g *OpenAIImageGenerator) {
		if model != "" {
			g.model = model
		}
	}
}

// WithMockMode skips the provider and returns a generated solid-color PNG.
func WithMockMode(enabled bool) Option {
	return func(g *OpenAIImageGenerator) { g.mockMode = enabled }
}

// NewOpenAIImageGenerator builds a generator. An empty apiKey disables the
// provider; baseURL overrides the API endpoint (proxies, tests).
func NewOpenAIImageGenerator(apiKey, baseURL string, opts ...Option) *OpenAIImageGenerator {
	g := &OpenAIImageGenerator{
		model:   DefaultModel,
		size:    DefaultSize,
		quality: DefaultQuality,
	}
	if apiKey != "" {
		cfg := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			cfg.BaseURL = strings.TrimRight(baseURL, "/")
		}
		g.client = openai.NewClientWithConfig(cfg)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewOpenAIImageGeneratorFromEnv reads OPENAI_API_KEY, OPENAI_BASE_URL,
// OPENAI_IMAGE_MODEL and IMAGE_GENERATOR_MOCK.
func NewOpenAIImageGeneratorFromEnv(metrics interfaces.IMetricsRecorder) *OpenAIImageGenerator {
	g := NewOpenAIImageGenerator(
		os.Getenv("OPENAI_API_KEY"),
		os.Getenv("OPENAI_BASE_URL"),
		WithMetrics(metrics),
		WithModel(os.Getenv("OPENAI_IMAGE_MODEL")),
		WithMockMode(isMockEnabled()),
	)
	switch {
	case g.mockMode:
		log.Printf("[ai][gateway] image generator mock mode enabled")
	case g.client == nil:
		log.Printf("[ai][gateway] missing OPENAI_API_KEY, images will use the placeholder")
	default:
		log.Printf("[ai][gateway] OpenAI image client initialized model=%s", g.model)
	}
	return g
}

func (g *OpenAIImageGenerator) GenerateImage(ctx context.Context, kind entities.ImageKind, prompt string) string {
	started := time.Now()
	ref, outcome := g.generate(ctx, kind, prompt)
	if g.metrics != nil {
		g.metrics.ObserveImageRequest(string(kind), outcome, time.Since(started))
	}
	return ref
}

func (g *OpenAIImageGenerator) generate(ctx context.Context, kind entities.ImageKind, prompt string) (string, string) {
	if g.mockMode {
		return mockImage(kind), OutcomeMock
	}
	if g.client == nil {
		log.Printf("[ai][gateway] OPENAI_API_KEY not configured kind=%s", kind)
		return PlaceholderImageURL, OutcomeNoAPIKey
	}

	log.Printf("[ai][gateway] create image start kind=%s prompt_len=%d", kind, len(prompt))
	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Model:   g.model,
		Prompt:  prompt,
		Size:    g.size,
		Quality: g.quality,
		N:       1,
	})
	if err != nil {
		logProviderError(kind, err)
		return PlaceholderImageURL, OutcomeProviderError
	}
	if len(resp.Data) == 0 {
		log.Printf("[ai][gateway] no image data returned kind=%s", kind)
		return PlaceholderImageURL, OutcomeEmpty
	}

	img := resp.Data[0]
	switch {
	case img.B64JSON != "":
		log.Printf("[ai][gateway] create image success kind=%s format=b64", kind)
		return dataURLPrefix + img.B64JSON, OutcomeSuccess
	case img.URL != "":
		log.Printf("[ai][gateway] create image success kind=%s format=url", kind)
		return img.URL, OutcomeSuccess
	}
	log.Printf("[ai][gateway] unusable image response kind=%s", kind)
	return PlaceholderImageURL, OutcomeEmpty
}

func logProviderError(kind entities.ImageKind, err error) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		log.Printf("[ai][gateway] create image failed kind=%s status=%d code=%v type=%s message=%q",
			kind, apiErr.HTTPStatusCode, apiErr.Code, apiErr.Type, apiErr.Message)
		if apiErr.Code == "billing_hard_limit_reached" {
			log.Printf("[ai][gateway] OpenAI billing limit reached, check the account")
		}
		return
	}
	log.Printf("[ai][gateway] create image failed kind=%s err=%v", kind, err)
}

func isMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("IMAGE_GENERATOR_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

// mockImage is a small solid PNG: blue for blueprints, sand for renders.
func mockImage(kind entities.ImageKind) string {
	fill := color.RGBA{R: 0x1f, G: 0x4e, B: 0x9a, A: 0xff}
	if kind == entities.ImageKindRender {
		fill = color.RGBA{R: 0xe8, G: 0xd8, B: 0xb8, A: 0xff}
	}
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return PlaceholderImageURL
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes())
}
