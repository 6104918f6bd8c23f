// Package imagefetch turns stored image references into bytes.
package imagefetch

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces"
)

const (
	defaultTimeout  = 30 * time.Second
	maxImageBytes   = 20 << 20
	dataImagePrefix = "data:image"
)

var (
	ErrEmptyReference   = errors.New("empty image reference")
	ErrInvalidDataURL   = errors.New("invalid image data url")
	ErrUnsupportedRef   = errors.New("unsupported image reference")
	ErrImageTooLarge    = errors.New("image too large")
	ErrRemoteImageFetch = errors.New("remote image download failed")
)

// Fetcher resolves inline "data:image/...;base64," payloads locally and
// downloads http(s) URLs.
type Fetcher struct {
	client *http.Client
}

var _ interfaces.IImageFetcher = (*Fetcher)(nil)

func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Fetcher{client: client}
}

func (f *Fetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return nil, ErrEmptyReference
	case strings.HasPrefix(ref, dataImagePrefix):
		return decodeDataURL(ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return f.download(ctx, ref)
	}
	return nil, ErrUnsupportedRef
}

func decodeDataURL(ref string) ([]byte, error) {
	_, payload, ok := strings.Cut(ref, ",")
	if !ok || payload == "" {
		return nil, ErrInvalidDataURL
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}
	return b, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteImageFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[ai][fetch] image download failed status=%d body=%q", resp.StatusCode, snippet)
		return nil, fmt.Errorf("%w: status %d", ErrRemoteImageFetch, resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteImageFetch, err)
	}
	if len(b) > maxImageBytes {
		return nil, ErrImageTooLarge
	}
	return b, nil
}
