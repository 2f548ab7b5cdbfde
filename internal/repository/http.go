package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultMaxBodySize = 1 << 20 // 1 MB
)

// HTTPSource downloads glossary text with a GET request.
type HTTPSource struct {
	url     string
	client  *http.Client
	maxBody int64
}

// NewHTTPSource creates an HTTPSource. Non-positive timeout or maxBody use defaults.
func NewHTTPSource(url string, timeout time.Duration, maxBody int64) *HTTPSource {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	if maxBody <= 0 {
		maxBody = defaultMaxBodySize
	}

	return &HTTPSource{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		maxBody: maxBody,
	}
}

func (s *HTTPSource) Name() string {
	return s.url
}

// Fetch downloads the glossary. Transport errors, non-200 responses and
// bodies larger than the configured limit are reported as
// *entities.SourceUnavailableError.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", entities.NewSourceUnavailableError(s.url, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "text/plain, */*;q=0.8")
	req.Header.Set("User-Agent", "glossary-quiz")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", entities.NewSourceUnavailableError(s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", entities.NewSourceUnavailableError(s.url, fmt.Errorf("unexpected status: %s", resp.Status))
	}

	if resp.ContentLength > s.maxBody {
		return "", entities.NewSourceUnavailableError(s.url,
			fmt.Errorf("content length %d exceeds limit of %d bytes", resp.ContentLength, s.maxBody))
	}

	// Read one extra byte to tell "exactly at the limit" from "truncated".
	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody+1))
	if err != nil {
		return "", entities.NewSourceUnavailableError(s.url, fmt.Errorf("read body: %w", err))
	}
	if int64(len(body)) > s.maxBody {
		return "", entities.NewSourceUnavailableError(s.url,
			fmt.Errorf("body exceeds limit of %d bytes", s.maxBody))
	}

	return string(body), nil
}
