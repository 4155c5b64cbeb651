package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gleemora/survivors/internal/logging"
	"github.com/gleemora/survivors/internal/survivor"
)

// DefaultEndpoint is the survivor list endpoint.
const DefaultEndpoint = "https://api.gleemora.com/api/survivor"

// Source fetches the full survivor list. Implementations should honour ctx cancellation.
type Source interface {
	Fetch(ctx context.Context) ([]survivor.Record, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context) ([]survivor.Record, error)

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context) ([]survivor.Record, error) {
	return f(ctx)
}

// HTTPSource fetches records with a single GET to URL. No query parameters or
// auth headers are sent.
type HTTPSource struct {
	// URL is the endpoint; empty means DefaultEndpoint.
	URL string

	// HTTPClient performs the request; nil means a client with Timeout.
	HTTPClient *http.Client

	// Timeout bounds the request when HTTPClient is nil. Zero means no timeout.
	Timeout time.Duration
}

// NewHTTPSource creates an HTTPSource for url with an optional timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{URL: url, Timeout: timeout}
}

// Fetch performs the GET and decodes the {data: [...]} envelope.
// Transport failures and non-200 statuses wrap ErrNetwork; undecodable or
// ill-shaped bodies wrap ErrMalformedResponse.
func (s *HTTPSource) Fetch(ctx context.Context) ([]survivor.Record, error) {
	url := s.endpoint()
	log := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %w", ErrNetwork, url, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %w", ErrNetwork, url, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("component", "loader").
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("survivor endpoint responded")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetching %s: HTTP %d", ErrNetwork, url, resp.StatusCode)
	}

	var env survivor.Envelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrMalformedResponse, url, decodeErr)
	}
	if validateErr := env.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, validateErr)
	}

	return env.Data, nil
}

func (s *HTTPSource) endpoint() string {
	if s.URL == "" {
		return DefaultEndpoint
	}
	return s.URL
}

func (s *HTTPSource) client() *http.Client {
	if s.HTTPClient != nil {
		return s.HTTPClient
	}
	return &http.Client{Timeout: s.Timeout}
}
