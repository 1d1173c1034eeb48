package dataset

import (
	"context"
	"net/http"
	"time"

	"pitchview/internal/domain"
)

const (
	defaultHTTPTimeout = 15 * time.Second
	defaultUserAgent   = "pitchview/1.0"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPConfig controls how the HTTP source reaches the dataset host.
type HTTPConfig struct {
	URL        string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
}

// HTTPSource downloads the dataset from a remote CSV URL. It issues a single
// GET per load; retries belong to the retrying wrapper.
type HTTPSource struct {
	url        string
	userAgent  string
	httpClient httpDoer
}

// NewHTTPSource constructs an HTTPSource with the provided configuration.
func NewHTTPSource(cfg HTTPConfig) *HTTPSource {
	return &HTTPSource{
		url:        cfg.URL,
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Name identifies the source in logs and metrics.
func (s *HTTPSource) Name() string { return "http" }

// Load fetches and decodes the remote dataset.
func (s *HTTPSource) Load(ctx context.Context) ([]domain.Player, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/csv")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{URL: s.url, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return ParseCSV(resp.Body)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func resolveUserAgent(ua string) string {
	if ua == "" {
		return defaultUserAgent
	}
	return ua
}
