// Package scrape fetches enrichment signals for leads: website quality
// markers, maps review stats, and social link reachability. The scoring core
// consumes the resulting signal bundles and never touches the network itself.
package scrape

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/Kleo12345/lead-scoring-system/internal/config"
	"github.com/Kleo12345/lead-scoring-system/internal/resilience"
)

// maxBodyBytes caps how much of a page is downloaded for signal extraction.
const maxBodyBytes = 512 * 1024

// Scraper fetches pages with a browser-like User-Agent, a shared rate limit,
// and retry on transient failures.
type Scraper struct {
	client    *http.Client
	limiter   *rate.Limiter
	retry     resilience.RetryConfig
	userAgent string
}

// NewScraper creates a Scraper from the scrape configuration.
func NewScraper(cfg config.ScrapeConfig) *Scraper {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2.0
	}

	ua := cfg.UserAgent
	if ua == "" {
		ua = "Mozilla/5.0 (compatible; LeadScoreBot/1.0)"
	}

	retry := resilience.DefaultRetryConfig()
	if cfg.MaxRetries > 0 {
		retry.MaxAttempts = cfg.MaxRetries
	}

	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		retry:     retry,
		userAgent: ua,
	}
}

// page is one fetched document.
type page struct {
	statusCode int
	body       []byte
}

// fetch downloads a URL, honoring the rate limit and retrying transient
// failures. Server-side 5xx/429 responses are surfaced as transient errors.
func (s *Scraper) fetch(ctx context.Context, url string) (*page, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "scrape: rate limit wait")
	}

	return resilience.DoVal(ctx, s.retry, func(ctx context.Context) (*page, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, eris.Wrap(err, "scrape: create request")
		}
		req.Header.Set("User-Agent", s.userAgent)

		resp, err := s.client.Do(req)
		if err != nil {
			return nil, eris.Wrap(err, "scrape: fetch")
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return nil, eris.Wrap(err, "scrape: read body")
		}

		if resilience.IsTransientHTTPStatus(resp.StatusCode) {
			return nil, resilience.NewTransientError(
				eris.Errorf("scrape: status %d", resp.StatusCode), resp.StatusCode)
		}

		return &page{statusCode: resp.StatusCode, body: body}, nil
	})
}
