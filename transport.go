package semanticscholar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// apiKeyHeader is the header name for the Semantic Scholar API key.
const apiKeyHeader = "x-api-key"

// RateLimiter wraps a token bucket limiter for pacing requests to the API.
// It is safe for concurrent use.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter allowing ratePerSecond sustained
// requests with the given burst size.
func NewRateLimiter(ratePerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst)}
}

// Wait blocks until a request is allowed or the context is canceled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Allow reports whether a request may proceed without waiting, consuming a
// token if so.
func (r *RateLimiter) Allow() bool { return r.limiter.Allow() }

// SetRate updates the sustained rate while preserving the burst size.
func (r *RateLimiter) SetRate(ratePerSecond float64) {
	r.limiter.SetLimit(rate.Limit(ratePerSecond))
}

// transportConfig configures the HTTP transport.
type transportConfig struct {
	timeout   time.Duration
	rateLimit float64
	burstSize int
	userAgent string
	apiKey    string
}

// transport issues single HTTP attempts: it paces requests through the rate
// limiter and attaches the standard headers. Retrying is the executor's job,
// so one call to do is exactly one request on the wire.
type transport struct {
	client  *http.Client
	limiter *RateLimiter
	cfg     transportConfig
}

func newTransport(cfg transportConfig) *transport {
	return &transport{
		client:  &http.Client{Timeout: cfg.timeout},
		limiter: NewRateLimiter(cfg.rateLimit, cfg.burstSize),
		cfg:     cfg,
	}
}

// do executes one request attempt. The API key header is attached only when
// a key is configured; unauthenticated requests are legal and subject to the
// service's anonymous rate limits.
func (t *transport) do(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	req.Header.Set("User-Agent", t.cfg.userAgent)
	if t.cfg.apiKey != "" {
		req.Header.Set(apiKeyHeader, t.cfg.apiKey)
	}

	return t.client.Do(req)
}
