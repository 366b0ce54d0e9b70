package semanticscholar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the default base URL for the Semantic Scholar Graph API.
	DefaultBaseURL = "https://api.semanticscholar.org/graph/v1"

	// DefaultTimeout is the default per-attempt HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default sustained request rate per second.
	DefaultRateLimit = 10.0

	// DefaultBurstSize is the default burst size for rate limiting.
	DefaultBurstSize = 10

	// DefaultMaxRetries is the default attempt budget per call.
	DefaultMaxRetries = 5

	// DefaultRetryWait is the default fixed delay between attempts.
	DefaultRetryWait = 10 * time.Second

	// DefaultUserAgent is the User-Agent header sent with every request.
	DefaultUserAgent = "semanticscholar-go/1.0"

	// EnvAPIKey is the environment variable ConfigFromEnv reads the API key
	// from.
	EnvAPIKey = "SEMANTIC_SCHOLAR_API_KEY"
)

// Config contains configuration options for the client. The zero value is
// usable: every field has a default and the API key is optional.
// Unauthenticated calls are legal and subject to the service's anonymous
// rate limits.
type Config struct {
	// APIKey is the optional API key for authenticated requests.
	APIKey string

	// BaseURL is the base URL for the API. Defaults to DefaultBaseURL.
	BaseURL string `validate:"omitempty,url"`

	// Timeout is the per-attempt HTTP timeout. Defaults to DefaultTimeout.
	Timeout time.Duration

	// RateLimit is the maximum sustained requests per second.
	// Defaults to DefaultRateLimit.
	RateLimit float64

	// BurstSize is the maximum request burst. Defaults to DefaultBurstSize.
	BurstSize int

	// MaxRetries is the attempt budget per call: a call makes at most this
	// many attempts before failing with an ExhaustedError.
	// Defaults to DefaultMaxRetries.
	MaxRetries int `validate:"omitempty,min=1"`

	// RetryWait is the fixed delay between attempts.
	// Defaults to DefaultRetryWait.
	RetryWait time.Duration

	// UserAgent overrides the User-Agent header.
	UserAgent string

	// Logger receives retry and failure events. Disabled when unset.
	Logger zerolog.Logger

	// Registerer enables Prometheus metrics when set. No metrics are
	// collected otherwise.
	Registerer prometheus.Registerer
}

// ConfigFromEnv returns a Config carrying the API key from the
// SEMANTIC_SCHOLAR_API_KEY environment variable, if set. All other fields
// are left at their defaults; there is no other hidden environment access.
func ConfigFromEnv() Config {
	return Config{APIKey: os.Getenv(EnvAPIKey)}
}

// Client is a typed client for the Semantic Scholar Graph API. A Client is
// safe for concurrent use: calls share only the HTTP transport and rate
// limiter, both of which are goroutine-safe.
type Client struct {
	cfg       Config
	transport *transport
	log       zerolog.Logger
	metrics   *clientMetrics
}

var validate = validator.New()

// NewClient creates a client with the given configuration. Unset fields
// take their defaults; an invalid base URL or non-positive retry budget is
// rejected.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.BurstSize == 0 {
		cfg.BurstSize = DefaultBurstSize
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryWait == 0 {
		cfg.RetryWait = DefaultRetryWait
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var metrics *clientMetrics
	if cfg.Registerer != nil {
		metrics = newClientMetrics(cfg.Registerer)
	}

	return &Client{
		cfg: cfg,
		transport: newTransport(transportConfig{
			timeout:   cfg.Timeout,
			rateLimit: cfg.RateLimit,
			burstSize: cfg.BurstSize,
			userAgent: cfg.UserAgent,
			apiKey:    cfg.APIKey,
		}),
		log:     cfg.Logger,
		metrics: metrics,
	}, nil
}

// SearchPapers performs a relevance search over paper titles and abstracts.
// The query text is taken from params. An empty result set is treated as
// retryable on this endpoint: the call keeps retrying until a non-empty page
// arrives or the budget runs out, in which case the returned ExhaustedError
// wraps ErrNoResults.
func (c *Client) SearchPapers(ctx context.Context, params *QueryParams) (*PaperSearchResponse, error) {
	params = orEmpty(params)
	req := apiRequest{
		op:     endpointPaperSearch,
		input:  params.queryText(),
		url:    resolveURL(c.cfg.BaseURL, endpointPaperSearch, "", params.Build()),
		method: http.MethodGet,
	}
	return execute(ctx, c, req, func(r *PaperSearchResponse) bool { return len(r.Data) == 0 })
}

// MatchPaper performs a title match search and returns the best candidate.
// Candidates are ranked by the mean of the remote match score and the
// Levenshtein similarity between the query text and each candidate title;
// ties keep the earlier candidate in response order. Like SearchPapers, an
// empty candidate list is retryable.
func (c *Client) MatchPaper(ctx context.Context, params *QueryParams) (*Paper, error) {
	params = orEmpty(params)
	req := apiRequest{
		op:     endpointPaperSearchMatch,
		input:  params.queryText(),
		url:    resolveURL(c.cfg.BaseURL, endpointPaperSearchMatch, "", params.Build()),
		method: http.MethodGet,
	}
	resp, err := execute(ctx, c, req, func(r *PaperSearchResponse) bool { return len(r.Data) == 0 })
	if err != nil {
		return nil, err
	}
	return bestMatch(params.queryText(), resp.Data), nil
}

// GetPaper fetches details for the paper identified by params.ID. The
// paperId field is always requested in addition to any fields in params.
func (c *Client) GetPaper(ctx context.Context, params *QueryParams) (*Paper, error) {
	params = withPaperID(orEmpty(params))
	req := apiRequest{
		op:     endpointPaperDetails,
		input:  params.id,
		url:    resolveURL(c.cfg.BaseURL, endpointPaperDetails, params.id, params.Build()),
		method: http.MethodGet,
	}
	return execute[Paper](ctx, c, req, nil)
}

// GetPaperCitations lists papers citing the paper identified by params.ID,
// together with citation contexts and intents.
func (c *Client) GetPaperCitations(ctx context.Context, params *QueryParams) (*CitationsResponse, error) {
	params = withPaperID(orEmpty(params))
	req := apiRequest{
		op:     endpointPaperCitations,
		input:  params.id,
		url:    resolveURL(c.cfg.BaseURL, endpointPaperCitations, params.id, params.Build()),
		method: http.MethodGet,
	}
	return execute[CitationsResponse](ctx, c, req, nil)
}

// GetPaperReferences lists papers cited by the paper identified by
// params.ID.
func (c *Client) GetPaperReferences(ctx context.Context, params *QueryParams) (*ReferencesResponse, error) {
	params = withPaperID(orEmpty(params))
	req := apiRequest{
		op:     endpointPaperReferences,
		input:  params.id,
		url:    resolveURL(c.cfg.BaseURL, endpointPaperReferences, params.id, params.Build()),
		method: http.MethodGet,
	}
	return execute[ReferencesResponse](ctx, c, req, nil)
}

// GetPaperAuthors lists the authors of the paper identified by params.ID.
func (c *Client) GetPaperAuthors(ctx context.Context, params *QueryParams) (*PaperAuthorsResponse, error) {
	params = orEmpty(params)
	req := apiRequest{
		op:     endpointPaperAuthors,
		input:  params.id,
		url:    resolveURL(c.cfg.BaseURL, endpointPaperAuthors, params.id, params.Build()),
		method: http.MethodGet,
	}
	return execute[PaperAuthorsResponse](ctx, c, req, nil)
}

// GetAuthor fetches details for the author identified by params.ID.
func (c *Client) GetAuthor(ctx context.Context, params *QueryParams) (*Author, error) {
	params = orEmpty(params)
	req := apiRequest{
		op:     endpointAuthorDetails,
		input:  params.id,
		url:    resolveURL(c.cfg.BaseURL, endpointAuthorDetails, params.id, params.Build()),
		method: http.MethodGet,
	}
	return execute[Author](ctx, c, req, nil)
}

// SearchAuthors searches authors by name. The query text is taken from
// params. An empty result is returned as-is; only the paper title searches
// treat empty results as retryable.
func (c *Client) SearchAuthors(ctx context.Context, params *QueryParams) (*AuthorSearchResponse, error) {
	params = orEmpty(params)
	req := apiRequest{
		op:     endpointAuthorSearch,
		input:  params.queryText(),
		url:    resolveURL(c.cfg.BaseURL, endpointAuthorSearch, "", params.Build()),
		method: http.MethodGet,
	}
	return execute[AuthorSearchResponse](ctx, c, req, nil)
}

// GetAuthorPapers lists the papers of the author identified by params.ID.
func (c *Client) GetAuthorPapers(ctx context.Context, params *QueryParams) (*AuthorPapersResponse, error) {
	params = orEmpty(params)
	req := apiRequest{
		op:     endpointAuthorPapers,
		input:  params.id,
		url:    resolveURL(c.cfg.BaseURL, endpointAuthorPapers, params.id, params.Build()),
		method: http.MethodGet,
	}
	return execute[AuthorPapersResponse](ctx, c, req, nil)
}

// GetPapersBatch fetches details for up to 500 papers at once. The body
// lists the identifiers; field selection comes from params.
func (c *Client) GetPapersBatch(ctx context.Context, ids []string, params *QueryParams) ([]Paper, error) {
	params = orEmpty(params)
	body, err := json.Marshal(struct {
		IDs []string `json:"ids"`
	}{IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("encoding batch body: %w", err)
	}
	req := apiRequest{
		op:     endpointPaperBatch,
		input:  strings.Join(ids, ","),
		url:    resolveURL(c.cfg.BaseURL, endpointPaperBatch, "", params.Build()),
		method: http.MethodPost,
		body:   body,
	}
	papers, err := execute[[]Paper](ctx, c, req, nil)
	if err != nil {
		return nil, err
	}
	return *papers, nil
}

// orEmpty substitutes an empty parameter set for nil.
func orEmpty(params *QueryParams) *QueryParams {
	if params == nil {
		return NewQueryParams()
	}
	return params
}

// withPaperID returns a copy of params whose field list includes the
// paperId leaf, so detail responses always carry the identifier.
func withPaperID(params *QueryParams) *QueryParams {
	if hasPaperID(params.fields) {
		return params
	}
	cp := *params
	cp.fields = append(append([]PaperField{}, params.fields...), FieldPaperID)
	return &cp
}

// queryText returns the builder's free-text query for diagnostics.
func (p *QueryParams) queryText() string {
	if p.query == nil {
		return ""
	}
	return *p.query
}
