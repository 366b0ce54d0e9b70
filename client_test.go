package semanticscholar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a client against srv with a short retry wait so the
// retry tests finish quickly.
func newTestClient(t *testing.T, srv *httptest.Server, cfg Config) *Client {
	t.Helper()
	cfg.BaseURL = srv.URL
	cfg.RetryWait = time.Millisecond
	cfg.Logger = zerolog.Nop()
	client, err := NewClient(cfg)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		client, err := NewClient(Config{})
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.cfg.BaseURL)
		assert.Equal(t, DefaultMaxRetries, client.cfg.MaxRetries)
		assert.Equal(t, DefaultRetryWait, client.cfg.RetryWait)
		assert.Equal(t, DefaultUserAgent, client.cfg.UserAgent)
	})

	t.Run("trims trailing slash from base URL", func(t *testing.T) {
		client, err := NewClient(Config{BaseURL: "https://example.org/graph/v1/"})
		require.NoError(t, err)
		assert.Equal(t, "https://example.org/graph/v1", client.cfg.BaseURL)
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		_, err := NewClient(Config{BaseURL: "not a url"})
		assert.Error(t, err)
	})

	t.Run("rejects negative retry budget", func(t *testing.T) {
		_, err := NewClient(Config{MaxRetries: -1})
		assert.Error(t, err)
	})
}

func TestSearchPapers(t *testing.T) {
	t.Run("decodes results and sends standard headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/paper/search", r.URL.Path)
			assert.Equal(t, "query=deep%20learning&limit=2", r.URL.RawQuery)
			assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
			assert.Empty(t, r.Header.Get("x-api-key"))
			w.Write([]byte(`{"total": 2, "offset": 0, "data": [{"paperId": "a"}, {"paperId": "b"}]}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{})
		resp, err := client.SearchPapers(context.Background(), NewQueryParams().Query("deep learning").Limit(2))
		require.NoError(t, err)
		assert.Equal(t, 2, *resp.Total)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "a", *resp.Data[0].PaperID)
	})

	t.Run("sends api key when configured", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "secret", r.Header.Get("x-api-key"))
			w.Write([]byte(`{"data": [{"paperId": "a"}]}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{APIKey: "secret"})
		_, err := client.SearchPapers(context.Background(), NewQueryParams().Query("x"))
		require.NoError(t, err)
	})

	t.Run("retries server errors within the budget", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) <= 2 {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error": "temporarily unavailable"}`))
				return
			}
			w.Write([]byte(`{"data": [{"paperId": "a"}]}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{MaxRetries: 5})
		resp, err := client.SearchPapers(context.Background(), NewQueryParams().Query("x"))
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("budget of one means exactly one attempt", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{MaxRetries: 1})
		_, err := client.SearchPapers(context.Background(), NewQueryParams().Query("quantum"))

		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
		assert.True(t, errors.Is(err, ErrExhausted))

		var exhausted *ExhaustedError
		require.True(t, errors.As(err, &exhausted))
		assert.Equal(t, "paper.search", exhausted.Op)
		assert.Equal(t, "quantum", exhausted.Input)
		assert.Equal(t, 1, exhausted.Attempts)
		assert.Contains(t, err.Error(), `"quantum"`)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	})

	t.Run("empty result is retried and reported as no results", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Write([]byte(`{"total": 0, "data": []}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{MaxRetries: 3})
		_, err := client.SearchPapers(context.Background(), NewQueryParams().Query("nonexistent"))

		require.Error(t, err)
		assert.Equal(t, int32(3), calls.Load())
		assert.True(t, errors.Is(err, ErrExhausted))
		assert.True(t, errors.Is(err, ErrNoResults))
	})

	t.Run("malformed body is retried as a parse error", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.Write([]byte(`{"data": [`))
				return
			}
			w.Write([]byte(`{"data": [{"paperId": "a"}]}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{MaxRetries: 2})
		resp, err := client.SearchPapers(context.Background(), NewQueryParams().Query("x"))
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("context cancellation interrupts the retry wait", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		cfg := Config{BaseURL: srv.URL, MaxRetries: 5, RetryWait: time.Minute, Logger: zerolog.Nop()}
		client, err := NewClient(cfg)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err = client.SearchPapers(ctx, NewQueryParams().Query("x"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}

func TestMatchPaper(t *testing.T) {
	t.Run("re-ranks candidates by score and title similarity", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/paper/search/match", r.URL.Path)
			w.Write([]byte(`{"data": [
				{"paperId": "far", "title": "A Completely Different Subject", "matchScore": 0.4},
				{"paperId": "near", "title": "Attention Is All You Need", "matchScore": 0.4}
			]}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{})
		paper, err := client.MatchPaper(context.Background(), NewQueryParams().Query("attention is all you need"))
		require.NoError(t, err)
		assert.Equal(t, "near", *paper.PaperID)
	})

	t.Run("ties keep response order", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": [
				{"paperId": "first", "title": "Same Title", "matchScore": 1.0},
				{"paperId": "second", "title": "Same Title", "matchScore": 1.0}
			]}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{})
		paper, err := client.MatchPaper(context.Background(), NewQueryParams().Query("Same Title"))
		require.NoError(t, err)
		assert.Equal(t, "first", *paper.PaperID)
	})

	t.Run("empty candidate list exhausts the budget", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Write([]byte(`{"data": []}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{MaxRetries: 2})
		_, err := client.MatchPaper(context.Background(), NewQueryParams().Query("x"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoResults))
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestGetPaper(t *testing.T) {
	t.Run("embeds the identifier in the path and always requests paperId", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/paper/abc123", r.URL.Path)
			assert.Equal(t, "fields=title,year,paperId", r.URL.RawQuery)
			w.Write([]byte(`{"paperId": "abc123", "title": "T", "year": 2020}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{})
		params := NewQueryParams().ID("abc123").Fields(FieldTitle, FieldYear)
		paper, err := client.GetPaper(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, "abc123", *paper.PaperID)
		assert.Equal(t, 2020, *paper.Year)

		// The caller's params are not mutated by the paperId supplement.
		assert.Equal(t, "?fields=title,year", params.Build())
	})

	t.Run("does not duplicate an explicit paperId field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "fields=paperId,title", r.URL.RawQuery)
			w.Write([]byte(`{"paperId": "abc123"}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{})
		_, err := client.GetPaper(context.Background(), NewQueryParams().ID("abc123").Fields(FieldPaperID, FieldTitle))
		require.NoError(t, err)
	})

	t.Run("not found surfaces as an api error after exhaustion", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "Paper with id xyz not found"}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{MaxRetries: 2})
		_, err := client.GetPaper(context.Background(), NewQueryParams().ID("xyz"))

		require.Error(t, err)
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Paper with id xyz not found", apiErr.Message)
	})
}

func TestGetPaperCitationsAndReferences(t *testing.T) {
	t.Run("citations", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/paper/abc/citations", r.URL.Path)
			w.Write([]byte(`{"offset": 0, "data": [{"isInfluential": true, "citingPaper": {"paperId": "c1"}}]}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{})
		resp, err := client.GetPaperCitations(context.Background(), NewQueryParams().ID("abc"))
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "c1", *resp.Data[0].CitingPaper.PaperID)
	})

	t.Run("references", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/paper/abc/references", r.URL.Path)
			w.Write([]byte(`{"offset": 0, "data": [{"citedPaper": {"paperId": "r1"}}]}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{})
		resp, err := client.GetPaperReferences(context.Background(), NewQueryParams().ID("abc"))
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "r1", *resp.Data[0].CitedPaper.PaperID)
	})

	t.Run("paper authors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/paper/abc/authors", r.URL.Path)
			assert.Equal(t, "fields=name,hIndex", r.URL.RawQuery)
			w.Write([]byte(`{"offset": 0, "data": [{"authorId": "1", "name": "A"}]}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{})
		params := NewQueryParams().ID("abc").AuthorFields(AuthorFieldName, AuthorFieldHIndex)
		resp, err := client.GetPaperAuthors(context.Background(), params)
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "A", *resp.Data[0].Name)
	})
}

func TestAuthorEndpoints(t *testing.T) {
	t.Run("get author", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/author/1741101", r.URL.Path)
			w.Write([]byte(`{"authorId": "1741101", "name": "Oren Etzioni"}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{})
		author, err := client.GetAuthor(context.Background(), NewQueryParams().ID("1741101"))
		require.NoError(t, err)
		assert.Equal(t, "Oren Etzioni", *author.Name)
	})

	t.Run("author search does not retry empty results", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			assert.Equal(t, "/author/search", r.URL.Path)
			w.Write([]byte(`{"total": 0, "offset": 0, "data": []}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{MaxRetries: 5})
		resp, err := client.SearchAuthors(context.Background(), NewQueryParams().Query("nobody"))
		require.NoError(t, err)
		assert.Empty(t, resp.Data)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("author papers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/author/1741101/papers", r.URL.Path)
			w.Write([]byte(`{"offset": 0, "data": [{"paperId": "p1"}]}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{})
		resp, err := client.GetAuthorPapers(context.Background(), NewQueryParams().ID("1741101"))
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "p1", *resp.Data[0].PaperID)
	})
}

func TestGetPapersBatch(t *testing.T) {
	t.Run("posts identifiers in the body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/paper/batch", r.URL.Path)
			assert.Equal(t, "fields=title", r.URL.RawQuery)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body struct {
				IDs []string `json:"ids"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, []string{"id1", "DOI:10.1093/x", "ARXIV:2106.15928"}, body.IDs)

			w.Write([]byte(`[{"paperId": "id1", "title": "One"}, {"paperId": "id2", "title": "Two"}]`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{})
		papers, err := client.GetPapersBatch(context.Background(),
			[]string{"id1", "DOI:10.1093/x", "ARXIV:2106.15928"},
			NewQueryParams().Fields(FieldTitle))
		require.NoError(t, err)
		require.Len(t, papers, 2)
		assert.Equal(t, "Two", *papers[1].Title)
	})

	t.Run("retries rate-limit rejections", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(`[{"paperId": "id1"}]`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{MaxRetries: 3})
		papers, err := client.GetPapersBatch(context.Background(), []string{"id1"}, nil)
		require.NoError(t, err)
		require.Len(t, papers, 1)
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestClientMetrics(t *testing.T) {
	t.Run("counts attempts and retries when a registerer is set", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"data": [{"paperId": "a"}]}`))
		}))
		defer srv.Close()

		reg := prometheus.NewRegistry()
		client := newTestClient(t, srv, Config{MaxRetries: 3, Registerer: reg})
		_, err := client.SearchPapers(context.Background(), NewQueryParams().Query("x"))
		require.NoError(t, err)

		families, err := reg.Gather()
		require.NoError(t, err)

		names := make(map[string]bool, len(families))
		for _, mf := range families {
			names[mf.GetName()] = true
		}
		assert.True(t, names["semanticscholar_requests_total"])
		assert.True(t, names["semanticscholar_retries_total"])
		assert.True(t, names["semanticscholar_request_duration_seconds"])
	})

	t.Run("nil metrics are a no-op", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": [{"paperId": "a"}]}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv, Config{})
		_, err := client.SearchPapers(context.Background(), NewQueryParams().Query("x"))
		require.NoError(t, err)
	})
}

func TestRateLimiter(t *testing.T) {
	t.Run("allows bursts up to the configured size", func(t *testing.T) {
		rl := NewRateLimiter(1, 2)
		assert.True(t, rl.Allow())
		assert.True(t, rl.Allow())
		assert.False(t, rl.Allow())
	})

	t.Run("wait respects context cancellation", func(t *testing.T) {
		rl := NewRateLimiter(0.001, 1)
		require.NoError(t, rl.Wait(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.Error(t, rl.Wait(ctx))
	})
}

func TestBestMatch(t *testing.T) {
	title := func(s string) *string { return &s }
	score := func(f float64) *float64 { return &f }

	t.Run("nil for no candidates", func(t *testing.T) {
		assert.Nil(t, bestMatch("anything", nil))
	})

	t.Run("missing score and title count as zero", func(t *testing.T) {
		got := bestMatch("exact title", []Paper{
			{PaperID: title("bare")},
			{PaperID: title("scored"), Title: title("exact title"), MatchScore: score(0.9)},
		})
		assert.Equal(t, "scored", *got.PaperID)
	})

	t.Run("similarity breaks ties between equal remote scores", func(t *testing.T) {
		got := bestMatch("graph neural networks", []Paper{
			{PaperID: title("off"), Title: title("Convolutional Networks on Images"), MatchScore: score(0.5)},
			{PaperID: title("on"), Title: title("Graph Neural Networks"), MatchScore: score(0.5)},
		})
		assert.Equal(t, "on", *got.PaperID)
	})
}
