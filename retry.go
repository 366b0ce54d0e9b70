package semanticscholar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodyBytes bounds response bodies to prevent resource exhaustion.
const maxBodyBytes = 10 << 20

// Attempt outcome labels, also used as the metrics outcome dimension.
const (
	outcomeSuccess   = "success"
	outcomeTransport = "transport_error"
	outcomeAPI       = "api_error"
	outcomeParse     = "parse_error"
	outcomeEmpty     = "empty"
)

// apiRequest describes one logical API call to be executed under the retry
// policy. Input carries the query text or identifier being resolved, for
// diagnostics only.
type apiRequest struct {
	op     endpoint
	input  string
	url    string
	method string
	body   []byte
}

// execute runs req under the client's retry policy and decodes the response
// body into T. Transport errors, non-2xx statuses, and decode errors are all
// retryable; each failed attempt consumes one unit of the budget and is
// followed by the fixed wait. retryEmpty, when non-nil, additionally
// classifies a decoded value as an empty result to retry; only the
// title-search endpoints opt into it.
//
// Once the budget is consumed, execute fails permanently with an
// *ExhaustedError wrapping the last cause. Context cancellation is terminal
// immediately, including mid-wait.
func execute[T any](ctx context.Context, c *Client, req apiRequest, retryEmpty func(*T) bool) (*T, error) {
	op := req.op.name()
	budget := c.cfg.MaxRetries

	var last error
	for attempt := 1; attempt <= budget; attempt++ {
		start := time.Now()
		out, outcome, err := attemptOnce[T](ctx, c, req)
		if err == nil && retryEmpty != nil && retryEmpty(out) {
			outcome = outcomeEmpty
			err = fmt.Errorf("%w for %q", ErrNoResults, req.input)
		}
		c.metrics.observeAttempt(op, outcome, time.Since(start))

		if err == nil {
			return out, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		last = err

		if attempt < budget {
			c.log.Warn().
				Str("operation", op).
				Str("input", req.input).
				Int("attempt", attempt).
				Int("remaining", budget-attempt).
				Err(err).
				Msg("attempt failed, waiting before retry")
			c.metrics.observeRetry(op)
			if werr := waitRetry(ctx, c.cfg.RetryWait); werr != nil {
				return nil, werr
			}
		}
	}

	return nil, &ExhaustedError{Op: op, Input: req.input, Attempts: budget, Err: last}
}

// attemptOnce performs exactly one request on the wire and classifies the
// result.
func attemptOnce[T any](ctx context.Context, c *Client, req apiRequest) (*T, string, error) {
	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, req.url, body)
	if err != nil {
		return nil, outcomeTransport, fmt.Errorf("creating request: %w", err)
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.transport.do(httpReq)
	if err != nil {
		return nil, outcomeTransport, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, outcomeTransport, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, outcomeAPI, newAPIError(resp.StatusCode, raw)
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, outcomeParse, fmt.Errorf("decoding response: %w", err)
	}
	return &out, outcomeSuccess, nil
}

// newAPIError extracts the API's error envelope when the body carries one.
func newAPIError(status int, body []byte) *APIError {
	var envelope apiErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return &APIError{StatusCode: status, Message: envelope.Error}
		}
		if envelope.Message != "" {
			return &APIError{StatusCode: status, Message: envelope.Message}
		}
	}
	return &APIError{StatusCode: status, Message: string(body)}
}

// waitRetry blocks for the fixed inter-attempt delay, respecting context
// cancellation.
func waitRetry(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
