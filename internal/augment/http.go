package augment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"time"
)

// maxRetryDelay caps exponential backoff growth across attempts.
const maxRetryDelay = 30 * time.Second

// maxErrorBody bounds how much of a failed response lands in error messages.
const maxErrorBody = 512

// RetryPolicy controls backoff for retryable HTTP failures.
type RetryPolicy struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
}

// Backoff returns the delay before retrying, for attempts numbered from zero.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	delay := time.Duration(float64(p.InitialBackoff) * math.Pow(p.Multiplier, float64(attempt)))
	if p.MaxBackoff > 0 && delay > p.MaxBackoff {
		return p.MaxBackoff
	}
	return delay
}

// retryableStatus lists the statuses worth retrying on an idempotent GET.
var retryableStatus = map[int]struct{}{
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

// newHTTPClient builds the tuned http.Client shared by all requests.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// get performs one authenticated GET against the API, retrying 429 and 5xx
// responses with exponential backoff until the retry budget runs out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	target := c.baseURL + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, fmt.Errorf("building request for %s: %w", endpoint, err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		c.log.Debug("analytics request", "endpoint", endpoint, "attempt", attempt+1)

		resp, err := c.httpc.Do(req)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				return nil, &HTTPError{Err: fmt.Errorf("request timed out after %s", c.httpc.Timeout)}
			}
			return nil, &HTTPError{Err: err}
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusUnauthorized {
			return nil, &AuthenticationError{}
		}

		if _, retryable := retryableStatus[resp.StatusCode]; retryable {
			if attempt < c.retry.MaxRetries {
				delay := c.retry.Backoff(attempt)
				c.log.Debug("retrying request", "endpoint", endpoint, "status", resp.StatusCode, "delay", delay)
				select {
				case <-ctx.Done():
					return nil, &HTTPError{Err: ctx.Err()}
				case <-time.After(delay):
				}
				continue
			}
			if resp.StatusCode == http.StatusTooManyRequests {
				return nil, &RateLimitError{}
			}
			return nil, &HTTPError{StatusCode: resp.StatusCode, Body: truncateBody(body)}
		}

		if resp.StatusCode >= 400 {
			return nil, &HTTPError{StatusCode: resp.StatusCode, Body: truncateBody(body)}
		}

		if readErr != nil {
			return nil, &HTTPError{Err: fmt.Errorf("reading response body: %w", readErr)}
		}
		return body, nil
	}
}

func truncateBody(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
