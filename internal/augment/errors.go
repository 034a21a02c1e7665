package augment

import "fmt"

// APIError is the catch-all classification for Analytics API failures that
// have no more specific type, such as malformed single-shot responses.
type APIError struct {
	Msg string
	Err error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *APIError) Unwrap() error { return e.Err }

// AuthenticationError indicates a 401 from the API. It is terminal and is
// never retried.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "authentication failed: check your API token"
}

// RateLimitError indicates a 429 that persisted through every retry.
type RateLimitError struct{}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded: try again later"
}

// HTTPError covers transport failures and non-2xx statuses with no more
// specific classification. StatusCode is zero when the request never
// produced a response.
type HTTPError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error { return e.Err }

// PaginationError wraps a failure while walking a paginated collection and
// carries the page number where the walk stopped. Pages are numbered
// from one.
type PaginationError struct {
	Page int
	Err  error
}

func (e *PaginationError) Error() string {
	return fmt.Sprintf("failed to fetch page %d: %v", e.Page, e.Err)
}

func (e *PaginationError) Unwrap() error { return e.Err }
