// Package augment implements the HTTP client for the Augment Analytics API.
package augment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strconv"

	"github.com/augmentcode/augmetrics/internal/contract"
	"github.com/augmentcode/augmetrics/schema"
)

// Analytics API endpoint paths.
const (
	apiPrefix          = "/analytics/v0/"
	userActivityPath   = apiPrefix + string(schema.UserActivityEndpoint)
	dailyUsagePath     = apiPrefix + string(schema.DailyUsageEndpoint)
	dauCountPath       = apiPrefix + string(schema.DAUCountEndpoint)
	editorLanguagePath = apiPrefix + string(schema.EditorLanguageEndpoint)
)

// Client talks to the Augment Analytics API on behalf of one enterprise.
type Client struct {
	baseURL      string
	token        string
	enterpriseID string
	pageSize     int
	httpc        *http.Client
	retry        RetryPolicy
	log          *slog.Logger
}

var _ contract.AnalyticsClient = &Client{} // Compile-time check

// NewClient builds a Client from a validated Config.
func NewClient(cfg *contract.Config, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL:      cfg.BaseURL,
		token:        cfg.APIToken,
		enterpriseID: cfg.EnterpriseID,
		pageSize:     cfg.PageSize,
		httpc:        newHTTPClient(cfg.Timeout),
		retry: RetryPolicy{
			MaxRetries:     cfg.MaxRetries,
			InitialBackoff: cfg.RetryBackoff,
			MaxBackoff:     maxRetryDelay,
			Multiplier:     2.0,
		},
		log: log,
	}
}

// FetchUserActivity returns per-user activity records for the query window.
func (c *Client) FetchUserActivity(ctx context.Context, query contract.DateQuery) ([]schema.UserActivity, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return paginate[schema.UserActivity](ctx, c, userActivityPath, c.baseParams(query))
}

// FetchDailyUsage returns one aggregate row per day in the query window.
func (c *Client) FetchDailyUsage(ctx context.Context, query contract.DateQuery) ([]schema.DailyUsage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return paginate[schema.DailyUsage](ctx, c, dailyUsagePath, c.baseParams(query))
}

// FetchEditorLanguageActivity returns per user, editor and language rows for
// the query window.
func (c *Client) FetchEditorLanguageActivity(ctx context.Context, query contract.DateQuery) ([]schema.EditorLanguageActivity, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return paginate[schema.EditorLanguageActivity](ctx, c, editorLanguagePath, c.baseParams(query))
}

// FetchActiveUserCounts returns the distinct daily active user count for each
// day between startDate and endDate inclusive. Unlike the other collections
// this endpoint answers in a single response with no cursor.
func (c *Client) FetchActiveUserCounts(ctx context.Context, startDate, endDate string) ([]schema.ActiveUserCount, error) {
	if startDate == "" || endDate == "" {
		return nil, &contract.InvalidParameterError{Reason: "start date and end date must be specified together"}
	}
	query := contract.DateRange(startDate, endDate)
	if err := query.Validate(); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, dauCountPath, c.baseParams(query))
	if err != nil {
		if isTerminal(err) {
			return nil, err
		}
		return nil, &APIError{Msg: "failed to fetch daily active user counts", Err: err}
	}

	var payload struct {
		DailyActiveUserCounts []schema.ActiveUserCount `json:"daily_active_user_counts"`
		Metadata              map[string]any           `json:"metadata"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &APIError{Msg: "invalid daily active user count response", Err: err}
	}
	return payload.DailyActiveUserCounts, nil
}

// baseParams builds the query parameters shared by every request. The
// enterprise ID rides along on each call.
func (c *Client) baseParams(query contract.DateQuery) url.Values {
	params := url.Values{}
	params.Set("enterprise_id", c.enterpriseID)
	if query.Date != "" {
		params.Set("date", query.Date)
	}
	if query.StartDate != "" {
		params.Set("start_date", query.StartDate)
		params.Set("end_date", query.EndDate)
	}
	return params
}

// paginate walks a cursor-paginated endpoint until the API stops returning a
// next cursor, decoding every item into T in arrival order. The first request
// carries no cursor parameter.
func paginate[T any](ctx context.Context, c *Client, endpoint string, params url.Values) ([]T, error) {
	var out []T
	cursor := ""

	for page := 1; ; page++ {
		pageParams := url.Values{}
		maps.Copy(pageParams, params)
		if cursor != "" {
			pageParams.Set("cursor", cursor)
		}
		if c.pageSize > 0 {
			pageParams.Set("limit", strconv.Itoa(c.pageSize))
		}

		body, err := c.get(ctx, endpoint, pageParams)
		if err != nil {
			if isTerminal(err) {
				return nil, err
			}
			return nil, &PaginationError{Page: page, Err: err}
		}

		items, next, err := parsePage(body)
		if err != nil {
			return nil, &PaginationError{Page: page, Err: err}
		}

		for i, raw := range items {
			var item T
			if err := json.Unmarshal(raw, &item); err != nil {
				return nil, &PaginationError{Page: page, Err: fmt.Errorf("decoding item %d: %w", i, err)}
			}
			out = append(out, item)
		}

		c.log.Debug("fetched page", "endpoint", endpoint, "page", page, "items", len(items), "more", next != "")

		if next == "" {
			return out, nil
		}
		cursor = next
	}
}

// parsePage validates the pagination envelope and returns the raw items plus
// the next cursor, empty when the walk is complete. A missing data field
// means an empty page; a missing pagination field means the last page.
func parsePage(body []byte) ([]json.RawMessage, string, error) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, "", fmt.Errorf("response is not a JSON object: %w", err)
	}
	if env == nil {
		return nil, "", errors.New("response is not a JSON object")
	}

	var items []json.RawMessage
	if raw, ok := env["data"]; ok {
		if isNull(raw) {
			return nil, "", errors.New("data field is not an array")
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, "", fmt.Errorf("data field is not an array: %w", err)
		}
	}

	raw, ok := env["pagination"]
	if !ok {
		return items, "", nil
	}
	if isNull(raw) {
		return nil, "", errors.New("pagination field is not an object")
	}
	var pagination struct {
		NextCursor *string `json:"next_cursor"`
	}
	if err := json.Unmarshal(raw, &pagination); err != nil {
		return nil, "", fmt.Errorf("pagination field is not an object: %w", err)
	}
	if pagination.NextCursor == nil {
		return items, "", nil
	}
	return items, *pagination.NextCursor, nil
}

// isTerminal reports whether err already carries a final classification that
// pagination must not rewrap.
func isTerminal(err error) bool {
	var authErr *AuthenticationError
	var rateErr *RateLimitError
	return errors.As(err, &authErr) || errors.As(err, &rateErr)
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
