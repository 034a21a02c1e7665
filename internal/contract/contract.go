// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"fmt"

	"github.com/augmentcode/augmetrics/schema"
)

// AnalyticsClient defines the operations the Augment Analytics API exposes.
// This allows the orchestration logic to be tested without a live API.
type AnalyticsClient interface {
	// --- Paginated collections ---

	// FetchUserActivity returns per-user activity records for the query window.
	FetchUserActivity(ctx context.Context, query DateQuery) ([]schema.UserActivity, error)

	// FetchDailyUsage returns one aggregate row per day in the query window.
	FetchDailyUsage(ctx context.Context, query DateQuery) ([]schema.DailyUsage, error)

	// FetchEditorLanguageActivity returns per user, editor and language rows
	// for the query window.
	FetchEditorLanguageActivity(ctx context.Context, query DateQuery) ([]schema.EditorLanguageActivity, error)

	// --- Single-shot collections ---

	// FetchActiveUserCounts returns the distinct daily active user count for
	// each day between startDate and endDate inclusive.
	FetchActiveUserCounts(ctx context.Context, startDate, endDate string) ([]schema.ActiveUserCount, error)
}

// InvalidParameterError indicates a request rejected before any HTTP call
// because its query parameters are inconsistent.
type InvalidParameterError struct {
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameters: %s", e.Reason)
}

// DateQuery selects the reporting window for an Analytics API call. Set
// Date for a single day, StartDate and EndDate together for an inclusive
// range, or nothing for the API's default window.
type DateQuery struct {
	Date      string
	StartDate string
	EndDate   string
}

// SingleDay returns a query covering one day.
func SingleDay(date string) DateQuery {
	return DateQuery{Date: date}
}

// DateRange returns a query covering startDate through endDate inclusive.
func DateRange(startDate, endDate string) DateQuery {
	return DateQuery{StartDate: startDate, EndDate: endDate}
}

// Validate rejects inconsistent window combinations and malformed dates.
func (q DateQuery) Validate() error {
	if q.Date != "" && (q.StartDate != "" || q.EndDate != "") {
		return &InvalidParameterError{Reason: "cannot combine a single date with a date range"}
	}
	if (q.StartDate == "") != (q.EndDate == "") {
		return &InvalidParameterError{Reason: "start date and end date must be specified together"}
	}
	for _, d := range []string{q.Date, q.StartDate, q.EndDate} {
		if d == "" {
			continue
		}
		if err := schema.ValidateDate(d); err != nil {
			return err
		}
	}
	return nil
}

// IsZero reports whether no window is configured.
func (q DateQuery) IsZero() bool {
	return q.Date == "" && q.StartDate == "" && q.EndDate == ""
}
