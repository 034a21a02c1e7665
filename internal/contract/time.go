package contract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/augmentcode/augmetrics/schema"
)

// Define the regular expression to capture "N [units] ago"
// e.g., "2 weeks ago", "3 months ago", "1 day ago".
var relativeTimeRe = regexp.MustCompile(`^(\d+)\s+(year|month|week|day)s?\s+ago$`)

// ParseRelativeTime converts strings like "2 weeks ago" into a time.Time in the past.
func ParseRelativeTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	matches := relativeTimeRe.FindStringSubmatch(s)

	if len(matches) == 0 {
		return time.Time{}, fmt.Errorf("invalid relative time format: %s", s)
	}

	// 1: Value (e.g., "2")
	// 2: Unit (e.g., "year" or "month")
	value, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch unit {
	case "year":
		return now.AddDate(-value, 0, 0), nil
	case "month":
		return now.AddDate(0, -value, 0), nil
	case "week":
		return now.AddDate(0, 0, -value*7), nil
	case "day":
		return now.AddDate(0, 0, -value), nil
	default:
		// Should be caught by the regex, but good for safety
		return time.Time{}, fmt.Errorf("unsupported time unit: %s", unit)
	}
}

// DatesBetween lists every YYYY-MM-DD day from start through end inclusive.
// Both bounds must be valid dates with start not after end.
func DatesBetween(start, end string) ([]string, error) {
	startDay, err := schema.ParseDate(start)
	if err != nil {
		return nil, err
	}
	endDay, err := schema.ParseDate(end)
	if err != nil {
		return nil, err
	}
	if endDay.Before(startDay) {
		return nil, fmt.Errorf("start date (%s) cannot be after end date (%s)", start, end)
	}

	var dates []string
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		dates = append(dates, schema.FormatDate(day))
	}
	return dates, nil
}

// ParseBackoffDuration converts strings like "500ms" or "0.5" into a
// time.Duration. It first tries Go's built-in time.ParseDuration, then falls
// back to reading the value as seconds for settings carried over from the
// RETRY_BACKOFF_SECONDS convention.
func ParseBackoffDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	// Try Go's built-in duration parsing first (e.g., "500ms", "2s")
	if duration, err := time.ParseDuration(s); err == nil {
		return duration, nil
	}

	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid backoff duration %q: expected a Go duration or seconds", s)
	}
	return time.Duration(secs * float64(time.Second)), nil
}
