package schema

import (
	"fmt"
	"time"
)

// InvalidDateError indicates a date string that is not a real calendar date
// in YYYY-MM-DD form.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", e.Value)
}

// ValidateDate checks that s is a real calendar date in YYYY-MM-DD form.
// Out-of-range components such as month 13 are rejected, not normalized.
func ValidateDate(s string) error {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return &InvalidDateError{Value: s}
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD string into a UTC time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: s}
	}
	return t, nil
}

// FormatDate renders t in the YYYY-MM-DD form the Analytics API expects.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
