package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseRelativeTime covers various valid and invalid cases.
// fixedNow is shared with the config tests.
func TestParseRelativeTime(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		// Valid tests: Ensure units and casing are parsed correctly relative to fixedNow
		{
			name:        "valid plural months (mixed case)",
			input:       "3 MoNtHs AgO",
			expected:    fixedNow.AddDate(0, -3, 0),
			expectError: false,
		},
		{
			name:        "valid singular week (capitalized)",
			input:       "1 Week Ago",
			expected:    fixedNow.AddDate(0, 0, -7),
			expectError: false,
		},
		{
			name:        "valid 10 days (upper case)",
			input:       "10 DAYS AGO",
			expected:    fixedNow.AddDate(0, 0, -10),
			expectError: false,
		},
		{
			name:        "valid 1 year",
			input:       "1 year ago",
			expected:    fixedNow.AddDate(-1, 0, 0),
			expectError: false,
		},
		// Invalid tests: Ensure only supported formats/units are accepted
		{
			name:        "invalid missing ago",
			input:       "2 years",
			expectError: true,
		},
		{
			name:        "invalid bad unit (decades)",
			input:       "4 decades ago",
			expectError: true,
		},
		{
			name:        "invalid non-numeric value",
			input:       "one year ago",
			expectError: true,
		},
		{
			name:        "invalid empty string",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tResult, err := ParseRelativeTime(tt.input, fixedNow)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected.Round(time.Second), tResult.Round(time.Second), "Parsed time mismatch")
			}
		})
	}
}

// TestParseBackoffDuration covers Go duration strings and the plain-seconds
// fallback used by RETRY_BACKOFF_SECONDS.
func TestParseBackoffDuration(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Duration
		expectError bool
	}{
		{
			name:     "go duration milliseconds",
			input:    "500ms",
			expected: 500 * time.Millisecond,
		},
		{
			name:     "go duration seconds",
			input:    "2s",
			expected: 2 * time.Second,
		},
		{
			name:     "fractional seconds fallback",
			input:    "0.5",
			expected: 500 * time.Millisecond,
		},
		{
			name:     "whole seconds fallback",
			input:    "3",
			expected: 3 * time.Second,
		},
		{
			name:     "surrounding whitespace",
			input:    "  1.5  ",
			expected: 1500 * time.Millisecond,
		},
		{
			name:        "not a duration at all",
			input:       "fast",
			expectError: true,
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseBackoffDuration(tt.input)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, d)
			}
		})
	}
}

func TestDatesBetween(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    []string
		wantErr bool
	}{
		{
			name:  "single day",
			start: "2026-03-15",
			end:   "2026-03-15",
			want:  []string{"2026-03-15"},
		},
		{
			name:  "three days",
			start: "2026-02-27",
			end:   "2026-03-01",
			want:  []string{"2026-02-27", "2026-02-28", "2026-03-01"},
		},
		{
			name:  "leap day",
			start: "2024-02-28",
			end:   "2024-03-01",
			want:  []string{"2024-02-28", "2024-02-29", "2024-03-01"},
		},
		{
			name:    "reversed range",
			start:   "2026-03-15",
			end:     "2026-03-14",
			wantErr: true,
		},
		{
			name:    "invalid date",
			start:   "2026-13-45",
			end:     "2026-03-15",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DatesBetween(tt.start, tt.end)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
