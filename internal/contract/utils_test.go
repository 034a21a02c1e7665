package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	assert.Equal(t, EngagedValue, GetPlainLabel(true))
	assert.Equal(t, InactiveValue, GetPlainLabel(false))
}

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name    string
		engaged bool
		label   string
	}{
		{"engaged", true, EngagedValue},
		{"inactive", false, InactiveValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorLabel(tt.engaged)
			// Should contain the plain label
			assert.Contains(t, result, tt.label)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("creates file for non-empty path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.json")
		file, err := SelectOutputFile(path)
		require.NoError(t, err)
		defer file.Close()

		assert.NotEqual(t, os.Stdout, file)
		_, err = os.Stat(path)
		assert.NoError(t, err, "file should exist on disk")
	})

	t.Run("error for unwritable path", func(t *testing.T) {
		_, err := SelectOutputFile("/nonexistent/directory/report.json")
		assert.Error(t, err)
	})
}

func TestTruncateIdentity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{
			name:     "short identity unchanged",
			input:    "alice@example.com",
			maxWidth: 30,
			expected: "alice@example.com",
		},
		{
			name:     "long identity truncated with suffix",
			input:    "a.very.long.address@example.com",
			maxWidth: 20,
			expected: "a.very.long.addre...",
		},
		{
			name:     "width too small to truncate",
			input:    "alice@example.com",
			maxWidth: 3,
			expected: "alice@example.com",
		},
		{
			name:     "exact width unchanged",
			input:    "alice",
			maxWidth: 5,
			expected: "alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateIdentity(tt.input, tt.maxWidth))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input       string
		expected    bool
		expectError bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
