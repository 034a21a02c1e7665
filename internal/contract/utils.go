package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Engagement label constants.
const (
	EngagedValue  = "Engaged"  // Engaged value
	InactiveValue = "Inactive" // Inactive value
)

// Color variables for console output.
var (
	EngagedColor  = color.New(color.FgGreen, color.Bold) // engagedColor marks users with qualifying activity.
	InactiveColor = color.New(color.FgCyan)              // inactiveColor marks users with none.
)

// GetPlainLabel returns a plain text label indicating whether a user counts
// as engaged. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(engaged bool) string {
	if engaged {
		return EngagedValue
	}
	return InactiveValue
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(engaged bool) string {
	text := GetPlainLabel(engaged)

	if text == EngagedValue {
		return EngagedColor.Sprint(text)
	}
	return InactiveColor.Sprint(text)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateIdentity truncates a user identity to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 to ensure there's space for both the
// "..." suffix and at least one character of content.
func TruncateIdentity(id string, maxWidth int) string {
	runes := []rune(id)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return id
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
