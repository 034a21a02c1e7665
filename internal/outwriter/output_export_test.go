package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augmentcode/augmetrics/schema"
)

func TestWriteReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "copilot_metrics_2026-01-01_to_2026-01-28.json")

	report := schema.NewReport("2026-01-01")
	report.TotalActiveUsers = 10
	report.TotalEngagedUsers = 7

	require.NoError(t, WriteReportFile(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, "\n  \"date\": \"2026-01-01\"", "report should be indented")
	assert.Contains(t, body, `"total_active_users": 10`)
	assert.Contains(t, body, `"breakdown": []`)
	assert.NotContains(t, body, "null", "empty sections must marshal as empty arrays")

	var decoded schema.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 7, decoded.TotalEngagedUsers)
}

func TestWriteUsageRowsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "augment_metrics_2026-01-01_to_2026-01-28.csv")

	rows := []schema.UsageRow{
		{User: "alice@example.com", ActiveDays: 11, Completions: 12},
	}

	require.NoError(t, WriteUsageRowsFile(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, schema.UsageRowHeader, records[0])
	assert.Equal(t, "alice@example.com", records[1][0])
}

func TestWriteReportFileBadPath(t *testing.T) {
	err := WriteReportFile(filepath.Join(t.TempDir(), "missing", "report.json"), schema.NewReport("2026-01-01"))
	assert.Error(t, err)
}
