package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augmentcode/augmetrics/internal/contract"
	"github.com/augmentcode/augmetrics/schema"
)

func TestWriteActiveUserCountsTable(t *testing.T) {
	counts := []schema.ActiveUserCount{
		{Date: "2026-01-01", UserCount: 5},
		{Date: "2026-01-02", UserCount: 8},
	}

	var buf bytes.Buffer
	require.NoError(t, writeActiveUserCountsTable(counts, &buf))

	output := buf.String()
	assert.Contains(t, output, "2026-01-02")
	assert.Contains(t, output, "Showing 2 days (peak active users: 8)")
}

func TestWriteActiveUserCountsCSV(t *testing.T) {
	counts := []schema.ActiveUserCount{
		{Date: "2026-01-01", UserCount: 5},
	}

	var buf bytes.Buffer
	require.NoError(t, writeActiveUserCountsCSV(&buf, counts))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"date", "active_users"}, records[0])
	assert.Equal(t, []string{"2026-01-01", "5"}, records[1])
}

func TestWriteActiveUserCountsJSON(t *testing.T) {
	counts := []schema.ActiveUserCount{
		{Date: "2026-01-01", UserCount: 5},
	}

	// Empty OutputFile streams to stdout, so exercise the JSON path directly.
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, counts))

	var decoded []schema.ActiveUserCount
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, counts, decoded)
}

func TestWriteActiveUserCountResultsParquetNeedsFile(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut}

	err := WriteActiveUserCountResults(nil, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file")
}
