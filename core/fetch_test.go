package core

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/augmentcode/augmetrics/internal/augment"
	"github.com/augmentcode/augmetrics/internal/contract"
	"github.com/augmentcode/augmetrics/schema"
)

func fetchConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		Date:       "2026-01-15",
		Output:     schema.JSONOut,
		OutputFile: filepath.Join(t.TempDir(), "out.json"),
	}
}

func TestRunActivity(t *testing.T) {
	cfg := fetchConfig(t)
	records := []schema.UserActivity{fullActivityRecord()}

	client := new(augment.MockAnalyticsClient)
	client.On("FetchUserActivity", mock.Anything, contract.SingleDay("2026-01-15")).Return(records, nil)

	require.NoError(t, runActivity(context.Background(), cfg, client))
	client.AssertExpectations(t)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var got []schema.UserActivity
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "alice@example.com", got[0].UserEmail)
}

func TestRunActivityPropagatesErrors(t *testing.T) {
	cfg := fetchConfig(t)

	client := new(augment.MockAnalyticsClient)
	client.On("FetchUserActivity", mock.Anything, mock.Anything).
		Return([]schema.UserActivity(nil), &augment.AuthenticationError{})

	err := runActivity(context.Background(), cfg, client)

	var authErr *augment.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	_, statErr := os.Stat(cfg.OutputFile)
	assert.True(t, os.IsNotExist(statErr), "no output on fetch failure")
}

func TestRunUsage(t *testing.T) {
	cfg := fetchConfig(t)
	usage := []schema.DailyUsage{
		{Date: "2026-01-15", TotalEdits: 120, TotalUsers: 8},
	}

	client := new(augment.MockAnalyticsClient)
	client.On("FetchDailyUsage", mock.Anything, contract.SingleDay("2026-01-15")).Return(usage, nil)

	require.NoError(t, runUsage(context.Background(), cfg, client))
	client.AssertExpectations(t)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var got []schema.DailyUsage
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, usage, got)
}

func TestRunDAU(t *testing.T) {
	counts := []schema.ActiveUserCount{
		{Date: "2026-01-10", UserCount: 40},
		{Date: "2026-01-11", UserCount: 42},
	}

	t.Run("range", func(t *testing.T) {
		cfg := fetchConfig(t)
		cfg.Date = ""
		cfg.StartDate = "2026-01-10"
		cfg.EndDate = "2026-01-11"

		client := new(augment.MockAnalyticsClient)
		client.On("FetchActiveUserCounts", mock.Anything, "2026-01-10", "2026-01-11").Return(counts, nil)

		require.NoError(t, runDAU(context.Background(), cfg, client))
		client.AssertExpectations(t)
	})

	t.Run("single date collapses to one-day range", func(t *testing.T) {
		cfg := fetchConfig(t)

		client := new(augment.MockAnalyticsClient)
		client.On("FetchActiveUserCounts", mock.Anything, "2026-01-15", "2026-01-15").Return(counts[:1], nil)

		require.NoError(t, runDAU(context.Background(), cfg, client))
		client.AssertExpectations(t)

		data, err := os.ReadFile(cfg.OutputFile)
		require.NoError(t, err)

		var got []schema.ActiveUserCount
		require.NoError(t, json.Unmarshal(data, &got))
		require.Len(t, got, 1)
		assert.Equal(t, 40, got[0].UserCount)
	})
}

func TestRunLanguages(t *testing.T) {
	cfg := fetchConfig(t)
	cfg.Output = schema.CSVOut

	rows := []schema.EditorLanguageActivity{
		{UserEmail: "alice@example.com", Editor: "vscode", Language: "go", Metrics: schema.EditorLanguageMetrics{TotalEdits: 55}},
	}

	client := new(augment.MockAnalyticsClient)
	client.On("FetchEditorLanguageActivity", mock.Anything, contract.SingleDay("2026-01-15")).Return(rows, nil)

	require.NoError(t, runLanguages(context.Background(), cfg, client))
	client.AssertExpectations(t)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "alice@example.com,vscode,go,55")
}
