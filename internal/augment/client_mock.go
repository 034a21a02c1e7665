package augment

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/augmentcode/augmetrics/internal/contract"
	"github.com/augmentcode/augmetrics/schema"
)

// MockAnalyticsClient is a mock implementation of AnalyticsClient for testing.
type MockAnalyticsClient struct {
	mock.Mock
}

var _ contract.AnalyticsClient = &MockAnalyticsClient{} // Compile-time check

// FetchUserActivity implements the AnalyticsClient interface.
func (m *MockAnalyticsClient) FetchUserActivity(ctx context.Context, query contract.DateQuery) ([]schema.UserActivity, error) {
	args := m.Called(ctx, query)
	records, _ := args.Get(0).([]schema.UserActivity)
	return records, args.Error(1)
}

// FetchDailyUsage implements the AnalyticsClient interface.
func (m *MockAnalyticsClient) FetchDailyUsage(ctx context.Context, query contract.DateQuery) ([]schema.DailyUsage, error) {
	args := m.Called(ctx, query)
	usage, _ := args.Get(0).([]schema.DailyUsage)
	return usage, args.Error(1)
}

// FetchEditorLanguageActivity implements the AnalyticsClient interface.
func (m *MockAnalyticsClient) FetchEditorLanguageActivity(ctx context.Context, query contract.DateQuery) ([]schema.EditorLanguageActivity, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]schema.EditorLanguageActivity)
	return rows, args.Error(1)
}

// FetchActiveUserCounts implements the AnalyticsClient interface.
func (m *MockAnalyticsClient) FetchActiveUserCounts(ctx context.Context, startDate, endDate string) ([]schema.ActiveUserCount, error) {
	args := m.Called(ctx, startDate, endDate)
	counts, _ := args.Get(0).([]schema.ActiveUserCount)
	return counts, args.Error(1)
}
