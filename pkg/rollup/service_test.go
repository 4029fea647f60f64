package rollup

import (
	"context"
	"testing"
	"time"

	"github.com/clubops/club-manager/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Totals(t *testing.T) {
	repository := &mockRollupRepository{}
	repository.On("findAll", mock.Anything).Return([]*model.Event{
		{Budget: 1000, ActualSpending: 400},
		{Budget: 500, ActualSpending: 500},
		{Budget: 300, ActualSpending: 0},
	}, nil)
	service := NewService(repository)

	totals, err := service.Totals(context.Background())

	require.NoError(t, err)
	assert.Equal(t, float64(1800), totals.TotalBudget)
	assert.Equal(t, float64(900), totals.TotalSpending)
}

func TestService_ByCategory(t *testing.T) {
	repository := &mockRollupRepository{}
	repository.On("findAll", mock.Anything).Return([]*model.Event{
		{Budget: 1000, ActualSpending: 400, BudgetCategory: "A"},
		{Budget: 500, ActualSpending: 500, BudgetCategory: "A"},
		{Budget: 300, ActualSpending: 0, BudgetCategory: "B"},
	}, nil)
	service := NewService(repository)

	rollups, err := service.ByCategory(context.Background())

	require.NoError(t, err)
	require.Len(t, rollups, 2)
	assert.Equal(t, CategoryRollup{
		Category:    "A",
		Budgeted:    1500,
		Spent:       900,
		Remaining:   600,
		Utilization: 0.6,
		Percent:     60,
	}, rollups[0])
	assert.Equal(t, CategoryRollup{
		Category:    "B",
		Budgeted:    300,
		Spent:       0,
		Remaining:   300,
		Utilization: 0,
		Percent:     0,
	}, rollups[1])
}

func TestService_ByCategory_OverBudget(t *testing.T) {
	repository := &mockRollupRepository{}
	repository.On("findAll", mock.Anything).Return([]*model.Event{
		{Budget: 1000, ActualSpending: 1150, BudgetCategory: "formal"},
	}, nil)
	service := NewService(repository)

	rollups, err := service.ByCategory(context.Background())

	require.NoError(t, err)
	require.Len(t, rollups, 1)
	assert.InDelta(t, 1.15, rollups[0].Utilization, 0.0001)
	assert.Equal(t, float64(100), rollups[0].Percent)
	assert.Equal(t, float64(-150), rollups[0].Remaining)
}

func TestService_ByCategory_SkipsUncategorized(t *testing.T) {
	repository := &mockRollupRepository{}
	repository.On("findAll", mock.Anything).Return([]*model.Event{
		{Budget: 1000, ActualSpending: 650, BudgetCategory: ""},
		{Budget: 300, ActualSpending: 0, BudgetCategory: "B"},
	}, nil)
	service := NewService(repository)

	rollups, err := service.ByCategory(context.Background())

	require.NoError(t, err)
	require.Len(t, rollups, 1)
	assert.Equal(t, "B", rollups[0].Category)
}

func TestService_ByDate(t *testing.T) {
	date := time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC)
	repository := &mockRollupRepository{}
	repository.On("findByDate", mock.Anything, date).Return([]*model.Event{
		{Budget: 1000, ActualSpending: 650},
		{Budget: 200, ActualSpending: 130},
	}, nil)
	service := NewService(repository)

	rollup, err := service.ByDate(context.Background(), date)

	require.NoError(t, err)
	assert.Equal(t, "2026-04-18", rollup.Date)
	assert.Equal(t, float64(1200), rollup.Budget)
	assert.Equal(t, float64(780), rollup.Spending)
	assert.InDelta(t, 0.65, rollup.Utilization, 0.0001)
	assert.Equal(t, float64(65), rollup.Percent)
}

func TestService_ByDate_NoEvents(t *testing.T) {
	date := time.Date(2026, 4, 19, 0, 0, 0, 0, time.UTC)
	repository := &mockRollupRepository{}
	repository.On("findByDate", mock.Anything, date).Return([]*model.Event{}, nil)
	service := NewService(repository)

	rollup, err := service.ByDate(context.Background(), date)

	require.NoError(t, err)
	assert.Equal(t, float64(0), rollup.Budget)
	assert.Equal(t, float64(0), rollup.Utilization)
}

type mockRollupRepository struct{ mock.Mock }

func (m *mockRollupRepository) findAll(ctx context.Context) ([]*model.Event, error) {
	called := m.Called(ctx)
	events, _ := called.Get(0).([]*model.Event)
	return events, called.Error(1)
}

func (m *mockRollupRepository) findByDate(ctx context.Context, date time.Time) ([]*model.Event, error) {
	called := m.Called(ctx, date)
	events, _ := called.Get(0).([]*model.Event)
	return events, called.Error(1)
}
