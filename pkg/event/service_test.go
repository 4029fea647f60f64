package event

import (
	"context"
	"testing"
	"time"

	"github.com/clubops/club-manager/internal/errdef"
	"github.com/clubops/club-manager/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Create(t *testing.T) {
	repository := &mockEventRepository{}
	repository.
		On("create", mock.Anything, mock.AnythingOfType("*model.Event")).
		Return(nil)
	service := NewService(repository, &mockSessionRemover{})

	event := &model.Event{
		Title:  "Spring Formal",
		Date:   time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC),
		Budget: 1000,
	}
	err := service.Create(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, model.StatusPlanning, event.Status)
	assert.Equal(t, model.CategoryEvent, event.Category)
	assert.Equal(t, "spring-formal", event.Slug)
	assert.Zero(t, event.ActualSpending)
	assert.Empty(t, event.Receipts)
	repository.AssertExpectations(t)
}

func TestService_Create_MissingTitle(t *testing.T) {
	service := NewService(&mockEventRepository{}, &mockSessionRemover{})

	err := service.Create(context.Background(), &model.Event{
		Date: time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.True(t, errdef.IsValidation(err))
}

func TestService_Create_MissingDate(t *testing.T) {
	service := NewService(&mockEventRepository{}, &mockSessionRemover{})

	err := service.Create(context.Background(), &model.Event{Title: "Spring Formal"})

	require.Error(t, err)
	assert.True(t, errdef.IsValidation(err))
}

func TestService_Create_NegativeBudget(t *testing.T) {
	service := NewService(&mockEventRepository{}, &mockSessionRemover{})

	err := service.Create(context.Background(), &model.Event{
		Title:  "Spring Formal",
		Date:   time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC),
		Budget: -1,
	})

	require.Error(t, err)
	assert.True(t, errdef.IsValidation(err))
}

func TestService_Update_PreservesLedger(t *testing.T) {
	existing := &model.Event{
		ID:             1,
		Title:          "Spring Formal",
		Date:           time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC),
		Category:       model.CategoryFormal,
		Status:         model.StatusInProgress,
		Budget:         1000,
		ActualSpending: 650,
		Receipts:       []model.Receipt{{ID: 1, Amount: 250}, {ID: 2, Amount: 400}},
		Expenses:       []model.Expense{{ID: 1, Amount: 80, Status: model.ExpensePending}},
		Vendors:        []model.Vendor{{ID: 1, Name: "DJ Dave", Status: model.VendorInvited}},
	}
	repository := &mockEventRepository{}
	repository.On("findById", mock.Anything, uint(1)).Return(existing, nil)
	var updatedColumns []string
	repository.
		On("update", mock.Anything, existing, mock.AnythingOfType("[]string")).
		Run(func(args mock.Arguments) {
			updatedColumns = args.Get(2).([]string)
		}).
		Return(nil)
	service := NewService(repository, &mockSessionRemover{})

	event, err := service.Update(context.Background(), 1, &model.Event{
		Title:    "Spring Formal",
		Date:     time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC),
		Category: model.CategoryFormal,
		Budget:   2000,
	})

	require.NoError(t, err)
	assert.Equal(t, float64(2000), event.Budget)
	assert.Equal(t, float64(650), event.ActualSpending)
	assert.Len(t, event.Receipts, 2)
	assert.Len(t, event.Expenses, 1)
	assert.Len(t, event.Vendors, 1)
	assert.NotContains(t, updatedColumns, "actual_spending")
	repository.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	repository := &mockEventRepository{}
	repository.
		On("findById", mock.Anything, uint(42)).
		Return(nil, errdef.NewNotFound("failed to find event with id 42"))
	service := NewService(repository, &mockSessionRemover{})

	_, err := service.Update(context.Background(), 42, &model.Event{
		Title: "Spring Formal",
		Date:  time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))
}

func TestService_TogglePublish(t *testing.T) {
	existing := &model.Event{ID: 1, Title: "Spring Formal", Budget: 1000, ActualSpending: 650}
	repository := &mockEventRepository{}
	repository.On("findById", mock.Anything, uint(1)).Return(existing, nil)
	repository.
		On("update", mock.Anything, existing, []string{"published"}).
		Return(nil)
	service := NewService(repository, &mockSessionRemover{})

	event, err := service.TogglePublish(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, event.Published)
	assert.Equal(t, float64(650), event.ActualSpending)
	repository.AssertExpectations(t)
}

func TestService_Delete_RemovesSession(t *testing.T) {
	repository := &mockEventRepository{}
	repository.On("delete", mock.Anything, uint(1)).Return(nil)
	sessions := &mockSessionRemover{}
	sessions.On("RemoveSession", uint(1)).Return(nil)
	service := NewService(repository, sessions)

	err := service.Delete(context.Background(), 1)

	require.NoError(t, err)
	repository.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	repository := &mockEventRepository{}
	repository.
		On("delete", mock.Anything, uint(42)).
		Return(errdef.NewNotFound("failed to find event with id 42"))
	sessions := &mockSessionRemover{}
	service := NewService(repository, sessions)

	err := service.Delete(context.Background(), 42)

	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))
	sessions.AssertNotCalled(t, "RemoveSession", mock.Anything)
}

func TestService_Upcoming(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	events := []*model.Event{
		{ID: 1, Title: "Past", Date: now.AddDate(0, 0, -7), Published: true},
		{ID: 2, Title: "Unpublished", Date: now.AddDate(0, 0, 7)},
		{ID: 3, Title: "Soon", Date: now.AddDate(0, 0, 3), Published: true},
	}
	repository := &mockEventRepository{}
	repository.On("findAll", mock.Anything, true).Return(events, nil)
	service := NewService(repository, &mockSessionRemover{})

	upcoming, err := service.Upcoming(context.Background(), now)

	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Soon", upcoming[0].Title)
}

type mockEventRepository struct{ mock.Mock }

func (m *mockEventRepository) create(ctx context.Context, event *model.Event) error {
	called := m.Called(ctx, event)
	return called.Error(0)
}

func (m *mockEventRepository) findById(ctx context.Context, id uint) (*model.Event, error) {
	called := m.Called(ctx, id)
	event, _ := called.Get(0).(*model.Event)
	return event, called.Error(1)
}

func (m *mockEventRepository) findAll(ctx context.Context, orderByDate bool) ([]*model.Event, error) {
	called := m.Called(ctx, orderByDate)
	events, _ := called.Get(0).([]*model.Event)
	return events, called.Error(1)
}

func (m *mockEventRepository) update(ctx context.Context, event *model.Event, columns ...string) error {
	called := m.Called(ctx, event, columns)
	return called.Error(0)
}

func (m *mockEventRepository) delete(ctx context.Context, id uint) error {
	called := m.Called(ctx, id)
	return called.Error(0)
}

type mockSessionRemover struct{ mock.Mock }

func (m *mockSessionRemover) RemoveSession(eventID uint) error {
	called := m.Called(eventID)
	return called.Error(0)
}
