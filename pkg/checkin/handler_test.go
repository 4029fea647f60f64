package checkin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clubops/club-manager/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandler_ManualCheckIn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	checkinService := &mockCheckinService{}
	checkinService.
		On("ManualCheckIn", mock.Anything, uint(1), "jamie").
		Return(&model.Attendee{ID: 2, EventID: 1, Name: "Jamie Park", CheckedIn: true}, 1, nil)
	h := NewHandler(checkinService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = newPost(t, "/events/1/checkin/manual", &ManualCheckInRequest{Name: "jamie"})

	h.ManualCheckIn(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response ManualCheckInResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Jamie Park", response.Attendee.Name)
	assert.Equal(t, 1, response.Matched)
	checkinService.AssertExpectations(t)
}

func TestHandler_ScanCheckIn_MissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	checkinService := &mockCheckinService{}
	h := NewHandler(checkinService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = newPost(t, "/events/1/checkin/scan", &ScanCheckInRequest{AttendeeID: 5})

	h.ScanCheckIn(c)

	require.Len(t, c.Errors.Errors(), 1)
	checkinService.AssertNotCalled(t, "ScanCheckIn", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_AttendanceRate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	checkinService := &mockCheckinService{}
	checkinService.On("AttendanceRate", mock.Anything, uint(1)).Return(38, nil)
	h := NewHandler(checkinService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/events/1/attendance", nil)

	h.AttendanceRate(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response AttendanceRateResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 38, response.Rate)
}

func newPost(t *testing.T, path string, body any) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	return request
}

type mockCheckinService struct{ mock.Mock }

func (m *mockCheckinService) IssueToken(ctx context.Context, eventID uint) (*Session, error) {
	called := m.Called(ctx, eventID)
	session, _ := called.Get(0).(*Session)
	return session, called.Error(1)
}

func (m *mockCheckinService) GetLink(ctx context.Context, eventID uint) (*Session, error) {
	called := m.Called(ctx, eventID)
	session, _ := called.Get(0).(*Session)
	return session, called.Error(1)
}

func (m *mockCheckinService) CheckIn(ctx context.Context, eventID, attendeeID uint) (*model.Attendee, error) {
	called := m.Called(ctx, eventID, attendeeID)
	attendee, _ := called.Get(0).(*model.Attendee)
	return attendee, called.Error(1)
}

func (m *mockCheckinService) CheckOut(ctx context.Context, eventID, attendeeID uint) (*model.Attendee, error) {
	called := m.Called(ctx, eventID, attendeeID)
	attendee, _ := called.Get(0).(*model.Attendee)
	return attendee, called.Error(1)
}

func (m *mockCheckinService) ManualCheckIn(ctx context.Context, eventID uint, nameQuery string) (*model.Attendee, int, error) {
	called := m.Called(ctx, eventID, nameQuery)
	attendee, _ := called.Get(0).(*model.Attendee)
	return attendee, called.Int(1), called.Error(2)
}

func (m *mockCheckinService) ScanCheckIn(ctx context.Context, eventID uint, token string, attendeeID uint) (*model.Attendee, error) {
	called := m.Called(ctx, eventID, token, attendeeID)
	attendee, _ := called.Get(0).(*model.Attendee)
	return attendee, called.Error(1)
}

func (m *mockCheckinService) AttendanceRate(ctx context.Context, eventID uint) (int, error) {
	called := m.Called(ctx, eventID)
	return called.Int(0), called.Error(1)
}

func (m *mockCheckinService) Search(ctx context.Context, eventID uint, term string) ([]*model.Attendee, error) {
	called := m.Called(ctx, eventID, term)
	attendees, _ := called.Get(0).([]*model.Attendee)
	return attendees, called.Error(1)
}

func (m *mockCheckinService) FindAll(ctx context.Context, eventID uint) ([]*model.Attendee, error) {
	called := m.Called(ctx, eventID)
	attendees, _ := called.Get(0).([]*model.Attendee)
	return attendees, called.Error(1)
}

func (m *mockCheckinService) AddAttendee(ctx context.Context, eventID uint, name, email string, ticketType model.TicketType) (*model.Attendee, error) {
	called := m.Called(ctx, eventID, name, email, ticketType)
	attendee, _ := called.Get(0).(*model.Attendee)
	return attendee, called.Error(1)
}
