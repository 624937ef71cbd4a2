package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airdesk/internal/desk"
	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingDesk struct {
	mock.Mock
}

func (m *MockBookingDesk) Itinerary() desk.ItineraryView {
	args := m.Called()
	return args.Get(0).(desk.ItineraryView)
}

func (m *MockBookingDesk) BookFlight(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingDesk) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingDesk) SetBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func TestBookingHandler_create(t *testing.T) {
	mockDesk := &MockBookingDesk{}
	handler := NewBookingHandler(mockDesk)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := booking.CreateBookingInput{
		BookingID:      "B789",
		PassportNumber: "P12345",
		FlightNumber:   "FL123",
		SeatNumber:     "7C",
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	b := &domain.Booking{
		ID:             "B789",
		PassportNumber: "P12345",
		FlightNumber:   "FL123",
		SeatNumber:     "7C",
		Status:         domain.BookingStatusConfirmed,
	}

	mockDesk.On("BookFlight", c.Request.Context(), input).Return(b, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response domain.Booking
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "B789", response.ID)
	assert.Equal(t, domain.BookingStatusConfirmed, response.Status)

	mockDesk.AssertExpectations(t)
}

func TestBookingHandler_createUnknownFlight(t *testing.T) {
	mockDesk := &MockBookingDesk{}
	handler := NewBookingHandler(mockDesk)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := booking.CreateBookingInput{PassportNumber: "P12345", FlightNumber: "FL999", SeatNumber: "1A"}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockDesk.On("BookFlight", c.Request.Context(), input).Return(nil, domain.FlightNotFound("FL999"))

	handler.create(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockDesk.AssertExpectations(t)
}

func TestBookingHandler_setStatus(t *testing.T) {
	mockDesk := &MockBookingDesk{}
	handler := NewBookingHandler(mockDesk)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "B123"}}
	c.Request = httptest.NewRequest("PUT", "/bookings/B123/status", bytes.NewBufferString(`{"status":"Pending"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	mockDesk.On("SetBookingStatus", c.Request.Context(), "B123", domain.BookingStatusPending).
		Return(nil, &domain.TransitionError{From: domain.BookingStatusConfirmed, To: domain.BookingStatusPending})

	handler.setStatus(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockDesk.AssertExpectations(t)
}

func TestBookingHandler_setStatusUnknown(t *testing.T) {
	mockDesk := &MockBookingDesk{}
	handler := NewBookingHandler(mockDesk)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "B123"}}
	c.Request = httptest.NewRequest("PUT", "/bookings/B123/status", bytes.NewBufferString(`{"status":"Boarded"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.setStatus(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockDesk.AssertNotCalled(t, "SetBookingStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockDesk := &MockBookingDesk{}
	handler := NewBookingHandler(mockDesk)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "B123"}}
	c.Request = httptest.NewRequest("DELETE", "/bookings/B123", nil)

	b := &domain.Booking{ID: "B123", Status: domain.BookingStatusCancelled}
	mockDesk.On("CancelBooking", c.Request.Context(), "B123").Return(b, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response domain.Booking
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, response.Status)

	mockDesk.AssertExpectations(t)
}
