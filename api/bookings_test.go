package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avioline/skybook/internal/domain"
	"github.com/avioline/skybook/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Book(ctx context.Context, input booking.BookInput) (*booking.Confirmation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Confirmation), args.Error(1)
}

func (m *MockBookingUseCase) ListByUser(ctx context.Context, userID int64) ([]domain.BookingListItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.BookingListItem), args.Error(1)
}

func TestBookingHandler_book(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	input := booking.BookInput{
		UserID:        7,
		PassengerName: "Asha Verma",
		FlightID:      3,
		DateOfBirth:   "1990-04-12",
	}
	w := httptest.NewRecorder()
	c := postContext(t, w, "/book", input)

	confirmation := &booking.Confirmation{
		PNR:              "A1B2C3",
		FlightID:         3,
		PassengerName:    "Asha Verma",
		DateOfBirth:      "1990-04-12",
		AmountPaid:       4500,
		RemainingBalance: 45500,
		TicketURL:        "http://localhost:8080/tickets/Ticket_A1B2C3.pdf",
	}

	mockService.On("Book", c.Request.Context(), input).Return(confirmation, nil).Once()

	handler.book(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		PNR              string `json:"pnr"`
		AmountPaid       int64  `json:"amount_paid"`
		RemainingBalance int64  `json:"remaining_balance"`
		TicketURL        string `json:"ticket_url"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "A1B2C3", response.PNR)
	assert.Equal(t, int64(4500), response.AmountPaid)
	assert.Equal(t, int64(45500), response.RemainingBalance)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_book_errorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not logged in", domain.ErrAuthRequired, http.StatusUnauthorized},
		{"missing passenger info", domain.NewValidationError("passenger info required"), http.StatusBadRequest},
		{"future dob", domain.NewValidationError("DOB cannot be in future"), http.StatusBadRequest},
		{"flight missing", domain.ErrFlightNotFound, http.StatusNotFound},
		{"wallet missing", domain.ErrWalletNotFound, http.StatusNotFound},
		{"insufficient balance", domain.ErrInsufficientFunds, http.StatusBadRequest},
		{"render failure", domain.ErrTicketRender, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockBookingUseCase{}
			handler := NewBookingHandler(mockService)

			input := booking.BookInput{UserID: 7, PassengerName: "Asha", FlightID: 3, DateOfBirth: "1990-04-12"}
			w := httptest.NewRecorder()
			c := postContext(t, w, "/book", input)

			mockService.On("Book", c.Request.Context(), input).Return(nil, tc.err).Once()

			handler.book(c)

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestBookingHandler_list(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "user_id", Value: "7"}}
	c.Request = httptest.NewRequest("GET", "/bookings/7", nil)

	items := []domain.BookingListItem{
		{ID: 2, PassengerName: "Asha", PNR: "B2C3D4", BookingTime: time.Now()},
		{ID: 1, PassengerName: "Asha", PNR: "A1B2C3", BookingTime: time.Now().Add(-time.Hour)},
	}

	mockService.On("ListByUser", c.Request.Context(), int64(7)).Return(items, nil).Once()

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.BookingListItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2)
	assert.Equal(t, "B2C3D4", response[0].PNR)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_list_invalidUserID(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "user_id", Value: "abc"}}
	c.Request = httptest.NewRequest("GET", "/bookings/abc", nil)

	handler.list(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ListByUser")
}
