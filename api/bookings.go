package api

import (
	"net/http"
	"strconv"

	"github.com/avioline/skybook/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router gin.IRouter) {
	router.POST("/book", h.book)
	router.GET("/bookings/:user_id", h.list)
}

func (h *BookingHandler) book(c *gin.Context) {
	var req booking.BookInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmation, err := h.service.Book(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Booking successful",
		"pnr":               confirmation.PNR,
		"flight_id":         confirmation.FlightID,
		"passenger_name":    confirmation.PassengerName,
		"dob":               confirmation.DateOfBirth,
		"amount_paid":       confirmation.AmountPaid,
		"remaining_balance": confirmation.RemainingBalance,
		"ticket_url":        confirmation.TicketURL,
	})
}

func (h *BookingHandler) list(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	items, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
