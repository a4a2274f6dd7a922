package domain

import "time"

// Booking is created exactly once per successful booking transaction
// and never mutated. AmountPaidCents snapshots the flight price at
// booking time and does not track later price changes.
type Booking struct {
	ID              int64
	UserID          int64
	FlightID        int64
	PassengerName   string
	DateOfBirth     time.Time
	AmountPaidCents int64
	BookingTime     time.Time
	PNR             string
}

// BookingListItem is the booking-history row joined with its flight.
type BookingListItem struct {
	ID            int64     `json:"id"`
	PassengerName string    `json:"passenger_name"`
	FlightID      int64     `json:"flight_id"`
	Airline       string    `json:"airline"`
	DepartureCity string    `json:"departure_city"`
	ArrivalCity   string    `json:"arrival_city"`
	AmountPaid    int64     `json:"amount_paid"`
	BookingTime   time.Time `json:"booking_time"`
	PNR           string    `json:"pnr"`
}
