package domain

import "time"

// Flight is read-only reference data, seeded externally and only queried.
type Flight struct {
	ID            int64     `json:"flight_id"`
	Airline       string    `json:"airline"`
	DepartureCity string    `json:"departure_city"`
	ArrivalCity   string    `json:"arrival_city"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	PriceCents    int64     `json:"current_price"`
}

// FlightQuery carries the optional catalog filters and ordering.
// Sort fields outside the allow-list leave results unordered.
type FlightQuery struct {
	DepartureCity string
	ArrivalCity   string
	SortBy        string
	Order         string
}
