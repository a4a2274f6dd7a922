package ticket

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/avioline/skybook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderer_Render(t *testing.T) {
	dir := t.TempDir()
	renderer := NewRenderer(dir, "http://localhost:8080/tickets")

	booking := &domain.Booking{
		ID:              1,
		UserID:          7,
		FlightID:        3,
		PassengerName:   "Asha Verma",
		DateOfBirth:     time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		AmountPaidCents: 4500,
		BookingTime:     time.Now(),
		PNR:             "A1B2C3",
	}
	flight := &domain.Flight{
		ID:            3,
		Airline:       "IndiGo",
		DepartureCity: "Delhi",
		ArrivalCity:   "Mumbai",
		DepartureTime: time.Date(2026, 9, 1, 6, 30, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 9, 1, 8, 45, 0, 0, time.UTC),
		PriceCents:    4500,
	}

	url, err := renderer.Render(booking, flight)
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/tickets/Ticket_A1B2C3.pdf", url)

	info, err := os.Stat(filepath.Join(dir, FileName(booking.PNR)))
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Ticket_FF00AA.pdf", FileName("FF00AA"))
	// same PNR always maps to the same document name
	assert.Equal(t, FileName("A1B2C3"), FileName("A1B2C3"))
}

func TestRenderer_Render_BadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	assert.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	renderer := NewRenderer(filepath.Join(file, "nested"), "http://localhost:8080/tickets")
	_, err := renderer.Render(&domain.Booking{PNR: "ABCDEF"}, &domain.Flight{})
	assert.ErrorIs(t, err, domain.ErrTicketRender)
}
