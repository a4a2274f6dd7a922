package email

import (
	"context"
	"log"

	"github.com/avioline/skybook/internal/kafka"
)

// Sender delivers booking confirmations. The current implementation only
// logs; swapping in an SMTP client keeps the same surface.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Printf("send %s email to %s: pnr %s, flight %d, ticket %s",
		event.Type, event.Email, event.PNR, event.FlightID, event.TicketURL)
	return nil
}
