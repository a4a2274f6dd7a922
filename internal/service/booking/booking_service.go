package booking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/avioline/skybook/internal/domain"
	"github.com/avioline/skybook/internal/kafka"
	"github.com/avioline/skybook/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	Book(ctx context.Context, input BookInput) (*Confirmation, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.BookingListItem, error)
}

// Renderer persists the ticket document and returns its public URL.
type Renderer interface {
	Render(booking *domain.Booking, flight *domain.Flight) (string, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookInput struct {
	UserID        int64  `json:"user_id"`
	PassengerName string `json:"passenger_name"`
	FlightID      int64  `json:"flight_id"`
	DateOfBirth   string `json:"dob"`
}

// Confirmation is the success payload of the booking transaction.
type Confirmation struct {
	PNR              string `json:"pnr"`
	FlightID         int64  `json:"flight_id"`
	PassengerName    string `json:"passenger_name"`
	DateOfBirth      string `json:"dob"`
	AmountPaid       int64  `json:"amount_paid"`
	RemainingBalance int64  `json:"remaining_balance"`
	TicketURL        string `json:"ticket_url"`
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	wallets            repository.WalletRepository
	users              repository.UserRepository
	renderer           Renderer
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	pnrMaxAttempts     int
	now                func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithClock overrides the time source; tests pin "today" with it.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	wallets repository.WalletRepository,
	users repository.UserRepository,
	renderer Renderer,
	producer Producer,
	bookingTopic string,
	pnrMaxAttempts int,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:       bookings,
		flights:        flights,
		wallets:        wallets,
		users:          users,
		renderer:       renderer,
		producer:       producer,
		bookingTopic:   bookingTopic,
		pnrMaxAttempts: pnrMaxAttempts,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Book runs the booking pipeline: validate, resolve flight and wallet,
// debit and insert atomically, render the ticket, publish the event.
// Every failure before the commit leaves no persistent change. A render
// failure after the commit is reported but the booking and debit stay.
func (s *BookingService) Book(ctx context.Context, input BookInput) (*Confirmation, error) {
	if input.UserID == 0 {
		return nil, domain.ErrAuthRequired
	}
	if input.PassengerName == "" || input.FlightID == 0 || input.DateOfBirth == "" {
		return nil, domain.NewValidationError("passenger info required")
	}

	dob, err := time.Parse("2006-01-02", input.DateOfBirth)
	if err != nil {
		return nil, domain.NewValidationError("invalid date of birth")
	}
	if dob.After(s.now()) {
		return nil, domain.NewValidationError("DOB cannot be in future")
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}

	wallet, err := s.wallets.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// Price is the flight's stored price at this instant. Client-side
	// surge display never reaches the transaction.
	price := flight.PriceCents
	if wallet.BalanceCents < price {
		return nil, domain.ErrInsufficientFunds
	}

	pnr, err := s.generatePNR(ctx)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		UserID:          input.UserID,
		FlightID:        flight.ID,
		PassengerName:   input.PassengerName,
		DateOfBirth:     dob,
		AmountPaidCents: price,
		PNR:             pnr,
	}

	remaining, err := s.bookings.CreateWithDebit(ctx, booking)
	if err != nil {
		return nil, err
	}

	ticketURL, err := s.renderer.Render(booking, flight)
	if err != nil {
		// Booking and debit are committed; there is no compensating
		// rollback. The caller sees the render failure.
		return nil, err
	}

	s.publishConfirmed(ctx, booking, ticketURL)

	return &Confirmation{
		PNR:              booking.PNR,
		FlightID:         booking.FlightID,
		PassengerName:    booking.PassengerName,
		DateOfBirth:      booking.DateOfBirth.Format("2006-01-02"),
		AmountPaid:       booking.AmountPaidCents,
		RemainingBalance: remaining,
		TicketURL:        ticketURL,
	}, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID int64) ([]domain.BookingListItem, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// generatePNR draws fixed-length uppercase hex reference codes until one
// is free, bounded by pnrMaxAttempts.
func (s *BookingService) generatePNR(ctx context.Context) (string, error) {
	attempts := s.pnrMaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		pnr, err := newPNR()
		if err != nil {
			return "", err
		}
		exists, err := s.bookings.PNRExists(ctx, pnr)
		if err != nil {
			return "", err
		}
		if !exists {
			return pnr, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique pnr after %d attempts", attempts)
}

func newPNR() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

func (s *BookingService) publishConfirmed(ctx context.Context, booking *domain.Booking, ticketURL string) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}

	var email string
	if user, err := s.users.GetByID(ctx, booking.UserID); err == nil {
		email = user.Email
	}

	event := kafka.BookingEvent{
		EventID:       uuid.NewString(),
		Type:          "booking_confirmed",
		PNR:           booking.PNR,
		FlightID:      booking.FlightID,
		PassengerName: booking.PassengerName,
		Email:         email,
		AmountPaid:    booking.AmountPaidCents,
		BookingTime:   booking.BookingTime,
		TicketURL:     ticketURL,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.PNR, event); err != nil {
		log.Printf("WARNING: failed to publish booking_confirmed for %s: %v", booking.PNR, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.PNR, event); err != nil {
			log.Printf("WARNING: failed to publish notification for %s: %v", booking.PNR, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
