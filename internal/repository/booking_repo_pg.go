package repository

import (
	"context"
	"errors"

	"github.com/avioline/skybook/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// CreateWithDebit commits the booking and the wallet debit atomically and
	// returns the remaining balance. Either both rows change or neither does.
	CreateWithDebit(ctx context.Context, booking *domain.Booking) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.BookingListItem, error)
	PNRExists(ctx context.Context, pnr string) (bool, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) CreateWithDebit(ctx context.Context, booking *domain.Booking) (int64, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var remaining int64
	if err := tx.QueryRow(ctx, `UPDATE wallets SET balance_cents = balance_cents - $1, updated_at = now()
		WHERE user_id=$2 AND balance_cents >= $1
		RETURNING balance_cents`, booking.AmountPaidCents, booking.UserID).Scan(&remaining); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM wallets WHERE user_id=$1)`, booking.UserID).Scan(&exists); err != nil {
				return 0, err
			}
			if !exists {
				return 0, domain.ErrWalletNotFound
			}
			return 0, domain.ErrInsufficientFunds
		}
		return 0, err
	}

	if err := tx.QueryRow(ctx, `INSERT INTO bookings (user_id, flight_id, passenger_name, dob, amount_paid_cents, pnr)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, booking_time`,
		booking.UserID, booking.FlightID, booking.PassengerName, booking.DateOfBirth, booking.AmountPaidCents, booking.PNR).
		Scan(&booking.ID, &booking.BookingTime); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return remaining, nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.BookingListItem, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, b.passenger_name, b.flight_id, f.airline, f.departure_city, f.arrival_city, b.amount_paid_cents, b.booking_time, b.pnr
		FROM bookings b
		JOIN flights f ON b.flight_id = f.id
		WHERE b.user_id=$1
		ORDER BY b.booking_time DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.BookingListItem, 0)
	for rows.Next() {
		var it domain.BookingListItem
		if err := rows.Scan(&it.ID, &it.PassengerName, &it.FlightID, &it.Airline, &it.DepartureCity, &it.ArrivalCity, &it.AmountPaid, &it.BookingTime, &it.PNR); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PGBookingRepository) PNRExists(ctx context.Context, pnr string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE pnr=$1)`, pnr).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
