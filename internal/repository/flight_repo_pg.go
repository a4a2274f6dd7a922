package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/avioline/skybook/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Search(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

// sortColumns is the allow-list for ORDER BY. Anything else leaves the
// result unordered instead of reaching the SQL text.
var sortColumns = map[string]string{
	"current_price":  "price_cents",
	"departure_time": "departure_time",
	"arrival_time":   "arrival_time",
	"airline":        "airline",
}

func (r *PGFlightRepository) Search(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, airline, departure_city, arrival_city, departure_time, arrival_time, price_cents FROM flights`)

	var conds []string
	var args []any
	if q.DepartureCity != "" {
		args = append(args, "%"+q.DepartureCity+"%")
		conds = append(conds, "departure_city ILIKE $"+strconv.Itoa(len(args)))
	}
	if q.ArrivalCity != "" {
		args = append(args, "%"+q.ArrivalCity+"%")
		conds = append(conds, "arrival_city ILIKE $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	if col, ok := sortColumns[q.SortBy]; ok {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(col)
		if strings.EqualFold(q.Order, "desc") {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.Airline, &f.DepartureCity, &f.ArrivalCity, &f.DepartureTime, &f.ArrivalTime, &f.PriceCents); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT id, airline, departure_city, arrival_city, departure_time, arrival_time, price_cents FROM flights WHERE id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.Airline, &f.DepartureCity, &f.ArrivalCity, &f.DepartureTime, &f.ArrivalTime, &f.PriceCents); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
