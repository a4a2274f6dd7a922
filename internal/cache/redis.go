package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/avioline/skybook/config"
	"github.com/avioline/skybook/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

// GetFlights returns the cached result for this query, or nil on a miss.
func (c *RedisCache) GetFlights(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey(q)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, q domain.FlightQuery, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(q), payload, c.flightsTTL).Err()
}

func flightsKey(q domain.FlightQuery) string {
	parts := []string{
		"cache:flights",
		strings.ToLower(q.DepartureCity),
		strings.ToLower(q.ArrivalCity),
		strings.ToLower(q.SortBy),
		strings.ToLower(q.Order),
	}
	return strings.Join(parts, ":")
}
