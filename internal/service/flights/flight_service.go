package flights

import (
	"context"

	"github.com/avioline/skybook/internal/domain"
	"github.com/avioline/skybook/internal/repository"
)

type FlightUseCase interface {
	Search(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

// Cache keeps recent search results; a nil cache disables caching.
type Cache interface {
	GetFlights(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error)
	SetFlights(ctx context.Context, q domain.FlightQuery, flights []domain.Flight) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) Search(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx, q); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, q, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

var _ FlightUseCase = (*FlightService)(nil)
