package repository

import "github.com/Domenick1991/airdesk/internal/domain"

type FlightRepository interface {
	Create(flight *domain.Flight) error
	GetByNumber(number string) (*domain.Flight, error)
	List() []*domain.Flight
}

type MemoryFlightRepository struct {
	flights *store[domain.Flight]
}

func NewFlightRepository() FlightRepository {
	return &MemoryFlightRepository{flights: newStore[domain.Flight]()}
}

func (r *MemoryFlightRepository) Create(flight *domain.Flight) error {
	if !r.flights.insert(flight.Number, flight) {
		return &domain.ConflictError{Resource: "flight", Key: flight.Number}
	}
	return nil
}

func (r *MemoryFlightRepository) GetByNumber(number string) (*domain.Flight, error) {
	f, ok := r.flights.get(number)
	if !ok {
		return nil, domain.FlightNotFound(number)
	}
	return f, nil
}

func (r *MemoryFlightRepository) List() []*domain.Flight {
	return r.flights.list()
}

var _ FlightRepository = (*MemoryFlightRepository)(nil)
