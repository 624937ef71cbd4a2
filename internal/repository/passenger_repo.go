package repository

import "github.com/Domenick1991/airdesk/internal/domain"

type PassengerRepository interface {
	Create(passenger *domain.Passenger) error
	GetByPassport(passport string) (*domain.Passenger, error)
	List() []*domain.Passenger
}

type MemoryPassengerRepository struct {
	passengers *store[domain.Passenger]
}

func NewPassengerRepository() PassengerRepository {
	return &MemoryPassengerRepository{passengers: newStore[domain.Passenger]()}
}

func (r *MemoryPassengerRepository) Create(passenger *domain.Passenger) error {
	if !r.passengers.insert(passenger.PassportNumber, passenger) {
		return &domain.ConflictError{Resource: "passenger", Key: passenger.PassportNumber}
	}
	return nil
}

func (r *MemoryPassengerRepository) GetByPassport(passport string) (*domain.Passenger, error) {
	p, ok := r.passengers.get(passport)
	if !ok {
		return nil, domain.PassengerNotFound(passport)
	}
	return p, nil
}

func (r *MemoryPassengerRepository) List() []*domain.Passenger {
	return r.passengers.list()
}

var _ PassengerRepository = (*MemoryPassengerRepository)(nil)
