package repository

import (
	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/samber/lo"
)

type BookingRepository interface {
	Create(booking *domain.Booking) error
	GetByID(id string) (*domain.Booking, error)
	Delete(id string) error
	List() []*domain.Booking
	ListByFlight(flightNumber string) []*domain.Booking
	ListByPassenger(passport string) []*domain.Booking
}

// MemoryBookingRepository holds the active bookings.
type MemoryBookingRepository struct {
	bookings *store[domain.Booking]
}

func NewBookingRepository() BookingRepository {
	return &MemoryBookingRepository{bookings: newStore[domain.Booking]()}
}

func (r *MemoryBookingRepository) Create(booking *domain.Booking) error {
	if !r.bookings.insert(booking.ID, booking) {
		return &domain.ConflictError{Resource: "booking", Key: booking.ID}
	}
	return nil
}

func (r *MemoryBookingRepository) GetByID(id string) (*domain.Booking, error) {
	b, ok := r.bookings.get(id)
	if !ok {
		return nil, domain.BookingNotFound(id)
	}
	return b, nil
}

func (r *MemoryBookingRepository) Delete(id string) error {
	if !r.bookings.remove(id) {
		return domain.BookingNotFound(id)
	}
	return nil
}

func (r *MemoryBookingRepository) List() []*domain.Booking {
	return r.bookings.list()
}

func (r *MemoryBookingRepository) ListByFlight(flightNumber string) []*domain.Booking {
	return lo.Filter(r.bookings.list(), func(b *domain.Booking, _ int) bool {
		return b.FlightNumber == flightNumber
	})
}

func (r *MemoryBookingRepository) ListByPassenger(passport string) []*domain.Booking {
	return lo.Filter(r.bookings.list(), func(b *domain.Booking, _ int) bool {
		return b.PassportNumber == passport
	})
}

var _ BookingRepository = (*MemoryBookingRepository)(nil)
