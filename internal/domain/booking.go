package domain

import "fmt"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status %q: %w", s, ErrInvalidTransition)
	}
}

// CanTransition reports whether from -> to is an edge of
// Pending -> Confirmed, Pending/Confirmed -> Cancelled.
func CanTransition(from, to BookingStatus) bool {
	switch to {
	case BookingStatusConfirmed:
		return from == BookingStatusPending
	case BookingStatusCancelled:
		return from == BookingStatusPending || from == BookingStatusConfirmed
	default:
		return false
	}
}

// Booking binds one passenger to one flight. Both are referenced by key.
type Booking struct {
	ID             string        `json:"booking_id"`
	PassportNumber string        `json:"passport_number"`
	FlightNumber   string        `json:"flight_number"`
	SeatNumber     string        `json:"seat_number"`
	Status         BookingStatus `json:"status"`
}

func (b *Booking) Confirm() error {
	return b.SetStatus(BookingStatusConfirmed)
}

func (b *Booking) Cancel() error {
	return b.SetStatus(BookingStatusCancelled)
}

func (b *Booking) SetStatus(status BookingStatus) error {
	if !CanTransition(b.Status, status) {
		return &TransitionError{From: b.Status, To: status}
	}
	b.Status = status
	return nil
}

func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}

func (b *Booking) Info() string {
	return fmt.Sprintf("Booking ID: %s, Seat Number: %s, Status: %s", b.ID, b.SeatNumber, b.Status)
}
