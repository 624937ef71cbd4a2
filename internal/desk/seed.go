package desk

import (
	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/service/flights"
	"github.com/Domenick1991/airdesk/internal/service/passengers"
)

var seedPassengers = []passengers.RegisterPassengerInput{
	{Name: "John Doe", Email: "john@example.com", PhoneNumber: "1234567890", PassportNumber: "P12345"},
	{Name: "Jane Smith", Email: "jane@example.com", PhoneNumber: "0987654321", PassportNumber: "P54321"},
}

var seedFlights = []flights.CreateFlightInput{
	{Type: "Domestic", FlightNumber: "FL123", Origin: "New York", Destination: "Los Angeles", DepartureTime: "2023-06-15 10:00", ArrivalTime: "2023-06-15 14:00"},
	{Type: "International", FlightNumber: "FL456", Origin: "New York", Destination: "London", DepartureTime: "2023-06-16 18:00", ArrivalTime: "2023-06-17 06:00"},
}

var seedBookings = []domain.Booking{
	{ID: "B123", PassportNumber: "P12345", FlightNumber: "FL123", SeatNumber: "12A", Status: domain.BookingStatusConfirmed},
	{ID: "B456", PassportNumber: "P54321", FlightNumber: "FL456", SeatNumber: "14B", Status: domain.BookingStatusConfirmed},
}

var seedAnnouncements = []Announcement{
	{FlightNumber: "FL123", Message: "This is a notification for domestic flight."},
	{FlightNumber: "FL456", Message: "This is a notification for international flight."},
}

func (s *Session) seed() error {
	for _, p := range seedPassengers {
		if _, err := s.Passengers.Register(p); err != nil {
			return err
		}
	}
	for _, f := range seedFlights {
		if _, err := s.Flights.Create(f); err != nil {
			return err
		}
	}
	for _, b := range seedBookings {
		b := b
		if err := s.Bookings.Register(&b); err != nil {
			return err
		}
		if err := s.Flights.Attach(b.FlightNumber, b.PassportNumber); err != nil {
			return err
		}
	}
	s.announcements = append(s.announcements, seedAnnouncements...)
	return nil
}
