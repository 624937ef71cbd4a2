package desk

import "github.com/Domenick1991/airdesk/internal/domain"

type BookingEntry struct {
	Booking *domain.Booking `json:"booking"`
	Flight  *domain.Flight  `json:"flight"`
}

type ItineraryView struct {
	ID      string         `json:"itinerary_id"`
	Entries []BookingEntry `json:"bookings"`
}

type ScheduleView struct {
	ID      string           `json:"schedule_id"`
	Date    string           `json:"date"`
	Flights []*domain.Flight `json:"flights"`
}

type FlightPassengers struct {
	Flight     *domain.Flight      `json:"flight"`
	Passengers []*domain.Passenger `json:"passengers"`
}

type KindGroup struct {
	Kind    domain.FlightKind  `json:"kind"`
	Flights []FlightPassengers `json:"flights"`
}

type Announcement struct {
	FlightNumber string `json:"flight_number"`
	Message      string `json:"message"`
}

type BroadcastResult struct {
	FlightNumber string   `json:"flight_number"`
	Delivered    []string `json:"delivered"`
}
