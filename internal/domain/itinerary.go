package domain

import "github.com/samber/lo"

// Itinerary groups bookings of one trip for display. It holds booking
// ids only; the booking registry owns the bookings.
type Itinerary struct {
	ID         string   `json:"itinerary_id"`
	bookingIDs []string
}

func NewItinerary(id string) *Itinerary {
	return &Itinerary{ID: id}
}

func (i *Itinerary) AddBooking(id string) {
	i.bookingIDs = append(i.bookingIDs, id)
}

// RemoveBooking drops every occurrence of id.
func (i *Itinerary) RemoveBooking(id string) {
	i.bookingIDs = lo.Without(i.bookingIDs, id)
}

func (i *Itinerary) Contains(id string) bool {
	return lo.Contains(i.bookingIDs, id)
}

func (i *Itinerary) BookingIDs() []string {
	out := make([]string, len(i.bookingIDs))
	copy(out, i.bookingIDs)
	return out
}
