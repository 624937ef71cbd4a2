package kafka

import "time"

const (
	EventBookingCreated       = "booking_created"
	EventBookingConfirmed     = "booking_confirmed"
	EventBookingCancelled     = "booking_cancelled"
	EventBookingStatusChanged = "booking_status_changed"
)

// Recipient is an observer a notification was delivered to in-process.
type Recipient struct {
	PassportNumber string `json:"passport_number"`
	Name           string `json:"name"`
	Email          string `json:"email"`
}

// NotificationEvent mirrors one flight broadcast. It is routed to the
// topic of the flight's kind.
type NotificationEvent struct {
	ID           string      `json:"id"`
	FlightNumber string      `json:"flight_number"`
	Kind         string      `json:"kind"`
	Message      string      `json:"message"`
	Recipients   []Recipient `json:"recipients"`
	SentAt       time.Time   `json:"sent_at"`
}

type BookingEvent struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	BookingID      string    `json:"booking_id"`
	FlightNumber   string    `json:"flight_number"`
	PassportNumber string    `json:"passport_number"`
	SeatNumber     string    `json:"seat_number"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}
