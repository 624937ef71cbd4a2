package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/kafka"
	"github.com/Domenick1991/airdesk/internal/notify"
	"github.com/Domenick1991/airdesk/internal/repository"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, id string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id string) (*domain.Booking, error)
	SetStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	Register(booking *domain.Booking) error
	Get(id string) (*domain.Booking, error)
	List() []*domain.Booking
	Itinerary() *domain.Itinerary
	ItineraryBookings() []*domain.Booking
}

// Flights is the part of the flight service bookings depend on.
type Flights interface {
	Find(number string) (*domain.Flight, error)
	Get(number string) (*domain.Flight, error)
	Attach(number, passport string) error
	Detach(number, passport string) error
	Notify(ctx context.Context, number, message string) (notify.Delivery, error)
}

type Passengers interface {
	GetByPassport(passport string) (*domain.Passenger, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings     repository.BookingRepository
	passengers   Passengers
	flights      Flights
	itinerary    *domain.Itinerary
	producer     Producer
	bookingTopic string
}

type CreateBookingInput struct {
	BookingID      string `json:"booking_id"`
	PassportNumber string `json:"passport_number"`
	FlightNumber   string `json:"flight_number"`
	SeatNumber     string `json:"seat_number"`
}

type BookingServiceOption func(*BookingService)

// WithEvents publishes booking lifecycle events to topic.
func WithEvents(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	passengers Passengers,
	flights Flights,
	itinerary *domain.Itinerary,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:   bookings,
		passengers: passengers,
		flights:    flights,
		itinerary:  itinerary,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking creates a Pending booking on a scheduled flight, attaches
// the passenger as an observer of that flight and adds the booking to the
// itinerary. Nothing is created when the flight is not on the schedule.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if strings.TrimSpace(input.SeatNumber) == "" {
		return nil, errors.New("seat number is required")
	}

	passenger, err := s.passengers.GetByPassport(input.PassportNumber)
	if err != nil {
		return nil, err
	}
	flight, err := s.flights.Find(input.FlightNumber)
	if err != nil {
		return nil, err
	}

	id := strings.TrimSpace(input.BookingID)
	if id == "" {
		id = uuid.NewString()
	}

	booking := &domain.Booking{
		ID:             id,
		PassportNumber: passenger.PassportNumber,
		FlightNumber:   flight.Number,
		SeatNumber:     input.SeatNumber,
		Status:         domain.BookingStatusPending,
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	flight.Attach(passenger.PassportNumber)
	s.itinerary.AddBooking(booking.ID)

	logrus.WithFields(logrus.Fields{
		"booking":  booking.ID,
		"flight":   booking.FlightNumber,
		"passport": booking.PassportNumber,
	}).Info("booking created")

	if err := s.publish(ctx, kafka.EventBookingCreated, booking); err != nil {
		logrus.WithError(err).Warnf("failed to publish %s event for booking %s", kafka.EventBookingCreated, booking.ID)
	}
	return booking, nil
}

// Register adds an already existing booking, keeping its status, without
// any broadcast. Used to load the startup data.
func (s *BookingService) Register(booking *domain.Booking) error {
	if _, err := s.passengers.GetByPassport(booking.PassportNumber); err != nil {
		return err
	}
	if _, err := s.flights.Get(booking.FlightNumber); err != nil {
		return err
	}
	if booking.Status == "" {
		booking.Status = domain.BookingStatusPending
	}
	if !booking.IsActive() {
		return &domain.TransitionError{From: booking.Status, To: booking.Status}
	}
	if err := s.bookings.Create(booking); err != nil {
		return err
	}
	s.itinerary.AddBooking(booking.ID)
	return nil
}

func (s *BookingService) ConfirmBooking(ctx context.Context, id string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := current.Confirm(); err != nil {
		return nil, err
	}

	s.broadcast(ctx, current, func(route, name string) string {
		return fmt.Sprintf("Booking confirmed for flight %s for passenger %s", route, name)
	})
	if err := s.publish(ctx, kafka.EventBookingConfirmed, current); err != nil {
		logrus.WithError(err).Warnf("failed to publish %s event for booking %s", kafka.EventBookingConfirmed, current.ID)
	}
	return current, nil
}

// CancelBooking cancels the booking, broadcasts it, and removes it from the
// itinerary and from the active bookings.
func (s *BookingService) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := current.Cancel(); err != nil {
		return nil, err
	}

	s.broadcast(ctx, current, func(route, name string) string {
		return fmt.Sprintf("Booking cancelled for flight %s for passenger %s", route, name)
	})
	s.release(current)
	if err := s.publish(ctx, kafka.EventBookingCancelled, current); err != nil {
		logrus.WithError(err).Warnf("failed to publish %s event for booking %s", kafka.EventBookingCancelled, current.ID)
	}
	return current, nil
}

// SetStatus applies any legal transition and broadcasts a status change.
// Moving to Cancelled releases the booking like CancelBooking does.
func (s *BookingService) SetStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := current.SetStatus(status); err != nil {
		return nil, err
	}

	s.broadcast(ctx, current, func(route, name string) string {
		return fmt.Sprintf("Booking status changed for flight %s for passenger %s to %s", route, name, status)
	})
	if status == domain.BookingStatusCancelled {
		s.release(current)
	}
	if err := s.publish(ctx, kafka.EventBookingStatusChanged, current); err != nil {
		logrus.WithError(err).Warnf("failed to publish %s event for booking %s", kafka.EventBookingStatusChanged, current.ID)
	}
	return current, nil
}

func (s *BookingService) Get(id string) (*domain.Booking, error) {
	return s.bookings.GetByID(id)
}

func (s *BookingService) List() []*domain.Booking {
	return s.bookings.List()
}

func (s *BookingService) Itinerary() *domain.Itinerary {
	return s.itinerary
}

// ItineraryBookings resolves the itinerary's ids in itinerary order.
func (s *BookingService) ItineraryBookings() []*domain.Booking {
	ids := s.itinerary.BookingIDs()
	out := make([]*domain.Booking, 0, len(ids))
	for _, id := range ids {
		if b, err := s.bookings.GetByID(id); err == nil {
			out = append(out, b)
		}
	}
	return out
}

// release drops a cancelled booking from the itinerary and the registry,
// and detaches the passenger unless another active booking keeps them on
// the flight.
func (s *BookingService) release(b *domain.Booking) {
	s.itinerary.RemoveBooking(b.ID)
	_ = s.bookings.Delete(b.ID)

	stillBooked := lo.SomeBy(s.bookings.ListByFlight(b.FlightNumber), func(other *domain.Booking) bool {
		return other.PassportNumber == b.PassportNumber && other.IsActive()
	})
	if !stillBooked {
		_ = s.flights.Detach(b.FlightNumber, b.PassportNumber)
	}

	logrus.WithFields(logrus.Fields{
		"booking": b.ID,
		"flight":  b.FlightNumber,
	}).Info("booking cancelled")
}

func (s *BookingService) broadcast(ctx context.Context, b *domain.Booking, message func(route, name string) string) {
	flight, err := s.flights.Get(b.FlightNumber)
	if err != nil {
		logrus.WithError(err).Warnf("booking %s references unknown flight %s", b.ID, b.FlightNumber)
		return
	}
	name := b.PassportNumber
	if p, err := s.passengers.GetByPassport(b.PassportNumber); err == nil {
		name = p.Name
	}

	route := flight.Origin + " to " + flight.Destination
	if _, err := s.flights.Notify(ctx, flight.Number, message(route, name)); err != nil {
		logrus.WithError(err).Warnf("failed to notify flight %s", flight.Number)
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		ID:             uuid.NewString(),
		Type:           eventType,
		BookingID:      booking.ID,
		FlightNumber:   booking.FlightNumber,
		PassportNumber: booking.PassportNumber,
		SeatNumber:     booking.SeatNumber,
		Status:         string(booking.Status),
		OccurredAt:     time.Now(),
	}
	return s.producer.Publish(ctx, s.bookingTopic, booking.ID, event)
}

var _ BookingUseCase = (*BookingService)(nil)
