// Package desk holds the operator session: the single owner of every
// passenger, flight and booking, and the operations the menu and the HTTP
// API offer on them.
package desk

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airdesk/config"
	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/notify"
	"github.com/Domenick1991/airdesk/internal/repository"
	"github.com/Domenick1991/airdesk/internal/service/booking"
	"github.com/Domenick1991/airdesk/internal/service/flights"
	"github.com/Domenick1991/airdesk/internal/service/passengers"
)

type Session struct {
	Passengers passengers.PassengerUseCase
	Flights    flights.FlightUseCase
	Bookings   booking.BookingUseCase

	announcements []Announcement
}

type Option func(*options)

type options struct {
	publisher    notify.Publisher
	routes       notify.Routes
	bookingTopic string
}

// WithPublisher sends flight notifications and booking events out through
// publisher.
func WithPublisher(publisher notify.Publisher, routes notify.Routes, bookingTopic string) Option {
	return func(o *options) {
		o.publisher = publisher
		o.routes = routes
		o.bookingTopic = bookingTopic
	}
}

// NewSession wires a fresh in-memory session. handler is what a passenger
// does when one of their flights broadcasts.
func NewSession(cfg config.DeskConfig, handler notify.Handler, opts ...Option) (*Session, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	passengerRepo := repository.NewPassengerRepository()

	var dispatcherOpts []notify.DispatcherOption
	var bookingOpts []booking.BookingServiceOption
	if o.publisher != nil {
		dispatcherOpts = append(dispatcherOpts, notify.WithPublisher(o.publisher, o.routes))
		bookingOpts = append(bookingOpts, booking.WithEvents(o.publisher, o.bookingTopic))
	}
	dispatcher := notify.NewDispatcher(passengerRepo, handler, dispatcherOpts...)

	flightService := flights.NewFlightService(
		repository.NewFlightRepository(),
		domain.NewSchedule(cfg.ScheduleID, cfg.ScheduleDate),
		dispatcher,
	)
	s := &Session{
		Passengers: passengers.NewPassengerService(passengerRepo),
		Flights:    flightService,
		Bookings: booking.NewBookingService(
			repository.NewBookingRepository(),
			passengerRepo,
			flightService,
			domain.NewItinerary(cfg.ItineraryID),
			bookingOpts...,
		),
	}

	if cfg.Seed {
		if err := s.seed(); err != nil {
			return nil, fmt.Errorf("seed session: %w", err)
		}
	}
	return s, nil
}

// Itinerary lists the itinerary's bookings with their flights.
func (s *Session) Itinerary() ItineraryView {
	it := s.Bookings.Itinerary()
	view := ItineraryView{ID: it.ID, Entries: []BookingEntry{}}
	for _, b := range s.Bookings.ItineraryBookings() {
		flight, err := s.Flights.Get(b.FlightNumber)
		if err != nil {
			continue
		}
		view.Entries = append(view.Entries, BookingEntry{Booking: b, Flight: flight})
	}
	return view
}

func (s *Session) Schedule() ScheduleView {
	sch := s.Flights.Schedule()
	return ScheduleView{ID: sch.ID, Date: sch.Date, Flights: s.Flights.ScheduledFlights()}
}

// PassengersByKind groups the passengers of active bookings per scheduled
// flight, domestic flights first.
func (s *Session) PassengersByKind() []KindGroup {
	scheduled := s.Flights.ScheduledFlights()
	active := s.Bookings.List()

	groups := make([]KindGroup, 0, len(domain.FlightKinds))
	for _, kind := range domain.FlightKinds {
		group := KindGroup{Kind: kind, Flights: []FlightPassengers{}}
		for _, flight := range flights.ByKind(scheduled, kind) {
			entry := FlightPassengers{Flight: flight, Passengers: []*domain.Passenger{}}
			for _, b := range active {
				if b.FlightNumber != flight.Number {
					continue
				}
				if p, err := s.Passengers.Get(b.PassportNumber); err == nil {
					entry.Passengers = append(entry.Passengers, p)
				}
			}
			group.Flights = append(group.Flights, entry)
		}
		groups = append(groups, group)
	}
	return groups
}

func (s *Session) ModifyPassenger(passport string, field passengers.Field, value string) (*domain.Passenger, error) {
	return s.Passengers.Modify(passport, field, value)
}

// Broadcast sends every announcement in order. A missing flight does not
// stop the remaining announcements.
func (s *Session) Broadcast(ctx context.Context, announcements []Announcement) ([]BroadcastResult, error) {
	results := make([]BroadcastResult, 0, len(announcements))
	var errs []error
	for _, a := range announcements {
		delivery, err := s.Flights.Notify(ctx, a.FlightNumber, a.Message)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, BroadcastResult{
			FlightNumber: a.FlightNumber,
			Delivered:    delivery.Delivered,
		})
		if delivery.Err != nil {
			errs = append(errs, delivery.Err)
		}
	}
	return results, errors.Join(errs...)
}

// Announcements are the messages the menu's notify entry sends.
func (s *Session) Announcements() []Announcement {
	out := make([]Announcement, len(s.announcements))
	copy(out, s.announcements)
	return out
}

func (s *Session) RegisterPassenger(input passengers.RegisterPassengerInput) (*domain.Passenger, error) {
	return s.Passengers.Register(input)
}

// BookFlight books and immediately confirms.
func (s *Session) BookFlight(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	created, err := s.Bookings.CreateBooking(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.Bookings.ConfirmBooking(ctx, created.ID)
}

func (s *Session) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.Bookings.CancelBooking(ctx, id)
}

func (s *Session) Passenger(passport string) (*domain.Passenger, error) {
	return s.Passengers.Get(passport)
}

// AddFlight creates a flight through the variant factory and puts it on
// the schedule.
func (s *Session) AddFlight(input flights.CreateFlightInput) (*domain.Flight, error) {
	return s.Flights.Create(input)
}

func (s *Session) SetBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	return s.Bookings.SetStatus(ctx, id, status)
}

// Flight looks the number up among the scheduled flights.
func (s *Session) Flight(number string) (*domain.Flight, error) {
	return s.Flights.Find(number)
}
