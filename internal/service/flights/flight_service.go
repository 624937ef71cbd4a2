package flights

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/notify"
	"github.com/Domenick1991/airdesk/internal/repository"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

type FlightUseCase interface {
	Create(input CreateFlightInput) (*domain.Flight, error)
	Get(number string) (*domain.Flight, error)
	Schedule() *domain.Schedule
	ScheduledFlights() []*domain.Flight
	Find(number string) (*domain.Flight, error)
	Unschedule(number string) error
	Attach(number, passport string) error
	Detach(number, passport string) error
	Notify(ctx context.Context, number, message string) (notify.Delivery, error)
}

type Notifier interface {
	Notify(ctx context.Context, flight *domain.Flight, message string) notify.Delivery
}

type CreateFlightInput struct {
	Type          string `json:"type"`
	FlightNumber  string `json:"flight_number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

type FlightService struct {
	repo     repository.FlightRepository
	schedule *domain.Schedule
	notifier Notifier
}

func NewFlightService(repo repository.FlightRepository, schedule *domain.Schedule, notifier Notifier) *FlightService {
	return &FlightService{repo: repo, schedule: schedule, notifier: notifier}
}

// Create builds a flight through the variant factory, registers it and
// adds it to the schedule.
func (s *FlightService) Create(input CreateFlightInput) (*domain.Flight, error) {
	if input.FlightNumber == "" {
		return nil, errors.New("flight number is required")
	}
	flight, ok := domain.NewFlight(input.Type, input.FlightNumber, input.Origin, input.Destination, input.DepartureTime, input.ArrivalTime)
	if !ok {
		return nil, fmt.Errorf("create flight %s: %w: %q", input.FlightNumber, domain.ErrUnknownFlightKind, input.Type)
	}
	if err := s.repo.Create(flight); err != nil {
		return nil, fmt.Errorf("create flight: %w", err)
	}
	s.schedule.AddFlight(flight.Number)

	logrus.WithFields(logrus.Fields{
		"flight": flight.Number,
		"kind":   flight.Kind,
	}).Info("flight scheduled")
	return flight, nil
}

func (s *FlightService) Get(number string) (*domain.Flight, error) {
	return s.repo.GetByNumber(number)
}

func (s *FlightService) Schedule() *domain.Schedule {
	return s.schedule
}

// ScheduledFlights returns the schedule's flights in schedule order.
func (s *FlightService) ScheduledFlights() []*domain.Flight {
	numbers := s.schedule.FlightNumbers()
	out := make([]*domain.Flight, 0, len(numbers))
	for _, number := range numbers {
		if f, err := s.repo.GetByNumber(number); err == nil {
			out = append(out, f)
		}
	}
	return out
}

func (s *FlightService) Find(number string) (*domain.Flight, error) {
	return s.FindInSchedule(s.schedule, number)
}

// FindInSchedule returns the first flight of schedule whose number matches
// exactly, or ErrFlightNotFound and a nil flight.
func (s *FlightService) FindInSchedule(schedule *domain.Schedule, number string) (*domain.Flight, error) {
	for _, n := range schedule.FlightNumbers() {
		if n != number {
			continue
		}
		if f, err := s.repo.GetByNumber(n); err == nil {
			return f, nil
		}
	}
	return nil, domain.FlightNotFound(number)
}

// Unschedule removes the flight from the schedule. The flight stays in the
// registry so bookings that reference it remain valid.
func (s *FlightService) Unschedule(number string) error {
	if _, err := s.Find(number); err != nil {
		return err
	}
	s.schedule.RemoveFlight(number)
	return nil
}

func (s *FlightService) Attach(number, passport string) error {
	flight, err := s.repo.GetByNumber(number)
	if err != nil {
		return err
	}
	flight.Attach(passport)
	return nil
}

func (s *FlightService) Detach(number, passport string) error {
	flight, err := s.repo.GetByNumber(number)
	if err != nil {
		return err
	}
	flight.Detach(passport)
	return nil
}

// Notify broadcasts message to every observer of the flight.
func (s *FlightService) Notify(ctx context.Context, number, message string) (notify.Delivery, error) {
	flight, err := s.repo.GetByNumber(number)
	if err != nil {
		return notify.Delivery{}, err
	}
	return s.notifier.Notify(ctx, flight, message), nil
}

func ByKind(flights []*domain.Flight, kind domain.FlightKind) []*domain.Flight {
	return lo.Filter(flights, func(f *domain.Flight, _ int) bool {
		return f.Kind == kind
	})
}

var _ FlightUseCase = (*FlightService)(nil)
