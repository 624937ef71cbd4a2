package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/kafka"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Handler is what a passenger does on receipt of a flight message.
type Handler interface {
	Update(passenger *domain.Passenger, message string) error
}

type HandlerFunc func(passenger *domain.Passenger, message string) error

func (f HandlerFunc) Update(passenger *domain.Passenger, message string) error {
	return f(passenger, message)
}

// PassengerLookup resolves an observer id to its passenger.
type PassengerLookup interface {
	GetByPassport(passport string) (*domain.Passenger, error)
}

type Publisher interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Routes maps a flight kind to the topic its notifications leave on.
type Routes struct {
	Domestic      string
	International string
}

func (r Routes) TopicFor(kind domain.FlightKind) string {
	switch kind {
	case domain.FlightKindDomestic:
		return r.Domestic
	case domain.FlightKindInternational:
		return r.International
	default:
		return ""
	}
}

type Dispatcher struct {
	passengers PassengerLookup
	handler    Handler
	publisher  Publisher
	routes     Routes
}

type DispatcherOption func(*Dispatcher)

// WithPublisher mirrors every broadcast to the topic routed for the
// flight's kind.
func WithPublisher(p Publisher, routes Routes) DispatcherOption {
	return func(d *Dispatcher) {
		d.publisher = p
		d.routes = routes
	}
}

func NewDispatcher(passengers PassengerLookup, handler Handler, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{passengers: passengers, handler: handler}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Delivery reports one broadcast.
type Delivery struct {
	Delivered []string
	Err       error
}

// Notify delivers message to every observer of flight, synchronously and
// in attachment order. A failing observer does not stop the broadcast and
// nothing already delivered is undone.
func (d *Dispatcher) Notify(ctx context.Context, flight *domain.Flight, message string) Delivery {
	var (
		delivery   Delivery
		errs       []error
		recipients []kafka.Recipient
	)

	for _, passport := range flight.Observers() {
		passenger, err := d.passengers.GetByPassport(passport)
		if err != nil {
			errs = append(errs, fmt.Errorf("observer %s: %w", passport, err))
			continue
		}
		if d.handler != nil {
			if err := d.handler.Update(passenger, message); err != nil {
				errs = append(errs, fmt.Errorf("observer %s: %w", passport, err))
				continue
			}
		}
		delivery.Delivered = append(delivery.Delivered, passport)
		recipients = append(recipients, kafka.Recipient{
			PassportNumber: passenger.PassportNumber,
			Name:           passenger.Name,
			Email:          passenger.Email,
		})
	}
	delivery.Err = errors.Join(errs...)

	if delivery.Err != nil {
		logrus.WithFields(logrus.Fields{
			"flight": flight.Number,
		}).WithError(delivery.Err).Warn("notification partially delivered")
	}

	d.publish(ctx, flight, message, recipients)
	return delivery
}

func (d *Dispatcher) publish(ctx context.Context, flight *domain.Flight, message string, recipients []kafka.Recipient) {
	if d.publisher == nil {
		return
	}
	topic := d.routes.TopicFor(flight.Kind)
	if topic == "" {
		return
	}

	event := kafka.NotificationEvent{
		ID:           uuid.NewString(),
		FlightNumber: flight.Number,
		Kind:         string(flight.Kind),
		Message:      message,
		Recipients:   recipients,
		SentAt:       time.Now(),
	}
	if err := d.publisher.Publish(ctx, topic, flight.Number, event); err != nil {
		logrus.WithFields(logrus.Fields{
			"flight": flight.Number,
			"topic":  topic,
		}).WithError(err).Warn("failed to publish notification")
	}
}
