package domain

import (
	"fmt"

	"github.com/samber/lo"
)

// FlightKind is the flight variant. It decides the fare and where
// notifications for the flight are routed.
type FlightKind string

const (
	FlightKindDomestic      FlightKind = "Domestic"
	FlightKindInternational FlightKind = "International"
)

const (
	DomesticFare      = 50.0
	InternationalFare = 200.0
)

// FlightKinds lists the variants in display order.
var FlightKinds = []FlightKind{FlightKindDomestic, FlightKindInternational}

func ParseFlightKind(tag string) (FlightKind, bool) {
	switch FlightKind(tag) {
	case FlightKindDomestic, FlightKindInternational:
		return FlightKind(tag), true
	default:
		return "", false
	}
}

// Fare is a pure function of the kind.
func (k FlightKind) Fare() float64 {
	switch k {
	case FlightKindDomestic:
		return DomesticFare
	case FlightKindInternational:
		return InternationalFare
	default:
		return 0
	}
}

type Flight struct {
	Number        string     `json:"flight_number"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureTime string     `json:"departure_time"`
	ArrivalTime   string     `json:"arrival_time"`
	Kind          FlightKind `json:"kind"`

	// passport numbers in attachment order
	observers []string
}

// NewFlight creates a flight of the variant named by tag. An unknown tag
// yields (nil, false).
func NewFlight(tag, number, origin, destination, departure, arrival string) (*Flight, bool) {
	kind, ok := ParseFlightKind(tag)
	if !ok {
		return nil, false
	}
	return &Flight{
		Number:        number,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Kind:          kind,
	}, true
}

func (f *Flight) Info() string {
	return fmt.Sprintf("Flight Number: %s, Origin: %s, Destination: %s, Departure Time: %s, Arrival Time: %s",
		f.Number, f.Origin, f.Destination, f.DepartureTime, f.ArrivalTime)
}

// CheckAvailability always succeeds; seat inventory is not modelled.
func (f *Flight) CheckAvailability() bool {
	return true
}

func (f *Flight) Fare() float64 {
	return f.Kind.Fare()
}

func (f *Flight) Attach(passport string) {
	if lo.Contains(f.observers, passport) {
		return
	}
	f.observers = append(f.observers, passport)
}

func (f *Flight) Detach(passport string) {
	f.observers = lo.Without(f.observers, passport)
}

func (f *Flight) IsAttached(passport string) bool {
	return lo.Contains(f.observers, passport)
}

// Observers returns a copy of the attached passport numbers.
func (f *Flight) Observers() []string {
	out := make([]string, len(f.observers))
	copy(out, f.observers)
	return out
}
