package domain

import (
	"errors"
	"fmt"
)

var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrPassengerNotFound = errors.New("passenger not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrUnknownFlightKind = errors.New("unknown flight type")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrAlreadyExists     = errors.New("already exists")
)

// NotFoundError is returned by every lookup that misses.
type NotFoundError struct {
	Resource string
	Key      string
	Err      error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Key      string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Resource, e.Key)
}

func (e *ConflictError) Unwrap() error { return ErrAlreadyExists }

type TransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot change booking status from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

func FlightNotFound(number string) error {
	return &NotFoundError{Resource: "flight", Key: number, Err: ErrFlightNotFound}
}

func PassengerNotFound(passport string) error {
	return &NotFoundError{Resource: "passenger", Key: passport, Err: ErrPassengerNotFound}
}

func BookingNotFound(id string) error {
	return &NotFoundError{Resource: "booking", Key: id, Err: ErrBookingNotFound}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
