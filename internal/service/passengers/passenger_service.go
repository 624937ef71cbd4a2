package passengers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/repository"
	"github.com/sirupsen/logrus"
)

type PassengerUseCase interface {
	Register(input RegisterPassengerInput) (*domain.Passenger, error)
	Get(passport string) (*domain.Passenger, error)
	List() []*domain.Passenger
	Modify(passport string, field Field, value string) (*domain.Passenger, error)
}

// Field names a mutable passenger attribute.
type Field string

const (
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
)

var ErrUnknownField = errors.New("invalid choice")

type RegisterPassengerInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	PassportNumber string `json:"passport_number"`
}

type PassengerService struct {
	passengers repository.PassengerRepository
}

func NewPassengerService(passengers repository.PassengerRepository) *PassengerService {
	return &PassengerService{passengers: passengers}
}

func (s *PassengerService) Register(input RegisterPassengerInput) (*domain.Passenger, error) {
	input.PassportNumber = strings.TrimSpace(input.PassportNumber)
	if input.PassportNumber == "" {
		return nil, errors.New("passport number is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("name is required")
	}

	passenger := &domain.Passenger{
		Name:           input.Name,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		PassportNumber: input.PassportNumber,
	}
	if err := s.passengers.Create(passenger); err != nil {
		return nil, fmt.Errorf("register passenger: %w", err)
	}

	logrus.WithField("passport", passenger.PassportNumber).Info("passenger registered")
	return passenger, nil
}

func (s *PassengerService) Get(passport string) (*domain.Passenger, error) {
	return s.passengers.GetByPassport(passport)
}

func (s *PassengerService) List() []*domain.Passenger {
	return s.passengers.List()
}

func (s *PassengerService) Modify(passport string, field Field, value string) (*domain.Passenger, error) {
	passenger, err := s.passengers.GetByPassport(passport)
	if err != nil {
		return nil, err
	}

	switch field {
	case FieldEmail:
		passenger.SetEmail(value)
	case FieldPhone:
		passenger.SetPhoneNumber(value)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	logrus.WithFields(logrus.Fields{
		"passport": passport,
		"field":    field,
	}).Info("passenger modified")
	return passenger, nil
}

var _ PassengerUseCase = (*PassengerService)(nil)
