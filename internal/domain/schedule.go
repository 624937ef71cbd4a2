package domain

import (
	"fmt"

	"github.com/samber/lo"
)

// Schedule is the set of flights offered on Date, kept in insertion order.
// Duplicates are not rejected here.
type Schedule struct {
	ID            string `json:"schedule_id"`
	Date          string `json:"date"`
	flightNumbers []string
}

func NewSchedule(id, date string) *Schedule {
	return &Schedule{ID: id, Date: date}
}

func (s *Schedule) AddFlight(number string) {
	s.flightNumbers = append(s.flightNumbers, number)
}

func (s *Schedule) RemoveFlight(number string) {
	s.flightNumbers = lo.Without(s.flightNumbers, number)
}

func (s *Schedule) FlightNumbers() []string {
	out := make([]string, len(s.flightNumbers))
	copy(out, s.flightNumbers)
	return out
}

func (s *Schedule) Header() string {
	return fmt.Sprintf("Schedule ID: %s, Date: %s", s.ID, s.Date)
}
