package domain

import "fmt"

// Passenger is a traveller. PassportNumber is the lookup key.
type Passenger struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	PassportNumber string `json:"passport_number"`
}

func (p *Passenger) SetEmail(email string) {
	p.Email = email
}

func (p *Passenger) SetPhoneNumber(phone string) {
	p.PhoneNumber = phone
}

func (p Passenger) Details() string {
	return fmt.Sprintf("Name: %s, Email: %s, Phone Number: %s", p.Name, p.Email, p.PhoneNumber)
}

// Info is Details followed by the passport line.
func (p Passenger) Info() []string {
	return []string{p.Details(), "Passport Number: " + p.PassportNumber}
}
