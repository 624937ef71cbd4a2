// Package menu is the operator's text menu over a desk session.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Domenick1991/airdesk/internal/desk"
	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/notify"
	"github.com/Domenick1991/airdesk/internal/service/booking"
	"github.com/Domenick1991/airdesk/internal/service/passengers"
	"github.com/charmbracelet/lipgloss"
)

// Choice is a menu entry number.
type Choice int

const (
	ShowItinerary Choice = iota + 1
	ShowSchedule
	ShowPassengersByKind
	ModifyPassenger
	NotifyPassengers
	AddPassenger
	BookFlight
	CancelBooking
	ViewPassenger
	ViewFlight
	Exit
)

var entries = []struct {
	choice Choice
	label  string
}{
	{ShowItinerary, "Display Itinerary"},
	{ShowSchedule, "Display Schedule"},
	{ShowPassengersByKind, "Display Passengers by Flight Type"},
	{ModifyPassenger, "Modify Passenger Information"},
	{NotifyPassengers, "Notify Passengers"},
	{AddPassenger, "Add New Passenger"},
	{BookFlight, "Book New Flight for a Passenger"},
	{CancelBooking, "Cancel Booking"},
	{ViewPassenger, "View Specific Passenger's Details"},
	{ViewFlight, "View Flight Details"},
	{Exit, "Exit"},
}

type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4")),
		success: r.NewStyle().Foreground(lipgloss.Color("#95E1A3")),
		err:     r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("#6C757D")),
	}
}

type Menu struct {
	session *desk.Session
	in      *bufio.Scanner
	out     io.Writer
	styles  styles
}

func New(session *desk.Session, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
		styles:  newStyles(lipgloss.NewRenderer(out)),
	}
}

// UpdateHandler prints every flight notification a passenger receives.
func UpdateHandler(out io.Writer) notify.Handler {
	return notify.HandlerFunc(func(_ *domain.Passenger, message string) error {
		_, err := fmt.Fprintln(out, "Passenger received update: "+message)
		return err
	})
}

// Run loops until Exit is chosen, input ends or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		m.printMenu()
		line, ok := m.prompt("Enter your choice: ")
		if !ok {
			m.println("")
			m.println("Exiting...")
			return m.in.Err()
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < int(ShowItinerary) || n > int(Exit) {
			m.println(m.styles.err.Render("Invalid choice. Please try again."))
			continue
		}
		if Choice(n) == Exit {
			m.println("Exiting...")
			return nil
		}
		m.dispatch(ctx, Choice(n))
	}
}

func (m *Menu) dispatch(ctx context.Context, c Choice) {
	switch c {
	case ShowItinerary:
		m.showItinerary()
	case ShowSchedule:
		m.showSchedule()
	case ShowPassengersByKind:
		m.showPassengersByKind()
	case ModifyPassenger:
		m.modifyPassenger()
	case NotifyPassengers:
		m.notifyPassengers(ctx)
	case AddPassenger:
		m.addPassenger()
	case BookFlight:
		m.bookFlight(ctx)
	case CancelBooking:
		m.cancelBooking(ctx)
	case ViewPassenger:
		m.viewPassenger()
	case ViewFlight:
		m.viewFlight()
	}
}

func (m *Menu) printMenu() {
	m.println(m.styles.title.Render("Menu:"))
	for _, e := range entries {
		m.println(fmt.Sprintf("%d. %s", e.choice, e.label))
	}
}

func (m *Menu) showItinerary() {
	view := m.session.Itinerary()
	m.println("Itinerary ID: " + view.ID)
	for _, e := range view.Entries {
		m.println(e.Booking.Info())
		m.println(e.Flight.Info())
	}
}

func (m *Menu) showSchedule() {
	view := m.session.Schedule()
	m.println(fmt.Sprintf("Schedule ID: %s, Date: %s", view.ID, view.Date))
	for _, f := range view.Flights {
		m.println(f.Info())
	}
}

func (m *Menu) showPassengersByKind() {
	for _, group := range m.session.PassengersByKind() {
		m.println(m.styles.title.Render(fmt.Sprintf("Passengers on %s Flights:", group.Kind)))
		for _, fp := range group.Flights {
			m.println(fmt.Sprintf("Passengers on flight %s:", fp.Flight.Number))
			for _, p := range fp.Passengers {
				for _, line := range p.Info() {
					m.println(line)
				}
			}
		}
	}
}

func (m *Menu) modifyPassenger() {
	passport, ok := m.prompt("Enter passport number of the passenger to modify: ")
	if !ok {
		return
	}
	p, err := m.session.Passenger(passport)
	if err != nil {
		m.fail("Passenger not found")
		return
	}

	m.println("Modify Passenger Information for " + p.Name)
	m.println("1. Email")
	m.println("2. Phone Number")
	choice, ok := m.prompt("Enter your choice: ")
	if !ok {
		return
	}

	var field passengers.Field
	var label string
	switch choice {
	case "1":
		field, label = passengers.FieldEmail, "Enter new email: "
	case "2":
		field, label = passengers.FieldPhone, "Enter new phone number: "
	default:
		m.fail("Invalid choice")
		return
	}

	value, ok := m.prompt(label)
	if !ok {
		return
	}
	if _, err := m.session.ModifyPassenger(passport, field, value); err != nil {
		m.fail(err.Error())
	}
}

func (m *Menu) notifyPassengers(ctx context.Context) {
	announcements := m.session.Announcements()
	if len(announcements) == 0 {
		m.println(m.styles.dim.Render("No flights to notify."))
		return
	}
	if _, err := m.session.Broadcast(ctx, announcements); err != nil {
		m.fail(err.Error())
	}
}

func (m *Menu) addPassenger() {
	m.println("Enter passenger details:")
	var input passengers.RegisterPassengerInput
	fields := []struct {
		label string
		dst   *string
	}{
		{"Name: ", &input.Name},
		{"Email: ", &input.Email},
		{"Phone Number: ", &input.PhoneNumber},
		{"Passport Number: ", &input.PassportNumber},
	}
	for _, f := range fields {
		v, ok := m.prompt(f.label)
		if !ok {
			return
		}
		*f.dst = v
	}

	if _, err := m.session.RegisterPassenger(input); err != nil {
		m.fail("Failed to add passenger: " + err.Error())
		return
	}
	m.println(m.styles.success.Render("Passenger added successfully!"))
}

func (m *Menu) bookFlight(ctx context.Context) {
	passport, ok := m.prompt("Enter passport number of the passenger to book flight for: ")
	if !ok {
		return
	}
	if _, err := m.session.Passenger(passport); err != nil {
		m.fail("Passenger not found.")
		return
	}

	number, ok := m.prompt("Enter flight number: ")
	if !ok {
		return
	}
	if _, err := m.session.Flight(number); err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			m.fail("Flight not found")
		} else {
			m.fail(err.Error())
		}
		m.fail("Failed to book flight.")
		return
	}

	seat, ok := m.prompt("Enter seat number: ")
	if !ok {
		return
	}
	id, ok := m.prompt("Enter booking ID: ")
	if !ok {
		return
	}

	_, err := m.session.BookFlight(ctx, booking.CreateBookingInput{
		BookingID:      id,
		PassportNumber: passport,
		FlightNumber:   number,
		SeatNumber:     seat,
	})
	if err != nil {
		m.fail("Failed to book flight: " + err.Error())
		return
	}
	m.println(m.styles.success.Render("Flight booked successfully!"))
}

func (m *Menu) cancelBooking(ctx context.Context) {
	id, ok := m.prompt("Enter booking ID to cancel: ")
	if !ok {
		return
	}
	if _, err := m.session.CancelBooking(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			m.fail("Booking not found")
			return
		}
		m.fail(err.Error())
		return
	}
	m.println(m.styles.success.Render("Booking cancelled successfully!"))
}

func (m *Menu) viewPassenger() {
	passport, ok := m.prompt("Enter passport number: ")
	if !ok {
		return
	}
	p, err := m.session.Passenger(passport)
	if err != nil {
		m.fail("Passenger not found")
		return
	}
	for _, line := range p.Info() {
		m.println(line)
	}
}

func (m *Menu) viewFlight() {
	number, ok := m.prompt("Enter flight number: ")
	if !ok {
		return
	}
	f, err := m.session.Flight(number)
	if err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			m.fail("Flight not found")
			return
		}
		m.fail(err.Error())
		return
	}
	m.println(f.Info())
}

// prompt writes label and reads one trimmed line. ok is false at end of input.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) fail(s string) {
	m.println(m.styles.err.Render(s))
}
