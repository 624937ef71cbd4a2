package flights

import (
	"context"
	"testing"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/notify"
	"github.com/Domenick1991/airdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, flight *domain.Flight, message string) notify.Delivery {
	args := m.Called(ctx, flight, message)
	return args.Get(0).(notify.Delivery)
}

func newService(t *testing.T, notifier Notifier) *FlightService {
	t.Helper()
	service := NewFlightService(repository.NewFlightRepository(), domain.NewSchedule("S123", "2023-06-15"), notifier)

	_, err := service.Create(CreateFlightInput{
		Type: "Domestic", FlightNumber: "FL123", Origin: "New York", Destination: "Los Angeles",
		DepartureTime: "2023-06-15 10:00", ArrivalTime: "2023-06-15 14:00",
	})
	require.NoError(t, err)
	_, err = service.Create(CreateFlightInput{
		Type: "International", FlightNumber: "FL456", Origin: "New York", Destination: "London",
		DepartureTime: "2023-06-16 18:00", ArrivalTime: "2023-06-17 06:00",
	})
	require.NoError(t, err)
	return service
}

func TestFlightService_FindInSchedule(t *testing.T) {
	service := newService(t, &MockNotifier{})

	flight, err := service.Find("FL123")
	require.NoError(t, err)
	assert.Equal(t, domain.FlightKindDomestic, flight.Kind)
	assert.Equal(t, 50.0, flight.Fare())

	flight, err = service.Find("FL999")
	assert.Nil(t, flight)
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
	assert.True(t, domain.IsNotFound(err))
}

func TestFlightService_FindInOtherSchedule(t *testing.T) {
	service := newService(t, &MockNotifier{})
	other := domain.NewSchedule("S124", "2023-06-16")
	other.AddFlight("FL456")

	_, err := service.FindInSchedule(other, "FL123")
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)

	flight, err := service.FindInSchedule(other, "FL456")
	require.NoError(t, err)
	assert.Equal(t, 200.0, flight.Fare())
}

func TestFlightService_Create_Errors(t *testing.T) {
	service := newService(t, &MockNotifier{})

	testCases := []struct {
		name  string
		input CreateFlightInput
		check func(t *testing.T, err error)
	}{
		{
			name:  "unknown type",
			input: CreateFlightInput{Type: "Charter", FlightNumber: "FL777"},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, domain.ErrUnknownFlightKind) },
		},
		{
			name:  "duplicate number",
			input: CreateFlightInput{Type: "Domestic", FlightNumber: "FL123"},
			check: func(t *testing.T, err error) { assert.True(t, domain.IsConflict(err)) },
		},
		{
			name:  "missing number",
			input: CreateFlightInput{Type: "Domestic"},
			check: func(t *testing.T, err error) { assert.ErrorContains(t, err, "flight number is required") },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			flight, err := service.Create(tc.input)
			assert.Nil(t, flight)
			tc.check(t, err)
		})
	}
	assert.Equal(t, []string{"FL123", "FL456"}, service.Schedule().FlightNumbers())
}

func TestFlightService_ScheduledFlightsAndByKind(t *testing.T) {
	service := newService(t, &MockNotifier{})

	flights := service.ScheduledFlights()
	require.Len(t, flights, 2)
	assert.Equal(t, "FL123", flights[0].Number)
	assert.Equal(t, "FL456", flights[1].Number)

	assert.Equal(t, []*domain.Flight{flights[0]}, ByKind(flights, domain.FlightKindDomestic))
	assert.Equal(t, []*domain.Flight{flights[1]}, ByKind(flights, domain.FlightKindInternational))
}

func TestFlightService_Unschedule(t *testing.T) {
	service := newService(t, &MockNotifier{})

	require.NoError(t, service.Unschedule("FL123"))
	_, err := service.Find("FL123")
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)

	flight, err := service.Get("FL123")
	require.NoError(t, err)
	assert.Equal(t, "FL123", flight.Number)

	assert.ErrorIs(t, service.Unschedule("FL123"), domain.ErrFlightNotFound)
}

func TestFlightService_AttachDetachNotify(t *testing.T) {
	notifier := &MockNotifier{}
	service := newService(t, notifier)
	ctx := context.Background()

	require.NoError(t, service.Attach("FL123", "P12345"))
	flight, _ := service.Get("FL123")
	assert.Equal(t, []string{"P12345"}, flight.Observers())

	notifier.On("Notify", ctx, flight, "x").Return(notify.Delivery{Delivered: []string{"P12345"}}).Once()
	delivery, err := service.Notify(ctx, "FL123", "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"P12345"}, delivery.Delivered)

	require.NoError(t, service.Detach("FL123", "P12345"))
	assert.Empty(t, flight.Observers())

	_, err = service.Notify(ctx, "FL999", "x")
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
	assert.ErrorIs(t, service.Attach("FL999", "P1"), domain.ErrFlightNotFound)
	assert.ErrorIs(t, service.Detach("FL999", "P1"), domain.ErrFlightNotFound)

	notifier.AssertExpectations(t)
}
