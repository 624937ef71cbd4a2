package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/kafka"
	"github.com/Domenick1991/airdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

type received struct {
	passport string
	message  string
}

type recorder struct {
	got  []received
	fail map[string]bool
}

func (r *recorder) Update(p *domain.Passenger, message string) error {
	if r.fail[p.PassportNumber] {
		return errors.New("mailbox full")
	}
	r.got = append(r.got, received{passport: p.PassportNumber, message: message})
	return nil
}

func setup(t *testing.T) (repository.PassengerRepository, *domain.Flight) {
	t.Helper()
	passengers := repository.NewPassengerRepository()
	require.NoError(t, passengers.Create(&domain.Passenger{Name: "John Doe", Email: "john@example.com", PassportNumber: "P12345"}))
	require.NoError(t, passengers.Create(&domain.Passenger{Name: "Jane Smith", Email: "jane@example.com", PassportNumber: "P54321"}))
	flight, ok := domain.NewFlight("Domestic", "FL123", "New York", "Los Angeles", "2023-06-15 10:00", "2023-06-15 14:00")
	require.True(t, ok)
	return passengers, flight
}

func TestDispatcher_AttachedPassengerReceivesOnce(t *testing.T) {
	passengers, flight := setup(t)
	rec := &recorder{}
	d := NewDispatcher(passengers, rec)

	flight.Attach("P12345")
	delivery := d.Notify(context.Background(), flight, "x")

	require.NoError(t, delivery.Err)
	assert.Equal(t, []received{{passport: "P12345", message: "x"}}, rec.got)
	assert.Equal(t, []string{"P12345"}, delivery.Delivered)
}

func TestDispatcher_DetachedPassengerReceivesNothing(t *testing.T) {
	passengers, flight := setup(t)
	rec := &recorder{}
	d := NewDispatcher(passengers, rec)

	flight.Attach("P12345")
	flight.Detach("P12345")
	d.Notify(context.Background(), flight, "x")

	assert.Empty(t, rec.got)
}

func TestDispatcher_AttachmentOrder(t *testing.T) {
	passengers, flight := setup(t)
	rec := &recorder{}
	d := NewDispatcher(passengers, HandlerFunc(rec.Update))

	flight.Attach("P54321")
	flight.Attach("P12345")
	d.Notify(context.Background(), flight, "gate change")

	assert.Equal(t, []received{
		{passport: "P54321", message: "gate change"},
		{passport: "P12345", message: "gate change"},
	}, rec.got)
}

func TestDispatcher_BestEffort(t *testing.T) {
	passengers, flight := setup(t)
	rec := &recorder{fail: map[string]bool{"P12345": true}}
	d := NewDispatcher(passengers, rec)

	flight.Attach("P12345")
	flight.Attach("GHOST")
	flight.Attach("P54321")
	delivery := d.Notify(context.Background(), flight, "delay")

	assert.Error(t, delivery.Err)
	assert.ErrorIs(t, delivery.Err, domain.ErrPassengerNotFound)
	assert.Equal(t, []string{"P54321"}, delivery.Delivered)
	assert.Equal(t, []received{{passport: "P54321", message: "delay"}}, rec.got)
}

func TestDispatcher_PublishesToRoutedTopic(t *testing.T) {
	passengers, domestic := setup(t)
	international, _ := domain.NewFlight("International", "FL456", "New York", "London", "", "")
	publisher := &MockPublisher{}
	routes := Routes{Domestic: "dom", International: "intl"}
	d := NewDispatcher(passengers, &recorder{}, WithPublisher(publisher, routes))
	ctx := context.Background()

	domestic.Attach("P12345")
	international.Attach("P54321")

	publisher.On("Publish", ctx, "dom", "FL123", mock.MatchedBy(func(e kafka.NotificationEvent) bool {
		return e.Message == "d" && e.Kind == "Domestic" && len(e.Recipients) == 1 && e.Recipients[0].Email == "john@example.com"
	})).Return(nil).Once()
	publisher.On("Publish", ctx, "intl", "FL456", mock.AnythingOfType("kafka.NotificationEvent")).Return(errors.New("broker down")).Once()

	assert.NoError(t, d.Notify(ctx, domestic, "d").Err)
	assert.NoError(t, d.Notify(ctx, international, "i").Err)

	publisher.AssertExpectations(t)
}

func TestRoutes_TopicFor(t *testing.T) {
	routes := Routes{Domestic: "dom", International: "intl"}
	assert.Equal(t, "dom", routes.TopicFor(domain.FlightKindDomestic))
	assert.Equal(t, "intl", routes.TopicFor(domain.FlightKindInternational))
	assert.Empty(t, routes.TopicFor(domain.FlightKind("Cargo")))
}
