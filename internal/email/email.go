// Package email turns flight notifications consumed from kafka into
// outgoing mail.
package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airdesk/internal/kafka"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Message is one mail to one recipient.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Transport delivers a composed message.
type Transport interface {
	Deliver(ctx context.Context, msg Message) error
}

// LogTransport writes messages to the log instead of a mail server.
type LogTransport struct{}

func (LogTransport) Deliver(_ context.Context, msg Message) error {
	logrus.WithFields(logrus.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info(msg.Body)
	return nil
}

type Sender struct {
	transport Transport
}

func NewSender(transport Transport) *Sender {
	if transport == nil {
		transport = LogTransport{}
	}
	return &Sender{transport: transport}
}

// Compose builds one message per recipient that has an email address.
func Compose(event kafka.NotificationEvent) []Message {
	withEmail := lo.Filter(event.Recipients, func(r kafka.Recipient, _ int) bool {
		return r.Email != ""
	})
	return lo.Map(withEmail, func(r kafka.Recipient, _ int) Message {
		return Message{
			To:      r.Email,
			Subject: fmt.Sprintf("%s flight %s update", event.Kind, event.FlightNumber),
			Body:    fmt.Sprintf("Dear %s, %s", r.Name, event.Message),
		}
	})
}

// Send delivers the event to every reachable recipient and reports every
// failure together.
func (s *Sender) Send(ctx context.Context, event kafka.NotificationEvent) error {
	var errs []error
	for _, msg := range Compose(event) {
		if err := s.transport.Deliver(ctx, msg); err != nil {
			errs = append(errs, fmt.Errorf("deliver to %s: %w", msg.To, err))
		}
	}
	return errors.Join(errs...)
}
