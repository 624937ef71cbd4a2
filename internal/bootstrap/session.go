package bootstrap

import (
	"github.com/Domenick1991/airdesk/config"
	"github.com/Domenick1991/airdesk/internal/desk"
	"github.com/Domenick1991/airdesk/internal/kafka"
	"github.com/Domenick1991/airdesk/internal/notify"
	"github.com/sirupsen/logrus"
)

// NewSession builds a desk session from cfg, publishing to kafka when
// brokers are configured. The returned close func releases the producer.
func NewSession(cfg *config.Config, handler notify.Handler) (*desk.Session, func(), error) {
	var opts []desk.Option
	closeFn := func() {}

	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		routes := notify.Routes{
			Domestic:      cfg.Kafka.DomesticTopic,
			International: cfg.Kafka.InternationalTopic,
		}
		opts = append(opts, desk.WithPublisher(producer, routes, cfg.Kafka.BookingEventsTopic))
		closeFn = func() {
			if err := producer.Close(); err != nil {
				logrus.WithError(err).Warn("close kafka producer")
			}
		}
		logrus.WithField("brokers", cfg.Kafka.Brokers).Info("publishing events to kafka")
	}

	session, err := desk.NewSession(cfg.Desk, handler, opts...)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return session, closeFn, nil
}
