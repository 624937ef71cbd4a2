package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airdesk/config"
	"github.com/Domenick1991/airdesk/internal/email"
	"github.com/Domenick1991/airdesk/internal/kafka"
	"github.com/Domenick1991/airdesk/internal/logger"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Resolve()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if err := logger.Setup(cfg.Log); err != nil {
		logrus.Fatalf("setup logger: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		logrus.Fatal("kafka brokers are not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.DomesticTopic, cfg.Kafka.InternationalTopic)
	defer consumer.Close()

	emailSender := email.NewSender(email.LogTransport{})

	logrus.Info("worker started")
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.NotificationEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logrus.WithField("topic", msg.Topic).Warnf("decode event error: %v", err)
			return nil
		}
		if err := emailSender.Send(ctx, event); err != nil {
			logrus.WithField("flight", event.FlightNumber).Warnf("send notification: %v", err)
		}
		return nil
	})
	if err != nil {
		logrus.Errorf("consumer stopped: %v", err)
	}
	logrus.Info("worker stopped")
}
