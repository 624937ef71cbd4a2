package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airdesk/config"
	"github.com/Domenick1991/airdesk/internal/bootstrap"
	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/logger"
	"github.com/Domenick1991/airdesk/internal/notify"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	updates := notify.HandlerFunc(func(p *domain.Passenger, message string) error {
		logrus.WithField("passport", p.PassportNumber).Infof("Passenger received update: %s", message)
		return nil
	})

	session, closeSession, err := bootstrap.NewSession(cfg, updates)
	if err != nil {
		logrus.Fatalf("start session: %v", err)
	}
	defer closeSession()

	if err := bootstrap.Run(ctx, cfg, session); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
