package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airdesk/config"
	"github.com/Domenick1991/airdesk/internal/bootstrap"
	"github.com/Domenick1991/airdesk/internal/logger"
	"github.com/Domenick1991/airdesk/internal/menu"
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

	session, closeSession, err := bootstrap.NewSession(cfg, menu.UpdateHandler(os.Stdout))
	if err != nil {
		logrus.Fatalf("start session: %v", err)
	}
	defer closeSession()

	if err := menu.New(session, os.Stdin, os.Stdout).Run(ctx); err != nil {
		logrus.Errorf("read input: %v", err)
	}
}
