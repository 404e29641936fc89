package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"vidtube.com/config"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/mq"
)

func main() {
	config.Init()
	url := config.RabbitMqURL()
	if url == "" {
		logrus.Fatal("rabbitmq is not configured")
	}

	consumer, err := mq.NewConsumer(url, constants.EventExchange, constants.EventAuditQueue, "#")
	if err != nil {
		logrus.Fatalf("Failed to create event consumer: %v", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	router := newRouter(&auditor{log: logger})
	logrus.Infof("Event consumer started, dedicated handlers for %v, waiting for messages...", router.Types())
	if err = consumer.Consume(ctx, router); err != nil {
		logrus.Fatalf("Event consumer stopped: %v", err)
	}
	logrus.Info("Event consumer stopped")
}
