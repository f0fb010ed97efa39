package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-booking/internal/messaging/kafka/consumer"

	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	mail := buildMailer()

	welcomeConsumer := consumer.NewAccountRegisteredConsumer(
		kafkaBroker,
		"go-booking-welcome-mail",
		mail,
		logger,
	)
	defer welcomeConsumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go welcomeConsumer.Run(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
