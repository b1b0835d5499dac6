package app

import (
	"context"
	"errors"
	"time"

	"go-onboarding/internal/messaging/kafka"
	"go-onboarding/internal/messaging/kafka/producer"
	"go-onboarding/internal/shared/connection"

	"go.uber.org/zap"
)

const outboxPollInterval = 3 * time.Second

// RunWorker memindahkan event outbox ke Kafka sampai ctx dibatalkan.
func RunWorker(ctx context.Context, i *Infra) error {
	if i.Config.Kafka.Broker == "" {
		return errors.New("KAFKA_BROKER is required for the outbox worker")
	}

	writer, err := connection.ConnectKafkaWithRetry(i.Config.Kafka.Broker, connectRetries)
	if err != nil {
		return err
	}
	defer func() {
		if err := writer.Close(); err != nil {
			i.Logger.Warn("close kafka writer failed", zap.Error(err))
		}
	}()

	producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(i.GormDB), writer, i.Logger, outboxPollInterval)
	return nil
}
