package app

import (
	"context"
	"errors"

	"go-onboarding/internal/email"
	"go-onboarding/internal/events"
	"go-onboarding/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer membaca topic lifecycle onboarding dan mengirim email yang sesuai.
func RunConsumer(ctx context.Context, i *Infra) error {
	cfg := i.Config
	if cfg.Kafka.Broker == "" {
		return errors.New("KAFKA_BROKER is required for the consumer")
	}

	mailer, err := newMailer(i)
	if err != nil {
		return err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  []string{cfg.Kafka.Broker},
		GroupID:  cfg.Kafka.GroupID,
		Topic:    events.OnboardingLifecycleTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer func() {
		if err := reader.Close(); err != nil {
			i.Logger.Warn("close kafka reader failed", zap.Error(err))
		}
	}()

	i.Logger.Info("consumer subscribed",
		zap.String("topic", events.OnboardingLifecycleTopic),
		zap.String("group_id", cfg.Kafka.GroupID),
	)
	consumer.ConsumeOnboardingLifecycle(ctx, reader, email.NewEventRouter(mailer), i.Logger)
	return nil
}
