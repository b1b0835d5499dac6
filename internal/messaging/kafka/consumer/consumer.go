package consumer

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// MessageReader dipenuhi oleh *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type HandlerFunc func(ctx context.Context, payload []byte) error

// Router memetakan event_type ke handler.
type Router map[string]HandlerFunc

// ConsumeOnboardingLifecycle membaca topic lifecycle sampai ctx selesai.
// Offset di-commit setelah handler sukses, atau ketika payload tidak bisa
// diproses sama sekali (bukan JSON, event_type kosong/tidak dikenal).
func ConsumeOnboardingLifecycle(
	ctx context.Context,
	reader MessageReader,
	router Router,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.onboarding_lifecycle")
	log.Info("onboarding lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("onboarding lifecycle consumer stopped")
				return
			}
			log.Error("fetch onboarding lifecycle message failed", zap.Error(err))
			continue
		}

		HandleMessage(ctx, reader, router, msg, log)
	}
}

// HandleMessage memproses satu pesan dan mengembalikan true jika offset-nya
// di-commit.
func HandleMessage(
	ctx context.Context,
	reader MessageReader,
	router Router,
	msg kafkago.Message,
	log *zap.Logger,
) bool {
	if !gjson.ValidBytes(msg.Value) {
		log.Error("undecodable onboarding event, skipping",
			zap.Int64("offset", msg.Offset),
			zap.Int("partition", msg.Partition),
		)
		return commit(ctx, reader, msg, log)
	}

	eventType := gjson.GetBytes(msg.Value, "event_type").String()
	requestID := gjson.GetBytes(msg.Value, "request_id").String()

	handler, ok := router[eventType]
	if !ok {
		log.Warn("unhandled onboarding event type, skipping",
			zap.String("event_type", eventType),
			zap.Int64("offset", msg.Offset),
		)
		return commit(ctx, reader, msg, log)
	}

	if err := handler(ctx, msg.Value); err != nil {
		log.Error("handle onboarding event failed",
			zap.String("event_type", eventType),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return false
	}

	if !commit(ctx, reader, msg, log) {
		return false
	}

	log.Info("onboarding event handled",
		zap.String("event_type", eventType),
		zap.String("request_id", requestID),
	)
	return true
}

func commit(ctx context.Context, reader MessageReader, msg kafkago.Message, log *zap.Logger) bool {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit onboarding lifecycle message failed", zap.Error(err))
		return false
	}
	return true
}
