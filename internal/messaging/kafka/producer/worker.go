package producer

import (
	"context"
	"time"

	"go-onboarding/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize = 50
	// batas batch berturut-turut per tick, supaya backlog besar tidak menahan shutdown terlalu lama
	maxBatchesPerTick = 20
)

// ProcessOutboxEvents mem-poll outbox sampai ctx selesai. Tiap tick menguras batch
// penuh berturut-turut, pass pertama langsung jalan tanpa menunggu interval.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		drain(ctx, repo, writer, log)

		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func drain(ctx context.Context, repo kafka.OutboxRepository, writer MessageWriter, log *zap.Logger) {
	for i := 0; i < maxBatchesPerTick && ctx.Err() == nil; i++ {
		_, fetched, err := publishBatch(ctx, repo, writer, log)
		if err != nil {
			log.Error("process outbox events failed", zap.Error(err))
			return
		}
		if fetched < batchSize {
			return
		}
	}
}

// ProcessPendingEvents mengirim satu batch event pending dan mengembalikan
// jumlah event yang berhasil terkirim.
func ProcessPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (int, error) {
	sent, _, err := publishBatch(ctx, repo, writer, logger)
	return sent, err
}

// publishBatch mengembalikan jumlah terkirim dan jumlah yang diambil dari outbox.
func publishBatch(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	log *zap.Logger,
) (sent, fetched int, err error) {
	pending, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return 0, 0, err
	}
	if len(pending) == 0 {
		return 0, 0, nil
	}
	log.Debug("processing pending outbox events", zap.Int("count", len(pending)))

	for _, evt := range pending {
		fields := []zap.Field{
			zap.String("outbox_id", evt.ID),
			zap.String("request_id", evt.RequestID),
			zap.String("event_type", evt.EventType),
			zap.String("topic", evt.Topic),
		}

		if pubErr := publishEvent(ctx, writer, evt); pubErr != nil {
			log.Error("publish outbox event failed", append(fields, zap.Int("retry_count", evt.RetryCount), zap.Error(pubErr))...)
			if markErr := repo.MarkFailed(ctx, evt.ID, evt.RetryCount, pubErr.Error()); markErr != nil {
				log.Error("mark outbox event failed", append(fields, zap.Error(markErr))...)
			}
			continue
		}

		if markErr := repo.MarkSent(ctx, evt.ID); markErr != nil {
			log.Error("mark outbox event sent failed", append(fields, zap.Error(markErr))...)
			continue
		}
		sent++
		log.Info("outbox event sent", fields...)
	}
	return sent, len(pending), nil
}
