package producer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go-onboarding/internal/messaging/kafka"
	kafkamock "go-onboarding/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	writeFn  func(msgs ...kafkago.Message) error
	messages []kafkago.Message
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.writeFn != nil {
		if err := f.writeFn(msgs...); err != nil {
			return err
		}
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkamock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(gomock.Any(), batchSize).Return([]kafka.OutboxEvent{
			{ID: "o-1", AggregateID: "emp-1", EventType: "template_assigned", Topic: "t", Payload: []byte(`{}`), RequestID: "req-1"},
		}, nil)
		repo.EXPECT().MarkSent(gomock.Any(), "o-1").Return(nil)

		sent, err := ProcessPendingEvents(ctx, repo, writer, zap.NewNop())
		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, writer.messages, 1)
		assert.Equal(t, []byte("emp-1"), writer.messages[0].Key)
		assert.Len(t, writer.messages[0].Headers, 3)
	})

	t.Run("publish failure schedules retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkamock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{writeFn: func(...kafkago.Message) error { return errors.New("broker down") }}

		repo.EXPECT().ListPending(gomock.Any(), batchSize).Return([]kafka.OutboxEvent{
			{ID: "o-1", EventType: "document_reviewed", Topic: "t", Payload: []byte(`{}`), RetryCount: 2},
		}, nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "o-1", 2, "broker down").Return(nil)

		sent, err := ProcessPendingEvents(ctx, repo, writer, zap.NewNop())
		assert.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkamock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(gomock.Any(), batchSize).Return(nil, errors.New("db down"))

		_, err := ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())
		assert.EqualError(t, err, "db down")
	})
}

func TestDrain_ContinuesWhileBatchesAreFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkamock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{}

	full := make([]kafka.OutboxEvent, batchSize)
	for i := range full {
		full[i] = kafka.OutboxEvent{ID: fmt.Sprintf("o-%d", i), Topic: "t", Payload: []byte(`{}`)}
	}

	gomock.InOrder(
		repo.EXPECT().ListPending(gomock.Any(), batchSize).Return(full, nil),
		repo.EXPECT().ListPending(gomock.Any(), batchSize).Return([]kafka.OutboxEvent{{ID: "last", Topic: "t"}}, nil),
	)
	repo.EXPECT().MarkSent(gomock.Any(), gomock.Any()).Return(nil).Times(batchSize + 1)

	drain(context.Background(), repo, writer, zap.NewNop())

	assert.Len(t, writer.messages, batchSize+1)
}

func TestProcessOutboxEvents_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkamock.NewMockOutboxRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		ProcessOutboxEvents(ctx, repo, &fakeWriter{}, zap.NewNop(), time.Hour)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
