package events

import (
	"encoding/json"

	"go-onboarding/internal/messaging/kafka"

	"github.com/google/uuid"
)

// NewOutboxEvent membungkus payload event menjadi baris outbox pending
// pada topic onboarding lifecycle.
func NewOutboxEvent(requestID, aggregateType, aggregateID, eventType string, payload any) (kafka.OutboxEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return kafka.OutboxEvent{}, err
	}
	return kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         OnboardingLifecycleTopic,
		Payload:       data,
		Status:        kafka.OutboxStatusPending,
	}, nil
}
