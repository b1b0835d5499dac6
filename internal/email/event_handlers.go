package email

import (
	"context"
	"encoding/json"
	"fmt"

	"go-onboarding/internal/events"
	"go-onboarding/internal/messaging/kafka/consumer"
)

// NewEventRouter menghubungkan event lifecycle onboarding ke email.
func NewEventRouter(svc Service) consumer.Router {
	return consumer.Router{
		events.EventTemplateAssigned: func(ctx context.Context, payload []byte) error {
			var evt events.TemplateAssignedEvent
			if err := json.Unmarshal(payload, &evt); err != nil {
				return fmt.Errorf("decode %s: %w", events.EventTemplateAssigned, err)
			}
			if evt.EmployeeEmail == "" {
				return nil
			}
			return svc.SendTaskAssigned(ctx, evt.EmployeeEmail, evt.EmployeeName, evt.TemplateName, evt.TaskTitles, evt.DueDate)
		},
		events.EventDocumentReviewed: func(ctx context.Context, payload []byte) error {
			var evt events.DocumentReviewedEvent
			if err := json.Unmarshal(payload, &evt); err != nil {
				return fmt.Errorf("decode %s: %w", events.EventDocumentReviewed, err)
			}
			if evt.EmployeeEmail == "" {
				return nil
			}
			return svc.SendDocumentReviewed(ctx, evt.EmployeeEmail, evt.EmployeeName, evt.DocumentName, evt.Status, evt.Reason)
		},
		events.EventUserRegistered: func(ctx context.Context, payload []byte) error {
			var evt events.UserRegisteredEvent
			if err := json.Unmarshal(payload, &evt); err != nil {
				return fmt.Errorf("decode %s: %w", events.EventUserRegistered, err)
			}
			return svc.SendWelcome(ctx, evt.Email, evt.Name)
		},
	}
}
