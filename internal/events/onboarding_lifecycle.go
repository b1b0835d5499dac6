package events

import "time"

const OnboardingLifecycleTopic = "hr.onboarding.lifecycle.v1"

const (
	EventTemplateAssigned = "template_assigned"
	EventDocumentReviewed = "document_reviewed"
	EventUserRegistered   = "user_registered"
)

type TemplateAssignedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeEmail string    `json:"employee_email"`
	EmployeeName  string    `json:"employee_name"`
	TemplateID    string    `json:"template_id"`
	TemplateName  string    `json:"template_name"`
	TaskTitles    []string  `json:"task_titles"`
	DueDate       time.Time `json:"due_date"`
	AssignedBy    string    `json:"assigned_by,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type DocumentReviewedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	DocumentID    string    `json:"document_id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeEmail string    `json:"employee_email"`
	EmployeeName  string    `json:"employee_name"`
	DocumentName  string    `json:"document_name"`
	Status        string    `json:"status"`
	Reason        string    `json:"reason,omitempty"`
	ReviewedBy    string    `json:"reviewed_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type UserRegisteredEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}
