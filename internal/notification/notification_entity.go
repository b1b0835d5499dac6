package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeTaskAssigned     = "task_assigned"
	TypeTaskReminder     = "task_reminder"
	TypeTaskCompleted    = "task_completed"
	TypeDocumentUploaded = "document_uploaded"
	TypeDocumentApproved = "document_approved"
	TypeDocumentRejected = "document_rejected"
	TypeSystem           = "system"
)

const (
	LinkEmployeeTasks     = "/employee/tasks"
	LinkEmployeeDocuments = "/employee/documents"
	LinkHRDocuments       = "/hr/documents"
)

type Notification struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_notifications_user_read,priority:1"`
	Title     string    `gorm:"column:title;size:255;not null"`
	Message   string    `gorm:"column:message;type:text;not null"`
	Type      string    `gorm:"column:type;size:30;not null;default:system"`
	Link      string    `gorm:"column:link;size:500"`
	IsRead    bool      `gorm:"column:is_read;not null;default:false;index:idx_notifications_user_read,priority:2"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index"`
}

func IsValidType(t string) bool {
	switch t {
	case TypeTaskAssigned, TypeTaskReminder, TypeTaskCompleted, TypeDocumentUploaded,
		TypeDocumentApproved, TypeDocumentRejected, TypeSystem:
		return true
	}
	return false
}
