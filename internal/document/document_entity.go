package document

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// StorageDir is the upload subdirectory for onboarding documents.
const StorageDir = "documents"

type Document struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID       uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index"`
	TaskID           *uuid.UUID `gorm:"column:task_id;type:uuid;index"`
	Filename         string     `gorm:"column:filename;type:varchar(255);not null"`
	OriginalFilename string     `gorm:"column:original_filename;type:varchar(255);not null"`
	FilePath         string     `gorm:"column:file_path;type:text;not null"`
	FileType         string     `gorm:"column:file_type;type:varchar(150)"`
	FileSize         int64      `gorm:"column:file_size"`
	Status           string     `gorm:"column:status;type:varchar(20);not null;default:pending;index"`
	ReviewedBy       *uuid.UUID `gorm:"column:reviewed_by;type:uuid"`
	ReviewedDate     *time.Time `gorm:"column:reviewed_date"`
	RejectionReason  string     `gorm:"column:rejection_reason;type:text"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}

// DocumentView is a document joined with its owner, task and reviewer.
type DocumentView struct {
	ID               string
	EmployeeID       string
	TaskID           *string
	Filename         string
	OriginalFilename string
	FilePath         string
	FileType         string
	FileSize         int64
	Status           string
	ReviewedBy       *string
	ReviewedDate     *time.Time
	RejectionReason  string
	CreatedAt        time.Time
	EmployeeName     string
	EmployeeEmail    string
	TaskTitle        *string
	ReviewedByName   *string
}
