package template

import (
	"time"

	"github.com/google/uuid"
)

const (
	TaskTypeUpload   = "upload"
	TaskTypeRead     = "read"
	TaskTypeWatch    = "watch"
	TaskTypeMeeting  = "meeting"
	TaskTypeForm     = "form"
	TaskTypeTraining = "training"
)

const DefaultCompletionDays = 7

type Template struct {
	ID                      uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Name                    string     `gorm:"column:name;size:255;not null"`
	Description             string     `gorm:"column:description;type:text"`
	DepartmentID            *uuid.UUID `gorm:"column:department_id;type:uuid;index"`
	EstimatedCompletionDays int        `gorm:"column:estimated_completion_days;not null;default:7"`
	IsActive                bool       `gorm:"column:is_active;not null;default:true;index"`
	CreatedBy               *uuid.UUID `gorm:"column:created_by;type:uuid"`
	CreatedAt               time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt               time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	Department *TemplateDepartment `gorm:"foreignKey:DepartmentID;references:ID;-:migration"`
	Creator    *TemplateCreator    `gorm:"foreignKey:CreatedBy;references:ID;-:migration"`
	Tasks      []Task              `gorm:"foreignKey:TemplateID;references:ID"`
}

type Task struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	TemplateID    uuid.UUID `gorm:"column:template_id;type:uuid;not null;index"`
	Title         string    `gorm:"column:title;size:255;not null"`
	Description   string    `gorm:"column:description;type:text"`
	TaskType      string    `gorm:"column:task_type;size:20;not null"`
	IsRequired    bool      `gorm:"column:is_required;not null"`
	EstimatedTime int       `gorm:"column:estimated_time;not null;default:0"`
	OrderIndex    int       `gorm:"column:order_index;not null;default:0"`
	ResourceURL   string    `gorm:"column:resource_url;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

type TemplateDepartment struct {
	ID   uuid.UUID `gorm:"primaryKey"`
	Name string    `gorm:"column:name"`
}

func (TemplateDepartment) TableName() string {
	return "departments"
}

type TemplateCreator struct {
	ID   uuid.UUID `gorm:"primaryKey"`
	Name string    `gorm:"column:name"`
}

func (TemplateCreator) TableName() string {
	return "users"
}

// AssignmentRow adalah satu baris employee_tasks milik template beserta data employee.
type AssignmentRow struct {
	EmployeeID       string
	Name             string
	Email            string
	EmployeeCode     string
	Position         string
	StartDate        *time.Time
	OnboardingStatus string
	DepartmentName   *string
	Status           string
	AssignedDate     time.Time
	DueDate          *time.Time
	CompletedDate    *time.Time
}

// EmployeeRow dipakai untuk daftar employee yang bisa di-assign dan progress semua employee.
type EmployeeRow struct {
	ID               string
	Name             string
	Email            string
	EmployeeCode     string
	Position         string
	StartDate        *time.Time
	OnboardingStatus string
	DepartmentName   *string
}

// EmployeeTaskCount adalah jumlah task per status milik satu employee.
type EmployeeTaskCount struct {
	EmployeeID string
	Status     string
	Total      int64
}

func IsValidTaskType(t string) bool {
	switch t {
	case TaskTypeUpload, TaskTypeRead, TaskTypeWatch, TaskTypeMeeting, TaskTypeForm, TaskTypeTraining:
		return true
	}
	return false
}
