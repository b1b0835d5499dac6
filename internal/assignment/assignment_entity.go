package assignment

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusOverdue    = "overdue"
)

// DashboardStatsCacheKey is the cached analytics summary that assignment
// and review changes make stale.
const DashboardStatsCacheKey = "analytics:dashboard-stats"

const defaultDueDays = 7

type EmployeeTask struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID    uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_employee_task,priority:1"`
	TaskID        uuid.UUID  `gorm:"column:task_id;type:uuid;not null;uniqueIndex:uq_employee_task,priority:2;index"`
	Status        string     `gorm:"column:status;size:20;not null;default:pending;index"`
	AssignedBy    *uuid.UUID `gorm:"column:assigned_by;type:uuid"`
	AssignedDate  time.Time  `gorm:"column:assigned_date;not null"`
	DueDate       *time.Time `gorm:"column:due_date;index"`
	CompletedDate *time.Time `gorm:"column:completed_date"`
	Notes         string     `gorm:"column:notes;type:text"`
	IsRead        bool       `gorm:"column:is_read;not null;default:false"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TaskView adalah employee_tasks yang di-join dengan task, template, dan employee.
type TaskView struct {
	ID            string
	EmployeeID    string
	TaskID        string
	Status        string
	AssignedBy    *string
	AssignedDate  time.Time
	DueDate       *time.Time
	CompletedDate *time.Time
	Notes         string
	IsRead        bool
	Title         string
	Description   string
	TaskType      string
	IsRequired    bool
	EstimatedTime int
	OrderIndex    int
	ResourceURL   string
	TemplateID    string
	TemplateName  string
	EmployeeName  string
	EmployeeEmail string
}

func (v TaskView) IsOverdueAt(now time.Time) bool {
	if v.Status == StatusCompleted || v.DueDate == nil {
		return false
	}
	return v.Status == StatusOverdue || v.DueDate.Before(now)
}

// Progress is the per-status task count of one employee.
type Progress struct {
	Total      int64
	Completed  int64
	Pending    int64
	InProgress int64
	Overdue    int64
}

func ProgressFromCounts(counts map[string]int64) Progress {
	p := Progress{
		Completed:  counts[StatusCompleted],
		Pending:    counts[StatusPending],
		InProgress: counts[StatusInProgress],
		Overdue:    counts[StatusOverdue],
	}
	for _, n := range counts {
		p.Total += n
	}
	return p
}
