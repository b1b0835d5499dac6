package analytics

import (
	"time"

	"go-onboarding/internal/assignment"
	"go-onboarding/internal/user"
)

type DashboardStats struct {
	TotalEmployees        int64   `json:"total_employees"`
	OnboardingInProgress  int64   `json:"onboarding_in_progress"`
	OnboardingCompleted   int64   `json:"onboarding_completed"`
	OverdueTasks          int64   `json:"overdue_tasks"`
	AverageCompletionDays float64 `json:"average_completion_days"`
	CompletionRate        float64 `json:"completion_rate"`
}

type ChartData struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type TrendResponse struct {
	Period string `json:"period"`
	ChartData
}

type DepartmentAnalytics struct {
	DepartmentID        string  `json:"department_id"`
	DepartmentName      string  `json:"department_name"`
	TotalEmployees      int64   `json:"total_employees"`
	ActiveOnboarding    int64   `json:"active_onboarding"`
	CompletedOnboarding int64   `json:"completed_onboarding"`
	CompletionRate      float64 `json:"completion_rate"`
}

type TimeToCompletion struct {
	Employees int     `json:"employees"`
	MinDays   float64 `json:"min_days"`
	MaxDays   float64 `json:"max_days"`
	AvgDays   float64 `json:"avg_days"`
}

type TaskCompletionTime struct {
	TaskID       string  `json:"task_id"`
	Title        string  `json:"title"`
	TemplateName string  `json:"template_name"`
	Completions  int     `json:"completions"`
	AvgDays      float64 `json:"avg_days"`
	MinDays      float64 `json:"min_days"`
	MaxDays      float64 `json:"max_days"`
}

type TaskDistribution struct {
	Completed  int64 `json:"completed"`
	InProgress int64 `json:"in_progress"`
	Pending    int64 `json:"pending"`
	Overdue    int64 `json:"overdue"`
}

type OverdueTasksResponse struct {
	Total int                               `json:"total"`
	Tasks []assignment.EmployeeTaskResponse `json:"tasks"`
}

type DocumentStatusResponse struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type TimelineEvent struct {
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
}

type TimelineResponse struct {
	Employee user.UserResponse           `json:"employee"`
	Progress assignment.ProgressResponse `json:"progress"`
	Events   []TimelineEvent             `json:"events"`
}

// File adalah hasil export/report yang dikirim sebagai attachment.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}
