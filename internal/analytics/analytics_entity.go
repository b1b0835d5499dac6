package analytics

import "time"

const (
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"

	FormatJSON = "json"
	FormatCSV  = "csv"
)

// StatsCacheTTL berlaku untuk assignment.DashboardStatsCacheKey.
const StatsCacheTTL = 60 * time.Second

type EmployeeCounts struct {
	Total      int64 `gorm:"column:total"`
	NotStarted int64 `gorm:"column:not_started"`
	InProgress int64 `gorm:"column:in_progress"`
	Completed  int64 `gorm:"column:completed"`
}

type CompletionRow struct {
	ID                      string     `gorm:"column:id"`
	Name                    string     `gorm:"column:name"`
	DepartmentName          *string    `gorm:"column:department_name"`
	StartDate               *time.Time `gorm:"column:start_date"`
	CreatedAt               time.Time  `gorm:"column:created_at"`
	OnboardingCompletedDate *time.Time `gorm:"column:onboarding_completed_date"`
}

// Days menghitung hari dari start_date (fallback created_at) sampai selesai, dibulatkan ke atas.
func (r CompletionRow) Days() float64 {
	if r.OnboardingCompletedDate == nil {
		return 0
	}
	start := r.CreatedAt
	if r.StartDate != nil {
		start = *r.StartDate
	}
	return daysBetween(start, *r.OnboardingCompletedDate)
}

type DepartmentRow struct {
	DepartmentID   string `gorm:"column:department_id"`
	DepartmentName string `gorm:"column:department_name"`
	Total          int64  `gorm:"column:total"`
	InProgress     int64  `gorm:"column:in_progress"`
	Completed      int64  `gorm:"column:completed"`
}

type TaskDistributionRow struct {
	Completed  int64 `gorm:"column:completed"`
	InProgress int64 `gorm:"column:in_progress"`
	Pending    int64 `gorm:"column:pending"`
	Overdue    int64 `gorm:"column:overdue"`
}

type TaskCompletionRow struct {
	TaskID        string     `gorm:"column:task_id"`
	Title         string     `gorm:"column:title"`
	TemplateName  string     `gorm:"column:template_name"`
	AssignedDate  time.Time  `gorm:"column:assigned_date"`
	CompletedDate *time.Time `gorm:"column:completed_date"`
}

type StatusCount struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}
