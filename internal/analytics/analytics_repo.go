package analytics

import (
	"context"
	"time"

	"go-onboarding/internal/user"

	"gorm.io/gorm"
)

var unfinishedStatuses = []string{"pending", "in_progress"}

//go:generate mockgen -source=analytics_repo.go -destination=mock/analytics_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (EmployeeCounts, error)
	CountOverdueTasks(ctx context.Context, now time.Time) (int64, error)
	CompletedEmployees(ctx context.Context) ([]CompletionRow, error)
	DepartmentBreakdown(ctx context.Context) ([]DepartmentRow, error)
	TaskDistribution(ctx context.Context, now time.Time) (TaskDistributionRow, error)
	CompletedTasks(ctx context.Context) ([]TaskCompletionRow, error)
	EmployeesCreatedSince(ctx context.Context, since time.Time) ([]time.Time, error)
	DocumentStatusCounts(ctx context.Context) ([]StatusCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) employees(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&user.User{}).Where("users.role = ?", user.RoleEmployee)
}

func (r *repository) CountEmployees(ctx context.Context) (EmployeeCounts, error) {
	var row EmployeeCounts
	err := r.employees(ctx).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN onboarding_status = ? THEN 1 ELSE 0 END), 0) AS not_started,
			COALESCE(SUM(CASE WHEN onboarding_status = ? THEN 1 ELSE 0 END), 0) AS in_progress,
			COALESCE(SUM(CASE WHEN onboarding_status = ? THEN 1 ELSE 0 END), 0) AS completed`,
			user.OnboardingNotStarted, user.OnboardingInProgress, user.OnboardingCompleted).
		Scan(&row).Error
	return row, err
}

// CountOverdueTasks menghitung task berstatus overdue plus yang lewat due date tapi belum disapu job.
func (r *repository) CountOverdueTasks(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("employee_tasks").
		Where("status = ? OR (status IN ? AND due_date < ?)", "overdue", unfinishedStatuses, now).
		Count(&n).Error
	return n, err
}

func (r *repository) CompletedEmployees(ctx context.Context) ([]CompletionRow, error) {
	var rows []CompletionRow
	err := r.employees(ctx).
		Select("users.id, users.name, users.start_date, users.created_at, users.onboarding_completed_date, d.name AS department_name").
		Joins("LEFT JOIN departments d ON d.id = users.department_id").
		Where("users.onboarding_status = ? AND users.onboarding_completed_date IS NOT NULL", user.OnboardingCompleted).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) DepartmentBreakdown(ctx context.Context) ([]DepartmentRow, error) {
	var rows []DepartmentRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT d.id AS department_id, d.name AS department_name,
			COUNT(u.id) AS total,
			COALESCE(SUM(CASE WHEN u.onboarding_status = ? THEN 1 ELSE 0 END), 0) AS in_progress,
			COALESCE(SUM(CASE WHEN u.onboarding_status = ? THEN 1 ELSE 0 END), 0) AS completed
		FROM departments d
		LEFT JOIN users u ON u.department_id = d.id AND u.role = ? AND u.deleted_at IS NULL
		GROUP BY d.id, d.name
		ORDER BY d.name ASC
	`, user.OnboardingInProgress, user.OnboardingCompleted, user.RoleEmployee).Scan(&rows).Error
	return rows, err
}

// TaskDistribution membagi employee_tasks ke bucket yang saling lepas; pending/in_progress
// yang lewat due date masuk overdue.
func (r *repository) TaskDistribution(ctx context.Context, now time.Time) (TaskDistributionRow, error) {
	var row TaskDistributionRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed,
			COALESCE(SUM(CASE WHEN status = 'in_progress' AND (due_date IS NULL OR due_date >= ?) THEN 1 ELSE 0 END), 0) AS in_progress,
			COALESCE(SUM(CASE WHEN status = 'pending' AND (due_date IS NULL OR due_date >= ?) THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN status = 'overdue' OR (status IN ? AND due_date < ?) THEN 1 ELSE 0 END), 0) AS overdue
		FROM employee_tasks
	`, now, now, unfinishedStatuses, now).Scan(&row).Error
	return row, err
}

func (r *repository) CompletedTasks(ctx context.Context) ([]TaskCompletionRow, error) {
	var rows []TaskCompletionRow
	err := r.db.WithContext(ctx).
		Table("employee_tasks et").
		Select("et.task_id, t.title, tp.name AS template_name, et.assigned_date, et.completed_date").
		Joins("JOIN tasks t ON t.id = et.task_id").
		Joins("JOIN templates tp ON tp.id = t.template_id").
		Where("et.status = ? AND et.completed_date IS NOT NULL", "completed").
		Order("tp.name ASC, t.order_index ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) EmployeesCreatedSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.employees(ctx).
		Where("users.created_at >= ?", since).
		Order("users.created_at ASC").
		Pluck("users.created_at", &times).Error
	return times, err
}

func (r *repository) DocumentStatusCounts(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Table("documents").
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}
