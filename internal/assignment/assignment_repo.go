package assignment

import (
	"context"
	"database/sql"
	"time"

	"go-onboarding/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const taskViewColumns = `et.id, et.employee_id, et.task_id, et.status, et.assigned_by, et.assigned_date,
	et.due_date, et.completed_date, et.notes, et.is_read,
	t.title, t.description, t.task_type, t.is_required, t.estimated_time, t.order_index, t.resource_url,
	t.template_id, tm.name AS template_name, u.name AS employee_name, u.email AS employee_email`

//go:generate mockgen -source=assignment_repo.go -destination=mock/assignment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	HasTemplateAssignment(ctx context.Context, employeeID, templateID string) (bool, error)
	CreateMany(ctx context.Context, rows []EmployeeTask) (int64, error)
	FindByID(ctx context.Context, id string) (*TaskView, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]TaskView, error)
	FindOverdue(ctx context.Context, employeeID string, now time.Time) ([]TaskView, error)
	FindUnfinished(ctx context.Context, employeeID string) ([]TaskView, error)
	CountByStatus(ctx context.Context, employeeID string) (map[string]int64, error)
	UpdateStatus(ctx context.Context, id string, values map[string]any) error
	MarkRead(ctx context.Context, id string) error
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
	FindOnboardingStatus(ctx context.Context, employeeID string) (string, error)
	UpdateOnboarding(ctx context.Context, employeeID, status string, completedDate *time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("employee_tasks AS et").
		Select(taskViewColumns).
		Joins("JOIN tasks t ON t.id = et.task_id").
		Joins("JOIN templates tm ON tm.id = t.template_id").
		Joins("JOIN users u ON u.id = et.employee_id")
}

func (r *repository) HasTemplateAssignment(ctx context.Context, employeeID, templateID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("employee_tasks AS et").
		Joins("JOIN tasks t ON t.id = et.task_id").
		Where("et.employee_id = ? AND t.template_id = ?", employeeID, templateID).
		Count(&n).Error
	return n > 0, err
}

// CreateMany melewati baris yang sudah ada (employee_id, task_id) dan
// mengembalikan jumlah baris yang benar-benar ter-insert.
func (r *repository) CreateMany(ctx context.Context, rows []EmployeeTask) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "task_id"}},
			DoNothing: true,
		}).
		Create(&rows)
	return res.RowsAffected, res.Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*TaskView, error) {
	var views []TaskView
	err := r.views(ctx).
		Where("et.id = ?", id).
		Limit(1).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &views[0], nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]TaskView, error) {
	var views []TaskView
	err := r.views(ctx).
		Where("et.employee_id = ?", employeeID).
		Order("et.assigned_date ASC, t.order_index ASC").
		Scan(&views).Error
	return views, err
}

// FindOverdue: employeeID kosong berarti semua employee.
func (r *repository) FindOverdue(ctx context.Context, employeeID string, now time.Time) ([]TaskView, error) {
	q := r.views(ctx).
		Where("et.status <> ? AND et.due_date < ?", StatusCompleted, now)
	if employeeID != "" {
		q = q.Where("et.employee_id = ?", employeeID)
	}

	var views []TaskView
	err := q.Order("et.due_date ASC").Scan(&views).Error
	return views, err
}

func (r *repository) FindUnfinished(ctx context.Context, employeeID string) ([]TaskView, error) {
	var views []TaskView
	err := r.views(ctx).
		Where("et.employee_id = ? AND et.status <> ?", employeeID, StatusCompleted).
		Order("et.due_date ASC, t.order_index ASC").
		Scan(&views).Error
	return views, err
}

func (r *repository) CountByStatus(ctx context.Context, employeeID string) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.db.WithContext(ctx).
		Model(&EmployeeTask{}).
		Select("status, COUNT(*) AS total").
		Where("employee_id = ?", employeeID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, values map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&EmployeeTask{}).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) MarkRead(ctx context.Context, id string) error {
	return r.UpdateStatus(ctx, id, map[string]any{"is_read": true})
}

func (r *repository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&EmployeeTask{}).
		Where("status IN ? AND due_date < ?", []string{StatusPending, StatusInProgress}, now).
		Updates(map[string]any{"status": StatusOverdue, "updated_at": now})
	return res.RowsAffected, res.Error
}

func (r *repository) FindOnboardingStatus(ctx context.Context, employeeID string) (string, error) {
	var statuses []string
	err := r.db.WithContext(ctx).
		Table("users").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Limit(1).
		Pluck("onboarding_status", &statuses).Error
	if err != nil {
		return "", err
	}
	if len(statuses) == 0 {
		return "", gorm.ErrRecordNotFound
	}
	return statuses[0], nil
}

func (r *repository) UpdateOnboarding(ctx context.Context, employeeID, status string, completedDate *time.Time) error {
	return r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", employeeID).
		Updates(map[string]any{
			"onboarding_status":         status,
			"onboarding_completed_date": completedDate,
			"updated_at":                time.Now().UTC(),
		}).Error
}
