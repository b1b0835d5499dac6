package document

import (
	"context"
	"database/sql"

	"go-onboarding/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, doc *Document) error
	FindByID(ctx context.Context, id string) (*DocumentView, error)
	FindAll(ctx context.Context, filter ListFilter) ([]DocumentView, error)
	FindByEmployee(ctx context.Context, employeeID string, limit int) ([]DocumentView, error)
	FindPending(ctx context.Context, limit int) ([]DocumentView, error)
	Review(ctx context.Context, id string, values map[string]any) error
	Delete(ctx context.Context, id string) error
	CountByTask(ctx context.Context, taskID, employeeID string) (int64, error)
	ReviewerIDs(ctx context.Context) ([]string, error)
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

const viewColumns = `d.id, d.employee_id, d.task_id, d.filename, d.original_filename, d.file_path,
	d.file_type, d.file_size, d.status, d.reviewed_by, d.reviewed_date, d.rejection_reason, d.created_at,
	u.name AS employee_name, u.email AS employee_email, t.title AS task_title, r.name AS reviewed_by_name`

func (r *repository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("documents AS d").
		Select(viewColumns).
		Joins("JOIN users u ON u.id = d.employee_id").
		Joins("LEFT JOIN employee_tasks et ON et.id = d.task_id").
		Joins("LEFT JOIN tasks t ON t.id = et.task_id").
		Joins("LEFT JOIN users r ON r.id = d.reviewed_by")
}

func (r *repository) Create(ctx context.Context, doc *Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*DocumentView, error) {
	var rows []DocumentView
	if err := r.views(ctx).Where("d.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]DocumentView, error) {
	q := r.views(ctx)
	if filter.Status != "" {
		q = q.Where("d.status = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		q = q.Where("d.employee_id = ?", filter.EmployeeID)
	}

	var rows []DocumentView
	err := q.Order("d.created_at DESC").Scan(&rows).Error
	return rows, err
}

// FindByEmployee: limit <= 0 berarti tanpa batas.
func (r *repository) FindByEmployee(ctx context.Context, employeeID string, limit int) ([]DocumentView, error) {
	q := r.views(ctx).
		Where("d.employee_id = ?", employeeID).
		Order("d.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []DocumentView
	err := q.Scan(&rows).Error
	return rows, err
}

// FindPending returns the review queue oldest first.
func (r *repository) FindPending(ctx context.Context, limit int) ([]DocumentView, error) {
	q := r.views(ctx).
		Where("d.status = ?", StatusPending).
		Order("d.created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []DocumentView
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *repository) Review(ctx context.Context, id string, values map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&Document{}).
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

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Document{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountByTask(ctx context.Context, taskID, employeeID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Document{}).
		Where("task_id = ? AND employee_id = ?", taskID, employeeID).
		Count(&n).Error
	return n, err
}

// ReviewerIDs lists active hr and admin accounts.
func (r *repository) ReviewerIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("users").
		Where("role IN ? AND is_active = ? AND deleted_at IS NULL", []string{"hr", "admin"}, true).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	return ids, err
}
