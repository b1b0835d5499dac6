package employee

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-onboarding/internal/shared/connection"
	"go-onboarding/internal/user"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindAll(ctx context.Context, filter ListFilter, offset, limit int) ([]user.User, int64, error)
	FindOptions(ctx context.Context) ([]user.User, error)
	TaskCounters(ctx context.Context, employeeIDs []string) (map[string]TaskCounter, error)
	DepartmentExists(ctx context.Context, id string) (bool, error)
	ManagerExists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, values map[string]any) error
	Delete(ctx context.Context, id string) error
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

// employees membatasi query users ke role employee.
func (r *repository) employees(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&user.User{}).Where("users.role = ?", user.RoleEmployee)
}

func (r *repository) Create(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Omit("Department").Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := r.employees(ctx).
		Preload("Department").
		First(&u, "users.id = ?", id).Error
	return &u, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter, offset, limit int) ([]user.User, int64, error) {
	var (
		rows  []user.User
		total int64
	)

	q := r.employees(ctx)
	if filter.DepartmentID != "" {
		q = q.Where("users.department_id = ?", filter.DepartmentID)
	}
	if filter.OnboardingStatus != "" {
		q = q.Where("users.onboarding_status = ?", filter.OnboardingStatus)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(users.name) LIKE ? OR LOWER(users.email) LIKE ? OR LOWER(users.employee_code) LIKE ?)", like, like, like)
	}

	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Preload("Department").Order("users.created_at DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	err := q.Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindOptions(ctx context.Context) ([]user.User, error) {
	var rows []user.User
	err := r.employees(ctx).
		Select("id", "name", "employee_code", "position").
		Where("users.is_active = ?", true).
		Order("users.name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) TaskCounters(ctx context.Context, employeeIDs []string) (map[string]TaskCounter, error) {
	res := make(map[string]TaskCounter, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return res, nil
	}

	var rows []TaskCounter
	err := r.db.WithContext(ctx).
		Table("employee_tasks").
		Select(`employee_id,
			COUNT(*) AS total,
			SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END) AS completed,
			SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END) AS pending,
			SUM(CASE WHEN status = 'in_progress' THEN 1 ELSE 0 END) AS in_progress,
			SUM(CASE WHEN status = 'overdue' THEN 1 ELSE 0 END) AS overdue`).
		Where("employee_id IN ?", employeeIDs).
		Group("employee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		res[row.EmployeeID] = row
	}
	return res, nil
}

func (r *repository) DepartmentExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// ManagerExists menerima user aktif dengan role apa pun sebagai manager.
func (r *repository) ManagerExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, id string, values map[string]any) error {
	res := r.employees(ctx).
		Where("users.id = ?", id).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete adalah soft delete: akun dinonaktifkan dan deleted_at diisi.
func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.employees(ctx).
		Where("users.id = ?", id).
		Updates(map[string]any{
			"is_active":  false,
			"deleted_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
