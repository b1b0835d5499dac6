package department

import (
	"context"
	"database/sql"

	"go-onboarding/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	CountEmployees(ctx context.Context) (map[string]int64, error)
	ManagerExists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, values map[string]any) error
	Detach(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, id string) (Stats, error)
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Omit("Manager").Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Preload("Manager").
		First(&dept, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) CountEmployees(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		DepartmentID string
		Total        int64
	}
	err := r.db.WithContext(ctx).
		Table("users").
		Select("department_id, COUNT(*) AS total").
		Where("department_id IS NOT NULL AND deleted_at IS NULL").
		Group("department_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.DepartmentID] = row.Total
	}
	return counts, nil
}

func (r *repository) ManagerExists(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("id = ? AND deleted_at IS NULL", id).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) Update(ctx context.Context, id string, values map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&Department{}).
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

// Detach melepas referensi users dan templates ke department sebelum dihapus.
func (r *repository) Detach(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	if err := db.Table("users").Where("department_id = ?", id).Update("department_id", nil).Error; err != nil {
		return err
	}
	return db.Table("templates").Where("department_id = ?", id).Update("department_id", nil).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Department{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Stats(ctx context.Context, id string) (Stats, error) {
	var stats Stats
	db := r.db.WithContext(ctx)

	if err := db.Table("users").
		Where("department_id = ? AND deleted_at IS NULL", id).
		Count(&stats.TotalEmployees).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Table("users").
		Where("department_id = ? AND deleted_at IS NULL AND onboarding_status = ?", id, "completed").
		Count(&stats.OnboardedEmployees).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Table("templates").
		Where("department_id = ?", id).
		Count(&stats.TotalTemplates).Error; err != nil {
		return Stats{}, err
	}

	var perEmployee []struct {
		EmployeeID string
		Completed  int64
		Total      int64
	}
	err := db.Table("employee_tasks AS et").
		Select("et.employee_id, SUM(CASE WHEN et.status = 'completed' THEN 1 ELSE 0 END) AS completed, COUNT(*) AS total").
		Joins("JOIN users u ON u.id = et.employee_id").
		Where("u.department_id = ? AND u.deleted_at IS NULL", id).
		Group("et.employee_id").
		Scan(&perEmployee).Error
	if err != nil {
		return Stats{}, err
	}

	// rata-rata hanya dihitung dari employee yang punya task
	var sum float64
	var n int
	for _, row := range perEmployee {
		if row.Total == 0 {
			continue
		}
		sum += float64(row.Completed) / float64(row.Total) * 100
		n++
	}
	if n > 0 {
		stats.AvgCompletionRate = sum / float64(n)
	}
	return stats, nil
}
