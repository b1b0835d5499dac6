package template

import (
	"context"
	"database/sql"
	"strings"

	"go-onboarding/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=template_repo.go -destination=mock/template_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context, filter ListFilter) ([]Template, error)
	FindByID(ctx context.Context, id string) (*Template, error)
	Create(ctx context.Context, tpl *Template) error
	Update(ctx context.Context, id string, values map[string]any) error
	DepartmentExists(ctx context.Context, id string) (bool, error)
	CountAssignments(ctx context.Context, templateID string) (int64, error)

	FindTasks(ctx context.Context, templateID string) ([]Task, error)
	FindTask(ctx context.Context, taskID string) (*Task, error)
	CreateTasks(ctx context.Context, tasks []Task) error
	UpdateTask(ctx context.Context, taskID string, values map[string]any) error
	DeleteTask(ctx context.Context, taskID string) error
	DeleteTasks(ctx context.Context, templateID string) error
	CountTaskAssignments(ctx context.Context, taskID string) (int64, error)

	FindAssignmentRows(ctx context.Context, templateID string) ([]AssignmentRow, error)
	FindEmployees(ctx context.Context) ([]EmployeeRow, error)
	AssignedEmployeeIDs(ctx context.Context, templateID string) (map[string]bool, error)
	CountTasksByEmployee(ctx context.Context) ([]EmployeeTaskCount, error)
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

func orderedTasks(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC, created_at ASC")
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Template, error) {
	q := r.db.WithContext(ctx).
		Model(&Template{}).
		Preload("Department").
		Preload("Creator").
		Preload("Tasks", orderedTasks)

	if filter.DepartmentID != "" {
		q = q.Where("department_id = ?", filter.DepartmentID)
	}
	switch filter.IsActive {
	case "all":
	case "false":
		q = q.Where("is_active = ?", false)
	default:
		q = q.Where("is_active = ?", true)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var templates []Template
	err := q.Order("created_at DESC").Find(&templates).Error
	return templates, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Template, error) {
	var tpl Template
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Creator").
		Preload("Tasks", orderedTasks).
		First(&tpl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *repository) Create(ctx context.Context, tpl *Template) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(tpl).Error
}

func (r *repository) Update(ctx context.Context, id string, values map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&Template{}).
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

func (r *repository) DepartmentExists(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("id = ?", id).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) CountAssignments(ctx context.Context, templateID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("employee_tasks AS et").
		Joins("JOIN tasks t ON t.id = et.task_id").
		Where("t.template_id = ?", templateID).
		Count(&n).Error
	return n, err
}

func (r *repository) FindTasks(ctx context.Context, templateID string) ([]Task, error) {
	var tasks []Task
	err := orderedTasks(r.db.WithContext(ctx)).
		Where("template_id = ?", templateID).
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) FindTask(ctx context.Context, taskID string) (*Task, error) {
	var task Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", taskID).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *repository) CreateTasks(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

func (r *repository) UpdateTask(ctx context.Context, taskID string, values map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("id = ?", taskID).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteTask(ctx context.Context, taskID string) error {
	res := r.db.WithContext(ctx).Delete(&Task{}, "id = ?", taskID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteTasks(ctx context.Context, templateID string) error {
	return r.db.WithContext(ctx).Delete(&Task{}, "template_id = ?", templateID).Error
}

func (r *repository) CountTaskAssignments(ctx context.Context, taskID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("employee_tasks").
		Where("task_id = ?", taskID).
		Count(&n).Error
	return n, err
}

func (r *repository) FindAssignmentRows(ctx context.Context, templateID string) ([]AssignmentRow, error) {
	var rows []AssignmentRow
	err := r.db.WithContext(ctx).
		Table("employee_tasks AS et").
		Select(`u.id AS employee_id, u.name, u.email, u.employee_code, u.position, u.start_date,
			u.onboarding_status, d.name AS department_name,
			et.status, et.assigned_date, et.due_date, et.completed_date`).
		Joins("JOIN tasks t ON t.id = et.task_id").
		Joins("JOIN users u ON u.id = et.employee_id").
		Joins("LEFT JOIN departments d ON d.id = u.department_id").
		Where("t.template_id = ?", templateID).
		Order("et.assigned_date DESC, u.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindEmployees(ctx context.Context) ([]EmployeeRow, error) {
	var rows []EmployeeRow
	err := r.db.WithContext(ctx).
		Table("users AS u").
		Select("u.id, u.name, u.email, u.employee_code, u.position, u.start_date, u.onboarding_status, d.name AS department_name").
		Joins("LEFT JOIN departments d ON d.id = u.department_id").
		Where("u.role = ? AND u.is_active = ? AND u.deleted_at IS NULL", "employee", true).
		Order("u.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) AssignedEmployeeIDs(ctx context.Context, templateID string) (map[string]bool, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("employee_tasks AS et").
		Joins("JOIN tasks t ON t.id = et.task_id").
		Where("t.template_id = ?", templateID).
		Pluck("et.employee_id", &ids).Error
	if err != nil {
		return nil, err
	}

	assigned := make(map[string]bool, len(ids))
	for _, id := range ids {
		assigned[id] = true
	}
	return assigned, nil
}

func (r *repository) CountTasksByEmployee(ctx context.Context) ([]EmployeeTaskCount, error) {
	var rows []EmployeeTaskCount
	err := r.db.WithContext(ctx).
		Table("employee_tasks").
		Select("employee_id, status, COUNT(*) AS total").
		Group("employee_id, status").
		Scan(&rows).Error
	return rows, err
}
