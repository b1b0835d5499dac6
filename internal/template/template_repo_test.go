package template_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go-onboarding/internal/assignment"
	"go-onboarding/internal/database"
	"go-onboarding/internal/department"
	"go-onboarding/internal/shared/connection"
	"go-onboarding/internal/template"
	"go-onboarding/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (template.Repository, *gorm.DB) {
	t.Helper()
	db, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "template.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return template.NewRepository(db), db
}

func seedTemplate(t *testing.T, repo template.Repository, name string, tasks int) *template.Template {
	t.Helper()
	ctx := context.Background()
	tpl := &template.Template{ID: uuid.New(), Name: name, Description: name + " flow", EstimatedCompletionDays: 7, IsActive: true}
	require.NoError(t, repo.Create(ctx, tpl))

	var rows []template.Task
	for i := tasks - 1; i >= 0; i-- {
		rows = append(rows, template.Task{
			ID:         uuid.New(),
			TemplateID: tpl.ID,
			Title:      name + " task",
			TaskType:   template.TaskTypeRead,
			IsRequired: i != 0,
			OrderIndex: i,
		})
	}
	require.NoError(t, repo.CreateTasks(ctx, rows))
	return tpl
}

func seedEmployee(t *testing.T, db *gorm.DB, name string, deptID *uuid.UUID) *user.User {
	t.Helper()
	u := &user.User{
		ID:               uuid.New(),
		Name:             name,
		Email:            uuid.NewString() + "@example.com",
		Password:         "hash",
		Role:             user.RoleEmployee,
		EmployeeCode:     "EMP" + uuid.NewString()[:6],
		OnboardingStatus: user.OnboardingNotStarted,
		IsActive:         true,
		DepartmentID:     deptID,
	}
	require.NoError(t, db.Omit("Department").Create(u).Error)
	return u
}

func TestRepository_FindAllFilters(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	eng := seedTemplate(t, repo, "Engineering", 2)
	sales := seedTemplate(t, repo, "Sales", 1)
	require.NoError(t, repo.Update(ctx, sales.ID.String(), map[string]any{"is_active": false}))

	active, err := repo.FindAll(ctx, template.ListFilter{})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, eng.ID, active[0].ID)
	require.Len(t, active[0].Tasks, 2)
	assert.Equal(t, 0, active[0].Tasks[0].OrderIndex)
	assert.False(t, active[0].Tasks[0].IsRequired)

	all, err := repo.FindAll(ctx, template.ListFilter{IsActive: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	inactive, err := repo.FindAll(ctx, template.ListFilter{IsActive: "false"})
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, sales.ID, inactive[0].ID)

	searched, err := repo.FindAll(ctx, template.ListFilter{IsActive: "all", Search: "SALES"})
	require.NoError(t, err)
	assert.Len(t, searched, 1)
}

func TestRepository_DepartmentPreload(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	dept := department.Department{ID: uuid.New(), Name: "Engineering"}
	require.NoError(t, db.Omit("Manager").Create(&dept).Error)
	tpl := seedTemplate(t, repo, "Backend", 1)
	require.NoError(t, repo.Update(ctx, tpl.ID.String(), map[string]any{"department_id": dept.ID}))

	got, err := repo.FindByID(ctx, tpl.ID.String())
	require.NoError(t, err)
	require.NotNil(t, got.Department)
	assert.Equal(t, "Engineering", got.Department.Name)

	ok, err := repo.DepartmentExists(ctx, dept.ID.String())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRepository_AssignmentQueries(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	tpl := seedTemplate(t, repo, "Engineering", 2)
	other := seedTemplate(t, repo, "Other", 1)
	ana := seedEmployee(t, db, "Ana", nil)
	seedEmployee(t, db, "Budi", nil)

	n, err := repo.CountAssignments(ctx, tpl.ID.String())
	require.NoError(t, err)
	assert.Zero(t, n)

	tasks, err := repo.FindTasks(ctx, tpl.ID.String())
	require.NoError(t, err)
	now := time.Now().UTC()
	due := now.AddDate(0, 0, 7)
	for i, task := range tasks {
		status := assignment.StatusPending
		if i == 0 {
			status = assignment.StatusCompleted
		}
		require.NoError(t, db.Create(&assignment.EmployeeTask{
			ID:           uuid.New(),
			EmployeeID:   ana.ID,
			TaskID:       task.ID,
			Status:       status,
			AssignedDate: now,
			DueDate:      &due,
		}).Error)
	}

	n, err = repo.CountAssignments(ctx, tpl.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.CountAssignments(ctx, other.ID.String())
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.CountTaskAssignments(ctx, tasks[0].ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	rows, err := repo.FindAssignmentRows(ctx, tpl.ID.String())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ana.ID.String(), rows[0].EmployeeID)
	assert.Equal(t, "Ana", rows[0].Name)

	assigned, err := repo.AssignedEmployeeIDs(ctx, tpl.ID.String())
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{ana.ID.String(): true}, assigned)

	employees, err := repo.FindEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Ana", employees[0].Name)

	counts, err := repo.CountTasksByEmployee(ctx)
	require.NoError(t, err)
	assert.Len(t, counts, 2)
}

func TestRepository_TaskLifecycle(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	tpl := seedTemplate(t, repo, "Engineering", 3)

	tasks, err := repo.FindTasks(ctx, tpl.ID.String())
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	require.NoError(t, repo.UpdateTask(ctx, tasks[1].ID.String(), map[string]any{"title": "Renamed"}))
	got, err := repo.FindTask(ctx, tasks[1].ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	require.NoError(t, repo.DeleteTask(ctx, tasks[1].ID.String()))
	assert.ErrorIs(t, repo.DeleteTask(ctx, tasks[1].ID.String()), gorm.ErrRecordNotFound)

	require.NoError(t, repo.DeleteTasks(ctx, tpl.ID.String()))
	tasks, err = repo.FindTasks(ctx, tpl.ID.String())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
