package department_test

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

func setupRepo(t *testing.T) (department.Repository, *gorm.DB) {
	t.Helper()
	db, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "department.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return department.NewRepository(db), db
}

func seedEmployee(t *testing.T, db *gorm.DB, name, code, status string, deptID *uuid.UUID) *user.User {
	t.Helper()
	u := &user.User{
		ID:               uuid.New(),
		Name:             name,
		Email:            code + "@example.com",
		Password:         "hash",
		Role:             user.RoleEmployee,
		EmployeeCode:     code,
		DepartmentID:     deptID,
		OnboardingStatus: status,
		IsActive:         true,
	}
	require.NoError(t, db.Omit("Department").Create(u).Error)
	return u
}

func seedTasks(t *testing.T, db *gorm.DB, employeeID uuid.UUID, statuses ...string) {
	t.Helper()
	for _, status := range statuses {
		row := assignment.EmployeeTask{
			ID:           uuid.New(),
			EmployeeID:   employeeID,
			TaskID:       uuid.New(),
			Status:       status,
			AssignedDate: time.Now().UTC(),
		}
		require.NoError(t, db.Create(&row).Error)
	}
}

func TestRepository_CRUD(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	manager := seedEmployee(t, db, "Hana", "EMP000001", user.OnboardingCompleted, nil)
	dept := &department.Department{ID: uuid.New(), Name: "Engineering", ManagerID: &manager.ID}
	require.NoError(t, repo.Create(ctx, dept))
	require.NoError(t, repo.Create(ctx, &department.Department{ID: uuid.New(), Name: "Finance"}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Engineering", all[0].Name)
	require.NotNil(t, all[0].Manager)
	assert.Equal(t, "Hana", all[0].Manager.Name)

	ok, err := repo.ManagerExists(ctx, manager.ID.String())
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.ManagerExists(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Update(ctx, dept.ID.String(), map[string]any{"description": "Builds things"}))
	got, err := repo.FindByID(ctx, dept.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Builds things", got.Description)

	assert.ErrorIs(t, repo.Update(ctx, uuid.NewString(), map[string]any{"name": "x"}), gorm.ErrRecordNotFound)

	err = repo.Create(ctx, &department.Department{ID: uuid.New(), Name: "Finance"})
	assert.Error(t, err)
}

func TestRepository_CountsAndStats(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	dept := &department.Department{ID: uuid.New(), Name: "Engineering"}
	require.NoError(t, repo.Create(ctx, dept))

	rina := seedEmployee(t, db, "Rina", "EMP000001", user.OnboardingCompleted, &dept.ID)
	budi := seedEmployee(t, db, "Budi", "EMP000002", user.OnboardingInProgress, &dept.ID)
	seedEmployee(t, db, "Sari", "EMP000003", user.OnboardingNotStarted, &dept.ID)

	seedTasks(t, db, rina.ID, assignment.StatusCompleted, assignment.StatusCompleted)
	seedTasks(t, db, budi.ID, assignment.StatusCompleted, assignment.StatusPending)

	tpl := template.Template{ID: uuid.New(), Name: "Engineering Onboarding", DepartmentID: &dept.ID, IsActive: true}
	require.NoError(t, db.Omit("Department", "Creator").Create(&tpl).Error)

	counts, err := repo.CountEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[dept.ID.String()])

	stats, err := repo.Stats(ctx, dept.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalEmployees)
	assert.Equal(t, int64(1), stats.OnboardedEmployees)
	assert.Equal(t, int64(1), stats.TotalTemplates)
	// (100 + 50) / 2, Sari tidak punya task
	assert.InDelta(t, 75.0, stats.AvgCompletionRate, 0.001)
}

func TestRepository_DetachAndDelete(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	dept := &department.Department{ID: uuid.New(), Name: "Engineering"}
	require.NoError(t, repo.Create(ctx, dept))
	rina := seedEmployee(t, db, "Rina", "EMP000001", user.OnboardingNotStarted, &dept.ID)
	tpl := template.Template{ID: uuid.New(), Name: "Engineering Onboarding", DepartmentID: &dept.ID, IsActive: true}
	require.NoError(t, db.Omit("Department", "Creator").Create(&tpl).Error)

	require.NoError(t, repo.Detach(ctx, dept.ID.String()))
	require.NoError(t, repo.Delete(ctx, dept.ID.String()))

	var u user.User
	require.NoError(t, db.First(&u, "id = ?", rina.ID).Error)
	assert.Nil(t, u.DepartmentID)

	var got template.Template
	require.NoError(t, db.First(&got, "id = ?", tpl.ID).Error)
	assert.Nil(t, got.DepartmentID)

	_, err := repo.FindByID(ctx, dept.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, dept.ID.String()), gorm.ErrRecordNotFound)
}
