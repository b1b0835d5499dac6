package user_test

import (
	"context"
	"path/filepath"
	"testing"

	"go-onboarding/internal/database"
	"go-onboarding/internal/department"
	"go-onboarding/internal/shared/connection"
	"go-onboarding/internal/user"
	usererrors "go-onboarding/internal/user/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (user.Repository, *gorm.DB) {
	t.Helper()
	db, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "user.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return user.NewRepository(db), db
}

func newUser(name, email, role, code string) *user.User {
	return &user.User{
		ID:               uuid.New(),
		Name:             name,
		Email:            email,
		Password:         "hash",
		Role:             role,
		EmployeeCode:     code,
		OnboardingStatus: user.OnboardingNotStarted,
		IsActive:         true,
	}
}

func TestRepository_CreateAndFind(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	dept := department.Department{ID: uuid.New(), Name: "Finance"}
	require.NoError(t, db.Omit("Manager").Create(&dept).Error)

	u := newUser("Rina", "Rina@Example.com", user.RoleEmployee, "EMP000001")
	u.DepartmentID = &dept.ID
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.FindByEmail(ctx, " rina@example.com ")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = repo.FindByID(ctx, u.ID.String())
	require.NoError(t, err)
	require.NotNil(t, got.Department)
	assert.Equal(t, "Finance", got.Department.Name)

	_, err = repo.FindByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_FindAllFilters(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("Rina", "rina@example.com", user.RoleEmployee, "EMP000001")))
	require.NoError(t, repo.Create(ctx, newUser("Hana", "hana@example.com", user.RoleHR, "EMP000002")))
	inactive := newUser("Budi", "budi@example.com", user.RoleEmployee, "EMP000003")
	require.NoError(t, repo.Create(ctx, inactive))
	require.NoError(t, repo.UpdateColumns(ctx, inactive.ID.String(), map[string]any{"is_active": false}))

	rows, err := repo.FindAll(ctx, user.ListFilter{Role: user.RoleEmployee})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	active := true
	rows, err = repo.FindAll(ctx, user.ListFilter{Role: user.RoleEmployee, IsActive: &active})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rina", rows[0].Name)

	rows, err = repo.FindAll(ctx, user.ListFilter{Search: "emp000002"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hana", rows[0].Name)
}

func TestRepository_UniqueViolationsAreMapped(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("Rina", "rina@example.com", user.RoleEmployee, "EMP000001")))

	err := repo.Create(ctx, newUser("Rina 2", "rina@example.com", user.RoleEmployee, "EMP000002"))
	require.Error(t, err)
	assert.ErrorIs(t, user.MapRepositoryError(err), usererrors.ErrEmailAlreadyRegistered)

	err = repo.Create(ctx, newUser("Budi", "budi@example.com", user.RoleEmployee, "EMP000001"))
	require.Error(t, err)
	assert.ErrorIs(t, user.MapRepositoryError(err), usererrors.ErrEmployeeCodeExists)
}

func TestRepository_UpdateColumnsAndDelete(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.UpdateColumns(ctx, uuid.NewString(), map[string]any{"is_active": false}), gorm.ErrRecordNotFound)

	u := newUser("Rina", "rina@example.com", user.RoleEmployee, "EMP000001")
	require.NoError(t, repo.Create(ctx, u))
	require.NoError(t, repo.Delete(ctx, u.ID.String()))
	assert.ErrorIs(t, repo.Delete(ctx, u.ID.String()), gorm.ErrRecordNotFound)
}
