package department_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-onboarding/internal/department"
	departmenterrors "go-onboarding/internal/department/errors"
	departmentMock "go-onboarding/internal/department/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   department.Service
	repo      *departmentMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	dbRedis, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   department.NewService(db, repo, dbRedis),
		repo:      repo,
		redismock: redisMock,
	}
}

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		cached, _ := json.Marshal([]department.DepartmentResponse{{ID: "d-1", Name: "Engineering", EmployeeCount: 3}})
		deps.redismock.ExpectGet(department.DepartmentAllKey).SetVal(string(cached))

		res, err := deps.service.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, int64(3), res[0].EmployeeCount)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.redismock.ExpectGet(department.DepartmentAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return([]department.Department{{ID: id, Name: "Finance"}}, nil)
		deps.repo.EXPECT().CountEmployees(ctx).Return(map[string]int64{id.String(): 4}, nil)
		deps.redismock.Regexp().ExpectSet(department.DepartmentAllKey, `.*`, 30*time.Minute).SetVal("OK")

		res, err := deps.service.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Finance", res[0].Name)
		assert.Equal(t, int64(4), res[0].EmployeeCount)
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(department.DepartmentAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
	})
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates list cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		managerID := uuid.New()

		deps.repo.EXPECT().ManagerExists(ctx, managerID.String()).Return(true, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d *department.Department) error {
				assert.Equal(t, "Engineering", d.Name)
				require.NotNil(t, d.ManagerID)
				assert.Equal(t, managerID, *d.ManagerID)
				return nil
			})
		deps.redismock.ExpectDel(department.DepartmentAllKey).SetVal(1)

		res, err := deps.service.Create(ctx, department.CreateDepartmentRequest{
			Name:      " Engineering ",
			ManagerID: managerID.String(),
		})

		require.NoError(t, err)
		assert.Equal(t, "Engineering", res.Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("unknown manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		managerID := uuid.NewString()
		deps.repo.EXPECT().ManagerExists(ctx, managerID).Return(false, nil)

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Ops", ManagerID: managerID})

		assert.ErrorIs(t, err, departmenterrors.ErrManagerNotFound)
	})

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("UNIQUE constraint failed: departments.name"))

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Ops"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNameExists)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("patches provided fields only", func(t *testing.T) {
		deps := setupServiceTest(t)
		desc := "Builds things"
		noManager := ""

		deps.repo.EXPECT().
			Update(ctx, id.String(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, values map[string]any) error {
				assert.Equal(t, map[string]any{"description": desc, "manager_id": nil}, values)
				return nil
			})
		deps.redismock.ExpectDel(department.DepartmentAllKey).SetVal(1)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&department.Department{ID: id, Name: "Eng", Description: desc}, nil)
		deps.repo.EXPECT().CountEmployees(ctx).Return(map[string]int64{}, nil)

		res, err := deps.service.Update(ctx, id.String(), department.UpdateDepartmentRequest{Description: &desc, ManagerID: &noManager})

		require.NoError(t, err)
		assert.Equal(t, desc, res.Description)
	})

	t.Run("empty body", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, id.String(), department.UpdateDepartmentRequest{})

		assert.ErrorIs(t, err, departmenterrors.ErrNoFieldsToUpdate)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		name := "New"
		deps.repo.EXPECT().Update(ctx, id.String(), gomock.Any()).Return(gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id.String(), department.UpdateDepartmentRequest{Name: &name})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("detaches references in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Detach(ctx, id).Return(nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.redismock.ExpectDel(department.DepartmentAllKey).SetVal(1)

		require.NoError(t, deps.service.Delete(ctx, id))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing department rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Detach(ctx, id).Return(nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectRollback()

		err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		assert.ErrorIs(t, deps.service.Delete(ctx, "nope"), departmenterrors.ErrInvalidDepartmentID)
	})
}

func TestDepartmentService_GetStats(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	id := uuid.New()

	deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&department.Department{ID: id}, nil)
	deps.repo.EXPECT().Stats(ctx, id.String()).Return(department.Stats{
		TotalEmployees:     3,
		OnboardedEmployees: 1,
		TotalTemplates:     2,
		AvgCompletionRate:  55.5555,
	}, nil)

	res, err := deps.service.GetStats(ctx, id.String())

	require.NoError(t, err)
	assert.Equal(t, int64(3), res.TotalEmployees)
	assert.Equal(t, 55.56, res.AvgCompletionRate)
}
