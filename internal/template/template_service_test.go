package template_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-onboarding/internal/template"
	templateerrors "go-onboarding/internal/template/errors"
	templateMock "go-onboarding/internal/template/mock"

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
	service   template.Service
	repo      *templateMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	dbRedis, redisMock := redismock.NewClientMock()
	repo := templateMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   template.NewService(db, repo, dbRedis),
		repo:      repo,
		redismock: redisMock,
	}
}

func expectInvalidate(deps *serviceDeps, keys ...string) {
	deps.redismock.ExpectScan(0, template.TemplateListKeyPrefix+"*", 100).SetVal(keys, 0)
	if len(keys) > 0 {
		deps.redismock.ExpectDel(keys...).SetVal(int64(len(keys)))
	}
}

func sampleTemplate(id uuid.UUID, tasks int) *template.Template {
	tpl := &template.Template{
		ID:                      id,
		Name:                    "Engineering Onboarding",
		EstimatedCompletionDays: 5,
		IsActive:                true,
	}
	for i := 0; i < tasks; i++ {
		tpl.Tasks = append(tpl.Tasks, template.Task{
			ID:         uuid.New(),
			TemplateID: id,
			Title:      "Task",
			TaskType:   template.TaskTypeRead,
			IsRequired: i%2 == 0,
			OrderIndex: i,
		})
	}
	return tpl
}

func TestTemplateService_GetAll(t *testing.T) {
	ctx := context.Background()
	filter := template.ListFilter{Search: "Eng"}
	key := template.ListCacheKey(filter)

	t.Run("cache key is stable per filter", func(t *testing.T) {
		assert.Equal(t, "templates:list:search=eng", key)
		assert.Equal(t, "templates:list:", template.ListCacheKey(template.ListFilter{}))
	})

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		cached, _ := json.Marshal([]template.TemplateResponse{{ID: "t-1", Name: "Cached"}})
		deps.redismock.ExpectGet(key).SetVal(string(cached))

		res, err := deps.service.GetAll(ctx, filter)

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Cached", res[0].Name)
	})

	t.Run("cache miss loads and stores for an hour", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindAll(ctx, filter).Return([]template.Template{*sampleTemplate(id, 2)}, nil)
		deps.redismock.Regexp().ExpectSet(key, `.*`, time.Hour).SetVal("OK")

		res, err := deps.service.GetAll(ctx, filter)

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, 2, res[0].TasksCount)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestTemplateService_Create(t *testing.T) {
	ctx := context.Background()
	creator := uuid.New()

	t.Run("template and tasks in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		notRequired := false
		order := 9

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		var created uuid.UUID
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tpl *template.Template) error {
				created = tpl.ID
				assert.Equal(t, template.DefaultCompletionDays, tpl.EstimatedCompletionDays)
				assert.True(t, tpl.IsActive)
				require.NotNil(t, tpl.CreatedBy)
				assert.Equal(t, creator, *tpl.CreatedBy)
				return nil
			})
		deps.repo.EXPECT().
			CreateTasks(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tasks []template.Task) error {
				require.Len(t, tasks, 2)
				assert.Equal(t, 0, tasks[0].OrderIndex)
				assert.True(t, tasks[0].IsRequired)
				assert.Equal(t, 9, tasks[1].OrderIndex)
				assert.False(t, tasks[1].IsRequired)
				assert.Equal(t, created, tasks[1].TemplateID)
				return nil
			})
		deps.sqlMock.ExpectCommit()
		expectInvalidate(deps, "templates:list:")
		deps.repo.EXPECT().
			FindByID(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string) (*template.Template, error) {
				return sampleTemplate(uuid.MustParse(id), 2), nil
			})

		res, err := deps.service.Create(ctx, creator.String(), template.CreateTemplateRequest{
			Name: "Engineering Onboarding",
			Tasks: []template.TaskRequest{
				{Title: "Read handbook", TaskType: template.TaskTypeRead},
				{Title: "Upload ID", TaskType: template.TaskTypeUpload, IsRequired: &notRequired, OrderIndex: &order},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, created.String(), res.ID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("task insert failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().CreateTasks(ctx, gomock.Any()).Return(errors.New("insert failed"))
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, creator.String(), template.CreateTemplateRequest{
			Name:  "Broken",
			Tasks: []template.TaskRequest{{Title: "x", TaskType: template.TaskTypeForm}},
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown department", func(t *testing.T) {
		deps := setupServiceTest(t)
		deptID := uuid.NewString()
		deps.repo.EXPECT().DepartmentExists(ctx, deptID).Return(false, nil)

		_, err := deps.service.Create(ctx, creator.String(), template.CreateTemplateRequest{Name: "X", DepartmentID: deptID})

		assert.ErrorIs(t, err, templateerrors.ErrDepartmentNotFound)
	})

	t.Run("invalid task type", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, creator.String(), template.CreateTemplateRequest{
			Name:  "X",
			Tasks: []template.TaskRequest{{Title: "x", TaskType: "dance"}},
		})

		assert.ErrorIs(t, err, templateerrors.ErrInvalidTaskType)
	})

	t.Run("blank task title is rejected before any write", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, creator.String(), template.CreateTemplateRequest{
			Name:  "X",
			Tasks: []template.TaskRequest{{Title: " \t ", TaskType: template.TaskTypeRead}},
		})

		assert.ErrorIs(t, err, templateerrors.ErrTaskTitleRequired)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestTemplateService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("replacing tasks of an assigned template is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(sampleTemplate(id, 1), nil)
		deps.repo.EXPECT().CountAssignments(ctx, id.String()).Return(int64(3), nil)

		tasks := []template.TaskRequest{{Title: "New", TaskType: template.TaskTypeRead}}
		_, err := deps.service.Update(ctx, id.String(), template.UpdateTemplateRequest{Tasks: &tasks})

		assert.ErrorIs(t, err, templateerrors.ErrReplaceAssignedTasks)
	})

	t.Run("replaces tasks when unassigned", func(t *testing.T) {
		deps := setupServiceTest(t)
		name := "Renamed"
		tasks := []template.TaskRequest{{Title: "Only", TaskType: template.TaskTypeMeeting}}

		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(sampleTemplate(id, 2), nil)
		deps.repo.EXPECT().CountAssignments(ctx, id.String()).Return(int64(0), nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Update(ctx, id.String(), map[string]any{"name": "Renamed"}).Return(nil)
		deps.repo.EXPECT().DeleteTasks(ctx, id.String()).Return(nil)
		deps.repo.EXPECT().
			CreateTasks(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, got []template.Task) error {
				require.Len(t, got, 1)
				assert.Equal(t, id, got[0].TemplateID)
				return nil
			})
		deps.sqlMock.ExpectCommit()
		expectInvalidate(deps)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(sampleTemplate(id, 1), nil)

		res, err := deps.service.Update(ctx, id.String(), template.UpdateTemplateRequest{Name: &name, Tasks: &tasks})

		require.NoError(t, err)
		assert.Equal(t, 1, res.TasksCount)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("empty body", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(sampleTemplate(id, 0), nil)

		_, err := deps.service.Update(ctx, id.String(), template.UpdateTemplateRequest{})

		assert.ErrorIs(t, err, templateerrors.ErrNoFieldsToUpdate)
	})
}

func TestTemplateService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("blocked while assigned", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(sampleTemplate(id, 2), nil)
		deps.repo.EXPECT().CountAssignments(ctx, id.String()).Return(int64(1), nil)

		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, templateerrors.ErrTemplateAssigned)
	})

	t.Run("soft delete", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(sampleTemplate(id, 2), nil)
		deps.repo.EXPECT().CountAssignments(ctx, id.String()).Return(int64(0), nil)
		deps.repo.EXPECT().Update(ctx, id.String(), map[string]any{"is_active": false}).Return(nil)
		expectInvalidate(deps, "templates:list:", "templates:list:search=eng")

		err := deps.service.Delete(ctx, id.String())

		require.NoError(t, err)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, templateerrors.ErrTemplateNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.Delete(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, templateerrors.ErrInvalidTemplateID)
	})
}

func TestTemplateService_Duplicate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	src := sampleTemplate(id, 3)

	deps := setupServiceTest(t)
	deps.repo.EXPECT().FindByID(ctx, id.String()).Return(src, nil)
	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tpl *template.Template) error {
			assert.Equal(t, "Engineering Onboarding (Copy)", tpl.Name)
			assert.NotEqual(t, id, tpl.ID)
			return nil
		})
	deps.repo.EXPECT().
		CreateTasks(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tasks []template.Task) error {
			require.Len(t, tasks, 3)
			for i, task := range tasks {
				assert.NotEqual(t, src.Tasks[i].ID, task.ID)
				assert.Equal(t, src.Tasks[i].IsRequired, task.IsRequired)
				assert.Equal(t, src.Tasks[i].OrderIndex, task.OrderIndex)
			}
			return nil
		})
	deps.sqlMock.ExpectCommit()
	expectInvalidate(deps)
	deps.repo.EXPECT().
		FindByID(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, newID string) (*template.Template, error) {
			dup := sampleTemplate(uuid.MustParse(newID), 3)
			dup.Name = "Engineering Onboarding (Copy)"
			return dup, nil
		})

	res, err := deps.service.Duplicate(ctx, id.String(), uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, "Engineering Onboarding (Copy)", res.Name)
	assert.Equal(t, 3, res.TasksCount)
}

func TestTemplateService_TaskSubresources(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	otherTemplate := uuid.New()
	taskID := uuid.New()

	t.Run("add task appends at the end", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(sampleTemplate(id, 2), nil)
		deps.repo.EXPECT().
			CreateTasks(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tasks []template.Task) error {
				assert.Equal(t, 2, tasks[0].OrderIndex)
				return nil
			})
		expectInvalidate(deps)

		res, err := deps.service.AddTask(ctx, id.String(), template.TaskRequest{Title: "Meet buddy", TaskType: template.TaskTypeMeeting})

		require.NoError(t, err)
		assert.Equal(t, "Meet buddy", res.Title)
		assert.True(t, res.IsRequired)
	})

	t.Run("update task of another template", func(t *testing.T) {
		deps := setupServiceTest(t)
		title := "x"
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(sampleTemplate(id, 0), nil)
		deps.repo.EXPECT().FindTask(ctx, taskID.String()).Return(&template.Task{ID: taskID, TemplateID: otherTemplate}, nil)

		_, err := deps.service.UpdateTask(ctx, id.String(), taskID.String(), template.UpdateTaskRequest{Title: &title})

		assert.ErrorIs(t, err, templateerrors.ErrTaskNotInTemplate)
	})

	t.Run("update task keeps explicit false", func(t *testing.T) {
		deps := setupServiceTest(t)
		notRequired := false
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(sampleTemplate(id, 0), nil)
		deps.repo.EXPECT().FindTask(ctx, taskID.String()).Return(&template.Task{ID: taskID, TemplateID: id, IsRequired: true}, nil)
		deps.repo.EXPECT().UpdateTask(ctx, taskID.String(), map[string]any{"is_required": false}).Return(nil)
		deps.repo.EXPECT().FindTask(ctx, taskID.String()).Return(&template.Task{ID: taskID, TemplateID: id, IsRequired: false}, nil)
		expectInvalidate(deps)

		res, err := deps.service.UpdateTask(ctx, id.String(), taskID.String(), template.UpdateTaskRequest{IsRequired: &notRequired})

		require.NoError(t, err)
		assert.False(t, res.IsRequired)
	})

	t.Run("remove assigned task is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(sampleTemplate(id, 0), nil)
		deps.repo.EXPECT().FindTask(ctx, taskID.String()).Return(&template.Task{ID: taskID, TemplateID: id}, nil)
		deps.repo.EXPECT().CountTaskAssignments(ctx, taskID.String()).Return(int64(2), nil)

		err := deps.service.RemoveTask(ctx, id.String(), taskID.String())

		assert.ErrorIs(t, err, templateerrors.ErrTaskAssigned)
	})

	t.Run("remove unknown task", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(sampleTemplate(id, 0), nil)
		deps.repo.EXPECT().FindTask(ctx, taskID.String()).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.RemoveTask(ctx, id.String(), taskID.String())

		assert.ErrorIs(t, err, templateerrors.ErrTaskNotFound)
	})
}

func TestTemplateService_Reports(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	assigned := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	done := assigned.Add(48 * time.Hour)
	due := assigned.AddDate(0, 0, 5)

	rows := []template.AssignmentRow{
		{EmployeeID: "e-1", Name: "Ana", Status: "completed", AssignedDate: assigned, DueDate: &due, CompletedDate: &done},
		{EmployeeID: "e-1", Name: "Ana", Status: "pending", AssignedDate: assigned, DueDate: &due},
		{EmployeeID: "e-1", Name: "Ana", Status: "in_progress", AssignedDate: assigned, DueDate: &due},
		{EmployeeID: "e-2", Name: "Budi", Status: "completed", AssignedDate: assigned, DueDate: &due, CompletedDate: &done},
		{EmployeeID: "e-2", Name: "Budi", Status: "completed", AssignedDate: assigned, DueDate: &due, CompletedDate: &done},
		{EmployeeID: "e-2", Name: "Budi", Status: "completed", AssignedDate: assigned, DueDate: &due, CompletedDate: &done},
	}

	t.Run("assignments aggregate per employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(sampleTemplate(id, 3), nil)
		deps.repo.EXPECT().FindAssignmentRows(ctx, id.String()).Return(rows, nil)

		res, err := deps.service.GetAssignments(ctx, id.String())

		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, 3, res[0].TotalTasks)
		assert.Equal(t, 1, res[0].CompletedTasks)
		assert.Equal(t, 33.33, res[0].Percentage)
		assert.Equal(t, 100.0, res[1].Percentage)
		assert.Equal(t, due.Format(time.RFC3339), res[0].DueDate)
	})

	t.Run("analytics", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(sampleTemplate(id, 3), nil)
		deps.repo.EXPECT().FindAssignmentRows(ctx, id.String()).Return(rows, nil)

		res, err := deps.service.GetAnalytics(ctx, id.String())

		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalAssignments)
		assert.Equal(t, 1, res.CompletedEmployees)
		assert.Equal(t, 1, res.InProgressEmployees)
		assert.Equal(t, 0, res.PendingEmployees)
		assert.Equal(t, 4, res.CompletedTasks)
		assert.Equal(t, 1, res.PendingTasks)
		assert.Equal(t, 1, res.InProgressTasks)
		assert.Equal(t, 2.0, res.AvgCompletionDays)
	})

	t.Run("analytics without assignments", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(sampleTemplate(id, 3), nil)
		deps.repo.EXPECT().FindAssignmentRows(ctx, id.String()).Return(nil, nil)

		res, err := deps.service.GetAnalytics(ctx, id.String())

		require.NoError(t, err)
		assert.Equal(t, 0, res.TotalAssignments)
		assert.Zero(t, res.AvgCompletionDays)
	})

	t.Run("employees for assignment flags assigned ones", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().AssignedEmployeeIDs(ctx, id.String()).Return(map[string]bool{"e-1": true}, nil)
		deps.repo.EXPECT().FindEmployees(ctx).Return([]template.EmployeeRow{{ID: "e-1"}, {ID: "e-2"}}, nil)

		res, err := deps.service.GetEmployeesForAssignment(ctx, id.String())

		require.NoError(t, err)
		require.Len(t, res, 2)
		require.NotNil(t, res[0].IsAssigned)
		assert.True(t, *res[0].IsAssigned)
		assert.False(t, *res[1].IsAssigned)
	})

	t.Run("employees for assignment without template", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindEmployees(ctx).Return([]template.EmployeeRow{{ID: "e-1"}}, nil)

		res, err := deps.service.GetEmployeesForAssignment(ctx, "")

		require.NoError(t, err)
		assert.Nil(t, res[0].IsAssigned)
	})

	t.Run("employees progress", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindEmployees(ctx).Return([]template.EmployeeRow{{ID: "e-1"}, {ID: "e-2"}}, nil)
		deps.repo.EXPECT().CountTasksByEmployee(ctx).Return([]template.EmployeeTaskCount{
			{EmployeeID: "e-1", Status: "completed", Total: 1},
			{EmployeeID: "e-1", Status: "pending", Total: 3},
		}, nil)

		res, err := deps.service.GetEmployeesProgress(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(4), res[0].TotalTasks)
		assert.Equal(t, 25.0, res[0].Percentage)
		assert.Equal(t, 0.0, res[1].Percentage)
	})
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, template.Percentage(0, 0))
	assert.Equal(t, 66.67, template.Percentage(2, 3))
	assert.Equal(t, 100.0, template.Percentage(3, 3))
}
