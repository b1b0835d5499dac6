package assignment_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go-onboarding/internal/assignment"
	assignmenterrors "go-onboarding/internal/assignment/errors"
	"go-onboarding/internal/database"
	"go-onboarding/internal/shared/connection"
	"go-onboarding/internal/shared/request"
	"go-onboarding/internal/template"
	templateerrors "go-onboarding/internal/template/errors"
	"go-onboarding/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type flowFixture struct {
	db          *gorm.DB
	templates   template.Service
	assignments assignment.Service
	hr          *user.User
	employee    *user.User
}

func setupFlow(t *testing.T) *flowFixture {
	t.Helper()
	db, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "flow.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	seed := func(name, role, code string) *user.User {
		u := &user.User{
			ID:               uuid.New(),
			Name:             name,
			Email:            code + "@example.com",
			Password:         "hash",
			Role:             role,
			EmployeeCode:     code,
			OnboardingStatus: user.OnboardingNotStarted,
			IsActive:         true,
		}
		require.NoError(t, db.Omit("Department").Create(u).Error)
		return u
	}

	templateRepo := template.NewRepository(db)
	lg := zap.NewNop()

	return &flowFixture{
		db:        db,
		templates: template.NewService(sqlDB, templateRepo, nil, lg),
		assignments: assignment.NewService(
			sqlDB, assignment.NewRepository(db), templateRepo, user.NewRepository(db),
			nil, nil, nil, nil, nil, lg,
		),
		hr:       seed("Hana", user.RoleHR, "HR0001"),
		employee: seed("Rina", user.RoleEmployee, "EMP000001"),
	}
}

func (f *flowFixture) rowCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&assignment.EmployeeTask{}).Where("employee_id = ?", f.employee.ID).Count(&n).Error)
	return n
}

func TestOnboardingFlow_AssignProgressComplete(t *testing.T) {
	f := setupFlow(t)
	ctx := context.Background()
	empID := f.employee.ID.String()
	days := 5

	tpl, err := f.templates.Create(ctx, f.hr.ID.String(), template.CreateTemplateRequest{
		Name:                    "Engineering Onboarding",
		EstimatedCompletionDays: &days,
		Tasks: []template.TaskRequest{
			{Title: "Read handbook", TaskType: template.TaskTypeRead},
			{Title: "Upload ID", TaskType: template.TaskTypeUpload},
			{Title: "Meet buddy", TaskType: template.TaskTypeMeeting},
		},
	})
	require.NoError(t, err)
	require.Len(t, tpl.Tasks, 3)

	progress, err := f.assignments.GetProgress(ctx, empID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), progress.Total)
	assert.Equal(t, float64(0), progress.Percentage)

	before := time.Now().UTC()
	assigned, err := f.assignments.Assign(ctx, empID, tpl.ID, f.hr.ID.String())
	require.NoError(t, err)
	require.Len(t, assigned, 3)

	var rows []assignment.EmployeeTask
	require.NoError(t, f.db.Where("employee_id = ?", f.employee.ID).Find(&rows).Error)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, assignment.StatusPending, row.Status)
		require.NotNil(t, row.DueDate)
		assert.WithinDuration(t, before.AddDate(0, 0, days), *row.DueDate, time.Minute)
	}

	progress, err = f.assignments.GetProgress(ctx, empID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), progress.Total)
	assert.Equal(t, int64(0), progress.Completed)
	assert.Equal(t, float64(0), progress.Percentage)

	var emp user.User
	require.NoError(t, f.db.First(&emp, "id = ?", f.employee.ID).Error)
	assert.Equal(t, user.OnboardingInProgress, emp.OnboardingStatus)

	// assign ulang ditolak dan tidak menambah baris
	_, err = f.assignments.Assign(ctx, empID, tpl.ID, f.hr.ID.String())
	assert.ErrorIs(t, err, assignmenterrors.ErrAlreadyAssigned)
	assert.Equal(t, int64(3), f.rowCount(t))

	err = f.templates.Delete(ctx, tpl.ID)
	assert.ErrorIs(t, err, templateerrors.ErrTemplateAssigned)
	var stored template.Template
	require.NoError(t, f.db.First(&stored, "id = ?", tpl.ID).Error)
	assert.True(t, stored.IsActive)

	actor := request.Actor{UserID: empID, Role: user.RoleEmployee}
	for _, task := range assigned {
		_, err := f.assignments.UpdateStatus(ctx, actor, task.ID, assignment.UpdateStatusRequest{Status: assignment.StatusCompleted})
		require.NoError(t, err)
	}

	progress, err = f.assignments.GetProgress(ctx, empID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), progress.Total)
	assert.Equal(t, int64(3), progress.Completed)
	assert.Equal(t, float64(100), progress.Percentage)

	var done user.User
	require.NoError(t, f.db.First(&done, "id = ?", f.employee.ID).Error)
	assert.Equal(t, user.OnboardingCompleted, done.OnboardingStatus)
	assert.NotNil(t, done.OnboardingCompletedDate)

	// satu task dibuka lagi, onboarding kembali in_progress
	_, err = f.assignments.UpdateStatus(ctx, actor, assigned[0].ID, assignment.UpdateStatusRequest{Status: assignment.StatusInProgress})
	require.NoError(t, err)
	var reopened user.User
	require.NoError(t, f.db.First(&reopened, "id = ?", f.employee.ID).Error)
	assert.Equal(t, user.OnboardingInProgress, reopened.OnboardingStatus)
	assert.Nil(t, reopened.OnboardingCompletedDate)
}

func TestOnboardingFlow_MarkOverdueIsIdempotent(t *testing.T) {
	f := setupFlow(t)
	ctx := context.Background()
	days := 1

	tpl, err := f.templates.Create(ctx, f.hr.ID.String(), template.CreateTemplateRequest{
		Name:                    "Short",
		EstimatedCompletionDays: &days,
		Tasks: []template.TaskRequest{
			{Title: "Sign NDA", TaskType: template.TaskTypeForm},
			{Title: "Watch intro", TaskType: template.TaskTypeWatch},
		},
	})
	require.NoError(t, err)
	assigned, err := f.assignments.Assign(ctx, f.employee.ID.String(), tpl.ID, f.hr.ID.String())
	require.NoError(t, err)
	require.Len(t, assigned, 2)

	past := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, f.db.Model(&assignment.EmployeeTask{}).Where("employee_id = ?", f.employee.ID).Update("due_date", past).Error)
	actor := request.Actor{UserID: f.hr.ID.String(), Role: user.RoleHR}
	_, err = f.assignments.UpdateStatus(ctx, actor, assigned[1].ID, assignment.UpdateStatusRequest{Status: assignment.StatusCompleted})
	require.NoError(t, err)

	res, err := f.assignments.MarkOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Updated)

	res, err = f.assignments.MarkOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Updated)

	var completed assignment.EmployeeTask
	require.NoError(t, f.db.First(&completed, "id = ?", assigned[1].ID).Error)
	assert.Equal(t, assignment.StatusCompleted, completed.Status)
}
