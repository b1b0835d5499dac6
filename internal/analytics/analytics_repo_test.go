package analytics_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go-onboarding/internal/analytics"
	"go-onboarding/internal/assignment"
	"go-onboarding/internal/database"
	"go-onboarding/internal/department"
	"go-onboarding/internal/document"
	"go-onboarding/internal/shared/connection"
	"go-onboarding/internal/template"
	"go-onboarding/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repoFixture struct {
	db   *gorm.DB
	repo analytics.Repository
	now  time.Time
	dept department.Department
	rina *user.User
	budi *user.User
	task template.Task
}

func setupRepo(t *testing.T) *repoFixture {
	t.Helper()
	db, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "analytics.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	f := &repoFixture{db: db, repo: analytics.NewRepository(db), now: time.Now().UTC()}

	f.dept = department.Department{ID: uuid.New(), Name: "Engineering"}
	require.NoError(t, db.Omit("Manager").Create(&f.dept).Error)
	empty := department.Department{ID: uuid.New(), Name: "Finance"}
	require.NoError(t, db.Omit("Manager").Create(&empty).Error)

	start := f.now.AddDate(0, 0, -10)
	done := f.now.AddDate(0, 0, -2)
	f.rina = f.seedUser(t, "Rina", user.RoleEmployee, user.OnboardingCompleted, &start, &done)
	f.budi = f.seedUser(t, "Budi", user.RoleEmployee, user.OnboardingInProgress, nil, nil)
	f.seedUser(t, "Hana", user.RoleHR, user.OnboardingNotStarted, nil, nil)

	tpl := template.Template{ID: uuid.New(), Name: "General", EstimatedCompletionDays: 7, IsActive: true}
	require.NoError(t, db.Omit("Department", "Creator", "Tasks").Create(&tpl).Error)
	f.task = template.Task{ID: uuid.New(), TemplateID: tpl.ID, Title: "Sign NDA", TaskType: template.TaskTypeUpload, IsRequired: true}
	require.NoError(t, db.Create(&f.task).Error)
	return f
}

func (f *repoFixture) seedUser(t *testing.T, name, role, status string, start, done *time.Time) *user.User {
	t.Helper()
	u := &user.User{
		ID:                      uuid.New(),
		Name:                    name,
		Email:                   name + "@example.com",
		Password:                "hash",
		Role:                    role,
		EmployeeCode:            "EMP-" + name,
		DepartmentID:            &f.dept.ID,
		StartDate:               start,
		OnboardingStatus:        status,
		OnboardingCompletedDate: done,
		IsActive:                true,
		CreatedAt:               f.now.AddDate(0, 0, -3),
	}
	require.NoError(t, f.db.Omit("Department").Create(u).Error)
	return u
}

func (f *repoFixture) seedTask(t *testing.T, employeeID uuid.UUID, taskID uuid.UUID, status string, due *time.Time, completed *time.Time) {
	t.Helper()
	row := assignment.EmployeeTask{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		TaskID:        taskID,
		Status:        status,
		AssignedDate:  f.now.AddDate(0, 0, -4),
		DueDate:       due,
		CompletedDate: completed,
	}
	require.NoError(t, f.db.Create(&row).Error)
}

func TestRepository_CountsAndDistribution(t *testing.T) {
	f := setupRepo(t)
	ctx := context.Background()

	past := f.now.AddDate(0, 0, -1)
	future := f.now.AddDate(0, 0, 5)
	completed := f.now.AddDate(0, 0, -1)

	f.seedTask(t, f.rina.ID, f.task.ID, assignment.StatusCompleted, &future, &completed)
	f.seedTask(t, f.budi.ID, f.task.ID, assignment.StatusPending, &past, nil)
	f.seedTask(t, f.budi.ID, uuid.New(), assignment.StatusInProgress, &future, nil)
	f.seedTask(t, f.budi.ID, uuid.New(), assignment.StatusOverdue, &past, nil)
	f.seedTask(t, f.budi.ID, uuid.New(), assignment.StatusPending, nil, nil)

	counts, err := f.repo.CountEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, analytics.EmployeeCounts{Total: 2, InProgress: 1, Completed: 1}, counts)

	overdue, err := f.repo.CountOverdueTasks(ctx, f.now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), overdue)

	dist, err := f.repo.TaskDistribution(ctx, f.now)
	require.NoError(t, err)
	assert.Equal(t, analytics.TaskDistributionRow{Completed: 1, InProgress: 1, Pending: 1, Overdue: 2}, dist)

	tasks, err := f.repo.CompletedTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Sign NDA", tasks[0].Title)
	assert.Equal(t, "General", tasks[0].TemplateName)
	require.NotNil(t, tasks[0].CompletedDate)
}

func TestRepository_DepartmentsAndCompletions(t *testing.T) {
	f := setupRepo(t)
	ctx := context.Background()

	rows, err := f.repo.DepartmentBreakdown(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Engineering", rows[0].DepartmentName)
	assert.Equal(t, int64(2), rows[0].Total)
	assert.Equal(t, int64(1), rows[0].Completed)
	assert.Equal(t, "Finance", rows[1].DepartmentName)
	assert.Equal(t, int64(0), rows[1].Total)

	done, err := f.repo.CompletedEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "Rina", done[0].Name)
	require.NotNil(t, done[0].DepartmentName)
	assert.Equal(t, "Engineering", *done[0].DepartmentName)
	assert.Equal(t, float64(8), done[0].Days())

	created, err := f.repo.EmployeesCreatedSince(ctx, f.now.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Len(t, created, 2)

	created, err = f.repo.EmployeesCreatedSince(ctx, f.now.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestRepository_DocumentStatusCounts(t *testing.T) {
	f := setupRepo(t)
	ctx := context.Background()

	for _, status := range []string{document.StatusPending, document.StatusPending, document.StatusApproved} {
		doc := document.Document{
			ID:               uuid.New(),
			EmployeeID:       f.budi.ID,
			Filename:         uuid.NewString() + ".pdf",
			OriginalFilename: "ktp.pdf",
			FilePath:         "documents/x.pdf",
			Status:           status,
		}
		require.NoError(t, f.db.Create(&doc).Error)
	}

	rows, err := f.repo.DocumentStatusCounts(ctx)
	require.NoError(t, err)

	got := map[string]int64{}
	for _, row := range rows {
		got[row.Status] = row.Count
	}
	assert.Equal(t, map[string]int64{document.StatusPending: 2, document.StatusApproved: 1}, got)
}
