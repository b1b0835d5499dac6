package admin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-onboarding/internal/admin"
	activitylogMock "go-onboarding/internal/activitylog/mock"
	"go-onboarding/internal/assignment"
	assignmentMock "go-onboarding/internal/assignment/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminService_SystemHealth(t *testing.T) {
	t.Run("all components healthy", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		sqlMock.ExpectPing()

		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer rdb.Close()

		svc := admin.NewService(map[string]admin.Check{
			"database": admin.SQLCheck(db),
			"redis":    admin.RedisCheck(rdb),
		}, nil, nil, time.Now().Add(-time.Minute))

		res := svc.SystemHealth(context.Background())

		assert.Equal(t, admin.StatusHealthy, res.Status)
		assert.Equal(t, admin.StatusHealthy, res.Components["database"].Status)
		assert.Equal(t, admin.StatusHealthy, res.Components["redis"].Status)
		assert.GreaterOrEqual(t, res.UptimeSeconds, float64(59))
		assert.Positive(t, res.Goroutines)
		assert.NotEmpty(t, res.GoVersion)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("failing dependency degrades status", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer rdb.Close()
		mr.Close()

		svc := admin.NewService(map[string]admin.Check{
			"redis": admin.RedisCheck(rdb),
			"kafka": func(context.Context) error { return errors.New("dial tcp: connection refused") },
		}, nil, nil, time.Now())

		res := svc.SystemHealth(context.Background())

		assert.Equal(t, admin.StatusDegraded, res.Status)
		assert.Equal(t, admin.StatusDown, res.Components["redis"].Status)
		assert.Equal(t, "dial tcp: connection refused", res.Components["kafka"].Error)
	})
}

func TestAdminService_Jobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	assignments := assignmentMock.NewMockService(ctrl)
	activity := activitylogMock.NewMockService(ctrl)
	svc := admin.NewService(nil, assignments, activity, time.Now())
	ctx := context.Background()

	assignments.EXPECT().MarkOverdue(gomock.Any()).Return(assignment.OverdueSweepResponse{Updated: 4}, nil)
	sweep, err := svc.MarkOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), sweep.Updated)

	assignments.EXPECT().SendOverdueReminders(gomock.Any()).Return(assignment.ReminderResponse{}, errors.New("smtp down"))
	_, err = svc.SendReminders(ctx)
	assert.Error(t, err)

	activity.EXPECT().Prune(gomock.Any(), 30*24*time.Hour).Return(int64(12), nil)
	pruned, err := svc.PruneActivity(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(12), pruned.Deleted)

	activity.EXPECT().Prune(gomock.Any(), time.Duration(0)).Return(int64(0), nil)
	_, err = svc.PruneActivity(ctx, 0)
	require.NoError(t, err)
}
