package admin

import (
	"context"
	"runtime"
	"sort"
	"time"

	"go-onboarding/internal/activitylog"
	"go-onboarding/internal/assignment"
	"go-onboarding/internal/shared/contextutil"

	"go.uber.org/zap"
)

const checkTimeout = 2 * time.Second

//go:generate mockgen -source=admin_service.go -destination=mock/admin_service_mock.go -package=mock
type Service interface {
	SystemHealth(ctx context.Context) SystemHealth
	MarkOverdue(ctx context.Context) (assignment.OverdueSweepResponse, error)
	SendReminders(ctx context.Context) (assignment.ReminderResponse, error)
	PruneActivity(ctx context.Context, olderThanDays int) (PruneResponse, error)
}

type service struct {
	checks      map[string]Check
	assignments assignment.Service
	activity    activitylog.Service
	startedAt   time.Time
	logger      *zap.Logger
}

func NewService(
	checks map[string]Check,
	assignments assignment.Service,
	activity activitylog.Service,
	startedAt time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("admin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.service")
	}
	return &service{
		checks:      checks,
		assignments: assignments,
		activity:    activity,
		startedAt:   startedAt,
		logger:      l,
	}
}

func (s *service) SystemHealth(ctx context.Context) SystemHealth {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	res := SystemHealth{
		Status:        StatusHealthy,
		StartedAt:     s.startedAt,
		UptimeSeconds: time.Since(s.startedAt).Round(time.Second).Seconds(),
		GoVersion:     runtime.Version(),
		Goroutines:    runtime.NumGoroutine(),
		Memory: MemoryStats{
			AllocMB:     toMB(mem.Alloc),
			HeapInUseMB: toMB(mem.HeapInuse),
			SysMB:       toMB(mem.Sys),
			NumGC:       mem.NumGC,
		},
		Components: make(map[string]ComponentHealth, len(s.checks)),
	}

	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		res.Components[name] = s.run(ctx, name, s.checks[name])
		if res.Components[name].Status != StatusHealthy {
			res.Status = StatusDegraded
		}
	}
	return res
}

func (s *service) run(ctx context.Context, name string, check Check) ComponentHealth {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	start := time.Now()
	err := check(ctx)
	h := ComponentHealth{Status: StatusHealthy, LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		h.Status = StatusDown
		h.Error = err.Error()
		s.logger.Warn("health check failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("component", name),
			zap.Error(err),
		)
	}
	return h
}

func (s *service) MarkOverdue(ctx context.Context) (assignment.OverdueSweepResponse, error) {
	res, err := s.assignments.MarkOverdue(ctx)
	if err != nil {
		return res, err
	}
	s.logger.Info("job mark-overdue finished",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("updated", res.Updated),
	)
	return res, nil
}

func (s *service) SendReminders(ctx context.Context) (assignment.ReminderResponse, error) {
	res, err := s.assignments.SendOverdueReminders(ctx)
	if err != nil {
		return res, err
	}
	s.logger.Info("job send-reminders finished",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("total", res.Total),
		zap.Int("failed", res.Failed),
	)
	return res, nil
}

func (s *service) PruneActivity(ctx context.Context, olderThanDays int) (PruneResponse, error) {
	// 0 berarti pakai retensi default activitylog
	n, err := s.activity.Prune(ctx, time.Duration(olderThanDays)*24*time.Hour)
	if err != nil {
		return PruneResponse{}, err
	}
	s.logger.Info("job prune-activity finished",
		zap.Int("older_than_days", olderThanDays),
		zap.Int64("deleted", n),
	)
	return PruneResponse{Deleted: n}, nil
}

func toMB(b uint64) float64 {
	return float64(b*100/(1024*1024)) / 100
}
