package dashboard

import (
	"context"
	"sort"
	"time"

	"go-onboarding/internal/activitylog"
	"go-onboarding/internal/analytics"
	"go-onboarding/internal/assignment"
	"go-onboarding/internal/document"
	"go-onboarding/internal/employee"
	"go-onboarding/internal/shared/contextutil"
	"go-onboarding/internal/shared/request"

	"go.uber.org/zap"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Employee(ctx context.Context, employeeID string) (EmployeeDashboard, error)
	HR(ctx context.Context) (HRDashboard, error)
	Admin(ctx context.Context) (AdminDashboard, error)
}

type service struct {
	assignments assignment.Repository
	documents   document.Repository
	employees   employee.Service
	analytics   analytics.Service
	activity    activitylog.Service
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(
	assignments assignment.Repository,
	documents document.Repository,
	employees employee.Service,
	analyticsService analytics.Service,
	activity activitylog.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		assignments: assignments,
		documents:   documents,
		employees:   employees,
		analytics:   analyticsService,
		activity:    activity,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      l,
	}
}

func (s *service) Employee(ctx context.Context, employeeID string) (EmployeeDashboard, error) {
	rid := contextutil.GetRequestID(ctx)

	tasks, err := s.assignments.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("load employee tasks failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeDashboard{}, err
	}

	docs, err := s.documents.FindByEmployee(ctx, employeeID, recentDocumentLimit)
	if err != nil {
		s.logger.Error("load employee documents failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeDashboard{}, err
	}

	now := s.now()
	counts := map[string]int64{}
	var pending, overdue []assignment.TaskView
	for _, t := range tasks {
		counts[t.Status]++
		switch {
		case t.IsOverdueAt(now):
			overdue = append(overdue, t)
		case t.Status == assignment.StatusPending:
			pending = append(pending, t)
		}
	}

	// due date terdekat dulu, task tanpa due date di akhir
	sort.SliceStable(pending, func(i, j int) bool {
		a, b := pending[i].DueDate, pending[j].DueDate
		if a == nil || b == nil {
			return a != nil
		}
		return a.Before(*b)
	})
	if len(pending) > pendingTaskLimit {
		pending = pending[:pendingTaskLimit]
	}

	return EmployeeDashboard{
		Progress:        assignment.MapProgress(assignment.ProgressFromCounts(counts)),
		PendingTasks:    assignment.MapViewsToResponse(pending, now),
		OverdueTasks:    assignment.MapViewsToResponse(overdue, now),
		RecentDocuments: document.MapViewsToResponse(docs),
		CompletionTrend: completionTrend(tasks, now),
	}, nil
}

// completionTrend menghitung task selesai per hari selama trendDays terakhir, termasuk hari ini.
func completionTrend(tasks []assignment.TaskView, now time.Time) analytics.ChartData {
	const layout = "2006-01-02"

	counts := map[string]float64{}
	for _, t := range tasks {
		if t.CompletedDate != nil {
			counts[t.CompletedDate.UTC().Format(layout)]++
		}
	}

	res := analytics.ChartData{
		Labels: make([]string, 0, trendDays),
		Data:   make([]float64, 0, trendDays),
	}
	for i := trendDays - 1; i >= 0; i-- {
		label := now.AddDate(0, 0, -i).Format(layout)
		res.Labels = append(res.Labels, label)
		res.Data = append(res.Data, counts[label])
	}
	return res
}

func (s *service) HR(ctx context.Context) (HRDashboard, error) {
	stats, err := s.analytics.DashboardStats(ctx)
	if err != nil {
		return HRDashboard{}, err
	}

	recent, _, err := s.employees.GetAll(ctx, employee.ListFilter{}, request.Page{Page: 1, PageSize: recentEmployeeLimit})
	if err != nil {
		return HRDashboard{}, err
	}

	docs, err := s.documents.FindPending(ctx, pendingDocumentLimit)
	if err != nil {
		s.logger.Error("load pending documents failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return HRDashboard{}, err
	}

	dist, err := s.analytics.TaskDistribution(ctx)
	if err != nil {
		return HRDashboard{}, err
	}

	return HRDashboard{
		Stats:            stats,
		RecentEmployees:  recent,
		PendingDocuments: document.MapViewsToResponse(docs),
		TaskDistribution: dist,
	}, nil
}

func (s *service) Admin(ctx context.Context) (AdminDashboard, error) {
	stats, err := s.analytics.DashboardStats(ctx)
	if err != nil {
		return AdminDashboard{}, err
	}

	departments, err := s.analytics.DepartmentAnalytics(ctx)
	if err != nil {
		return AdminDashboard{}, err
	}

	activity, err := s.activity.Recent(ctx, recentActivityLimit)
	if err != nil {
		return AdminDashboard{}, err
	}

	return AdminDashboard{
		Stats:          stats,
		Departments:    departments,
		RecentActivity: activity,
	}, nil
}
