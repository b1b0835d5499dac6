package analytics

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	analyticserrors "go-onboarding/internal/analytics/errors"
	"go-onboarding/internal/assignment"
	"go-onboarding/internal/document"
	"go-onboarding/internal/shared/contextutil"
	"go-onboarding/internal/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

//go:generate mockgen -source=analytics_service.go -destination=mock/analytics_service_mock.go -package=mock
type Service interface {
	DashboardStats(ctx context.Context) (DashboardStats, error)
	CompletionRates(ctx context.Context) (ChartData, error)
	DepartmentAnalytics(ctx context.Context) ([]DepartmentAnalytics, error)
	TimeToCompletion(ctx context.Context) (TimeToCompletion, error)
	TaskCompletionTimes(ctx context.Context) ([]TaskCompletionTime, error)
	ProgressTrend(ctx context.Context, period string) (TrendResponse, error)
	TaskDistribution(ctx context.Context) (TaskDistribution, error)
	OverdueTasks(ctx context.Context) (OverdueTasksResponse, error)
	DocumentStatus(ctx context.Context) (DocumentStatusResponse, error)
	OnboardingTimeline(ctx context.Context, employeeID string) (TimelineResponse, error)
	OnboardingReport(ctx context.Context, employeeID string) (File, error)
	Export(ctx context.Context, format string) (File, error)
}

type service struct {
	repo        Repository
	assignments assignment.Repository
	documents   document.Repository
	users       user.Repository
	rdb         *redis.Client
	sf          *singleflight.Group
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(
	repo Repository,
	assignments assignment.Repository,
	documents document.Repository,
	users user.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("analytics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.service")
	}
	return &service{
		repo:        repo,
		assignments: assignments,
		documents:   documents,
		users:       users,
		rdb:         rdb,
		sf:          &singleflight.Group{},
		now:         func() time.Time { return time.Now().UTC() },
		logger:      l,
	}
}

func (s *service) DashboardStats(ctx context.Context) (DashboardStats, error) {
	key := assignment.DashboardStatsCacheKey

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var stats DashboardStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return stats, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		stats, err := s.computeStats(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(stats); err == nil {
				if err := s.rdb.Set(ctx, key, data, StatsCacheTTL).Err(); err != nil {
					s.logger.Warn("cache dashboard stats failed", zap.Error(err))
				}
			}
		}
		return stats, nil
	})
	if err != nil {
		s.logger.Error("dashboard stats failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return DashboardStats{}, err
	}

	return v.(DashboardStats), nil
}

func (s *service) computeStats(ctx context.Context) (DashboardStats, error) {
	counts, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	overdue, err := s.repo.CountOverdueTasks(ctx, s.now())
	if err != nil {
		return DashboardStats{}, err
	}
	completed, err := s.repo.CompletedEmployees(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	var totalDays float64
	for _, row := range completed {
		totalDays += row.Days()
	}
	avg := 0.0
	if len(completed) > 0 {
		avg = round(totalDays/float64(len(completed)), 1)
	}

	return DashboardStats{
		TotalEmployees:        counts.Total,
		OnboardingInProgress:  counts.InProgress,
		OnboardingCompleted:   counts.Completed,
		OverdueTasks:          overdue,
		AverageCompletionDays: avg,
		CompletionRate:        percentage(counts.Completed, counts.Total, 2),
	}, nil
}

func (s *service) CompletionRates(ctx context.Context) (ChartData, error) {
	rows, err := s.repo.DepartmentBreakdown(ctx)
	if err != nil {
		s.logger.Error("department breakdown failed", zap.Error(err))
		return ChartData{}, err
	}

	res := ChartData{Labels: make([]string, 0, len(rows)), Data: make([]float64, 0, len(rows))}
	for _, row := range rows {
		res.Labels = append(res.Labels, row.DepartmentName)
		res.Data = append(res.Data, percentage(row.Completed, row.Total, 0))
	}
	return res, nil
}

func (s *service) DepartmentAnalytics(ctx context.Context) ([]DepartmentAnalytics, error) {
	rows, err := s.repo.DepartmentBreakdown(ctx)
	if err != nil {
		s.logger.Error("department breakdown failed", zap.Error(err))
		return nil, err
	}

	res := make([]DepartmentAnalytics, len(rows))
	for i, row := range rows {
		res[i] = DepartmentAnalytics{
			DepartmentID:        row.DepartmentID,
			DepartmentName:      row.DepartmentName,
			TotalEmployees:      row.Total,
			ActiveOnboarding:    row.InProgress,
			CompletedOnboarding: row.Completed,
			CompletionRate:      percentage(row.Completed, row.Total, 0),
		}
	}
	return res, nil
}

func (s *service) TimeToCompletion(ctx context.Context) (TimeToCompletion, error) {
	rows, err := s.repo.CompletedEmployees(ctx)
	if err != nil {
		s.logger.Error("completed employees failed", zap.Error(err))
		return TimeToCompletion{}, err
	}

	days := make([]float64, len(rows))
	for i, row := range rows {
		days[i] = row.Days()
	}
	lo, hi, avg := summarize(days)
	return TimeToCompletion{Employees: len(rows), MinDays: lo, MaxDays: hi, AvgDays: avg}, nil
}

func (s *service) TaskCompletionTimes(ctx context.Context) ([]TaskCompletionTime, error) {
	rows, err := s.repo.CompletedTasks(ctx)
	if err != nil {
		s.logger.Error("completed tasks failed", zap.Error(err))
		return nil, err
	}

	order := []string{}
	byTask := map[string]*TaskCompletionTime{}
	samples := map[string][]float64{}
	for _, row := range rows {
		if _, ok := byTask[row.TaskID]; !ok {
			order = append(order, row.TaskID)
			byTask[row.TaskID] = &TaskCompletionTime{TaskID: row.TaskID, Title: row.Title, TemplateName: row.TemplateName}
		}
		samples[row.TaskID] = append(samples[row.TaskID], daysBetween(row.AssignedDate, *row.CompletedDate))
	}

	res := make([]TaskCompletionTime, 0, len(order))
	for _, id := range order {
		item := byTask[id]
		item.Completions = len(samples[id])
		item.MinDays, item.MaxDays, item.AvgDays = summarize(samples[id])
		res = append(res, *item)
	}
	return res, nil
}

// ProgressTrend menghitung employee baru per hari (week, month) atau per bulan (quarter, year).
func (s *service) ProgressTrend(ctx context.Context, period string) (TrendResponse, error) {
	if period == "" {
		period = PeriodMonth
	}

	now := s.now()
	var (
		since   time.Time
		monthly bool
	)
	switch period {
	case PeriodWeek:
		since = now.AddDate(0, 0, -7)
	case PeriodMonth:
		since = now.AddDate(0, -1, 0)
	case PeriodQuarter:
		since, monthly = now.AddDate(0, -3, 0), true
	case PeriodYear:
		since, monthly = now.AddDate(-1, 0, 0), true
	default:
		return TrendResponse{}, analyticserrors.ErrInvalidPeriod.WithDetails(map[string]any{
			"allowed": []string{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear},
		})
	}

	since = startOfDay(since)
	if monthly {
		since = time.Date(since.Year(), since.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	created, err := s.repo.EmployeesCreatedSince(ctx, since)
	if err != nil {
		s.logger.Error("employees created since failed", zap.String("period", period), zap.Error(err))
		return TrendResponse{}, err
	}

	layout := "2006-01-02"
	if monthly {
		layout = "2006-01"
	}
	counts := map[string]float64{}
	for _, t := range created {
		counts[t.UTC().Format(layout)]++
	}

	res := TrendResponse{Period: period}
	for cursor := since; !cursor.After(now); {
		label := cursor.Format(layout)
		res.Labels = append(res.Labels, label)
		res.Data = append(res.Data, counts[label])
		if monthly {
			cursor = cursor.AddDate(0, 1, 0)
		} else {
			cursor = cursor.AddDate(0, 0, 1)
		}
	}
	return res, nil
}

func (s *service) TaskDistribution(ctx context.Context) (TaskDistribution, error) {
	row, err := s.repo.TaskDistribution(ctx, s.now())
	if err != nil {
		s.logger.Error("task distribution failed", zap.Error(err))
		return TaskDistribution{}, err
	}
	return TaskDistribution(row), nil
}

func (s *service) OverdueTasks(ctx context.Context) (OverdueTasksResponse, error) {
	now := s.now()
	views, err := s.assignments.FindOverdue(ctx, "", now)
	if err != nil {
		s.logger.Error("overdue tasks failed", zap.Error(err))
		return OverdueTasksResponse{}, err
	}
	tasks := assignment.MapViewsToResponse(views, now)
	return OverdueTasksResponse{Total: len(tasks), Tasks: tasks}, nil
}

func (s *service) DocumentStatus(ctx context.Context) (DocumentStatusResponse, error) {
	rows, err := s.repo.DocumentStatusCounts(ctx)
	if err != nil {
		s.logger.Error("document status counts failed", zap.Error(err))
		return DocumentStatusResponse{}, err
	}

	var res DocumentStatusResponse
	for _, row := range rows {
		res.Total += row.Count
		switch row.Status {
		case document.StatusPending:
			res.Pending = row.Count
		case document.StatusApproved:
			res.Approved = row.Count
		case document.StatusRejected:
			res.Rejected = row.Count
		}
	}
	return res, nil
}

func (s *service) OnboardingTimeline(ctx context.Context, employeeID string) (TimelineResponse, error) {
	emp, tasks, docs, err := s.loadEmployeeHistory(ctx, employeeID)
	if err != nil {
		return TimelineResponse{}, err
	}
	return TimelineResponse{
		Employee: user.MapToResponse(*emp),
		Progress: progressOf(tasks),
		Events:   buildTimeline(emp, tasks, docs),
	}, nil
}

func (s *service) OnboardingReport(ctx context.Context, employeeID string) (File, error) {
	emp, tasks, docs, err := s.loadEmployeeHistory(ctx, employeeID)
	if err != nil {
		return File{}, err
	}

	lines := reportLines(emp, progressOf(tasks), tasks, buildTimeline(emp, tasks, docs), s.now())

	s.logger.Info("onboarding report generated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", employeeID),
		zap.Int("lines", len(lines)),
	)
	return File{
		Name:        fmt.Sprintf("onboarding-report-%s.pdf", strings.ToLower(emp.EmployeeCode)),
		ContentType: "application/pdf",
		Data:        buildReportPDF(lines),
	}, nil
}

func (s *service) loadEmployeeHistory(ctx context.Context, employeeID string) (*user.User, []assignment.TaskView, []document.DocumentView, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, nil, nil, analyticserrors.ErrInvalidEmployeeID
	}

	emp, err := s.users.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, analyticserrors.ErrEmployeeNotFound
		}
		return nil, nil, nil, err
	}
	if emp.Role != user.RoleEmployee {
		return nil, nil, nil, analyticserrors.ErrEmployeeNotFound
	}

	tasks, err := s.assignments.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, nil, nil, err
	}
	docs, err := s.documents.FindByEmployee(ctx, employeeID, 0)
	if err != nil {
		return nil, nil, nil, err
	}
	return emp, tasks, docs, nil
}

type exportPayload struct {
	GeneratedAt      time.Time              `json:"generated_at"`
	Stats            DashboardStats         `json:"stats"`
	Departments      []DepartmentAnalytics  `json:"departments"`
	TaskDistribution TaskDistribution       `json:"task_distribution"`
	DocumentStatus   DocumentStatusResponse `json:"document_status"`
}

func (s *service) Export(ctx context.Context, format string) (File, error) {
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatCSV {
		return File{}, analyticserrors.ErrInvalidFormat.WithDetails(map[string]any{
			"allowed": []string{FormatJSON, FormatCSV},
		})
	}

	payload := exportPayload{GeneratedAt: s.now()}
	var err error
	if payload.Stats, err = s.DashboardStats(ctx); err != nil {
		return File{}, err
	}
	if payload.Departments, err = s.DepartmentAnalytics(ctx); err != nil {
		return File{}, err
	}
	if payload.TaskDistribution, err = s.TaskDistribution(ctx); err != nil {
		return File{}, err
	}
	if payload.DocumentStatus, err = s.DocumentStatus(ctx); err != nil {
		return File{}, err
	}

	stamp := payload.GeneratedAt.Format("20060102-150405")
	if format == FormatJSON {
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return File{}, err
		}
		return File{Name: "analytics-" + stamp + ".json", ContentType: "application/json", Data: data}, nil
	}

	data, err := writeCSV(payload)
	if err != nil {
		return File{}, err
	}
	return File{Name: "analytics-" + stamp + ".csv", ContentType: "text/csv", Data: data}, nil
}

func writeCSV(p exportPayload) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	itoa := func(v int64) string { return strconv.FormatInt(v, 10) }
	ftoa := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	records := [][]string{
		{"section", "metric", "value"},
		{"stats", "total_employees", itoa(p.Stats.TotalEmployees)},
		{"stats", "onboarding_in_progress", itoa(p.Stats.OnboardingInProgress)},
		{"stats", "onboarding_completed", itoa(p.Stats.OnboardingCompleted)},
		{"stats", "overdue_tasks", itoa(p.Stats.OverdueTasks)},
		{"stats", "average_completion_days", ftoa(p.Stats.AverageCompletionDays)},
		{"stats", "completion_rate", ftoa(p.Stats.CompletionRate)},
		{"tasks", "completed", itoa(p.TaskDistribution.Completed)},
		{"tasks", "in_progress", itoa(p.TaskDistribution.InProgress)},
		{"tasks", "pending", itoa(p.TaskDistribution.Pending)},
		{"tasks", "overdue", itoa(p.TaskDistribution.Overdue)},
		{"documents", "pending", itoa(p.DocumentStatus.Pending)},
		{"documents", "approved", itoa(p.DocumentStatus.Approved)},
		{"documents", "rejected", itoa(p.DocumentStatus.Rejected)},
	}
	for _, d := range p.Departments {
		records = append(records,
			[]string{"department:" + d.DepartmentName, "total_employees", itoa(d.TotalEmployees)},
			[]string{"department:" + d.DepartmentName, "completion_rate", ftoa(d.CompletionRate)},
		)
	}

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func progressOf(tasks []assignment.TaskView) assignment.ProgressResponse {
	counts := map[string]int64{}
	for _, t := range tasks {
		counts[t.Status]++
	}
	return assignment.MapProgress(assignment.ProgressFromCounts(counts))
}

func buildTimeline(emp *user.User, tasks []assignment.TaskView, docs []document.DocumentView) []TimelineEvent {
	events := []TimelineEvent{{Date: emp.CreatedAt, Type: "account_created", Title: "Account created"}}
	if emp.StartDate != nil {
		events = append(events, TimelineEvent{Date: *emp.StartDate, Type: "start_date", Title: "First working day"})
	}

	for _, t := range tasks {
		events = append(events, TimelineEvent{
			Date:        t.AssignedDate,
			Type:        "task_assigned",
			Title:       "Task assigned: " + t.Title,
			Description: t.TemplateName,
		})
		if t.CompletedDate != nil {
			events = append(events, TimelineEvent{
				Date:  *t.CompletedDate,
				Type:  "task_completed",
				Title: "Task completed: " + t.Title,
			})
		}
	}

	for _, d := range docs {
		events = append(events, TimelineEvent{
			Date:  d.CreatedAt,
			Type:  "document_uploaded",
			Title: "Document uploaded: " + d.OriginalFilename,
		})
		if d.ReviewedDate != nil && d.Status != document.StatusPending {
			events = append(events, TimelineEvent{
				Date:        *d.ReviewedDate,
				Type:        "document_" + d.Status,
				Title:       "Document " + d.Status + ": " + d.OriginalFilename,
				Description: d.RejectionReason,
			})
		}
	}

	if emp.OnboardingCompletedDate != nil {
		events = append(events, TimelineEvent{Date: *emp.OnboardingCompletedDate, Type: "onboarding_completed", Title: "Onboarding completed"})
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events
}

func reportLines(emp *user.User, progress assignment.ProgressResponse, tasks []assignment.TaskView, events []TimelineEvent, now time.Time) []string {
	dept := "-"
	if emp.Department != nil {
		dept = emp.Department.Name
	}
	start := "-"
	if emp.StartDate != nil {
		start = emp.StartDate.Format("2006-01-02")
	}

	lines := []string{
		"Onboarding Report",
		"Generated " + now.Format("2006-01-02 15:04 MST"),
		"",
		fmt.Sprintf("Employee: %s (%s)", emp.Name, emp.EmployeeCode),
		"Email: " + emp.Email,
		"Department: " + dept,
		"Position: " + emp.Position,
		"Start date: " + start,
		"Onboarding status: " + emp.OnboardingStatus,
		"",
		fmt.Sprintf("Progress: %.2f%% (%d of %d tasks completed, %d overdue)",
			progress.Percentage, progress.Completed, progress.Total, progress.Overdue),
		"",
		"Tasks",
	}
	if len(tasks) == 0 {
		lines = append(lines, "  No tasks assigned")
	}
	for _, t := range tasks {
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		lines = append(lines, fmt.Sprintf("  [%s] %s (due %s)", t.Status, t.Title, due))
	}

	lines = append(lines, "", "Timeline")
	for _, e := range events {
		lines = append(lines, fmt.Sprintf("  %s  %s", e.Date.UTC().Format("2006-01-02"), e.Title))
	}
	return lines
}

func summarize(values []float64) (lo, hi, avg float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	lo, hi = values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, round(sum/float64(len(values)), 1)
}

func daysBetween(start, end time.Time) float64 {
	days := math.Ceil(end.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func percentage(part, total int64, places int) float64 {
	if total <= 0 {
		return 0
	}
	return round(float64(part)/float64(total)*100, places)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
