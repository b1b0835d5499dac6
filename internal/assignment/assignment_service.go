package assignment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	assignmenterrors "go-onboarding/internal/assignment/errors"
	"go-onboarding/internal/email"
	"go-onboarding/internal/events"
	"go-onboarding/internal/messaging/kafka"
	"go-onboarding/internal/notification"
	"go-onboarding/internal/shared/contextutil"
	"go-onboarding/internal/shared/metrics"
	"go-onboarding/internal/shared/request"
	"go-onboarding/internal/template"
	"go-onboarding/internal/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=assignment_service.go -destination=mock/assignment_service_mock.go -package=mock
type Service interface {
	Assign(ctx context.Context, employeeID, templateID, assignedBy string) ([]EmployeeTaskResponse, error)
	GetProgress(ctx context.Context, employeeID string) (ProgressResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]EmployeeTaskResponse, error)
	ListOverdue(ctx context.Context, employeeID string) ([]EmployeeTaskResponse, error)
	GetTask(ctx context.Context, actor request.Actor, id string) (EmployeeTaskResponse, error)
	UpdateStatus(ctx context.Context, actor request.Actor, id string, req UpdateStatusRequest) (EmployeeTaskResponse, error)
	MarkRead(ctx context.Context, actor request.Actor, id string) (EmployeeTaskResponse, error)
	MarkOverdue(ctx context.Context) (OverdueSweepResponse, error)
	SendOverdueReminders(ctx context.Context) (ReminderResponse, error)
	RemindEmployee(ctx context.Context, employeeID string) (ReminderResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	templateRepo template.Repository
	userRepo     user.Repository
	outbox       kafka.OutboxRepository
	notifier     notification.Dispatcher
	mailer       email.Service
	rdb          *redis.Client
	metrics      *metrics.Metrics
	now          func() time.Time
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	templateRepo template.Repository,
	userRepo user.Repository,
	outboxRepo kafka.OutboxRepository,
	notifier notification.Dispatcher,
	mailer email.Service,
	rdb *redis.Client,
	m *metrics.Metrics,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("assignment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignment.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		templateRepo: templateRepo,
		userRepo:     userRepo,
		outbox:       outboxRepo,
		notifier:     notifier,
		mailer:       mailer,
		rdb:          rdb,
		metrics:      m,
		now:          func() time.Time { return time.Now().UTC() },
		logger:       l,
	}
}

func (s *service) Assign(ctx context.Context, employeeID, templateID, assignedBy string) ([]EmployeeTaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("assign template requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("template_id", templateID),
	)

	// urutan pengecekan: template, tasks, employee, lalu duplikasi
	if _, err := uuid.Parse(templateID); err != nil {
		return nil, assignmenterrors.ErrTemplateNotFound
	}
	tpl, err := s.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, assignmenterrors.ErrTemplateNotFound
		}
		return nil, err
	}
	if !tpl.IsActive {
		return nil, assignmenterrors.ErrTemplateInactive
	}
	if len(tpl.Tasks) == 0 {
		return nil, assignmenterrors.ErrTemplateWithoutTasks
	}

	employee, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !employee.IsActive {
		return nil, assignmenterrors.ErrEmployeeInactive
	}
	if employee.Role != user.RoleEmployee {
		return nil, assignmenterrors.ErrNotAnEmployee
	}

	assigned, err := s.repo.HasTemplateAssignment(ctx, employeeID, templateID)
	if err != nil {
		return nil, err
	}
	if assigned {
		s.logger.Warn("template already assigned",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.String("template_id", templateID),
		)
		return nil, assignmenterrors.ErrAlreadyAssigned
	}

	now := s.now()
	days := tpl.EstimatedCompletionDays
	if days <= 0 {
		days = defaultDueDays
	}
	due := now.AddDate(0, 0, days)

	var assigner *uuid.UUID
	if id, err := uuid.Parse(assignedBy); err == nil {
		assigner = &id
	}

	rows := make([]EmployeeTask, len(tpl.Tasks))
	titles := make([]string, len(tpl.Tasks))
	for i, task := range tpl.Tasks {
		rows[i] = EmployeeTask{
			ID:           uuid.New(),
			EmployeeID:   employee.ID,
			TaskID:       task.ID,
			Status:       StatusPending,
			AssignedBy:   assigner,
			AssignedDate: now,
			DueDate:      &due,
		}
		titles[i] = task.Title
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	inserted, err := qtx.CreateMany(ctx, rows)
	if err != nil {
		s.logger.Error("insert employee tasks failed", zap.String("request_id", rid), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if inserted == 0 {
		// request paralel sudah meng-assign template yang sama
		return nil, assignmenterrors.ErrAlreadyAssigned
	}

	if employee.OnboardingStatus == user.OnboardingNotStarted {
		if err := qtx.UpdateOnboarding(ctx, employeeID, user.OnboardingInProgress, nil); err != nil {
			s.logger.Error("update onboarding status failed", zap.String("request_id", rid), zap.Error(err))
			return nil, err
		}
	}

	if s.outbox != nil {
		evt, err := events.NewOutboxEvent(rid, "employee", employeeID, events.EventTemplateAssigned, events.TemplateAssignedEvent{
			EventType:     events.EventTemplateAssigned,
			RequestID:     rid,
			EmployeeID:    employeeID,
			EmployeeEmail: employee.Email,
			EmployeeName:  employee.Name,
			TemplateID:    templateID,
			TemplateName:  tpl.Name,
			TaskTitles:    titles,
			DueDate:       due,
			AssignedBy:    assignedBy,
			OccurredAt:    now,
		})
		if err != nil {
			return nil, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
			s.logger.Error("assignment outbox persist failed", zap.String("request_id", rid), zap.Error(err))
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	s.metrics.TasksAssigned(len(rows))
	for _, title := range titles {
		if s.notifier == nil {
			break
		}
		if err := s.notifier.NotifyTaskAssigned(ctx, employeeID, title); err != nil {
			s.logger.Warn("task assigned notification failed",
				zap.String("request_id", rid),
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
		}
	}
	if s.outbox == nil && s.mailer != nil {
		if err := s.mailer.SendTaskAssigned(ctx, employee.Email, employee.Name, tpl.Name, titles, due); err != nil {
			s.logger.Warn("task assigned email failed", zap.String("request_id", rid), zap.Error(err))
		}
	}
	s.invalidateStats(ctx)

	s.logger.Info("template assigned",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("template_id", templateID),
		zap.Int("tasks", len(rows)),
	)
	return mapAssigned(rows, *tpl), nil
}

func (s *service) GetProgress(ctx context.Context, employeeID string) (ProgressResponse, error) {
	if _, err := s.findEmployee(ctx, employeeID); err != nil {
		return ProgressResponse{}, err
	}

	counts, err := s.repo.CountByStatus(ctx, employeeID)
	if err != nil {
		s.logger.Error("count tasks failed", zap.String("employee_id", employeeID), zap.Error(err))
		return ProgressResponse{}, err
	}
	return MapProgress(ProgressFromCounts(counts)), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]EmployeeTaskResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, assignmenterrors.ErrInvalidID
	}
	views, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return MapViewsToResponse(views, s.now()), nil
}

func (s *service) ListOverdue(ctx context.Context, employeeID string) ([]EmployeeTaskResponse, error) {
	now := s.now()
	views, err := s.repo.FindOverdue(ctx, employeeID, now)
	if err != nil {
		return nil, err
	}
	return MapViewsToResponse(views, now), nil
}

func (s *service) GetTask(ctx context.Context, actor request.Actor, id string) (EmployeeTaskResponse, error) {
	view, err := s.findOwned(ctx, actor, id)
	if err != nil {
		return EmployeeTaskResponse{}, err
	}
	return mapViewToResponse(*view, s.now()), nil
}

func (s *service) UpdateStatus(ctx context.Context, actor request.Actor, id string, req UpdateStatusRequest) (EmployeeTaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	view, err := s.findOwned(ctx, actor, id)
	if err != nil {
		return EmployeeTaskResponse{}, err
	}

	now := s.now()
	values := map[string]any{"status": req.Status, "completed_date": nil}
	if req.Status == StatusCompleted {
		values["completed_date"] = now
	}
	if req.Notes != nil {
		values["notes"] = *req.Notes
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeTaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.UpdateStatus(ctx, id, values); err != nil {
		return EmployeeTaskResponse{}, mapRepositoryError(err)
	}
	if err := SyncOnboardingStatus(ctx, qtx, view.EmployeeID, now); err != nil {
		s.logger.Error("sync onboarding status failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeTaskResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeTaskResponse{}, err
	}

	if req.Status == StatusCompleted && view.Status != StatusCompleted && s.notifier != nil {
		if err := s.notifier.NotifyTaskCompleted(ctx, view.EmployeeID, view.Title); err != nil {
			s.logger.Warn("task completed notification failed", zap.String("request_id", rid), zap.Error(err))
		}
	}
	s.invalidateStats(ctx)

	s.logger.Info("task status updated",
		zap.String("request_id", rid),
		zap.String("employee_task_id", id),
		zap.String("from", view.Status),
		zap.String("to", req.Status),
	)

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeTaskResponse{}, mapRepositoryError(err)
	}
	return mapViewToResponse(*updated, now), nil
}

func (s *service) MarkRead(ctx context.Context, actor request.Actor, id string) (EmployeeTaskResponse, error) {
	view, err := s.findOwned(ctx, actor, id)
	if err != nil {
		return EmployeeTaskResponse{}, err
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return EmployeeTaskResponse{}, mapRepositoryError(err)
	}
	view.IsRead = true
	return mapViewToResponse(*view, s.now()), nil
}

func (s *service) MarkOverdue(ctx context.Context) (OverdueSweepResponse, error) {
	n, err := s.repo.MarkOverdue(ctx, s.now())
	if err != nil {
		s.logger.Error("mark overdue failed", zap.Error(err))
		return OverdueSweepResponse{}, err
	}

	s.metrics.TasksMarkedOverdue(n)
	if n > 0 {
		s.invalidateStats(ctx)
	}
	s.logger.Info("overdue sweep finished", zap.Int64("updated", n))
	return OverdueSweepResponse{Updated: n}, nil
}

func (s *service) SendOverdueReminders(ctx context.Context) (ReminderResponse, error) {
	views, err := s.repo.FindOverdue(ctx, "", s.now())
	if err != nil {
		s.logger.Error("load overdue tasks failed", zap.Error(err))
		return ReminderResponse{}, err
	}

	res := s.remind(ctx, views)
	s.logger.Info("overdue reminders sent",
		zap.Int("total", res.Total),
		zap.Int("notified", res.Notified),
		zap.Int("emailed", res.Emailed),
		zap.Int("failed", res.Failed),
	)
	return res, nil
}

func (s *service) RemindEmployee(ctx context.Context, employeeID string) (ReminderResponse, error) {
	if _, err := s.findEmployee(ctx, employeeID); err != nil {
		return ReminderResponse{}, err
	}

	views, err := s.repo.FindUnfinished(ctx, employeeID)
	if err != nil {
		return ReminderResponse{}, err
	}
	return s.remind(ctx, views), nil
}

// remind mengirim notifikasi + email per task; kegagalan per item dicatat dan dilewati.
func (s *service) remind(ctx context.Context, views []TaskView) ReminderResponse {
	res := ReminderResponse{Total: len(views)}
	for _, v := range views {
		failed := false

		if s.notifier != nil {
			if err := s.notifier.NotifyTaskReminder(ctx, v.EmployeeID, v.Title); err != nil {
				s.logger.Warn("reminder notification failed",
					zap.String("employee_task_id", v.ID),
					zap.Error(err),
				)
				failed = true
			} else {
				res.Notified++
			}
		}

		if s.mailer != nil && v.EmployeeEmail != "" {
			due := s.now()
			if v.DueDate != nil {
				due = *v.DueDate
			}
			if err := s.mailer.SendTaskReminder(ctx, v.EmployeeEmail, v.EmployeeName, v.Title, due); err != nil {
				s.logger.Warn("reminder email failed",
					zap.String("employee_task_id", v.ID),
					zap.Error(err),
				)
				failed = true
			} else {
				res.Emailed++
			}
		}

		if failed {
			res.Failed++
		}
	}
	return res
}

func (s *service) findEmployee(ctx context.Context, employeeID string) (*user.User, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, assignmenterrors.ErrEmployeeNotFound
	}
	employee, err := s.userRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, assignmenterrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (s *service) findOwned(ctx context.Context, actor request.Actor, id string) (*TaskView, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, assignmenterrors.ErrInvalidTaskID
	}
	view, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if !actor.Owns(view.EmployeeID) {
		s.logger.Warn("task access denied",
			zap.String("user_id", actor.UserID),
			zap.String("employee_task_id", id),
		)
		return nil, assignmenterrors.ErrAccessDenied
	}
	return view, nil
}

func (s *service) invalidateStats(ctx context.Context) {
	InvalidateDashboardStats(ctx, s.rdb, s.logger)
}

// InvalidateDashboardStats drops the cached analytics summary.
func InvalidateDashboardStats(ctx context.Context, rdb *redis.Client, logger *zap.Logger) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, DashboardStatsCacheKey).Err(); err != nil {
		logger.Warn("invalidate dashboard stats failed", zap.String("key", DashboardStatsCacheKey), zap.Error(err))
	}
}

// SyncOnboardingStatus menyelaraskan onboarding_status employee dengan task-nya:
// 100% selesai menjadi completed, dan completed yang mundur kembali ke in_progress.
func SyncOnboardingStatus(ctx context.Context, repo Repository, employeeID string, now time.Time) error {
	counts, err := repo.CountByStatus(ctx, employeeID)
	if err != nil {
		return err
	}
	current, err := repo.FindOnboardingStatus(ctx, employeeID)
	if err != nil {
		return err
	}

	p := ProgressFromCounts(counts)
	allDone := p.Total > 0 && p.Completed == p.Total

	switch {
	case allDone && current != user.OnboardingCompleted:
		return repo.UpdateOnboarding(ctx, employeeID, user.OnboardingCompleted, &now)
	case !allDone && current == user.OnboardingCompleted:
		return repo.UpdateOnboarding(ctx, employeeID, user.OnboardingInProgress, nil)
	}
	return nil
}
