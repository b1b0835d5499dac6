package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"go-onboarding/internal/assignment"
	"go-onboarding/internal/email"
	employeeerrors "go-onboarding/internal/employee/errors"
	"go-onboarding/internal/events"
	"go-onboarding/internal/messaging/kafka"
	"go-onboarding/internal/shared/contextutil"
	"go-onboarding/internal/shared/counter"
	"go-onboarding/internal/shared/request"
	"go-onboarding/internal/shared/response"
	"go-onboarding/internal/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

const optionsCacheTTL = time.Hour

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter ListFilter, page request.Page) ([]EmployeeResponse, response.PaginationMeta, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeDetailResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	AssignTemplate(ctx context.Context, actor request.Actor, id string, req AssignTemplateRequest) ([]assignment.EmployeeTaskResponse, error)
	GetProgress(ctx context.Context, id string) (assignment.ProgressResponse, error)
	GetTasks(ctx context.Context, id string) ([]assignment.EmployeeTaskResponse, error)
	SendReminder(ctx context.Context, id string) (assignment.ReminderResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	counter     counter.Repository
	assignments assignment.Service
	outbox      kafka.OutboxRepository
	mailer      email.Service
	rdb         *redis.Client
	sf          *singleflight.Group
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	assignments assignment.Service,
	outboxRepo kafka.OutboxRepository,
	mailer email.Service,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		counter:     counterRepo,
		assignments: assignments,
		outbox:      outboxRepo,
		mailer:      mailer,
		rdb:         rdb,
		sf:          &singleflight.Group{},
		now:         func() time.Time { return time.Now().UTC() },
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("department_id", req.DepartmentID),
	)

	startDate, err := user.ParseDate(req.StartDate)
	if err != nil {
		s.logger.Warn("create employee invalid start_date",
			zap.String("request_id", rid),
			zap.String("start_date", req.StartDate),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidDate
	}
	if err := s.checkReferences(ctx, "", req.DepartmentID, req.ManagerID); err != nil {
		return EmployeeResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	code := strings.TrimSpace(req.EmployeeCode)
	if code == "" {
		seq, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.TypeEmployeeCode)
		if err != nil {
			s.logger.Error("create employee generate code failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}
		code = user.FormatEmployeeCode(seq)
	}

	u := &user.User{
		ID:               uuid.New(),
		Name:             strings.TrimSpace(req.Name),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Password:         string(hashed),
		Role:             user.RoleEmployee,
		EmployeeCode:     code,
		Phone:            req.Phone,
		Address:          req.Address,
		Position:         strings.TrimSpace(req.Position),
		StartDate:        startDate,
		DepartmentID:     user.UUIDPtr(req.DepartmentID),
		ManagerID:        user.UUIDPtr(req.ManagerID),
		OnboardingStatus: user.OnboardingNotStarted,
		IsActive:         true,
		EmailVerified:    true,
	}
	if err := s.repo.WithTx(tx).Create(ctx, u); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		evt, err := events.NewOutboxEvent(rid, "user", u.ID.String(), events.EventUserRegistered, events.UserRegisteredEvent{
			EventType:  events.EventUserRegistered,
			RequestID:  rid,
			UserID:     u.ID.String(),
			Email:      u.Email,
			Name:       u.Name,
			OccurredAt: s.now(),
		})
		if err != nil {
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
			s.logger.Error("create employee outbox persist failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if s.outbox == nil && s.mailer != nil {
		if err := s.mailer.SendWelcome(ctx, u.Email, u.Name); err != nil {
			s.logger.Warn("send welcome email failed", zap.String("request_id", rid), zap.Error(err))
		}
	}
	s.invalidateCaches(ctx)

	s.logger.Info("employee created",
		zap.String("request_id", rid),
		zap.String("employee_id", u.ID.String()),
		zap.String("employee_code", u.EmployeeCode),
	)

	created, err := s.repo.FindByID(ctx, u.ID.String())
	if err != nil {
		return mapToResponse(*u, TaskCounter{}), nil
	}
	return mapToResponse(*created, TaskCounter{}), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter, page request.Page) ([]EmployeeResponse, response.PaginationMeta, error) {
	s.logger.Debug("get all employees requested",
		zap.String("department_id", filter.DepartmentID),
		zap.String("onboarding_status", filter.OnboardingStatus),
		zap.Int("page", page.Page),
	)

	rows, total, err := s.repo.FindAll(ctx, filter, page.Offset(), page.PageSize)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	counters, err := s.repo.TaskCounters(ctx, userIDs(rows))
	if err != nil {
		s.logger.Error("count employee tasks failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	return mapToListResponse(rows, counters), response.NewPaginationMeta(total, page.Page, page.PageSize), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// form assign template dibuka banyak HR sekaligus
	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToOptions(rows)
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, OptionsCacheKey, data, optionsCacheTTL).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get employee options failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeDetailResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return EmployeeDetailResponse{}, err
	}

	progress, err := s.assignments.GetProgress(ctx, id)
	if err != nil {
		return EmployeeDetailResponse{}, err
	}
	tasks, err := s.assignments.ListByEmployee(ctx, id)
	if err != nil {
		return EmployeeDetailResponse{}, err
	}

	return EmployeeDetailResponse{
		UserResponse: user.MapToResponse(*u),
		Progress:     progress,
		Tasks:        tasks,
	}, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := s.find(ctx, id); err != nil {
		return EmployeeResponse{}, err
	}

	values, err := s.updateValues(ctx, id, req)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if len(values) == 0 {
		return EmployeeResponse{}, employeeerrors.ErrNoFieldsToUpdate
	}

	if err := s.repo.Update(ctx, id, values); err != nil {
		s.logger.Error("update employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	s.invalidateCaches(ctx)

	s.logger.Info("employee updated",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.Int("fields", len(values)),
	)

	updated, err := s.find(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	counters, err := s.repo.TaskCounters(ctx, []string{id})
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*updated, counters[id]), nil
}

// updateValues menerjemahkan request ke kolom users yang boleh diubah.
func (s *service) updateValues(ctx context.Context, id string, req UpdateEmployeeRequest) (map[string]any, error) {
	values := map[string]any{}

	if req.Name != nil {
		values["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		values["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.EmployeeCode != nil {
		values["employee_code"] = strings.TrimSpace(*req.EmployeeCode)
	}
	if req.Position != nil {
		values["position"] = strings.TrimSpace(*req.Position)
	}
	if req.Phone != nil {
		values["phone"] = *req.Phone
	}
	if req.Address != nil {
		values["address"] = *req.Address
	}
	if req.StartDate != nil {
		startDate, err := user.ParseDate(*req.StartDate)
		if err != nil {
			return nil, employeeerrors.ErrInvalidDate
		}
		values["start_date"] = startDate
	}
	if req.OnboardingStatus != nil {
		values["onboarding_status"] = *req.OnboardingStatus
	}
	if req.IsActive != nil {
		values["is_active"] = *req.IsActive
	}

	var departmentID, managerID string
	if req.DepartmentID != nil {
		departmentID = *req.DepartmentID
		values["department_id"] = user.UUIDPtr(departmentID)
	}
	if req.ManagerID != nil {
		managerID = *req.ManagerID
		values["manager_id"] = user.UUIDPtr(managerID)
	}
	if err := s.checkReferences(ctx, id, departmentID, managerID); err != nil {
		return nil, err
	}

	return values, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}
	s.invalidateCaches(ctx)

	s.logger.Info("employee deleted", zap.String("request_id", rid), zap.String("employee_id", id))
	return nil
}

func (s *service) AssignTemplate(
	ctx context.Context,
	actor request.Actor,
	id string,
	req AssignTemplateRequest,
) ([]assignment.EmployeeTaskResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	return s.assignments.Assign(ctx, id, req.TemplateID, actor.UserID)
}

func (s *service) GetProgress(ctx context.Context, id string) (assignment.ProgressResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return assignment.ProgressResponse{}, err
	}
	return s.assignments.GetProgress(ctx, id)
}

func (s *service) GetTasks(ctx context.Context, id string) ([]assignment.EmployeeTaskResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	return s.assignments.ListByEmployee(ctx, id)
}

func (s *service) SendReminder(ctx context.Context, id string) (assignment.ReminderResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return assignment.ReminderResponse{}, err
	}

	res, err := s.assignments.RemindEmployee(ctx, id)
	if err != nil {
		return assignment.ReminderResponse{}, err
	}

	s.logger.Info("employee reminder sent",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", id),
		zap.Int("total", res.Total),
		zap.Int("failed", res.Failed),
	)
	return res, nil
}

func (s *service) find(ctx context.Context, id string) (*user.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return u, nil
}

func (s *service) checkReferences(ctx context.Context, selfID, departmentID, managerID string) error {
	if departmentID != "" {
		ok, err := s.repo.DepartmentExists(ctx, departmentID)
		if err != nil {
			return err
		}
		if !ok {
			return employeeerrors.ErrDepartmentNotFound
		}
	}
	if managerID != "" {
		if managerID == selfID {
			return employeeerrors.ErrSelfManager
		}
		ok, err := s.repo.ManagerExists(ctx, managerID)
		if err != nil {
			return err
		}
		if !ok {
			return employeeerrors.ErrManagerNotFound
		}
	}
	return nil
}

func (s *service) invalidateCaches(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("key", OptionsCacheKey),
			zap.Error(err),
		)
	}
	assignment.InvalidateDashboardStats(ctx, s.rdb, s.logger)
}
