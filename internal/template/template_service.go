package template

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"go-onboarding/internal/shared/contextutil"
	templateerrors "go-onboarding/internal/template/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	TemplateListKeyPrefix = "templates:list:"
	templateListTTL       = time.Hour
)

//go:generate mockgen -source=template_service.go -destination=mock/template_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]TemplateResponse, error)
	GetByID(ctx context.Context, id string) (TemplateResponse, error)
	GetTasks(ctx context.Context, id string) ([]TaskResponse, error)
	Create(ctx context.Context, createdBy string, req CreateTemplateRequest) (TemplateResponse, error)
	Update(ctx context.Context, id string, req UpdateTemplateRequest) (TemplateResponse, error)
	Delete(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id, createdBy string) (TemplateResponse, error)

	AddTask(ctx context.Context, templateID string, req TaskRequest) (TaskResponse, error)
	UpdateTask(ctx context.Context, templateID, taskID string, req UpdateTaskRequest) (TaskResponse, error)
	RemoveTask(ctx context.Context, templateID, taskID string) error

	GetEmployeesForAssignment(ctx context.Context, templateID string) ([]EmployeeForAssignmentResponse, error)
	GetAssignments(ctx context.Context, id string) ([]TemplateAssignmentResponse, error)
	GetAnalytics(ctx context.Context, id string) (TemplateAnalyticsResponse, error)
	GetEmployeesProgress(ctx context.Context) ([]EmployeeProgressResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("template.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("template.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

// ListCacheKey builds the cache key of one filtered template list.
func ListCacheKey(filter ListFilter) string {
	v := url.Values{}
	if filter.DepartmentID != "" {
		v.Set("department_id", filter.DepartmentID)
	}
	if filter.IsActive != "" {
		v.Set("is_active", filter.IsActive)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		v.Set("search", strings.ToLower(s))
	}
	return TemplateListKeyPrefix + v.Encode()
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]TemplateResponse, error) {
	key := ListCacheKey(filter)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var resp []TemplateResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		templates, err := s.repo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(templates)
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, key, data, templateListTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("list templates failed", zap.Error(err))
		return nil, err
	}

	return v.([]TemplateResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TemplateResponse, error) {
	tpl, err := s.find(ctx, id)
	if err != nil {
		return TemplateResponse{}, err
	}
	return mapToResponse(*tpl), nil
}

func (s *service) GetTasks(ctx context.Context, id string) ([]TaskResponse, error) {
	tpl, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapTasksToResponse(tpl.Tasks), nil
}

func (s *service) Create(ctx context.Context, createdBy string, req CreateTemplateRequest) (TemplateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create template requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.Int("tasks", len(req.Tasks)),
	)

	tpl := &Template{
		ID:                      uuid.New(),
		Name:                    strings.TrimSpace(req.Name),
		Description:             req.Description,
		EstimatedCompletionDays: DefaultCompletionDays,
		IsActive:                true,
	}
	if req.EstimatedCompletionDays != nil {
		tpl.EstimatedCompletionDays = *req.EstimatedCompletionDays
	}
	if creator, err := uuid.Parse(createdBy); err == nil {
		tpl.CreatedBy = &creator
	}
	if req.DepartmentID != "" {
		deptID, err := s.checkDepartment(ctx, req.DepartmentID)
		if err != nil {
			return TemplateResponse{}, err
		}
		tpl.DepartmentID = &deptID
	}

	tasks, err := buildTasks(tpl.ID, req.Tasks, 0)
	if err != nil {
		return TemplateResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TemplateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, tpl); err != nil {
		s.logger.Error("create template failed", zap.String("request_id", rid), zap.Error(err))
		return TemplateResponse{}, mapRepositoryError(err)
	}
	if err := qtx.CreateTasks(ctx, tasks); err != nil {
		s.logger.Error("create template tasks failed", zap.String("request_id", rid), zap.Error(err))
		return TemplateResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TemplateResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("template created",
		zap.String("request_id", rid),
		zap.String("template_id", tpl.ID.String()),
	)
	return s.GetByID(ctx, tpl.ID.String())
}

func (s *service) Update(ctx context.Context, id string, req UpdateTemplateRequest) (TemplateResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := s.find(ctx, id); err != nil {
		return TemplateResponse{}, err
	}

	values := map[string]any{}
	if req.Name != nil {
		values["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		values["description"] = *req.Description
	}
	if req.DepartmentID != nil {
		if *req.DepartmentID == "" {
			values["department_id"] = nil
		} else {
			deptID, err := s.checkDepartment(ctx, *req.DepartmentID)
			if err != nil {
				return TemplateResponse{}, err
			}
			values["department_id"] = deptID
		}
	}
	if req.EstimatedCompletionDays != nil {
		values["estimated_completion_days"] = *req.EstimatedCompletionDays
	}
	if req.IsActive != nil {
		values["is_active"] = *req.IsActive
	}
	if len(values) == 0 && req.Tasks == nil {
		return TemplateResponse{}, templateerrors.ErrNoFieldsToUpdate
	}

	var tasks []Task
	if req.Tasks != nil {
		n, err := s.repo.CountAssignments(ctx, id)
		if err != nil {
			return TemplateResponse{}, err
		}
		if n > 0 {
			s.logger.Warn("replace tasks rejected, template assigned",
				zap.String("request_id", rid),
				zap.String("template_id", id),
				zap.Int64("assignments", n),
			)
			return TemplateResponse{}, templateerrors.ErrReplaceAssignedTasks
		}
		tasks, err = buildTasks(uuid.MustParse(id), *req.Tasks, 0)
		if err != nil {
			return TemplateResponse{}, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TemplateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if len(values) > 0 {
		if err := qtx.Update(ctx, id, values); err != nil {
			s.logger.Warn("update template failed", zap.String("request_id", rid), zap.Error(err))
			return TemplateResponse{}, mapRepositoryError(err)
		}
	}
	if req.Tasks != nil {
		if err := qtx.DeleteTasks(ctx, id); err != nil {
			return TemplateResponse{}, mapRepositoryError(err)
		}
		if err := qtx.CreateTasks(ctx, tasks); err != nil {
			return TemplateResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return TemplateResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("template updated",
		zap.String("request_id", rid),
		zap.String("template_id", id),
		zap.Bool("tasks_replaced", req.Tasks != nil),
	)
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	n, err := s.repo.CountAssignments(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Warn("delete template rejected, template assigned",
			zap.String("request_id", rid),
			zap.String("template_id", id),
			zap.Int64("assignments", n),
		)
		return templateerrors.ErrTemplateAssigned
	}

	if err := s.repo.Update(ctx, id, map[string]any{"is_active": false}); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidate(ctx)
	s.logger.Info("template deactivated", zap.String("request_id", rid), zap.String("template_id", id))
	return nil
}

func (s *service) Duplicate(ctx context.Context, id, createdBy string) (TemplateResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	src, err := s.find(ctx, id)
	if err != nil {
		return TemplateResponse{}, err
	}

	tpl := &Template{
		ID:                      uuid.New(),
		Name:                    src.Name + " (Copy)",
		Description:             src.Description,
		DepartmentID:            src.DepartmentID,
		EstimatedCompletionDays: src.EstimatedCompletionDays,
		IsActive:                true,
		CreatedBy:               src.CreatedBy,
	}
	if creator, err := uuid.Parse(createdBy); err == nil {
		tpl.CreatedBy = &creator
	}

	tasks := make([]Task, len(src.Tasks))
	for i, t := range src.Tasks {
		tasks[i] = Task{
			ID:            uuid.New(),
			TemplateID:    tpl.ID,
			Title:         t.Title,
			Description:   t.Description,
			TaskType:      t.TaskType,
			IsRequired:    t.IsRequired,
			EstimatedTime: t.EstimatedTime,
			OrderIndex:    t.OrderIndex,
			ResourceURL:   t.ResourceURL,
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TemplateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, tpl); err != nil {
		s.logger.Error("duplicate template failed", zap.String("request_id", rid), zap.Error(err))
		return TemplateResponse{}, mapRepositoryError(err)
	}
	if err := qtx.CreateTasks(ctx, tasks); err != nil {
		return TemplateResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TemplateResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("template duplicated",
		zap.String("request_id", rid),
		zap.String("source_id", id),
		zap.String("template_id", tpl.ID.String()),
	)
	return s.GetByID(ctx, tpl.ID.String())
}

func (s *service) AddTask(ctx context.Context, templateID string, req TaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tpl, err := s.find(ctx, templateID)
	if err != nil {
		return TaskResponse{}, err
	}

	// task baru ditaruh di akhir kalau order_index tidak dikirim
	tasks, err := buildTasks(tpl.ID, []TaskRequest{req}, len(tpl.Tasks))
	if err != nil {
		return TaskResponse{}, err
	}
	if err := s.repo.CreateTasks(ctx, tasks); err != nil {
		s.logger.Error("add task failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, mapTaskError(err)
	}

	s.invalidate(ctx)
	s.logger.Info("task added",
		zap.String("request_id", rid),
		zap.String("template_id", templateID),
		zap.String("task_id", tasks[0].ID.String()),
	)
	return mapTaskToResponse(tasks[0]), nil
}

func (s *service) UpdateTask(ctx context.Context, templateID, taskID string, req UpdateTaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := s.findTaskOf(ctx, templateID, taskID); err != nil {
		return TaskResponse{}, err
	}

	values := map[string]any{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return TaskResponse{}, templateerrors.ErrTaskTitleRequired
		}
		values["title"] = title
	}
	if req.Description != nil {
		values["description"] = *req.Description
	}
	if req.TaskType != nil {
		if !IsValidTaskType(*req.TaskType) {
			return TaskResponse{}, templateerrors.ErrInvalidTaskType
		}
		values["task_type"] = *req.TaskType
	}
	if req.IsRequired != nil {
		values["is_required"] = *req.IsRequired
	}
	if req.EstimatedTime != nil {
		values["estimated_time"] = *req.EstimatedTime
	}
	if req.OrderIndex != nil {
		values["order_index"] = *req.OrderIndex
	}
	if req.ResourceURL != nil {
		values["resource_url"] = *req.ResourceURL
	}
	if len(values) == 0 {
		return TaskResponse{}, templateerrors.ErrNoFieldsToUpdate
	}

	if err := s.repo.UpdateTask(ctx, taskID, values); err != nil {
		s.logger.Warn("update task failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, mapTaskError(err)
	}

	task, err := s.repo.FindTask(ctx, taskID)
	if err != nil {
		return TaskResponse{}, mapTaskError(err)
	}

	s.invalidate(ctx)
	s.logger.Info("task updated", zap.String("request_id", rid), zap.String("task_id", taskID))
	return mapTaskToResponse(*task), nil
}

func (s *service) RemoveTask(ctx context.Context, templateID, taskID string) error {
	rid := contextutil.GetRequestID(ctx)

	if _, err := s.findTaskOf(ctx, templateID, taskID); err != nil {
		return err
	}

	n, err := s.repo.CountTaskAssignments(ctx, taskID)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Warn("remove task rejected, task assigned",
			zap.String("request_id", rid),
			zap.String("task_id", taskID),
			zap.Int64("assignments", n),
		)
		return templateerrors.ErrTaskAssigned
	}

	if err := s.repo.DeleteTask(ctx, taskID); err != nil {
		return mapTaskError(err)
	}

	s.invalidate(ctx)
	s.logger.Info("task removed",
		zap.String("request_id", rid),
		zap.String("template_id", templateID),
		zap.String("task_id", taskID),
	)
	return nil
}

func (s *service) GetEmployeesForAssignment(ctx context.Context, templateID string) ([]EmployeeForAssignmentResponse, error) {
	var assigned map[string]bool
	if templateID != "" {
		if _, err := uuid.Parse(templateID); err != nil {
			return nil, templateerrors.ErrInvalidTemplateID
		}
		ids, err := s.repo.AssignedEmployeeIDs(ctx, templateID)
		if err != nil {
			return nil, err
		}
		assigned = ids
	}

	rows, err := s.repo.FindEmployees(ctx)
	if err != nil {
		s.logger.Error("list employees for assignment failed", zap.Error(err))
		return nil, err
	}
	return mapEmployeesForAssignment(rows, assigned), nil
}

func (s *service) GetAssignments(ctx context.Context, id string) ([]TemplateAssignmentResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAssignmentRows(ctx, id)
	if err != nil {
		s.logger.Error("list template assignments failed", zap.String("template_id", id), zap.Error(err))
		return nil, err
	}
	return mapAssignments(rows), nil
}

func (s *service) GetAnalytics(ctx context.Context, id string) (TemplateAnalyticsResponse, error) {
	tpl, err := s.find(ctx, id)
	if err != nil {
		return TemplateAnalyticsResponse{}, err
	}

	rows, err := s.repo.FindAssignmentRows(ctx, id)
	if err != nil {
		s.logger.Error("template analytics failed", zap.String("template_id", id), zap.Error(err))
		return TemplateAnalyticsResponse{}, err
	}
	return mapAnalytics(*tpl, rows), nil
}

func (s *service) GetEmployeesProgress(ctx context.Context) ([]EmployeeProgressResponse, error) {
	rows, err := s.repo.FindEmployees(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.CountTasksByEmployee(ctx)
	if err != nil {
		s.logger.Error("count employee tasks failed", zap.Error(err))
		return nil, err
	}
	return mapEmployeesProgress(rows, counts), nil
}

func (s *service) find(ctx context.Context, id string) (*Template, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, templateerrors.ErrInvalidTemplateID
	}
	tpl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return tpl, nil
}

func (s *service) findTaskOf(ctx context.Context, templateID, taskID string) (*Task, error) {
	if _, err := s.find(ctx, templateID); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(taskID); err != nil {
		return nil, templateerrors.ErrInvalidTaskID
	}

	task, err := s.repo.FindTask(ctx, taskID)
	if err != nil {
		return nil, mapTaskError(err)
	}
	if task.TemplateID.String() != templateID {
		return nil, templateerrors.ErrTaskNotInTemplate
	}
	return task, nil
}

func (s *service) checkDepartment(ctx context.Context, departmentID string) (uuid.UUID, error) {
	id, err := uuid.Parse(departmentID)
	if err != nil {
		return uuid.Nil, templateerrors.ErrDepartmentNotFound
	}
	ok, err := s.repo.DepartmentExists(ctx, departmentID)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, templateerrors.ErrDepartmentNotFound
	}
	return id, nil
}

// invalidate menghapus semua cache list template (semua kombinasi filter).
func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}

	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, TemplateListKeyPrefix+"*", 100).Result()
		if err != nil {
			s.logger.Warn("scan template cache failed", zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				s.logger.Warn("invalidate template cache failed", zap.Strings("keys", keys), zap.Error(err))
			}
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

func buildTasks(templateID uuid.UUID, reqs []TaskRequest, offset int) ([]Task, error) {
	tasks := make([]Task, 0, len(reqs))
	for i, req := range reqs {
		if !IsValidTaskType(req.TaskType) {
			return nil, templateerrors.ErrInvalidTaskType
		}
		title := strings.TrimSpace(req.Title)
		if title == "" {
			return nil, templateerrors.ErrTaskTitleRequired
		}
		task := Task{
			ID:            uuid.New(),
			TemplateID:    templateID,
			Title:         title,
			Description:   req.Description,
			TaskType:      req.TaskType,
			IsRequired:    true,
			EstimatedTime: req.EstimatedTime,
			OrderIndex:    offset + i,
			ResourceURL:   req.ResourceURL,
		}
		if req.IsRequired != nil {
			task.IsRequired = *req.IsRequired
		}
		if req.OrderIndex != nil {
			task.OrderIndex = *req.OrderIndex
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
