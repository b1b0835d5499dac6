package department

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	departmenterrors "go-onboarding/internal/department/errors"
	"go-onboarding/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DepartmentAllKey = "departments:all"
	departmentTTL    = 30 * time.Minute
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	GetStats(ctx context.Context, id string) (DepartmentStatsResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create department requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	dept := &Department{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if req.ManagerID != "" {
		managerID, err := s.checkManager(ctx, req.ManagerID)
		if err != nil {
			return DepartmentResponse{}, err
		}
		dept.ManagerID = &managerID
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == err {
			s.logger.Error("create department failed", zap.String("request_id", rid), zap.Error(err))
		}
		return DepartmentResponse{}, mapped
	}

	s.invalidate(ctx)
	s.logger.Info("department created",
		zap.String("request_id", rid),
		zap.String("department_id", dept.ID.String()),
	)
	return mapToResponse(*dept, 0), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, DepartmentAllKey).Result()
		if err == nil {
			var resp []DepartmentResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(DepartmentAllKey, func() (interface{}, error) {
		depts, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		counts, err := s.repo.CountEmployees(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(depts, counts)
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, DepartmentAllKey, data, departmentTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, err
	}

	return v.([]DepartmentResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	counts, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept, counts[id]), nil
}

func (s *service) GetStats(ctx context.Context, id string) (DepartmentStatsResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentStatsResponse{}, departmenterrors.ErrInvalidDepartmentID
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return DepartmentStatsResponse{}, mapRepositoryError(err)
	}

	stats, err := s.repo.Stats(ctx, id)
	if err != nil {
		s.logger.Error("department stats failed", zap.String("department_id", id), zap.Error(err))
		return DepartmentStatsResponse{}, err
	}
	return mapStats(stats), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	values := map[string]any{}
	if req.Name != nil {
		values["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		values["description"] = *req.Description
	}
	if req.ManagerID != nil {
		if *req.ManagerID == "" {
			values["manager_id"] = nil
		} else {
			managerID, err := s.checkManager(ctx, *req.ManagerID)
			if err != nil {
				return DepartmentResponse{}, err
			}
			values["manager_id"] = managerID
		}
	}
	if len(values) == 0 {
		return DepartmentResponse{}, departmenterrors.ErrNoFieldsToUpdate
	}

	if err := s.repo.Update(ctx, id, values); err != nil {
		s.logger.Warn("update department failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx)
	s.logger.Info("department updated", zap.String("request_id", rid), zap.String("department_id", id))
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Detach(ctx, id); err != nil {
		s.logger.Error("detach department references failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("department deleted", zap.String("request_id", rid), zap.String("department_id", id))
	return nil
}

func (s *service) checkManager(ctx context.Context, managerID string) (uuid.UUID, error) {
	id, err := uuid.Parse(managerID)
	if err != nil {
		return uuid.Nil, departmenterrors.ErrManagerNotFound
	}
	ok, err := s.repo.ManagerExists(ctx, managerID)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, departmenterrors.ErrManagerNotFound
	}
	return id, nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DepartmentAllKey).Err(); err != nil {
		s.logger.Warn("invalidate department cache failed", zap.String("key", DepartmentAllKey), zap.Error(err))
	}
}
