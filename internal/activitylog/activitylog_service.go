package activitylog

import (
	"context"
	"encoding/json"
	"time"

	"go-onboarding/internal/shared/request"
	"go-onboarding/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// DefaultRetention is how long rows survive Prune when no age is given.
const DefaultRetention = 90 * 24 * time.Hour

//go:generate mockgen -source=activitylog_service.go -destination=mock/activitylog_service_mock.go -package=mock
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

type Service interface {
	Recorder
	List(ctx context.Context, filter ListFilter, page request.Page) ([]ActivityResponse, response.PaginationMeta, error)
	Recent(ctx context.Context, limit int) ([]ActivityResponse, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("activitylog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activitylog.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Record(ctx context.Context, entry Entry) error {
	row := &ActivityLog{
		ID:         uuid.New(),
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		IPAddress:  entry.IPAddress,
		UserAgent:  entry.UserAgent,
	}
	if id, err := uuid.Parse(entry.UserID); err == nil {
		row.UserID = &id
	}
	if len(entry.Details) > 0 && json.Valid(entry.Details) {
		row.Details = datatypes.JSON(entry.Details)
	}

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Warn("record activity failed",
			zap.String("action", entry.Action),
			zap.String("user_id", entry.UserID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context, filter ListFilter, page request.Page) ([]ActivityResponse, response.PaginationMeta, error) {
	rows, total, err := s.repo.FindAll(ctx, filter, page.Offset(), page.PageSize)
	if err != nil {
		s.logger.Error("list activity failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}
	return mapViews(rows), response.NewPaginationMeta(total, page.Page, page.PageSize), nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]ActivityResponse, error) {
	rows, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return mapViews(rows), nil
}

func (s *service) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		olderThan = DefaultRetention
	}
	n, err := s.repo.DeleteBefore(ctx, time.Now().UTC().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	s.logger.Info("activity logs pruned", zap.Int64("deleted", n), zap.Duration("older_than", olderThan))
	return n, nil
}

func mapViews(rows []ActivityView) []ActivityResponse {
	res := make([]ActivityResponse, len(rows))
	for i, v := range rows {
		item := ActivityResponse{
			ID:         v.ID,
			Action:     v.Action,
			EntityType: v.EntityType,
			EntityID:   v.EntityID,
			IPAddress:  v.IPAddress,
			UserAgent:  v.UserAgent,
			CreatedAt:  v.CreatedAt.UTC().Format(time.RFC3339),
		}
		if v.UserID != nil {
			item.UserID = *v.UserID
		}
		if v.UserName != nil {
			item.UserName = *v.UserName
		}
		if v.UserEmail != nil {
			item.UserEmail = *v.UserEmail
		}
		if len(v.Details) > 0 {
			item.Details = json.RawMessage(v.Details)
		}
		res[i] = item
	}
	return res
}
