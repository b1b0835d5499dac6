package user

import (
	"context"

	"go-onboarding/internal/shared/contextutil"
	usererrors "go-onboarding/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	UpdateStatus(ctx context.Context, actorID, id string, isActive bool) (UserResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, MapRepositoryError(err)
	}
	return MapToListResponse(users), nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, MapRepositoryError(err)
	}
	return MapToResponse(*u), nil
}

func (s *service) UpdateStatus(ctx context.Context, actorID, id string, isActive bool) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update user status requested",
		zap.String("request_id", rid),
		zap.String("user_id", id),
		zap.Bool("is_active", isActive),
	)

	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	if actorID == id && !isActive {
		s.logger.Warn("admin tried to deactivate own account", zap.String("user_id", id))
		return UserResponse{}, usererrors.ErrCannotDeactivateSelf
	}

	if err := s.repo.UpdateColumns(ctx, id, map[string]any{"is_active": isActive}); err != nil {
		s.logger.Error("update user status failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, MapRepositoryError(err)
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, MapRepositoryError(err)
	}

	s.logger.Info("user status updated",
		zap.String("request_id", rid),
		zap.String("user_id", id),
		zap.Bool("is_active", isActive),
	)
	return MapToResponse(*u), nil
}
