package notification

import (
	"context"
	"fmt"
	"strings"

	notificationerrors "go-onboarding/internal/notification/errors"
	"go-onboarding/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	Dispatcher

	List(ctx context.Context, userID string, limit int) ([]NotificationResponse, error)
	ListUnread(ctx context.Context, userID string) ([]NotificationResponse, error)
	UnreadCount(ctx context.Context, userID string) (UnreadCountResponse, error)
	MarkRead(ctx context.Context, userID, id string) (NotificationResponse, error)
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID, id string) error
	ClearAll(ctx context.Context, userID string) (ClearAllResponse, error)
	Create(ctx context.Context, req CreateNotificationRequest) (NotificationResponse, error)
}

// Dispatcher membuat notifikasi dari event domain.
type Dispatcher interface {
	NotifyTaskAssigned(ctx context.Context, userID, taskTitle string) error
	NotifyTaskReminder(ctx context.Context, userID, taskTitle string) error
	NotifyTaskCompleted(ctx context.Context, userID, taskTitle string) error
	NotifyDocumentUploaded(ctx context.Context, userID, employeeName, documentName string) error
	NotifyDocumentApproved(ctx context.Context, userID, documentName string) error
	NotifyDocumentRejected(ctx context.Context, userID, documentName string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, userID string, limit int) ([]NotificationResponse, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	items, err := s.repo.FindByUser(ctx, userID, limit)
	if err != nil {
		s.logger.Error("list notifications failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) ListUnread(ctx context.Context, userID string) ([]NotificationResponse, error) {
	items, err := s.repo.FindUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) UnreadCount(ctx context.Context, userID string) (UnreadCountResponse, error) {
	n, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return UnreadCountResponse{}, err
	}
	return UnreadCountResponse{Count: n}, nil
}

func (s *service) MarkRead(ctx context.Context, userID, id string) (NotificationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return NotificationResponse{}, notificationerrors.ErrInvalidNotificationID
	}

	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		return NotificationResponse{}, mapRepositoryError(err)
	}

	n, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return NotificationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*n), nil
}

func (s *service) MarkAllRead(ctx context.Context, userID string) error {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		s.logger.Error("mark all notifications read failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	s.logger.Debug("notifications marked read", zap.String("user_id", userID), zap.Int64("count", n))
	return nil
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return notificationerrors.ErrInvalidNotificationID
	}
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func (s *service) ClearAll(ctx context.Context, userID string) (ClearAllResponse, error) {
	n, err := s.repo.ClearAll(ctx, userID)
	if err != nil {
		s.logger.Error("clear notifications failed", zap.String("user_id", userID), zap.Error(err))
		return ClearAllResponse{}, err
	}
	s.logger.Info("notifications cleared", zap.String("user_id", userID), zap.Int64("count", n))
	return ClearAllResponse{Deleted: n}, nil
}

func (s *service) Create(ctx context.Context, req CreateNotificationRequest) (NotificationResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	ok, err := s.repo.UserExists(ctx, req.UserID)
	if err != nil {
		return NotificationResponse{}, err
	}
	if !ok {
		s.logger.Warn("notification recipient not found",
			zap.String("request_id", rid),
			zap.String("user_id", req.UserID),
		)
		return NotificationResponse{}, notificationerrors.ErrRecipientNotFound
	}

	typ := req.Type
	if typ == "" {
		typ = TypeSystem
	}
	n, err := s.create(ctx, req.UserID, strings.TrimSpace(req.Title), req.Message, typ, req.Link)
	if err != nil {
		s.logger.Error("create notification failed", zap.String("request_id", rid), zap.Error(err))
		return NotificationResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("notification created",
		zap.String("request_id", rid),
		zap.String("notification_id", n.ID.String()),
		zap.String("user_id", req.UserID),
	)
	return mapToResponse(*n), nil
}

func (s *service) NotifyTaskAssigned(ctx context.Context, userID, taskTitle string) error {
	_, err := s.create(ctx, userID,
		"New Task Assigned",
		fmt.Sprintf("You have been assigned a new task: %s", taskTitle),
		TypeTaskAssigned, LinkEmployeeTasks,
	)
	return err
}

func (s *service) NotifyTaskReminder(ctx context.Context, userID, taskTitle string) error {
	_, err := s.create(ctx, userID,
		"Task Reminder",
		fmt.Sprintf("Reminder: Please complete your task: %s", taskTitle),
		TypeTaskReminder, LinkEmployeeTasks,
	)
	return err
}

func (s *service) NotifyTaskCompleted(ctx context.Context, userID, taskTitle string) error {
	_, err := s.create(ctx, userID,
		"Task Completed",
		fmt.Sprintf("Great job! You completed a task: %s", taskTitle),
		TypeTaskCompleted, LinkEmployeeTasks,
	)
	return err
}

func (s *service) NotifyDocumentUploaded(ctx context.Context, userID, employeeName, documentName string) error {
	_, err := s.create(ctx, userID,
		"New Document Uploaded",
		fmt.Sprintf("%s uploaded \"%s\" for review", employeeName, documentName),
		TypeDocumentUploaded, LinkHRDocuments,
	)
	return err
}

func (s *service) NotifyDocumentApproved(ctx context.Context, userID, documentName string) error {
	_, err := s.create(ctx, userID,
		"Document Approved",
		fmt.Sprintf("Your document \"%s\" has been approved", documentName),
		TypeDocumentApproved, LinkEmployeeDocuments,
	)
	return err
}

func (s *service) NotifyDocumentRejected(ctx context.Context, userID, documentName string) error {
	_, err := s.create(ctx, userID,
		"Document Rejected",
		fmt.Sprintf("Your document \"%s\" has been rejected. Please check the reason and resubmit.", documentName),
		TypeDocumentRejected, LinkEmployeeDocuments,
	)
	return err
}

func (s *service) create(ctx context.Context, userID, title, message, typ, link string) (*Notification, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, notificationerrors.ErrRecipientNotFound
	}

	n := &Notification{
		ID:      uuid.New(),
		UserID:  uid,
		Title:   title,
		Message: message,
		Type:    typ,
		Link:    link,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}
