package document

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-onboarding/internal/assignment"
	documenterrors "go-onboarding/internal/document/errors"
	"go-onboarding/internal/email"
	"go-onboarding/internal/events"
	"go-onboarding/internal/messaging/kafka"
	"go-onboarding/internal/notification"
	"go-onboarding/internal/shared/contextutil"
	"go-onboarding/internal/shared/metrics"
	"go-onboarding/internal/shared/request"
	"go-onboarding/internal/shared/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, actor request.Actor, in UploadInput) (DocumentResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]DocumentResponse, error)
	Get(ctx context.Context, actor request.Actor, id string) (DocumentResponse, error)
	Download(ctx context.Context, actor request.Actor, id string) (Download, error)
	Delete(ctx context.Context, actor request.Actor, id string) (DocumentResponse, error)
	List(ctx context.Context, filter ListFilter) ([]DocumentResponse, error)
	ListPending(ctx context.Context) ([]DocumentResponse, error)
	Approve(ctx context.Context, id, reviewerID string) (DocumentResponse, error)
	Reject(ctx context.Context, id, reviewerID, reason string) (DocumentResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	assignments assignment.Repository
	files       storage.FileStorage
	outbox      kafka.OutboxRepository
	notifier    notification.Dispatcher
	mailer      email.Service
	rdb         *redis.Client
	metrics     *metrics.Metrics
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	assignments assignment.Repository,
	files storage.FileStorage,
	outboxRepo kafka.OutboxRepository,
	notifier notification.Dispatcher,
	mailer email.Service,
	rdb *redis.Client,
	m *metrics.Metrics,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		assignments: assignments,
		files:       files,
		outbox:      outboxRepo,
		notifier:    notifier,
		mailer:      mailer,
		rdb:         rdb,
		metrics:     m,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      l,
	}
}

func (s *service) Upload(ctx context.Context, actor request.Actor, in UploadInput) (DocumentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	employeeID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrAccessDenied
	}

	var task *assignment.TaskView
	var taskID *uuid.UUID
	if in.TaskID != "" {
		id, err := uuid.Parse(in.TaskID)
		if err != nil {
			return DocumentResponse{}, documenterrors.ErrInvalidTaskID
		}
		task, err = s.assignments.FindByID(ctx, in.TaskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return DocumentResponse{}, documenterrors.ErrTaskNotFound
			}
			return DocumentResponse{}, err
		}
		if task.EmployeeID != actor.UserID {
			s.logger.Warn("upload to foreign task denied",
				zap.String("request_id", rid),
				zap.String("user_id", actor.UserID),
				zap.String("employee_task_id", in.TaskID),
			)
			return DocumentResponse{}, documenterrors.ErrAccessDenied
		}
		taskID = &id
	}

	stored, err := s.files.Save(ctx, StorageDir, in.OriginalName, in.Body, in.Size)
	if err != nil {
		s.logger.Warn("store upload failed", zap.String("request_id", rid), zap.Error(err))
		return DocumentResponse{}, err
	}

	doc := Document{
		ID:               uuid.New(),
		EmployeeID:       employeeID,
		TaskID:           taskID,
		Filename:         stored.Filename,
		OriginalFilename: stored.OriginalFilename,
		FilePath:         stored.Path,
		FileType:         stored.MimeType,
		FileSize:         stored.Size,
		Status:           StatusPending,
	}
	completes := in.CompleteTask && task != nil && task.Status != assignment.StatusCompleted

	if err := s.persistUpload(ctx, &doc, completes); err != nil {
		if rmErr := s.files.Remove(stored.Path); rmErr != nil {
			s.logger.Warn("remove orphan upload failed", zap.String("request_id", rid), zap.Error(rmErr))
		}
		s.logger.Error("persist document failed", zap.String("request_id", rid), zap.Error(err))
		return DocumentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("document uploaded",
		zap.String("request_id", rid),
		zap.String("document_id", doc.ID.String()),
		zap.String("employee_id", actor.UserID),
		zap.Bool("task_completed", completes),
	)

	view, err := s.repo.FindByID(ctx, doc.ID.String())
	if err != nil {
		s.logger.Warn("reload uploaded document failed", zap.String("request_id", rid), zap.Error(err))
		return mapCreated(doc), nil
	}

	s.notifyReviewers(ctx, view.EmployeeName, view.OriginalFilename)
	if completes {
		if s.notifier != nil {
			if err := s.notifier.NotifyTaskCompleted(ctx, actor.UserID, task.Title); err != nil {
				s.logger.Warn("task completed notification failed", zap.String("request_id", rid), zap.Error(err))
			}
		}
		assignment.InvalidateDashboardStats(ctx, s.rdb, s.logger)
	}
	return MapViewToResponse(*view), nil
}

func (s *service) persistUpload(ctx context.Context, doc *Document, completeTask bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, doc); err != nil {
		return err
	}
	if completeTask {
		now := s.now()
		atx := s.assignments.WithTx(tx)
		if err := atx.UpdateStatus(ctx, doc.TaskID.String(), map[string]any{
			"status":         assignment.StatusCompleted,
			"completed_date": now,
		}); err != nil {
			return err
		}
		if err := assignment.SyncOnboardingStatus(ctx, atx, doc.EmployeeID.String(), now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *service) notifyReviewers(ctx context.Context, employeeName, documentName string) {
	if s.notifier == nil {
		return
	}
	ids, err := s.repo.ReviewerIDs(ctx)
	if err != nil {
		s.logger.Warn("load reviewers failed", zap.Error(err))
		return
	}
	for _, id := range ids {
		if err := s.notifier.NotifyDocumentUploaded(ctx, id, employeeName, documentName); err != nil {
			s.logger.Warn("document uploaded notification failed", zap.String("user_id", id), zap.Error(err))
		}
	}
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]DocumentResponse, error) {
	views, err := s.repo.FindByEmployee(ctx, employeeID, 0)
	if err != nil {
		return nil, err
	}
	return MapViewsToResponse(views), nil
}

func (s *service) Get(ctx context.Context, actor request.Actor, id string) (DocumentResponse, error) {
	view, err := s.findOwned(ctx, actor, id)
	if err != nil {
		return DocumentResponse{}, err
	}
	return MapViewToResponse(*view), nil
}

func (s *service) Download(ctx context.Context, actor request.Actor, id string) (Download, error) {
	view, err := s.findOwned(ctx, actor, id)
	if err != nil {
		return Download{}, err
	}
	if view.FilePath == "" {
		return Download{}, storage.ErrFileNotFound
	}

	f, err := s.files.Open(view.FilePath)
	if err != nil {
		s.logger.Warn("open document file failed",
			zap.String("document_id", id),
			zap.String("path", view.FilePath),
			zap.Error(err),
		)
		return Download{}, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return Download{}, err
	}

	return Download{
		File:     f,
		Name:     view.OriginalFilename,
		MimeType: view.FileType,
		Size:     info.Size(),
	}, nil
}

func (s *service) Delete(ctx context.Context, actor request.Actor, id string) (DocumentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	view, err := s.findOwned(ctx, actor, id)
	if err != nil {
		return DocumentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DocumentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		return DocumentResponse{}, mapRepositoryError(err)
	}

	reverted := false
	if view.TaskID != nil {
		remaining, err := qtx.CountByTask(ctx, *view.TaskID, view.EmployeeID)
		if err != nil {
			return DocumentResponse{}, err
		}
		if remaining == 0 {
			if err := s.moveTask(ctx, tx, *view.TaskID, view.EmployeeID, assignment.StatusPending); err != nil {
				s.logger.Error("revert task after delete failed", zap.String("request_id", rid), zap.Error(err))
				return DocumentResponse{}, err
			}
			reverted = true
		}
	}

	if err := tx.Commit(); err != nil {
		return DocumentResponse{}, err
	}

	// file yang sudah hilang tidak dianggap error
	if err := s.files.Remove(view.FilePath); err != nil {
		s.logger.Warn("remove document file failed",
			zap.String("request_id", rid),
			zap.String("path", view.FilePath),
			zap.Error(err),
		)
	}
	if reverted {
		assignment.InvalidateDashboardStats(ctx, s.rdb, s.logger)
	}

	s.logger.Info("document deleted",
		zap.String("request_id", rid),
		zap.String("document_id", id),
		zap.Bool("task_reverted", reverted),
	)
	return MapViewToResponse(*view), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]DocumentResponse, error) {
	views, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return MapViewsToResponse(views), nil
}

func (s *service) ListPending(ctx context.Context) ([]DocumentResponse, error) {
	views, err := s.repo.FindPending(ctx, 0)
	if err != nil {
		return nil, err
	}
	return MapViewsToResponse(views), nil
}

func (s *service) Approve(ctx context.Context, id, reviewerID string) (DocumentResponse, error) {
	return s.review(ctx, id, reviewerID, StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, id, reviewerID, reason string) (DocumentResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return DocumentResponse{}, documenterrors.ErrRejectionReasonRequired
	}
	return s.review(ctx, id, reviewerID, StatusRejected, reason)
}

func (s *service) review(ctx context.Context, id, reviewerID, status, reason string) (DocumentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidDocumentID
	}
	view, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DocumentResponse{}, mapRepositoryError(err)
	}

	now := s.now()
	var reviewer *uuid.UUID
	if rv, err := uuid.Parse(reviewerID); err == nil {
		reviewer = &rv
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DocumentResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Review(ctx, id, map[string]any{
		"status":           status,
		"reviewed_by":      reviewer,
		"reviewed_date":    now,
		"rejection_reason": reason,
	}); err != nil {
		return DocumentResponse{}, mapRepositoryError(err)
	}

	if view.TaskID != nil {
		target := assignment.StatusPending
		if status == StatusApproved {
			target = assignment.StatusCompleted
		}
		if err := s.moveTask(ctx, tx, *view.TaskID, view.EmployeeID, target); err != nil {
			s.logger.Error("cascade task status failed", zap.String("request_id", rid), zap.Error(err))
			return DocumentResponse{}, err
		}
	}

	if s.outbox != nil {
		evt, err := events.NewOutboxEvent(rid, "document", id, events.EventDocumentReviewed, events.DocumentReviewedEvent{
			EventType:     events.EventDocumentReviewed,
			RequestID:     rid,
			DocumentID:    id,
			EmployeeID:    view.EmployeeID,
			EmployeeEmail: view.EmployeeEmail,
			EmployeeName:  view.EmployeeName,
			DocumentName:  view.OriginalFilename,
			Status:        status,
			Reason:        reason,
			ReviewedBy:    reviewerID,
			OccurredAt:    now,
		})
		if err != nil {
			return DocumentResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
			s.logger.Error("review outbox persist failed", zap.String("request_id", rid), zap.Error(err))
			return DocumentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return DocumentResponse{}, err
	}

	s.metrics.DocumentReviewed(status)
	s.notifyReviewed(ctx, *view, status, reason)
	if view.TaskID != nil {
		assignment.InvalidateDashboardStats(ctx, s.rdb, s.logger)
	}

	s.logger.Info("document reviewed",
		zap.String("request_id", rid),
		zap.String("document_id", id),
		zap.String("status", status),
		zap.String("reviewed_by", reviewerID),
	)

	view.Status = status
	view.ReviewedDate = &now
	view.RejectionReason = reason
	if reviewer != nil {
		rv := reviewer.String()
		view.ReviewedBy = &rv
	}
	return MapViewToResponse(*view), nil
}

func (s *service) notifyReviewed(ctx context.Context, view DocumentView, status, reason string) {
	if s.notifier != nil {
		notify := s.notifier.NotifyDocumentRejected
		if status == StatusApproved {
			notify = s.notifier.NotifyDocumentApproved
		}
		if err := notify(ctx, view.EmployeeID, view.OriginalFilename); err != nil {
			s.logger.Warn("document reviewed notification failed", zap.String("document_id", view.ID), zap.Error(err))
		}
	}
	if s.outbox == nil && s.mailer != nil {
		if err := s.mailer.SendDocumentReviewed(ctx, view.EmployeeEmail, view.EmployeeName, view.OriginalFilename, status, reason); err != nil {
			s.logger.Warn("document reviewed email failed", zap.String("document_id", view.ID), zap.Error(err))
		}
	}
}

// moveTask memindahkan status employee task yang terhubung lalu menyelaraskan
// onboarding status employee. Task yang sudah tidak ada diabaikan.
func (s *service) moveTask(ctx context.Context, tx *sql.Tx, taskID, employeeID, status string) error {
	now := s.now()
	values := map[string]any{"status": status, "completed_date": nil}
	if status == assignment.StatusCompleted {
		values["completed_date"] = now
	}

	atx := s.assignments.WithTx(tx)
	if err := atx.UpdateStatus(ctx, taskID, values); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return assignment.SyncOnboardingStatus(ctx, atx, employeeID, now)
}

func (s *service) findOwned(ctx context.Context, actor request.Actor, id string) (*DocumentView, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, documenterrors.ErrInvalidDocumentID
	}
	view, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if !actor.Owns(view.EmployeeID) {
		s.logger.Warn("document access denied",
			zap.String("user_id", actor.UserID),
			zap.String("document_id", id),
		)
		return nil, documenterrors.ErrAccessDenied
	}
	return view, nil
}
