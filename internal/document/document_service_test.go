package document_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"go-onboarding/internal/assignment"
	assignmentMock "go-onboarding/internal/assignment/mock"
	"go-onboarding/internal/document"
	documenterrors "go-onboarding/internal/document/errors"
	documentMock "go-onboarding/internal/document/mock"
	emailMock "go-onboarding/internal/email/mock"
	"go-onboarding/internal/messaging/kafka"
	kafkaMock "go-onboarding/internal/messaging/kafka/mock"
	notificationMock "go-onboarding/internal/notification/mock"
	"go-onboarding/internal/shared/request"
	"go-onboarding/internal/shared/storage"
	storageMock "go-onboarding/internal/shared/storage/mock"
	"go-onboarding/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db          *sql.DB
	sqlMock     sqlmock.Sqlmock
	service     document.Service
	repo        *documentMock.MockRepository
	assignments *assignmentMock.MockRepository
	files       *storageMock.MockFileStorage
	outbox      *kafkaMock.MockOutboxRepository
	notifier    *notificationMock.MockDispatcher
	mailer      *emailMock.MockService
	redismock   redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	rdb, redisMock := redismock.NewClientMock()

	deps := &serviceDeps{
		db:          db,
		sqlMock:     sqlMock,
		repo:        documentMock.NewMockRepository(ctrl),
		assignments: assignmentMock.NewMockRepository(ctrl),
		files:       storageMock.NewMockFileStorage(ctrl),
		outbox:      kafkaMock.NewMockOutboxRepository(ctrl),
		notifier:    notificationMock.NewMockDispatcher(ctrl),
		mailer:      emailMock.NewMockService(ctrl),
		redismock:   redisMock,
	}
	deps.service = document.NewService(db, deps.repo, deps.assignments, deps.files, deps.outbox, deps.notifier, deps.mailer, rdb, nil)
	return deps
}

func strPtr(s string) *string { return &s }

func TestDocumentService_Approve(t *testing.T) {
	ctx := context.Background()
	docID := uuid.NewString()
	empID := uuid.NewString()
	taskID := uuid.NewString()
	hrID := uuid.NewString()

	t.Run("completes the linked task in the same transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		view := &document.DocumentView{
			ID: docID, EmployeeID: empID, TaskID: strPtr(taskID),
			OriginalFilename: "ktp.pdf", Status: document.StatusPending,
			EmployeeName: "Rina", EmployeeEmail: "rina@example.com",
		}

		deps.repo.EXPECT().FindByID(ctx, docID).Return(view, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Review(ctx, docID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, values map[string]any) error {
				assert.Equal(t, document.StatusApproved, values["status"])
				assert.Equal(t, "", values["rejection_reason"])
				require.NotNil(t, values["reviewed_by"])
				return nil
			})
		deps.assignments.EXPECT().WithTx(gomock.Any()).Return(deps.assignments)
		deps.assignments.EXPECT().UpdateStatus(ctx, taskID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, values map[string]any) error {
				assert.Equal(t, assignment.StatusCompleted, values["status"])
				assert.NotNil(t, values["completed_date"])
				return nil
			})
		deps.assignments.EXPECT().CountByStatus(ctx, empID).Return(map[string]int64{assignment.StatusCompleted: 1}, nil)
		deps.assignments.EXPECT().FindOnboardingStatus(ctx, empID).Return(user.OnboardingInProgress, nil)
		deps.assignments.EXPECT().UpdateOnboarding(ctx, empID, user.OnboardingCompleted, gomock.Not(gomock.Nil())).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, evt kafka.OutboxEvent) error {
			assert.Equal(t, "document_reviewed", evt.EventType)
			assert.Contains(t, string(evt.Payload), `"status":"approved"`)
			return nil
		})
		deps.sqlMock.ExpectCommit()
		deps.notifier.EXPECT().NotifyDocumentApproved(ctx, empID, "ktp.pdf").Return(nil)
		deps.redismock.ExpectDel(assignment.DashboardStatsCacheKey).SetVal(1)

		res, err := deps.service.Approve(ctx, docID, hrID)

		require.NoError(t, err)
		assert.Equal(t, document.StatusApproved, res.Status)
		assert.Equal(t, hrID, res.ReviewedBy)
		assert.NotEmpty(t, res.ReviewedDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("notification failure is swallowed", func(t *testing.T) {
		deps := setupServiceTest(t)
		view := &document.DocumentView{ID: docID, EmployeeID: empID, OriginalFilename: "npwp.pdf"}

		deps.repo.EXPECT().FindByID(ctx, docID).Return(view, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Review(ctx, docID, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.notifier.EXPECT().NotifyDocumentApproved(ctx, empID, "npwp.pdf").Return(errors.New("boom"))

		_, err := deps.service.Approve(ctx, docID, hrID)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, docID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Approve(ctx, docID, hrID)

		assert.ErrorIs(t, err, documenterrors.ErrDocumentNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Approve(ctx, "abc", hrID)

		assert.ErrorIs(t, err, documenterrors.ErrInvalidDocumentID)
	})
}

func TestDocumentService_Reject(t *testing.T) {
	ctx := context.Background()
	docID := uuid.NewString()
	empID := uuid.NewString()
	taskID := uuid.NewString()

	t.Run("blank reason changes nothing", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Reject(ctx, docID, uuid.NewString(), "   ")

		assert.ErrorIs(t, err, documenterrors.ErrRejectionReasonRequired)
	})

	t.Run("reverts the linked task to pending", func(t *testing.T) {
		deps := setupServiceTest(t)
		view := &document.DocumentView{ID: docID, EmployeeID: empID, TaskID: strPtr(taskID), OriginalFilename: "ktp.pdf"}

		deps.repo.EXPECT().FindByID(ctx, docID).Return(view, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Review(ctx, docID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, values map[string]any) error {
				assert.Equal(t, document.StatusRejected, values["status"])
				assert.Equal(t, "blurry scan", values["rejection_reason"])
				return nil
			})
		deps.assignments.EXPECT().WithTx(gomock.Any()).Return(deps.assignments)
		deps.assignments.EXPECT().UpdateStatus(ctx, taskID, map[string]any{
			"status":         assignment.StatusPending,
			"completed_date": nil,
		}).Return(nil)
		deps.assignments.EXPECT().CountByStatus(ctx, empID).Return(map[string]int64{assignment.StatusPending: 1}, nil)
		deps.assignments.EXPECT().FindOnboardingStatus(ctx, empID).Return(user.OnboardingCompleted, nil)
		deps.assignments.EXPECT().UpdateOnboarding(ctx, empID, user.OnboardingInProgress, nil).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.notifier.EXPECT().NotifyDocumentRejected(ctx, empID, "ktp.pdf").Return(nil)
		deps.redismock.ExpectDel(assignment.DashboardStatsCacheKey).SetVal(1)

		res, err := deps.service.Reject(ctx, docID, uuid.NewString(), "  blurry scan ")

		require.NoError(t, err)
		assert.Equal(t, document.StatusRejected, res.Status)
		assert.Equal(t, "blurry scan", res.RejectionReason)
	})
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()
	docID := uuid.NewString()
	empID := uuid.NewString()
	taskID := uuid.NewString()
	owner := request.Actor{UserID: empID, Role: "employee"}
	view := &document.DocumentView{ID: docID, EmployeeID: empID, TaskID: strPtr(taskID), FilePath: "/uploads/documents/a.pdf"}

	t.Run("last document reverts the task", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, docID).Return(view, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, docID).Return(nil)
		deps.repo.EXPECT().CountByTask(ctx, taskID, empID).Return(int64(0), nil)
		deps.assignments.EXPECT().WithTx(gomock.Any()).Return(deps.assignments)
		deps.assignments.EXPECT().UpdateStatus(ctx, taskID, gomock.Any()).Return(nil)
		deps.assignments.EXPECT().CountByStatus(ctx, empID).Return(map[string]int64{assignment.StatusPending: 1}, nil)
		deps.assignments.EXPECT().FindOnboardingStatus(ctx, empID).Return(user.OnboardingInProgress, nil)
		deps.sqlMock.ExpectCommit()
		deps.files.EXPECT().Remove(view.FilePath).Return(nil)
		deps.redismock.ExpectDel(assignment.DashboardStatsCacheKey).SetVal(1)

		_, err := deps.service.Delete(ctx, owner, docID)

		require.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("remaining document keeps the task", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, docID).Return(view, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, docID).Return(nil)
		deps.repo.EXPECT().CountByTask(ctx, taskID, empID).Return(int64(1), nil)
		deps.sqlMock.ExpectCommit()
		deps.files.EXPECT().Remove(view.FilePath).Return(errors.New("permission denied"))

		_, err := deps.service.Delete(ctx, owner, docID)

		require.NoError(t, err)
	})

	t.Run("other employee is denied", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, docID).Return(view, nil)

		_, err := deps.service.Delete(ctx, request.Actor{UserID: uuid.NewString(), Role: "employee"}, docID)

		assert.ErrorIs(t, err, documenterrors.ErrAccessDenied)
	})
}

func TestDocumentService_Upload(t *testing.T) {
	ctx := context.Background()
	empID := uuid.NewString()
	taskID := uuid.NewString()
	owner := request.Actor{UserID: empID, Role: "employee"}

	t.Run("foreign task is denied before storing", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.assignments.EXPECT().FindByID(ctx, taskID).Return(&assignment.TaskView{ID: taskID, EmployeeID: uuid.NewString()}, nil)

		_, err := deps.service.Upload(ctx, owner, document.UploadInput{TaskID: taskID, OriginalName: "a.pdf", Body: strings.NewReader("x")})

		assert.ErrorIs(t, err, documenterrors.ErrAccessDenied)
	})

	t.Run("rejected file type", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.files.EXPECT().Save(ctx, document.StorageDir, "a.exe", gomock.Any(), int64(3)).Return(storage.StoredFile{}, storage.ErrFileType)

		_, err := deps.service.Upload(ctx, owner, document.UploadInput{OriginalName: "a.exe", Body: strings.NewReader("MZ!"), Size: 3})

		assert.ErrorIs(t, err, storage.ErrFileType)
	})

	t.Run("db failure removes the stored file", func(t *testing.T) {
		deps := setupServiceTest(t)
		stored := storage.StoredFile{Filename: "1-x.pdf", OriginalFilename: "a.pdf", Path: "/u/documents/1-x.pdf", MimeType: "application/pdf", Size: 10}
		deps.files.EXPECT().Save(ctx, document.StorageDir, "a.pdf", gomock.Any(), int64(10)).Return(stored, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("disk full"))
		deps.sqlMock.ExpectRollback()
		deps.files.EXPECT().Remove(stored.Path).Return(nil)

		_, err := deps.service.Upload(ctx, owner, document.UploadInput{OriginalName: "a.pdf", Body: strings.NewReader("%PDF-1.4"), Size: 10})

		assert.EqualError(t, err, "disk full")
	})

	t.Run("task upload completes the task and notifies reviewers", func(t *testing.T) {
		deps := setupServiceTest(t)
		stored := storage.StoredFile{Filename: "1-x.pdf", OriginalFilename: "a.pdf", Path: "/u/documents/1-x.pdf", MimeType: "application/pdf", Size: 10}
		deps.assignments.EXPECT().FindByID(ctx, taskID).Return(&assignment.TaskView{
			ID: taskID, EmployeeID: empID, Status: assignment.StatusPending, Title: "Upload KTP",
		}, nil)
		deps.files.EXPECT().Save(ctx, document.StorageDir, "a.pdf", gomock.Any(), int64(10)).Return(stored, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		var created document.Document
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, doc *document.Document) error {
			created = *doc
			return nil
		})
		deps.assignments.EXPECT().WithTx(gomock.Any()).Return(deps.assignments)
		deps.assignments.EXPECT().UpdateStatus(ctx, taskID, gomock.Any()).Return(nil)
		deps.assignments.EXPECT().CountByStatus(ctx, empID).Return(map[string]int64{assignment.StatusCompleted: 1, assignment.StatusPending: 1}, nil)
		deps.assignments.EXPECT().FindOnboardingStatus(ctx, empID).Return(user.OnboardingInProgress, nil)
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().FindByID(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, id string) (*document.DocumentView, error) {
			assert.Equal(t, created.ID.String(), id)
			return &document.DocumentView{ID: id, EmployeeID: empID, TaskID: strPtr(taskID), EmployeeName: "Rina", OriginalFilename: "a.pdf", Status: document.StatusPending}, nil
		})
		deps.repo.EXPECT().ReviewerIDs(ctx).Return([]string{"hr-1", "admin-1"}, nil)
		deps.notifier.EXPECT().NotifyDocumentUploaded(ctx, "hr-1", "Rina", "a.pdf").Return(nil)
		deps.notifier.EXPECT().NotifyDocumentUploaded(ctx, "admin-1", "Rina", "a.pdf").Return(nil)
		deps.notifier.EXPECT().NotifyTaskCompleted(ctx, empID, "Upload KTP").Return(nil)
		deps.redismock.ExpectDel(assignment.DashboardStatsCacheKey).SetVal(1)

		res, err := deps.service.Upload(ctx, owner, document.UploadInput{
			TaskID: taskID, OriginalName: "a.pdf", Body: strings.NewReader("%PDF-1.4"), Size: 10, CompleteTask: true,
		})

		require.NoError(t, err)
		assert.Equal(t, taskID, res.TaskID)
		assert.Equal(t, document.StatusPending, created.Status)
		assert.Equal(t, "/u/documents/1-x.pdf", created.FilePath)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
