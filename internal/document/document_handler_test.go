package document_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-onboarding/internal/document"
	documenterrors "go-onboarding/internal/document/errors"
	"go-onboarding/internal/shared/request"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocumentService struct {
	document.Service

	UploadFn   func(ctx context.Context, actor request.Actor, in document.UploadInput) (document.DocumentResponse, error)
	DownloadFn func(ctx context.Context, actor request.Actor, id string) (document.Download, error)
	RejectFn   func(ctx context.Context, id, reviewerID, reason string) (document.DocumentResponse, error)
	ListFn     func(ctx context.Context, filter document.ListFilter) ([]document.DocumentResponse, error)
}

func (f *fakeDocumentService) Upload(ctx context.Context, actor request.Actor, in document.UploadInput) (document.DocumentResponse, error) {
	return f.UploadFn(ctx, actor, in)
}
func (f *fakeDocumentService) Download(ctx context.Context, actor request.Actor, id string) (document.Download, error) {
	return f.DownloadFn(ctx, actor, id)
}
func (f *fakeDocumentService) Reject(ctx context.Context, id, reviewerID, reason string) (document.DocumentResponse, error) {
	return f.RejectFn(ctx, id, reviewerID, reason)
}
func (f *fakeDocumentService) List(ctx context.Context, filter document.ListFilter) ([]document.DocumentResponse, error) {
	return f.ListFn(ctx, filter)
}

func multipartBody(t *testing.T, field, name string, content []byte, extra map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range extra {
		require.NoError(t, w.WriteField(k, v))
	}
	if field != "" {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestDocumentHandler_Upload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forwards task id and file", func(t *testing.T) {
		var got document.UploadInput
		var body []byte
		svc := &fakeDocumentService{
			UploadFn: func(ctx context.Context, actor request.Actor, in document.UploadInput) (document.DocumentResponse, error) {
				got = in
				body, _ = io.ReadAll(in.Body)
				assert.Equal(t, "emp-1", actor.UserID)
				return document.DocumentResponse{ID: "doc-1", Status: document.StatusPending}, nil
			},
		}

		buf, ct := multipartBody(t, document.FormField, "ktp.pdf", pdfBytes, map[string]string{"task_id": "et-1"})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/documents/upload", buf)
		c.Request.Header.Set("Content-Type", ct)
		c.Set("user_id", "emp-1")

		document.NewHandler(svc).Upload(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "et-1", got.TaskID)
		assert.Equal(t, "ktp.pdf", got.OriginalName)
		assert.False(t, got.CompleteTask)
		assert.Equal(t, pdfBytes, body)
	})

	t.Run("task route completes the task", func(t *testing.T) {
		var got document.UploadInput
		svc := &fakeDocumentService{
			UploadFn: func(ctx context.Context, actor request.Actor, in document.UploadInput) (document.DocumentResponse, error) {
				got = in
				return document.DocumentResponse{ID: "doc-1"}, nil
			},
		}

		buf, ct := multipartBody(t, document.FormField, "npwp.pdf", pdfBytes, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/tasks/et-9/upload", buf)
		c.Request.Header.Set("Content-Type", ct)
		c.Params = gin.Params{{Key: "id", Value: "et-9"}}

		document.NewHandler(svc).UploadForTask(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "et-9", got.TaskID)
		assert.True(t, got.CompleteTask)
	})

	t.Run("missing file", func(t *testing.T) {
		buf, ct := multipartBody(t, "", "", nil, map[string]string{"task_id": "et-1"})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/documents/upload", buf)
		c.Request.Header.Set("Content-Type", ct)

		document.NewHandler(&fakeDocumentService{}).Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No file uploaded")
	})
}

func TestDocumentHandler_Download(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeDocumentService{
		DownloadFn: func(ctx context.Context, actor request.Actor, id string) (document.Download, error) {
			return document.Download{
				File:     io.NopCloser(bytes.NewReader(pdfBytes)),
				Name:     "ktp asli.pdf",
				MimeType: "application/pdf",
				Size:     int64(len(pdfBytes)),
			}, nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/documents/doc-1/download", nil)
	c.Params = gin.Params{{Key: "id", Value: "doc-1"}}

	document.NewHandler(svc).Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment; filename="ktp asli.pdf"`)
	assert.Equal(t, pdfBytes, w.Body.Bytes())
}

func TestDocumentHandler_Reject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body reaches the service", func(t *testing.T) {
		svc := &fakeDocumentService{
			RejectFn: func(ctx context.Context, id, reviewerID, reason string) (document.DocumentResponse, error) {
				assert.Empty(t, reason)
				return document.DocumentResponse{}, documenterrors.ErrRejectionReasonRequired
			},
		}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/documents/doc-1/reject", strings.NewReader(""))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: "doc-1"}}

		document.NewHandler(svc).Reject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Rejection reason is required")
	})

	t.Run("reason forwarded", func(t *testing.T) {
		svc := &fakeDocumentService{
			RejectFn: func(ctx context.Context, id, reviewerID, reason string) (document.DocumentResponse, error) {
				assert.Equal(t, "doc-1", id)
				assert.Equal(t, "hr-1", reviewerID)
				assert.Equal(t, "blurry", reason)
				return document.DocumentResponse{ID: id, Status: document.StatusRejected}, nil
			},
		}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/documents/doc-1/reject", strings.NewReader(`{"reason":"blurry"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: "doc-1"}}
		c.Set("user_id", "hr-1")

		document.NewHandler(svc).Reject(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestDocumentHandler_ListValidatesStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/documents?status=lost", nil)

	document.NewHandler(&fakeDocumentService{}).List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
