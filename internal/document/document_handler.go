package document

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"go-onboarding/internal/shared/apperror"
	"go-onboarding/internal/shared/request"
	"go-onboarding/internal/shared/response"
	"go-onboarding/internal/shared/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FormField is the multipart field carrying the uploaded file.
const FormField = "document"

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("document.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.handler")
	}
	return &Handler{svc: svc, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("document request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Upload(c *gin.Context) {
	h.upload(c, c.PostForm("task_id"), false)
}

// UploadForTask handles POST /tasks/:id/upload and completes the task.
func (h *Handler) UploadForTask(c *gin.Context) {
	h.upload(c, c.Param("id"), true)
}

func (h *Handler) upload(c *gin.Context, taskID string, complete bool) {
	fh, err := c.FormFile(FormField)
	if err != nil {
		h.writeServiceError(c, storage.ErrFileRequired)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer f.Close()

	res, err := h.svc.Upload(c.Request.Context(), request.ActorFrom(c), UploadInput{
		TaskID:       taskID,
		OriginalName: fh.Filename,
		Body:         f,
		Size:         fh.Size,
		CompleteTask: complete,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "Document uploaded successfully", res)
}

func (h *Handler) MyDocuments(c *gin.Context) {
	res, err := h.svc.ListMine(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	res, err := h.svc.Get(c.Request.Context(), request.ActorFrom(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Download(c *gin.Context) {
	d, err := h.svc.Download(c.Request.Context(), request.ActorFrom(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer d.File.Close()

	contentType := d.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, d.Size, contentType, d.File, map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": d.Name}),
	})
}

func (h *Handler) Delete(c *gin.Context) {
	res, err := h.svc.Delete(c.Request.Context(), request.ActorFrom(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Document deleted successfully", res)
}

func (h *Handler) List(c *gin.Context) {
	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ValidationError(c, err)
		return
	}

	res, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Pending(c *gin.Context) {
	res, err := h.svc.ListPending(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	res, err := h.svc.Approve(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Document approved successfully", res)
}

func (h *Handler) Reject(c *gin.Context) {
	var req RejectRequest
	// body kosong diteruskan agar service yang menolak alasan kosong
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("http reject document validation failed", zap.Error(err))
		response.ValidationError(c, err)
		return
	}

	res, err := h.svc.Reject(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.Reason)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Document rejected successfully", res)
}
