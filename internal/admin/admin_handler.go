package admin

import (
	"net/http"

	"go-onboarding/internal/shared/apperror"
	"go-onboarding/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("admin.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.handler")
	}
	return &Handler{svc: svc, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("admin request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) SystemHealth(c *gin.Context) {
	response.SuccessWithMessage(c, http.StatusOK, "System health retrieved successfully", h.svc.SystemHealth(c.Request.Context()))
}

func (h *Handler) MarkOverdue(c *gin.Context) {
	res, err := h.svc.MarkOverdue(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Overdue tasks marked", res)
}

func (h *Handler) SendReminders(c *gin.Context) {
	res, err := h.svc.SendReminders(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Reminders sent", res)
}

func (h *Handler) PruneActivity(c *gin.Context) {
	var req PruneActivityRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.ValidationError(c, err)
			return
		}
	}

	res, err := h.svc.PruneActivity(c.Request.Context(), req.OlderThanDays)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Activity logs pruned", res)
}
