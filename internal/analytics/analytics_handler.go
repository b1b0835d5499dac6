package analytics

import (
	"mime"
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
	l := zap.L().Named("analytics.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.handler")
	}
	return &Handler{svc: svc, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("analytics request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func respond[T any](h *Handler, c *gin.Context, res T, err error) {
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) DashboardStats(c *gin.Context) {
	res, err := h.svc.DashboardStats(c.Request.Context())
	respond(h, c, res, err)
}

func (h *Handler) CompletionRates(c *gin.Context) {
	res, err := h.svc.CompletionRates(c.Request.Context())
	respond(h, c, res, err)
}

func (h *Handler) DepartmentAnalytics(c *gin.Context) {
	res, err := h.svc.DepartmentAnalytics(c.Request.Context())
	respond(h, c, res, err)
}

func (h *Handler) TimeToCompletion(c *gin.Context) {
	res, err := h.svc.TimeToCompletion(c.Request.Context())
	respond(h, c, res, err)
}

func (h *Handler) TaskCompletionTimes(c *gin.Context) {
	res, err := h.svc.TaskCompletionTimes(c.Request.Context())
	respond(h, c, res, err)
}

func (h *Handler) ProgressTrend(c *gin.Context) {
	res, err := h.svc.ProgressTrend(c.Request.Context(), c.Query("period"))
	respond(h, c, res, err)
}

func (h *Handler) TaskDistribution(c *gin.Context) {
	res, err := h.svc.TaskDistribution(c.Request.Context())
	respond(h, c, res, err)
}

func (h *Handler) OverdueTasks(c *gin.Context) {
	res, err := h.svc.OverdueTasks(c.Request.Context())
	respond(h, c, res, err)
}

func (h *Handler) DocumentStatus(c *gin.Context) {
	res, err := h.svc.DocumentStatus(c.Request.Context())
	respond(h, c, res, err)
}

func (h *Handler) OnboardingTimeline(c *gin.Context) {
	res, err := h.svc.OnboardingTimeline(c.Request.Context(), c.Param("employeeId"))
	respond(h, c, res, err)
}

func (h *Handler) OnboardingReport(c *gin.Context) {
	f, err := h.svc.OnboardingReport(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.attach(c, f)
}

func (h *Handler) Export(c *gin.Context) {
	f, err := h.svc.Export(c.Request.Context(), c.DefaultQuery("format", FormatJSON))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.attach(c, f)
}

func (h *Handler) attach(c *gin.Context, f File) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.Name}))
	c.Data(http.StatusOK, f.ContentType, f.Data)
}
