package user

import (
	"net/http"
	"strconv"

	"go-onboarding/internal/shared/apperror"
	"go-onboarding/internal/shared/request"
	"go-onboarding/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("user request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := ListFilter{
		Role:   c.Query("role"),
		Search: c.Query("search"),
	}
	if v, err := strconv.ParseBool(c.Query("is_active")); err == nil {
		filter.IsActive = &v
	}

	resp, err := h.svc.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page := request.ParsePage(c)
	meta := response.NewPaginationMeta(int64(len(resp)), page.Page, page.PageSize)
	response.Success(c, http.StatusOK, request.Slice(resp, page), &meta)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update user status validation failed", zap.Error(err))
		response.ValidationError(c, err)
		return
	}

	resp, err := h.svc.UpdateStatus(c.Request.Context(), c.GetString("user_id"), c.Param("id"), *req.IsActive)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	msg := "User activated successfully"
	if !*req.IsActive {
		msg = "User deactivated successfully"
	}
	response.SuccessWithMessage(c, http.StatusOK, msg, resp)
}
