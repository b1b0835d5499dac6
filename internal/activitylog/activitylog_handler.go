package activitylog

import (
	"net/http"
	"time"

	"go-onboarding/internal/shared/apperror"
	"go-onboarding/internal/shared/request"
	"go-onboarding/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var ErrInvalidDate = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid date, expected YYYY-MM-DD or RFC3339",
	http.StatusBadRequest,
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("activitylog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activitylog.handler")
	}
	return &Handler{svc: svc, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		UserID:     c.Query("user_id"),
		Action:     c.Query("action"),
		EntityType: c.Query("entity_type"),
	}

	var err error
	if filter.From, err = parseDate(c.Query("start_date"), false); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidDate.Code, ErrInvalidDate.Message, nil)
		return
	}
	if filter.To, err = parseDate(c.Query("end_date"), true); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidDate.Code, ErrInvalidDate.Message, nil)
		return
	}

	res, meta, err := h.svc.List(c.Request.Context(), filter, request.ParsePage(c))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("list activity logs failed", zap.Int("status", httpErr.Status), zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, res, &meta)
}

// parseDate menerima tanggal saja (end of day untuk batas akhir) atau RFC3339.
func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
