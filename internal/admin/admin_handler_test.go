package admin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-onboarding/internal/admin"
	"go-onboarding/internal/assignment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAdminService struct {
	admin.Service
	healthFn func(ctx context.Context) admin.SystemHealth
	sweepFn  func(ctx context.Context) (assignment.OverdueSweepResponse, error)
	pruneFn  func(ctx context.Context, days int) (admin.PruneResponse, error)
}

func (f *fakeAdminService) SystemHealth(ctx context.Context) admin.SystemHealth {
	return f.healthFn(ctx)
}

func (f *fakeAdminService) MarkOverdue(ctx context.Context) (assignment.OverdueSweepResponse, error) {
	return f.sweepFn(ctx)
}

func (f *fakeAdminService) PruneActivity(ctx context.Context, days int) (admin.PruneResponse, error) {
	return f.pruneFn(ctx, days)
}

func newTestRouter(svc admin.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := admin.NewHandler(svc)
	r := gin.New()
	r.GET("/admin/system-health", h.SystemHealth)
	r.POST("/admin/jobs/mark-overdue", h.MarkOverdue)
	r.POST("/admin/jobs/prune-activity", h.PruneActivity)
	return r
}

func TestAdminHandler(t *testing.T) {
	svc := &fakeAdminService{
		healthFn: func(context.Context) admin.SystemHealth {
			return admin.SystemHealth{Status: admin.StatusHealthy}
		},
		sweepFn: func(context.Context) (assignment.OverdueSweepResponse, error) {
			return assignment.OverdueSweepResponse{Updated: 2}, nil
		},
		pruneFn: func(_ context.Context, days int) (admin.PruneResponse, error) {
			return admin.PruneResponse{Deleted: int64(days)}, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/system-health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/jobs/mark-overdue", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updated":2`)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/jobs/prune-activity", strings.NewReader(`{"older_than_days":30}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":30`)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/admin/jobs/prune-activity", strings.NewReader(`{"older_than_days":-1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
