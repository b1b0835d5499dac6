package dashboard_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-onboarding/internal/assignment"
	"go-onboarding/internal/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDashboardService struct {
	dashboard.Service
	employeeFn func(ctx context.Context, employeeID string) (dashboard.EmployeeDashboard, error)
}

func (f *fakeDashboardService) Employee(ctx context.Context, employeeID string) (dashboard.EmployeeDashboard, error) {
	return f.employeeFn(ctx, employeeID)
}

func TestDashboardHandler_Employee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(svc dashboard.Service) *gin.Engine {
		h := dashboard.NewHandler(svc)
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set("user_id", "emp-1")
			c.Next()
		})
		r.GET("/dashboard/employee", h.Employee)
		return r
	}

	t.Run("uses the caller id", func(t *testing.T) {
		svc := &fakeDashboardService{
			employeeFn: func(_ context.Context, employeeID string) (dashboard.EmployeeDashboard, error) {
				assert.Equal(t, "emp-1", employeeID)
				return dashboard.EmployeeDashboard{Progress: assignment.ProgressResponse{Total: 4, Completed: 1, Percentage: 25}}, nil
			},
		}

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/employee", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"percentage":25`)
	})

	t.Run("internal error", func(t *testing.T) {
		svc := &fakeDashboardService{
			employeeFn: func(context.Context, string) (dashboard.EmployeeDashboard, error) {
				return dashboard.EmployeeDashboard{}, errors.New("boom")
			},
		}

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/employee", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
