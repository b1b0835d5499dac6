package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-onboarding/internal/user"
	usererrors "go-onboarding/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	user.Service
	getAllFn       func(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, error)
	updateStatusFn func(ctx context.Context, actorID, id string, isActive bool) (user.UserResponse, error)
}

func (f *fakeUserService) GetAll(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, error) {
	return f.getAllFn(ctx, filter)
}

func (f *fakeUserService) UpdateStatus(ctx context.Context, actorID, id string, isActive bool) (user.UserResponse, error) {
	return f.updateStatusFn(ctx, actorID, id, isActive)
}

func newTestRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := user.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "admin-1")
		c.Set("role", user.RoleAdmin)
		c.Next()
	})
	r.GET("/auth/users", h.GetAll)
	r.PUT("/auth/users/:id/status", h.UpdateStatus)
	return r
}

func doRequest(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandler_GetAll(t *testing.T) {
	svc := &fakeUserService{
		getAllFn: func(_ context.Context, filter user.ListFilter) ([]user.UserResponse, error) {
			assert.Equal(t, user.RoleEmployee, filter.Role)
			require.NotNil(t, filter.IsActive)
			assert.True(t, *filter.IsActive)
			return []user.UserResponse{{ID: "u-1"}, {ID: "u-2"}, {ID: "u-3"}}, nil
		},
	}

	w := doRequest(newTestRouter(svc), http.MethodGet, "/auth/users?role=employee&is_active=true&page=2&limit=2", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].([]any)
	assert.Len(t, data, 1)
	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(3), meta["total"])
}

func TestUserHandler_UpdateStatus(t *testing.T) {
	t.Run("deactivate", func(t *testing.T) {
		svc := &fakeUserService{
			updateStatusFn: func(_ context.Context, actorID, id string, isActive bool) (user.UserResponse, error) {
				assert.Equal(t, "admin-1", actorID)
				assert.Equal(t, "u-1", id)
				assert.False(t, isActive)
				return user.UserResponse{ID: id, IsActive: false}, nil
			},
		}

		w := doRequest(newTestRouter(svc), http.MethodPut, "/auth/users/u-1/status", `{"is_active":false}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "User deactivated successfully")
	})

	t.Run("missing flag", func(t *testing.T) {
		w := doRequest(newTestRouter(&fakeUserService{}), http.MethodPut, "/auth/users/u-1/status", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("self deactivation rejected", func(t *testing.T) {
		svc := &fakeUserService{
			updateStatusFn: func(context.Context, string, string, bool) (user.UserResponse, error) {
				return user.UserResponse{}, usererrors.ErrCannotDeactivateSelf
			},
		}

		w := doRequest(newTestRouter(svc), http.MethodPut, "/auth/users/admin-1/status", `{"is_active":false}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "You cannot deactivate your own account")
	})
}
