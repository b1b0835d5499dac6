package rbac

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-onboarding/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	enforceFn   func(req domain.EnforceRequest) (bool, error)
	listRolesFn func() ([]domain.RoleResponse, error)
	listPermsFn func() ([]domain.PermissionResponse, error)
}

func (f *fakeService) LoadPolicy() error { return nil }

func (f *fakeService) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.enforceFn(req)
}

func (f *fakeService) ListRoles() ([]domain.RoleResponse, error) {
	return f.listRolesFn()
}

func (f *fakeService) ListPermissions() ([]domain.PermissionResponse, error) {
	return f.listPermsFn()
}

func newTestRouter(h *Handler, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("role", role)
		c.Next()
	})
	r.POST("/rbac/enforce", h.Enforce)
	r.GET("/rbac/roles", h.ListRoles)
	return r
}

func TestHandler_Enforce(t *testing.T) {
	var got domain.EnforceRequest
	svc := &fakeService{
		enforceFn: func(req domain.EnforceRequest) (bool, error) {
			got = req
			return req.Resource == "template" && req.Action == "read", nil
		},
	}
	router := newTestRouter(NewHandler(svc), "employee")

	body, _ := json.Marshal(EnforceRequest{Resource: "template", Action: "read"})
	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "employee", got.Role)

	var resp struct {
		Status string                 `json:"status"`
		Data   domain.EnforceResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.True(t, resp.Data.Allowed)
}

func TestHandler_Enforce_ValidationError(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(NewHandler(svc), "employee")

	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"resource":"template"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestHandler_ListRoles(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			listRolesFn: func() ([]domain.RoleResponse, error) {
				return []domain.RoleResponse{{Name: "hr", Permissions: []string{"template:create"}}}, nil
			},
		}
		router := newTestRouter(NewHandler(svc), "admin")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/roles", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "template:create")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeService{
			listRolesFn: func() ([]domain.RoleResponse, error) {
				return nil, errors.New("boom")
			},
		}
		router := newTestRouter(NewHandler(svc), "admin")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/roles", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}
