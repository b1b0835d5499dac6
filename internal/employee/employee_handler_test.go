package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-onboarding/internal/assignment"
	"go-onboarding/internal/employee"
	employeeerrors "go-onboarding/internal/employee/errors"
	"go-onboarding/internal/shared/request"
	"go-onboarding/internal/shared/response"
	"go-onboarding/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	employee.Service
	createFn         func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn         func(ctx context.Context, filter employee.ListFilter, page request.Page) ([]employee.EmployeeResponse, response.PaginationMeta, error)
	getByIDFn        func(ctx context.Context, id string) (employee.EmployeeDetailResponse, error)
	updateFn         func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn         func(ctx context.Context, id string) error
	assignTemplateFn func(ctx context.Context, actor request.Actor, id string, req employee.AssignTemplateRequest) ([]assignment.EmployeeTaskResponse, error)
	sendReminderFn   func(ctx context.Context, id string) (assignment.ReminderResponse, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeEmployeeService) GetAll(ctx context.Context, filter employee.ListFilter, page request.Page) ([]employee.EmployeeResponse, response.PaginationMeta, error) {
	return f.getAllFn(ctx, filter, page)
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeDetailResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeEmployeeService) AssignTemplate(ctx context.Context, actor request.Actor, id string, req employee.AssignTemplateRequest) ([]assignment.EmployeeTaskResponse, error) {
	return f.assignTemplateFn(ctx, actor, id, req)
}

func (f *fakeEmployeeService) SendReminder(ctx context.Context, id string) (assignment.ReminderResponse, error) {
	return f.sendReminderFn(ctx, id)
}

func newTestRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := employee.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "hr-1")
		c.Set("role", user.RoleHR)
		c.Next()
	})
	r.GET("/employees", h.GetAll)
	r.POST("/employees", h.Create)
	r.GET("/employees/:id", h.GetByID)
	r.PUT("/employees/:id", h.Update)
	r.DELETE("/employees/:id", h.Delete)
	r.POST("/employees/:id/assign-template", h.AssignTemplate)
	r.POST("/employees/:id/send-reminder", h.SendReminder)
	return r
}

func doRequest(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Siti Aminah", req.Name)
				return employee.EmployeeResponse{UserResponse: user.UserResponse{ID: "emp-1", EmployeeCode: "EMP000001"}}, nil
			},
		}

		w := doRequest(newTestRouter(svc), http.MethodPost, "/employees",
			`{"name":"Siti Aminah","email":"siti@example.com","password":"rahasia123","position":"Engineer","start_date":"2026-02-01"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_code":"EMP000001"`)
		assert.Contains(t, w.Body.String(), "Employee created successfully")
	})

	t.Run("validation error - short password", func(t *testing.T) {
		w := doRequest(newTestRouter(&fakeEmployeeService{}), http.MethodPost, "/employees",
			`{"name":"Siti","email":"siti@example.com","password":"123","position":"Engineer","start_date":"2026-02-01"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("conflict from service", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(context.Context, employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
			},
		}

		w := doRequest(newTestRouter(svc), http.MethodPost, "/employees",
			`{"name":"Siti","email":"siti@example.com","password":"rahasia123","position":"Engineer","start_date":"2026-02-01"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("passes filters and pagination", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getAllFn: func(_ context.Context, filter employee.ListFilter, page request.Page) ([]employee.EmployeeResponse, response.PaginationMeta, error) {
				assert.Equal(t, "in_progress", filter.OnboardingStatus)
				assert.Equal(t, "siti", filter.Search)
				assert.Equal(t, 2, page.Page)
				assert.Equal(t, 5, page.PageSize)
				return []employee.EmployeeResponse{{UserResponse: user.UserResponse{ID: "emp-1"}}},
					response.NewPaginationMeta(6, 2, 5), nil
			},
		}

		w := doRequest(newTestRouter(svc), http.MethodGet, "/employees?onboarding_status=in_progress&search=siti&page=2&limit=5", "")

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		meta := body["meta"].(map[string]any)
		assert.Equal(t, float64(2), meta["totalPages"])
	})

	t.Run("invalid onboarding status", func(t *testing.T) {
		w := doRequest(newTestRouter(&fakeEmployeeService{}), http.MethodGet, "/employees?onboarding_status=unknown", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	svc := &fakeEmployeeService{
		getByIDFn: func(_ context.Context, id string) (employee.EmployeeDetailResponse, error) {
			if id == "missing" {
				return employee.EmployeeDetailResponse{}, employeeerrors.ErrEmployeeNotFound
			}
			return employee.EmployeeDetailResponse{
				UserResponse: user.UserResponse{ID: id},
				Progress:     assignment.ProgressResponse{Total: 2, Completed: 1, Percentage: 50},
			}, nil
		},
	}
	r := newTestRouter(svc)

	w := doRequest(r, http.MethodGet, "/employees/emp-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"percentage":50`)

	w = doRequest(r, http.MethodGet, "/employees/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Employee not found")
}

func TestEmployeeHandler_UpdateAndDelete(t *testing.T) {
	svc := &fakeEmployeeService{
		updateFn: func(_ context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
			require.NotNil(t, req.Position)
			assert.Equal(t, "Lead", *req.Position)
			assert.Nil(t, req.Name)
			return employee.EmployeeResponse{UserResponse: user.UserResponse{ID: id, Position: "Lead"}}, nil
		},
		deleteFn: func(context.Context, string) error { return nil },
	}
	r := newTestRouter(svc)

	w := doRequest(r, http.MethodPut, "/employees/emp-1", `{"position":"Lead"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"position":"Lead"`)

	w = doRequest(r, http.MethodPut, "/employees/emp-1", `{"onboarding_status":"done"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodDelete, "/employees/emp-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Employee deleted successfully")
}

func TestEmployeeHandler_AssignTemplate(t *testing.T) {
	t.Run("success uses the caller as assigner", func(t *testing.T) {
		svc := &fakeEmployeeService{
			assignTemplateFn: func(_ context.Context, actor request.Actor, id string, req employee.AssignTemplateRequest) ([]assignment.EmployeeTaskResponse, error) {
				assert.Equal(t, "hr-1", actor.UserID)
				assert.Equal(t, "emp-1", id)
				assert.Equal(t, "tpl-1", req.TemplateID)
				return []assignment.EmployeeTaskResponse{{ID: "et-1", Status: "pending"}}, nil
			},
		}

		w := doRequest(newTestRouter(svc), http.MethodPost, "/employees/emp-1/assign-template", `{"templateId":"tpl-1"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Template assigned successfully")
	})

	t.Run("missing template id", func(t *testing.T) {
		w := doRequest(newTestRouter(&fakeEmployeeService{}), http.MethodPost, "/employees/emp-1/assign-template", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_SendReminder(t *testing.T) {
	svc := &fakeEmployeeService{
		sendReminderFn: func(_ context.Context, id string) (assignment.ReminderResponse, error) {
			return assignment.ReminderResponse{Total: 3, Notified: 3, Emailed: 3}, nil
		},
	}

	w := doRequest(newTestRouter(svc), http.MethodPost, "/employees/emp-1/send-reminder", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"notified":3`)
}
