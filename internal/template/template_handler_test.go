package template_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-onboarding/internal/shared/apperror"
	"go-onboarding/internal/template"
	templateerrors "go-onboarding/internal/template/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTemplateService struct {
	template.Service

	GetAllFn     func(ctx context.Context, filter template.ListFilter) ([]template.TemplateResponse, error)
	CreateFn     func(ctx context.Context, createdBy string, req template.CreateTemplateRequest) (template.TemplateResponse, error)
	UpdateFn     func(ctx context.Context, id string, req template.UpdateTemplateRequest) (template.TemplateResponse, error)
	DeleteFn     func(ctx context.Context, id string) error
	UpdateTaskFn func(ctx context.Context, templateID, taskID string, req template.UpdateTaskRequest) (template.TaskResponse, error)
	ForAssignFn  func(ctx context.Context, templateID string) ([]template.EmployeeForAssignmentResponse, error)
}

func (f *fakeTemplateService) GetAll(ctx context.Context, filter template.ListFilter) ([]template.TemplateResponse, error) {
	return f.GetAllFn(ctx, filter)
}
func (f *fakeTemplateService) Create(ctx context.Context, createdBy string, req template.CreateTemplateRequest) (template.TemplateResponse, error) {
	return f.CreateFn(ctx, createdBy, req)
}
func (f *fakeTemplateService) Update(ctx context.Context, id string, req template.UpdateTemplateRequest) (template.TemplateResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeTemplateService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeTemplateService) UpdateTask(ctx context.Context, templateID, taskID string, req template.UpdateTaskRequest) (template.TaskResponse, error) {
	return f.UpdateTaskFn(ctx, templateID, taskID, req)
}
func (f *fakeTemplateService) GetEmployeesForAssignment(ctx context.Context, templateID string) ([]template.EmployeeForAssignmentResponse, error) {
	return f.ForAssignFn(ctx, templateID)
}

func TestMain(m *testing.M) {
	apperror.Init()
	os.Exit(m.Run())
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestTemplateHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got template.ListFilter
	svc := &fakeTemplateService{
		GetAllFn: func(ctx context.Context, filter template.ListFilter) ([]template.TemplateResponse, error) {
			got = filter
			return []template.TemplateResponse{{ID: "t-1", Name: "Eng"}}, nil
		},
	}

	c, w := newContext(http.MethodGet, "/templates?is_active=all&search=eng&department_id=d-1", "")
	template.NewHandler(svc).GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, template.ListFilter{DepartmentID: "d-1", IsActive: "all", Search: "eng"}, got)
	assert.Contains(t, w.Body.String(), `"name":"Eng"`)
}

func TestTemplateHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes the caller as creator", func(t *testing.T) {
		svc := &fakeTemplateService{
			CreateFn: func(ctx context.Context, createdBy string, req template.CreateTemplateRequest) (template.TemplateResponse, error) {
				assert.Equal(t, "hr-1", createdBy)
				require.Len(t, req.Tasks, 1)
				return template.TemplateResponse{ID: "t-1", Name: req.Name, TasksCount: 1}, nil
			},
		}

		c, w := newContext(http.MethodPost, "/templates", `{"name":"Eng","tasks":[{"title":"Read","task_type":"read"}]}`)
		c.Set("user_id", "hr-1")
		template.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Template created successfully")
	})

	t.Run("task without type fails validation", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/templates", `{"name":"Eng","tasks":[{"title":"Read"}]}`)
		template.NewHandler(&fakeTemplateService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("unknown task type fails validation", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/templates", `{"name":"Eng","tasks":[{"title":"Read","task_type":"dance"}]}`)
		template.NewHandler(&fakeTemplateService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("whitespace task title fails validation", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/templates", `{"name":"Eng","tasks":[{"title":"   ","task_type":"read"}]}`)
		template.NewHandler(&fakeTemplateService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestTemplateHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeTemplateService{
		UpdateFn: func(ctx context.Context, id string, req template.UpdateTemplateRequest) (template.TemplateResponse, error) {
			require.NotNil(t, req.Tasks)
			assert.Empty(t, *req.Tasks)
			return template.TemplateResponse{}, templateerrors.ErrReplaceAssignedTasks
		},
	}

	c, w := newContext(http.MethodPut, "/templates/t-1", `{"tasks":[]}`)
	c.Params = gin.Params{{Key: "id", Value: "t-1"}}
	template.NewHandler(svc).Update(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")
}

func TestTemplateHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("assigned template", func(t *testing.T) {
		svc := &fakeTemplateService{
			DeleteFn: func(ctx context.Context, id string) error { return templateerrors.ErrTemplateAssigned },
		}

		c, w := newContext(http.MethodDelete, "/templates/t-1", "")
		c.Params = gin.Params{{Key: "id", Value: "t-1"}}
		template.NewHandler(svc).Delete(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Please unassign it first")
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeTemplateService{
			DeleteFn: func(ctx context.Context, id string) error { return nil },
		}

		c, w := newContext(http.MethodDelete, "/templates/t-1", "")
		c.Params = gin.Params{{Key: "id", Value: "t-1"}}
		template.NewHandler(svc).Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestTemplateHandler_UpdateTask(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeTemplateService{
		UpdateTaskFn: func(ctx context.Context, templateID, taskID string, req template.UpdateTaskRequest) (template.TaskResponse, error) {
			assert.Equal(t, "t-1", templateID)
			assert.Equal(t, "k-1", taskID)
			return template.TaskResponse{}, templateerrors.ErrTaskNotInTemplate
		},
	}

	c, w := newContext(http.MethodPut, "/templates/t-1/tasks/k-1", `{"title":"New"}`)
	c.Params = gin.Params{{Key: "id", Value: "t-1"}, {Key: "taskId", Value: "k-1"}}
	template.NewHandler(svc).UpdateTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Task does not belong to this template")
}

func TestTemplateHandler_GetEmployeesForAssignment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeTemplateService{
		ForAssignFn: func(ctx context.Context, templateID string) ([]template.EmployeeForAssignmentResponse, error) {
			assert.Equal(t, "t-1", templateID)
			assigned := true
			return []template.EmployeeForAssignmentResponse{{ID: "e-1", IsAssigned: &assigned}}, nil
		},
	}

	c, w := newContext(http.MethodGet, "/templates/employees/for-assignment?template_id=t-1", "")
	template.NewHandler(svc).GetEmployeesForAssignment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_assigned":true`)
}
