package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-onboarding/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestAppError_WrapAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperror.Wrap(cause, apperror.CodeInternalError, "Storage unavailable", http.StatusServiceUnavailable)

	assert.Equal(t, "Storage unavailable: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", http.StatusInternalServerError))
}

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		wrapped := fmt.Errorf("load template: %w", apperror.ErrNotFound)

		got := apperror.ToHTTP(wrapped)

		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
		assert.Equal(t, "Resource not found", got.Message)
	})

	t.Run("unknown error hides details outside development", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		got := apperror.ToHTTP(errors.New("pq: relation does not exist"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Nil(t, got.Details)
	})

	t.Run("unknown error exposes details in development", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")

		got := apperror.ToHTTP(errors.New("boom"))

		assert.Equal(t, "boom", got.Details)
	})

	t.Run("zero status falls back to 500", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.New("CUSTOM", "custom", 0))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
	})
}

type createTaskRequest struct {
	TaskType string `json:"task_type" validate:"required"`
	Title    string `json:"title" validate:"min=3"`
	DueInDay int    `json:"due_in_days" validate:"gte=0"`
	Priority int    `json:"priority" validate:"max=5"`
	Category string `json:"category" validate:"omitempty,oneof=documentation training"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()

	cases := []struct {
		name string
		req  createTaskRequest
		msg  string
	}{
		{"required", createTaskRequest{Title: "Laptop"}, "Tasktype is required"},
		{"min", createTaskRequest{TaskType: "task", Title: "ab"}, "Title must be at least 3 characters"},
		{"other tag", createTaskRequest{TaskType: "task", Title: "Laptop", DueInDay: -1}, "Dueinday is invalid"},
		{"max on number", createTaskRequest{TaskType: "task", Title: "Laptop", Priority: 9}, "Priority must be at most 5"},
		{"oneof", createTaskRequest{TaskType: "task", Title: "Laptop", Category: "misc"}, "Category must be one of: documentation, training"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := apperror.MapValidationError(v.Struct(tc.req))

			var appErr *apperror.AppError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, tc.msg, appErr.Message)
		})
	}

	err := apperror.MapValidationError(errors.New("EOF"))
	assert.Equal(t, "Invalid input", err.Error())
}

func TestAppError_WithDetails(t *testing.T) {
	base := apperror.New(apperror.CodeValidation, "Invalid file", http.StatusBadRequest)

	err := base.WithDetails(map[string]string{"file": "type not allowed"})

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "Invalid file", err.Error())
	assert.Nil(t, base.Details)

	got := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, got.Status)
	assert.Equal(t, map[string]string{"file": "type not allowed"}, got.Details)
}
