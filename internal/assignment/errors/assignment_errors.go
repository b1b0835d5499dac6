package assignmenterrors

import (
	"go-onboarding/internal/shared/apperror"
	"net/http"
)

var (
	ErrTemplateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Template not found",
		http.StatusNotFound,
	)
	ErrTemplateInactive = apperror.New(
		apperror.CodeInvalidState,
		"Template is not active",
		http.StatusBadRequest,
	)
	ErrTemplateWithoutTasks = apperror.New(
		apperror.CodeInvalidState,
		"Cannot assign template without tasks",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"Cannot assign template to inactive employee",
		http.StatusBadRequest,
	)
	ErrNotAnEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"Only employees can be assigned templates",
		http.StatusBadRequest,
	)
	ErrAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"Template is already assigned to this employee",
		http.StatusConflict,
	)
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Task not found",
		http.StatusNotFound,
	)
	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid task ID",
		http.StatusBadRequest,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid ID",
		http.StatusBadRequest,
	)
	ErrAccessDenied = apperror.New(
		apperror.CodeForbidden,
		"Access denied",
		http.StatusForbidden,
	)
)
