package templateerrors

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
	ErrInvalidTemplateID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid template ID",
		http.StatusBadRequest,
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
	ErrTaskNotInTemplate = apperror.New(
		apperror.CodeInvalidInput,
		"Task does not belong to this template",
		http.StatusBadRequest,
	)
	ErrTemplateAssigned = apperror.New(
		apperror.CodeConflict,
		"Cannot delete template that is assigned to employees. Please unassign it first.",
		http.StatusConflict,
	)
	ErrReplaceAssignedTasks = apperror.New(
		apperror.CodeConflict,
		"Cannot replace tasks of a template that is assigned to employees",
		http.StatusConflict,
	)
	ErrTaskAssigned = apperror.New(
		apperror.CodeConflict,
		"Cannot remove a task that is assigned to employees",
		http.StatusConflict,
	)
	ErrInvalidTaskType = apperror.New(
		apperror.CodeValidation,
		"Task type must be one of upload, read, watch, meeting, form, training",
		http.StatusBadRequest,
	)
	ErrTaskTitleRequired = apperror.New(
		apperror.CodeValidation,
		"Task title is required",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Department not found",
		http.StatusBadRequest,
	)
	ErrNoFieldsToUpdate = apperror.New(
		apperror.CodeValidation,
		"No fields to update",
		http.StatusBadRequest,
	)
)
