package employee

import (
	"go-onboarding/internal/assignment"
	"go-onboarding/internal/user"
)

type ListFilter struct {
	DepartmentID     string `form:"department_id" binding:"omitempty,uuid"`
	OnboardingStatus string `form:"onboarding_status" binding:"omitempty,oneof=not_started in_progress completed overdue"`
	Search           string `form:"search" binding:"omitempty,max=100"`
}

type CreateEmployeeRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	EmployeeCode string `json:"employee_code" binding:"omitempty,max=32"`
	Position     string `json:"position" binding:"required,max=100"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
	ManagerID    string `json:"manager_id" binding:"omitempty,uuid"`
	StartDate    string `json:"start_date" binding:"required"`
	Phone        string `json:"phone" binding:"omitempty,max=50"`
	Address      string `json:"address" binding:"omitempty,max=500"`
}

// UpdateEmployeeRequest hanya berisi field yang boleh diubah HR.
// department_id / manager_id kosong berarti dilepas.
type UpdateEmployeeRequest struct {
	Name             *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email            *string `json:"email" binding:"omitempty,email"`
	EmployeeCode     *string `json:"employee_code" binding:"omitempty,min=1,max=32"`
	Position         *string `json:"position" binding:"omitempty,max=100"`
	DepartmentID     *string `json:"department_id" binding:"omitempty,uuid"`
	ManagerID        *string `json:"manager_id" binding:"omitempty,uuid"`
	StartDate        *string `json:"start_date"`
	Phone            *string `json:"phone" binding:"omitempty,max=50"`
	Address          *string `json:"address" binding:"omitempty,max=500"`
	OnboardingStatus *string `json:"onboarding_status" binding:"omitempty,oneof=not_started in_progress completed overdue"`
	IsActive         *bool   `json:"is_active"`
}

type AssignTemplateRequest struct {
	TemplateID string `json:"templateId" binding:"required"`
}

type TaskStats struct {
	Total      int64 `json:"total"`
	Completed  int64 `json:"completed"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Overdue    int64 `json:"overdue"`
}

type EmployeeResponse struct {
	user.UserResponse
	TaskStats TaskStats `json:"task_stats"`
}

type EmployeeDetailResponse struct {
	user.UserResponse
	Progress assignment.ProgressResponse       `json:"progress"`
	Tasks    []assignment.EmployeeTaskResponse `json:"tasks"`
}

type EmployeeOption struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	Position     string `json:"position,omitempty"`
}
