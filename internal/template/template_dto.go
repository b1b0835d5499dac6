package template

type TaskRequest struct {
	Title         string `json:"title" binding:"required,notblank,max=255"`
	Description   string `json:"description"`
	TaskType      string `json:"task_type" binding:"required,oneof=upload read watch meeting form training"`
	IsRequired    *bool  `json:"is_required"`
	EstimatedTime int    `json:"estimated_time" binding:"gte=0"`
	OrderIndex    *int   `json:"order_index" binding:"omitempty,gte=0"`
	ResourceURL   string `json:"resource_url" binding:"omitempty,max=2048"`
}

type UpdateTaskRequest struct {
	Title         *string `json:"title" binding:"omitempty,notblank,max=255"`
	Description   *string `json:"description"`
	TaskType      *string `json:"task_type" binding:"omitempty,oneof=upload read watch meeting form training"`
	IsRequired    *bool   `json:"is_required"`
	EstimatedTime *int    `json:"estimated_time" binding:"omitempty,gte=0"`
	OrderIndex    *int    `json:"order_index" binding:"omitempty,gte=0"`
	ResourceURL   *string `json:"resource_url" binding:"omitempty,max=2048"`
}

type CreateTemplateRequest struct {
	Name                    string        `json:"name" binding:"required,max=255"`
	Description             string        `json:"description"`
	DepartmentID            string        `json:"department_id" binding:"omitempty,uuid"`
	EstimatedCompletionDays *int          `json:"estimated_completion_days" binding:"omitempty,gte=1,lte=365"`
	Tasks                   []TaskRequest `json:"tasks" binding:"omitempty,dive"`
}

// UpdateTemplateRequest: Tasks yang dikirim akan menggantikan seluruh task lama.
// Template yang sudah di-assign menolak penggantian task (409).
type UpdateTemplateRequest struct {
	Name                    *string        `json:"name" binding:"omitempty,min=1,max=255"`
	Description             *string        `json:"description"`
	DepartmentID            *string        `json:"department_id" binding:"omitempty,uuid"`
	EstimatedCompletionDays *int           `json:"estimated_completion_days" binding:"omitempty,gte=1,lte=365"`
	IsActive                *bool          `json:"is_active"`
	Tasks                   *[]TaskRequest `json:"tasks" binding:"omitempty,dive"`
}

type ListFilter struct {
	DepartmentID string
	IsActive     string
	Search       string
}

type TaskResponse struct {
	ID            string `json:"id"`
	TemplateID    string `json:"template_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	TaskType      string `json:"task_type"`
	IsRequired    bool   `json:"is_required"`
	EstimatedTime int    `json:"estimated_time"`
	OrderIndex    int    `json:"order_index"`
	ResourceURL   string `json:"resource_url,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type TemplateResponse struct {
	ID                      string         `json:"id"`
	Name                    string         `json:"name"`
	Description             string         `json:"description"`
	DepartmentID            string         `json:"department_id,omitempty"`
	DepartmentName          string         `json:"department_name,omitempty"`
	EstimatedCompletionDays int            `json:"estimated_completion_days"`
	IsActive                bool           `json:"is_active"`
	CreatedBy               string         `json:"created_by,omitempty"`
	CreatedByName           string         `json:"created_by_name,omitempty"`
	TasksCount              int            `json:"tasks_count"`
	Tasks                   []TaskResponse `json:"tasks"`
	CreatedAt               string         `json:"created_at"`
	UpdatedAt               string         `json:"updated_at"`
}

type EmployeeForAssignmentResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	EmployeeCode     string `json:"employee_code"`
	Position         string `json:"position"`
	StartDate        string `json:"start_date,omitempty"`
	OnboardingStatus string `json:"onboarding_status"`
	DepartmentName   string `json:"department_name,omitempty"`
	IsAssigned       *bool  `json:"is_assigned,omitempty"`
}

type TemplateAssignmentResponse struct {
	EmployeeID       string  `json:"employee_id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	EmployeeCode     string  `json:"employee_code"`
	Position         string  `json:"position"`
	DepartmentName   string  `json:"department_name,omitempty"`
	OnboardingStatus string  `json:"onboarding_status"`
	TotalTasks       int     `json:"total_tasks"`
	CompletedTasks   int     `json:"completed_tasks"`
	Percentage       float64 `json:"percentage"`
	AssignedDate     string  `json:"assigned_date"`
	DueDate          string  `json:"due_date,omitempty"`
}

type TemplateAnalyticsResponse struct {
	TemplateID          string  `json:"template_id"`
	TemplateName        string  `json:"template_name"`
	TotalTasks          int     `json:"total_tasks"`
	TotalAssignments    int     `json:"total_assignments"`
	CompletedEmployees  int     `json:"completed_employees"`
	InProgressEmployees int     `json:"in_progress_employees"`
	PendingEmployees    int     `json:"pending_employees"`
	CompletedTasks      int     `json:"completed_tasks"`
	PendingTasks        int     `json:"pending_tasks"`
	InProgressTasks     int     `json:"in_progress_tasks"`
	OverdueTasks        int     `json:"overdue_tasks"`
	AvgCompletionDays   float64 `json:"avg_completion_days"`
}

type EmployeeProgressResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	EmployeeCode     string  `json:"employee_code"`
	Position         string  `json:"position"`
	DepartmentName   string  `json:"department_name,omitempty"`
	OnboardingStatus string  `json:"onboarding_status"`
	TotalTasks       int64   `json:"total_tasks"`
	CompletedTasks   int64   `json:"completed_tasks"`
	InProgressTasks  int64   `json:"in_progress_tasks"`
	PendingTasks     int64   `json:"pending_tasks"`
	OverdueTasks     int64   `json:"overdue_tasks"`
	Percentage       float64 `json:"percentage"`
}
