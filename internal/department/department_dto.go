package department

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=255"`
	Description string `json:"description"`
	ManagerID   string `json:"manager_id" binding:"omitempty,uuid"`
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	ManagerID   *string `json:"manager_id" binding:"omitempty,uuid"`
}

type DepartmentResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ManagerID     string `json:"manager_id,omitempty"`
	ManagerName   string `json:"manager_name,omitempty"`
	ManagerEmail  string `json:"manager_email,omitempty"`
	EmployeeCount int64  `json:"employee_count"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type DepartmentStatsResponse struct {
	TotalEmployees     int64   `json:"total_employees"`
	OnboardedEmployees int64   `json:"onboarded_employees"`
	TotalTemplates     int64   `json:"total_templates"`
	AvgCompletionRate  float64 `json:"avg_completion_rate"`
}
