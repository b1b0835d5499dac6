package assignment

type AssignTemplateRequest struct {
	TemplateID string `json:"templateId" binding:"required,uuid"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=pending in_progress completed"`
	Notes  *string `json:"notes" binding:"omitempty,max=2000"`
}

type EmployeeTaskResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	TaskID        string `json:"task_id"`
	TemplateID    string `json:"template_id,omitempty"`
	TemplateName  string `json:"template_name,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	TaskType      string `json:"task_type"`
	IsRequired    bool   `json:"is_required"`
	EstimatedTime int    `json:"estimated_time"`
	OrderIndex    int    `json:"order_index"`
	ResourceURL   string `json:"resource_url,omitempty"`
	Status        string `json:"status"`
	AssignedBy    string `json:"assigned_by,omitempty"`
	AssignedDate  string `json:"assigned_date"`
	DueDate       string `json:"due_date,omitempty"`
	CompletedDate string `json:"completed_date,omitempty"`
	Notes         string `json:"notes,omitempty"`
	IsRead        bool   `json:"is_read"`
	IsOverdue     bool   `json:"is_overdue"`
}

type ProgressResponse struct {
	Total      int64   `json:"total"`
	Completed  int64   `json:"completed"`
	Pending    int64   `json:"pending"`
	InProgress int64   `json:"in_progress"`
	Overdue    int64   `json:"overdue"`
	Percentage float64 `json:"percentage"`
}

type OverdueSweepResponse struct {
	Updated int64 `json:"updated"`
}

type ReminderResponse struct {
	Total    int `json:"total"`
	Notified int `json:"notified"`
	Emailed  int `json:"emailed"`
	Failed   int `json:"failed"`
}
