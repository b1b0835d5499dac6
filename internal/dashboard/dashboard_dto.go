package dashboard

import (
	"go-onboarding/internal/activitylog"
	"go-onboarding/internal/analytics"
	"go-onboarding/internal/assignment"
	"go-onboarding/internal/document"
	"go-onboarding/internal/employee"
)

const (
	pendingTaskLimit     = 5
	recentDocumentLimit  = 3
	trendDays            = 7
	recentEmployeeLimit  = 5
	pendingDocumentLimit = 5
	recentActivityLimit  = 20
)

type EmployeeDashboard struct {
	Progress        assignment.ProgressResponse       `json:"progress"`
	PendingTasks    []assignment.EmployeeTaskResponse `json:"pending_tasks"`
	OverdueTasks    []assignment.EmployeeTaskResponse `json:"overdue_tasks"`
	RecentDocuments []document.DocumentResponse       `json:"recent_documents"`
	CompletionTrend analytics.ChartData               `json:"completion_trend"`
}

type HRDashboard struct {
	Stats            analytics.DashboardStats    `json:"stats"`
	RecentEmployees  []employee.EmployeeResponse `json:"recent_employees"`
	PendingDocuments []document.DocumentResponse `json:"pending_documents"`
	TaskDistribution analytics.TaskDistribution  `json:"task_distribution"`
}

type AdminDashboard struct {
	Stats          analytics.DashboardStats        `json:"stats"`
	Departments    []analytics.DepartmentAnalytics `json:"departments"`
	RecentActivity []activitylog.ActivityResponse  `json:"recent_activity"`
}
