package assignment

import (
	"time"

	"go-onboarding/internal/template"
)

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func mapViewToResponse(v TaskView, now time.Time) EmployeeTaskResponse {
	resp := EmployeeTaskResponse{
		ID:            v.ID,
		EmployeeID:    v.EmployeeID,
		TaskID:        v.TaskID,
		TemplateID:    v.TemplateID,
		TemplateName:  v.TemplateName,
		Title:         v.Title,
		Description:   v.Description,
		TaskType:      v.TaskType,
		IsRequired:    v.IsRequired,
		EstimatedTime: v.EstimatedTime,
		OrderIndex:    v.OrderIndex,
		ResourceURL:   v.ResourceURL,
		Status:        v.Status,
		AssignedDate:  formatTime(&v.AssignedDate),
		DueDate:       formatTime(v.DueDate),
		CompletedDate: formatTime(v.CompletedDate),
		Notes:         v.Notes,
		IsRead:        v.IsRead,
		IsOverdue:     v.IsOverdueAt(now),
	}
	if v.AssignedBy != nil {
		resp.AssignedBy = *v.AssignedBy
	}
	return resp
}

func MapViewsToResponse(views []TaskView, now time.Time) []EmployeeTaskResponse {
	res := make([]EmployeeTaskResponse, len(views))
	for i, v := range views {
		res[i] = mapViewToResponse(v, now)
	}
	return res
}

// mapAssigned membangun response dari baris yang baru dibuat saat assign.
func mapAssigned(rows []EmployeeTask, tpl template.Template) []EmployeeTaskResponse {
	tasks := make(map[string]template.Task, len(tpl.Tasks))
	for _, t := range tpl.Tasks {
		tasks[t.ID.String()] = t
	}

	res := make([]EmployeeTaskResponse, len(rows))
	for i, row := range rows {
		task := tasks[row.TaskID.String()]
		res[i] = EmployeeTaskResponse{
			ID:            row.ID.String(),
			EmployeeID:    row.EmployeeID.String(),
			TaskID:        row.TaskID.String(),
			TemplateID:    tpl.ID.String(),
			TemplateName:  tpl.Name,
			Title:         task.Title,
			Description:   task.Description,
			TaskType:      task.TaskType,
			IsRequired:    task.IsRequired,
			EstimatedTime: task.EstimatedTime,
			OrderIndex:    task.OrderIndex,
			ResourceURL:   task.ResourceURL,
			Status:        row.Status,
			AssignedDate:  formatTime(&row.AssignedDate),
			DueDate:       formatTime(row.DueDate),
		}
		if row.AssignedBy != nil {
			res[i].AssignedBy = row.AssignedBy.String()
		}
	}
	return res
}

func MapProgress(p Progress) ProgressResponse {
	return ProgressResponse{
		Total:      p.Total,
		Completed:  p.Completed,
		Pending:    p.Pending,
		InProgress: p.InProgress,
		Overdue:    p.Overdue,
		Percentage: template.Percentage(p.Completed, p.Total),
	}
}
