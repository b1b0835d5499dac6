package template

import (
	"math"
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

func mapTaskToResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:            t.ID.String(),
		TemplateID:    t.TemplateID.String(),
		Title:         t.Title,
		Description:   t.Description,
		TaskType:      t.TaskType,
		IsRequired:    t.IsRequired,
		EstimatedTime: t.EstimatedTime,
		OrderIndex:    t.OrderIndex,
		ResourceURL:   t.ResourceURL,
		CreatedAt:     formatTime(t.CreatedAt),
		UpdatedAt:     formatTime(t.UpdatedAt),
	}
}

func mapTasksToResponse(tasks []Task) []TaskResponse {
	res := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		res[i] = mapTaskToResponse(t)
	}
	return res
}

func mapToResponse(t Template) TemplateResponse {
	resp := TemplateResponse{
		ID:                      t.ID.String(),
		Name:                    t.Name,
		Description:             t.Description,
		EstimatedCompletionDays: t.EstimatedCompletionDays,
		IsActive:                t.IsActive,
		TasksCount:              len(t.Tasks),
		Tasks:                   mapTasksToResponse(t.Tasks),
		CreatedAt:               formatTime(t.CreatedAt),
		UpdatedAt:               formatTime(t.UpdatedAt),
	}
	if t.DepartmentID != nil {
		resp.DepartmentID = t.DepartmentID.String()
	}
	if t.Department != nil {
		resp.DepartmentName = t.Department.Name
	}
	if t.CreatedBy != nil {
		resp.CreatedBy = t.CreatedBy.String()
	}
	if t.Creator != nil {
		resp.CreatedByName = t.Creator.Name
	}
	return resp
}

func mapToListResponse(templates []Template) []TemplateResponse {
	res := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		res[i] = mapToResponse(t)
	}
	return res
}

func mapEmployeesForAssignment(rows []EmployeeRow, assigned map[string]bool) []EmployeeForAssignmentResponse {
	res := make([]EmployeeForAssignmentResponse, len(rows))
	for i, row := range rows {
		res[i] = EmployeeForAssignmentResponse{
			ID:               row.ID,
			Name:             row.Name,
			Email:            row.Email,
			EmployeeCode:     row.EmployeeCode,
			Position:         row.Position,
			StartDate:        formatDate(row.StartDate),
			OnboardingStatus: row.OnboardingStatus,
			DepartmentName:   deref(row.DepartmentName),
		}
		if assigned != nil {
			isAssigned := assigned[row.ID]
			res[i].IsAssigned = &isAssigned
		}
	}
	return res
}

// mapAssignments mengelompokkan baris employee_tasks per employee.
func mapAssignments(rows []AssignmentRow) []TemplateAssignmentResponse {
	type acc struct {
		resp     TemplateAssignmentResponse
		assigned time.Time
		due      *time.Time
	}

	byEmployee := make(map[string]*acc)
	var order []string
	for _, row := range rows {
		a, ok := byEmployee[row.EmployeeID]
		if !ok {
			a = &acc{
				resp: TemplateAssignmentResponse{
					EmployeeID:       row.EmployeeID,
					Name:             row.Name,
					Email:            row.Email,
					EmployeeCode:     row.EmployeeCode,
					Position:         row.Position,
					DepartmentName:   deref(row.DepartmentName),
					OnboardingStatus: row.OnboardingStatus,
				},
				assigned: row.AssignedDate,
			}
			byEmployee[row.EmployeeID] = a
			order = append(order, row.EmployeeID)
		}

		a.resp.TotalTasks++
		if row.Status == "completed" {
			a.resp.CompletedTasks++
		}
		if row.AssignedDate.Before(a.assigned) {
			a.assigned = row.AssignedDate
		}
		if row.DueDate != nil && (a.due == nil || row.DueDate.After(*a.due)) {
			a.due = row.DueDate
		}
	}

	res := make([]TemplateAssignmentResponse, 0, len(order))
	for _, id := range order {
		a := byEmployee[id]
		a.resp.Percentage = Percentage(int64(a.resp.CompletedTasks), int64(a.resp.TotalTasks))
		a.resp.AssignedDate = formatTime(a.assigned)
		if a.due != nil {
			a.resp.DueDate = formatTime(*a.due)
		}
		res = append(res, a.resp)
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].AssignedDate > res[j].AssignedDate
	})
	return res
}

func mapAnalytics(tpl Template, rows []AssignmentRow) TemplateAnalyticsResponse {
	resp := TemplateAnalyticsResponse{
		TemplateID:   tpl.ID.String(),
		TemplateName: tpl.Name,
		TotalTasks:   len(tpl.Tasks),
	}

	type counts struct{ total, completed, started int }
	perEmployee := make(map[string]*counts)

	var daysSum float64
	var daysN int
	for _, row := range rows {
		c, ok := perEmployee[row.EmployeeID]
		if !ok {
			c = &counts{}
			perEmployee[row.EmployeeID] = c
		}
		c.total++

		switch row.Status {
		case "completed":
			resp.CompletedTasks++
			c.completed++
			c.started++
			if row.CompletedDate != nil {
				daysSum += row.CompletedDate.Sub(row.AssignedDate).Hours() / 24
				daysN++
			}
		case "in_progress":
			resp.InProgressTasks++
			c.started++
		case "overdue":
			resp.OverdueTasks++
		default:
			resp.PendingTasks++
		}
	}

	resp.TotalAssignments = len(perEmployee)
	for _, c := range perEmployee {
		switch {
		case c.completed == c.total:
			resp.CompletedEmployees++
		case c.started > 0:
			resp.InProgressEmployees++
		default:
			resp.PendingEmployees++
		}
	}
	if daysN > 0 {
		resp.AvgCompletionDays = math.Round(daysSum/float64(daysN)*100) / 100
	}
	return resp
}

func mapEmployeesProgress(rows []EmployeeRow, counts []EmployeeTaskCount) []EmployeeProgressResponse {
	byEmployee := make(map[string][]EmployeeTaskCount)
	for _, c := range counts {
		byEmployee[c.EmployeeID] = append(byEmployee[c.EmployeeID], c)
	}

	res := make([]EmployeeProgressResponse, len(rows))
	for i, row := range rows {
		p := EmployeeProgressResponse{
			ID:               row.ID,
			Name:             row.Name,
			Email:            row.Email,
			EmployeeCode:     row.EmployeeCode,
			Position:         row.Position,
			DepartmentName:   deref(row.DepartmentName),
			OnboardingStatus: row.OnboardingStatus,
		}
		for _, c := range byEmployee[row.ID] {
			p.TotalTasks += c.Total
			switch c.Status {
			case "completed":
				p.CompletedTasks += c.Total
			case "in_progress":
				p.InProgressTasks += c.Total
			case "overdue":
				p.OverdueTasks += c.Total
			default:
				p.PendingTasks += c.Total
			}
		}
		p.Percentage = Percentage(p.CompletedTasks, p.TotalTasks)
		res[i] = p
	}
	return res
}

// Percentage returns completed/total*100 rounded to two decimals, or 0 when total is 0.
func Percentage(completed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*10000) / 100
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
