package department

import (
	"math"
	"time"
)

func mapToResponse(d Department, employeeCount int64) DepartmentResponse {
	resp := DepartmentResponse{
		ID:            d.ID.String(),
		Name:          d.Name,
		Description:   d.Description,
		EmployeeCount: employeeCount,
	}
	if d.ManagerID != nil {
		resp.ManagerID = d.ManagerID.String()
	}
	if d.Manager != nil {
		resp.ManagerName = d.Manager.Name
		resp.ManagerEmail = d.Manager.Email
	}
	if !d.CreatedAt.IsZero() {
		resp.CreatedAt = d.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !d.UpdatedAt.IsZero() {
		resp.UpdatedAt = d.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(depts []Department, counts map[string]int64) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d, counts[d.ID.String()])
	}
	return res
}

func mapStats(s Stats) DepartmentStatsResponse {
	return DepartmentStatsResponse{
		TotalEmployees:     s.TotalEmployees,
		OnboardedEmployees: s.OnboardedEmployees,
		TotalTemplates:     s.TotalTemplates,
		AvgCompletionRate:  math.Round(s.AvgCompletionRate*100) / 100,
	}
}
