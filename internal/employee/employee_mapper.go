package employee

import "go-onboarding/internal/user"

func mapToResponse(u user.User, counter TaskCounter) EmployeeResponse {
	return EmployeeResponse{
		UserResponse: user.MapToResponse(u),
		TaskStats: TaskStats{
			Total:      counter.Total,
			Completed:  counter.Completed,
			Pending:    counter.Pending,
			InProgress: counter.InProgress,
			Overdue:    counter.Overdue,
		},
	}
}

func mapToListResponse(users []user.User, counters map[string]TaskCounter) []EmployeeResponse {
	res := make([]EmployeeResponse, len(users))
	for i, u := range users {
		res[i] = mapToResponse(u, counters[u.ID.String()])
	}
	return res
}

func mapToOptions(users []user.User) []EmployeeOption {
	res := make([]EmployeeOption, len(users))
	for i, u := range users {
		res[i] = EmployeeOption{
			ID:           u.ID.String(),
			Name:         u.Name,
			EmployeeCode: u.EmployeeCode,
			Position:     u.Position,
		}
	}
	return res
}

func userIDs(users []user.User) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID.String()
	}
	return ids
}
