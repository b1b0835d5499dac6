package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// FormatEmployeeCode mengubah nilai sequence jadi kode seperti EMP000042.
func FormatEmployeeCode(seq int64) string {
	return fmt.Sprintf("EMP%06d", seq)
}

func MapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:                      u.ID.String(),
		Name:                    u.Name,
		Email:                   u.Email,
		Role:                    u.Role,
		EmployeeCode:            u.EmployeeCode,
		Phone:                   u.Phone,
		DateOfBirth:             formatDate(u.DateOfBirth),
		Address:                 u.Address,
		Position:                u.Position,
		StartDate:               formatDate(u.StartDate),
		DepartmentID:            UUIDToString(u.DepartmentID),
		ManagerID:               UUIDToString(u.ManagerID),
		ProfilePicture:          u.ProfilePicture,
		OnboardingStatus:        u.OnboardingStatus,
		OnboardingCompletedDate: formatTime(u.OnboardingCompletedDate),
		IsActive:                u.IsActive,
		EmailVerified:           u.EmailVerified,
		LastLogin:               formatTime(u.LastLogin),
		CreatedAt:               u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if u.Department != nil {
		resp.Department = &UserDepartmentResponse{
			ID:   u.Department.ID.String(),
			Name: u.Department.Name,
		}
	}
	return resp
}

func MapToListResponse(users []User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = MapToResponse(u)
	}
	return res
}

// ParseDate menerima "" (nil) atau format YYYY-MM-DD.
func ParseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func UUIDPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func UUIDToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
