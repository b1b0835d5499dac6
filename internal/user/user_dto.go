package user

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type UserDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserResponse struct {
	ID                      string                  `json:"id"`
	Name                    string                  `json:"name"`
	Email                   string                  `json:"email"`
	Role                    string                  `json:"role"`
	EmployeeCode            string                  `json:"employee_code"`
	Phone                   string                  `json:"phone,omitempty"`
	DateOfBirth             string                  `json:"date_of_birth,omitempty"`
	Address                 string                  `json:"address,omitempty"`
	Position                string                  `json:"position,omitempty"`
	StartDate               string                  `json:"start_date,omitempty"`
	DepartmentID            string                  `json:"department_id,omitempty"`
	Department              *UserDepartmentResponse `json:"department,omitempty"`
	ManagerID               string                  `json:"manager_id,omitempty"`
	ProfilePicture          string                  `json:"profile_picture,omitempty"`
	OnboardingStatus        string                  `json:"onboarding_status"`
	OnboardingCompletedDate string                  `json:"onboarding_completed_date,omitempty"`
	IsActive                bool                    `json:"is_active"`
	EmailVerified           bool                    `json:"email_verified"`
	LastLogin               string                  `json:"last_login,omitempty"`
	CreatedAt               string                  `json:"created_at"`
}
