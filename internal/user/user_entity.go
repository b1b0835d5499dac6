package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

const (
	OnboardingNotStarted = "not_started"
	OnboardingInProgress = "in_progress"
	OnboardingCompleted  = "completed"
	OnboardingOverdue    = "overdue"
)

type User struct {
	ID                      uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Name                    string         `gorm:"column:name;type:varchar(255);not null"`
	Email                   string         `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Password                string         `gorm:"column:password;type:text;not null"`
	Role                    string         `gorm:"column:role;type:varchar(20);not null;default:employee;index"`
	EmployeeCode            string         `gorm:"column:employee_code;type:varchar(32);uniqueIndex:uq_users_employee_code"`
	Phone                   string         `gorm:"column:phone;type:varchar(50)"`
	DateOfBirth             *time.Time     `gorm:"column:date_of_birth"`
	Address                 string         `gorm:"column:address;type:text"`
	Position                string         `gorm:"column:position;type:varchar(255)"`
	StartDate               *time.Time     `gorm:"column:start_date"`
	DepartmentID            *uuid.UUID     `gorm:"column:department_id;type:uuid;index"`
	ManagerID               *uuid.UUID     `gorm:"column:manager_id;type:uuid"`
	ProfilePicture          string         `gorm:"column:profile_picture;type:text"`
	OnboardingStatus        string         `gorm:"column:onboarding_status;type:varchar(20);not null;default:not_started;index"`
	OnboardingCompletedDate *time.Time     `gorm:"column:onboarding_completed_date"`
	IsActive                bool           `gorm:"column:is_active;not null;default:true"`
	EmailVerified           bool           `gorm:"column:email_verified;not null;default:false"`
	LoginAttempts           int            `gorm:"column:login_attempts;not null;default:0"`
	AccountLockedUntil      *time.Time     `gorm:"column:account_locked_until"`
	ResetPasswordToken      *string        `gorm:"column:reset_password_token;type:varchar(255)"`
	ResetPasswordExpires    *time.Time     `gorm:"column:reset_password_expires"`
	LastLogin               *time.Time     `gorm:"column:last_login"`
	CreatedAt               time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt               time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt               gorm.DeletedAt `gorm:"column:deleted_at;index"`

	Department *UserDepartment `gorm:"foreignKey:DepartmentID;references:ID;-:migration"`
}

// UserDepartment adalah sub-struct untuk join nama department
type UserDepartment struct {
	ID   uuid.UUID `gorm:"primaryKey"`
	Name string    `gorm:"column:name"`
}

func (UserDepartment) TableName() string {
	return "departments"
}

func (u *User) IsLocked(now time.Time) bool {
	return u.AccountLockedUntil != nil && u.AccountLockedUntil.After(now)
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}
