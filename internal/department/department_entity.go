package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Name        string     `gorm:"column:name;size:255;not null;uniqueIndex:uq_departments_name"`
	Description string     `gorm:"column:description;type:text"`
	ManagerID   *uuid.UUID `gorm:"column:manager_id;type:uuid"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	Manager *DepartmentManager `gorm:"foreignKey:ManagerID;references:ID;-:migration"`
}

// DepartmentManager hanya membaca nama dan email manager dari tabel users.
type DepartmentManager struct {
	ID    uuid.UUID `gorm:"primaryKey"`
	Name  string    `gorm:"column:name"`
	Email string    `gorm:"column:email"`
}

func (DepartmentManager) TableName() string {
	return "users"
}

// Stats adalah ringkasan onboarding per department.
type Stats struct {
	TotalEmployees     int64
	OnboardedEmployees int64
	TotalTemplates     int64
	AvgCompletionRate  float64
}
