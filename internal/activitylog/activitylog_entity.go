package activitylog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ActivityLog struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	UserID     *uuid.UUID     `gorm:"column:user_id;type:uuid;index"`
	Action     string         `gorm:"column:action;type:varchar(100);not null;index"`
	EntityType string         `gorm:"column:entity_type;type:varchar(50);index"`
	EntityID   string         `gorm:"column:entity_id;type:varchar(64)"`
	Details    datatypes.JSON `gorm:"column:details"`
	IPAddress  string         `gorm:"column:ip_address;type:varchar(64)"`
	UserAgent  string         `gorm:"column:user_agent;type:text"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

type ActivityView struct {
	ID         string
	UserID     *string
	Action     string
	EntityType string
	EntityID   string
	Details    datatypes.JSON
	IPAddress  string
	UserAgent  string
	CreatedAt  time.Time
	UserName   *string
	UserEmail  *string
}
