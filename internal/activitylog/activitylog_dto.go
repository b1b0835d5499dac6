package activitylog

import (
	"encoding/json"
	"time"
)

// Entry is one activity to record.
type Entry struct {
	UserID     string
	Action     string
	EntityType string
	EntityID   string
	Details    json.RawMessage
	IPAddress  string
	UserAgent  string
}

type ListFilter struct {
	UserID     string
	Action     string
	EntityType string
	From       *time.Time
	To         *time.Time
}

type ActivityResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id,omitempty"`
	UserName   string          `json:"user_name,omitempty"`
	UserEmail  string          `json:"user_email,omitempty"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type,omitempty"`
	EntityID   string          `json:"entity_id,omitempty"`
	Details    json.RawMessage `json:"details,omitempty"`
	IPAddress  string          `json:"ip_address,omitempty"`
	UserAgent  string          `json:"user_agent,omitempty"`
	CreatedAt  string          `json:"created_at"`
}
