package notification

type CreateNotificationRequest struct {
	UserID  string `json:"user_id" binding:"required,uuid"`
	Title   string `json:"title" binding:"required,max=255"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=task_assigned task_reminder task_completed document_uploaded document_approved document_rejected system"`
	Link    string `json:"link" binding:"omitempty,max=500"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Link      string `json:"link,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type ClearAllResponse struct {
	Deleted int64 `json:"deleted"`
}
