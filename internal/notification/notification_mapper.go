package notification

import "time"

func mapToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		UserID:    n.UserID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Link:      n.Link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(items []Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(items))
	for i, n := range items {
		res[i] = mapToResponse(n)
	}
	return res
}
