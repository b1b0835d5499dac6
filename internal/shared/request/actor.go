package request

import "github.com/gin-gonic/gin"

// Actor is the authenticated caller as set by the auth middleware.
type Actor struct {
	UserID string
	Role   string
}

func ActorFrom(c *gin.Context) Actor {
	return Actor{UserID: c.GetString("user_id"), Role: c.GetString("role")}
}

// IsPrivileged reports whether the caller may act on other users' records.
func (a Actor) IsPrivileged() bool {
	return a.Role == "hr" || a.Role == "admin"
}

func (a Actor) Owns(userID string) bool {
	return a.IsPrivileged() || (a.UserID != "" && a.UserID == userID)
}
