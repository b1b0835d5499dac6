package activitylog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxCapturedBody = 16 << 10

// redacted keys never reach the details column.
var redacted = []string{"password", "currentPassword", "newPassword", "confirmPassword", "otp", "token"}

// Track records action against entityType once the wrapped handler answers
// with a 2xx status. Only JSON bodies are captured as details.
func Track(rec Recorder, action, entityType string, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil && strings.HasPrefix(c.ContentType(), "application/json") {
			raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCapturedBody+1))
			if err == nil {
				c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), c.Request.Body))
				if len(raw) <= maxCapturedBody {
					body = raw
				}
			}
		}

		c.Next()

		status := c.Writer.Status()
		userID := c.GetString("user_id")
		if rec == nil || userID == "" || status < 200 || status >= 300 {
			return
		}

		entry := Entry{
			UserID:     userID,
			Action:     action,
			EntityType: entityType,
			EntityID:   c.Param("id"),
			Details:    sanitize(body),
			IPAddress:  c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}
		if err := rec.Record(context.WithoutCancel(c.Request.Context()), entry); err != nil {
			logger.Warn("activity tracking failed", zap.String("action", action), zap.Error(err))
		}
	}
}

func sanitize(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil
	}
	for _, k := range redacted {
		delete(fields, k)
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	return out
}

type Rule struct {
	Action     string
	EntityType string
}

// TrackRoutes applies Track to every route listed in rules, keyed by
// "METHOD /full/route/path". Other routes pass through untouched.
func TrackRoutes(rec Recorder, rules map[string]Rule, logger *zap.Logger) gin.HandlerFunc {
	trackers := make(map[string]gin.HandlerFunc, len(rules))
	for key, rule := range rules {
		trackers[key] = Track(rec, rule.Action, rule.EntityType, logger)
	}
	return func(c *gin.Context) {
		if track, ok := trackers[c.Request.Method+" "+c.FullPath()]; ok {
			track(c)
			return
		}
		c.Next()
	}
}
