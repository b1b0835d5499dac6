package bootstrap

import (
	"context"
	"encoding/json"

	"go-onboarding/internal/activitylog"

	"go.uber.org/zap"
)

// AuditLog adalah event lifecycle proses (start, shutdown) yang dicatat terpisah dari activity per request.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

type activityAuditLogger struct {
	rec    activitylog.Recorder
	logger *zap.Logger
}

// NewActivityAuditLogger menulis event lifecycle ke log dan ke tabel activity_logs (entity "system").
func NewActivityAuditLogger(rec activitylog.Recorder, logger *zap.Logger) AuditLogger {
	return &activityAuditLogger{rec: rec, logger: logger.Named("audit")}
}

func (l *activityAuditLogger) Log(ctx context.Context, entry AuditLog) {
	l.logger.Info("audit event",
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
	if l.rec == nil {
		return
	}

	details := map[string]any{"message": entry.Message}
	for k, v := range entry.Meta {
		details[k] = v
	}
	raw, err := json.Marshal(details)
	if err != nil {
		raw = nil
	}
	// error sudah di-log oleh recorder
	_ = l.rec.Record(ctx, activitylog.Entry{
		Action:     entry.Action,
		EntityType: "system",
		Details:    raw,
	})
}
