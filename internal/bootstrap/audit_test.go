package bootstrap_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-onboarding/internal/activitylog"
	"go-onboarding/internal/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRecorder struct {
	entries []activitylog.Entry
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, entry activitylog.Entry) error {
	f.entries = append(f.entries, entry)
	return f.err
}

func TestActivityAuditLogger_Log(t *testing.T) {
	rec := &fakeRecorder{}
	audit := bootstrap.NewActivityAuditLogger(rec, zap.NewNop())

	audit.Log(context.Background(), bootstrap.AuditLog{
		Action:  "server_shutdown",
		Message: "Server is shutting down",
		Meta:    map[string]any{"signal": "terminated"},
	})

	require.Len(t, rec.entries, 1)
	got := rec.entries[0]
	assert.Equal(t, "server_shutdown", got.Action)
	assert.Equal(t, "system", got.EntityType)
	assert.Empty(t, got.UserID)

	var details map[string]any
	require.NoError(t, json.Unmarshal(got.Details, &details))
	assert.Equal(t, "Server is shutting down", details["message"])
	assert.Equal(t, "terminated", details["signal"])
}

func TestActivityAuditLogger_RecorderErrorIsSwallowed(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("db down")}
	audit := bootstrap.NewActivityAuditLogger(rec, zap.NewNop())

	assert.NotPanics(t, func() {
		audit.Log(context.Background(), bootstrap.AuditLog{Action: "server_start"})
	})
	assert.Len(t, rec.entries, 1)
}

func TestActivityAuditLogger_NilRecorder(t *testing.T) {
	audit := bootstrap.NewActivityAuditLogger(nil, zap.NewNop())
	assert.NotPanics(t, func() {
		audit.Log(context.Background(), bootstrap.AuditLog{Action: "server_start"})
	})
}
