package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-onboarding/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	sent    []Message
	sendErr error
}

func (f *fakeSender) Send(_ context.Context, msg Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestService(t *testing.T, sender Sender) Service {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	return NewService(sender, r, "OnboardPro", "http://localhost:3000/", zap.NewNop())
}

func TestService_SendPasswordReset(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(t, sender)

	err := svc.SendPasswordReset(context.Background(), "a@x.io", "Ani", "123456", 10*time.Minute)
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "a@x.io", sender.sent[0].To)
	assert.Equal(t, "Password Reset Request", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTMLBody, "123456")
	assert.Contains(t, sender.sent[0].HTMLBody, "expire in 10 minutes")
}

func TestService_SendWelcomeLinksToFrontend(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(t, sender)

	require.NoError(t, svc.SendWelcome(context.Background(), "a@x.io", "Ani"))
	assert.Contains(t, sender.sent[0].HTMLBody, "http://localhost:3000/login")
}

func TestService_SendDocumentReviewed(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(t, sender)

	require.NoError(t, svc.SendDocumentReviewed(context.Background(), "a@x.io", "Ani", "ktp.pdf", ReviewStatusApproved, ""))
	require.NoError(t, svc.SendDocumentReviewed(context.Background(), "a@x.io", "Ani", "ktp.pdf", ReviewStatusRejected, "blurry"))

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "Document Approved", sender.sent[0].Subject)
	assert.Equal(t, "Document Rejected", sender.sent[1].Subject)
	assert.Contains(t, sender.sent[1].HTMLBody, "blurry")
}

func TestService_SendErrorPropagates(t *testing.T) {
	svc := newTestService(t, &fakeSender{sendErr: errors.New("smtp down")})
	err := svc.SendTaskReminder(context.Background(), "a@x.io", "Ani", "Sign NDA", time.Now())
	assert.EqualError(t, err, "smtp down")
}

func TestEventRouter(t *testing.T) {
	sender := &fakeSender{}
	router := NewEventRouter(newTestService(t, sender))
	ctx := context.Background()

	require.NoError(t, router[events.EventTemplateAssigned](ctx, []byte(`{
		"event_type":"template_assigned",
		"employee_email":"e@x.io",
		"employee_name":"Eko",
		"template_name":"Sales",
		"task_titles":["Meet the team"],
		"due_date":"2026-02-01T00:00:00Z"
	}`)))
	require.NoError(t, router[events.EventUserRegistered](ctx, []byte(`{"event_type":"user_registered","email":"u@x.io","name":"Uli"}`)))
	require.NoError(t, router[events.EventDocumentReviewed](ctx, []byte(`{"event_type":"document_reviewed","document_name":"ktp.pdf","status":"approved"}`)))

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "e@x.io", sender.sent[0].To)
	assert.Equal(t, "u@x.io", sender.sent[1].To)

	assert.Error(t, router[events.EventUserRegistered](ctx, []byte(`{"email":1}`)))
}
