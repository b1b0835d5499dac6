package email

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

//go:generate mockgen -source=email_service.go -destination=mock/email_service_mock.go -package=mock
type Service interface {
	SendWelcome(ctx context.Context, to, name string) error
	SendPasswordReset(ctx context.Context, to, name, otp string, expiresIn time.Duration) error
	SendTaskAssigned(ctx context.Context, to, name, templateName string, tasks []string, dueDate time.Time) error
	SendTaskReminder(ctx context.Context, to, name, taskTitle string, dueDate time.Time) error
	SendDocumentReviewed(ctx context.Context, to, name, documentName, status, reason string) error
}

type service struct {
	sender      Sender
	renderer    *Renderer
	appName     string
	frontendURL string
	logger      *zap.Logger
}

func NewService(sender Sender, renderer *Renderer, appName, frontendURL string, logger ...*zap.Logger) Service {
	l := zap.L().Named("email.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("email.service")
	}
	return &service{
		sender:      sender,
		renderer:    renderer,
		appName:     appName,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		logger:      l,
	}
}

func (s *service) SendWelcome(ctx context.Context, to, name string) error {
	loginURL := ""
	if s.frontendURL != "" {
		loginURL = s.frontendURL + "/login"
	}
	return s.send(ctx, to, TemplateWelcome, map[string]any{
		"AppName":  s.appName,
		"Name":     name,
		"LoginURL": loginURL,
	})
}

func (s *service) SendPasswordReset(ctx context.Context, to, name, otp string, expiresIn time.Duration) error {
	return s.send(ctx, to, TemplatePasswordReset, map[string]any{
		"AppName":          s.appName,
		"Name":             name,
		"OTP":              otp,
		"ExpiresInMinutes": int(expiresIn.Minutes()),
	})
}

func (s *service) SendTaskAssigned(ctx context.Context, to, name, templateName string, tasks []string, dueDate time.Time) error {
	return s.send(ctx, to, TemplateTaskAssigned, map[string]any{
		"AppName":      s.appName,
		"Name":         name,
		"TemplateName": templateName,
		"Tasks":        tasks,
		"DueDate":      dueDate,
	})
}

func (s *service) SendTaskReminder(ctx context.Context, to, name, taskTitle string, dueDate time.Time) error {
	return s.send(ctx, to, TemplateTaskReminder, map[string]any{
		"AppName":   s.appName,
		"Name":      name,
		"TaskTitle": taskTitle,
		"DueDate":   dueDate,
	})
}

func (s *service) SendDocumentReviewed(ctx context.Context, to, name, documentName, status, reason string) error {
	tmpl := TemplateDocumentApproved
	if status == ReviewStatusRejected {
		tmpl = TemplateDocumentRejected
	}
	return s.send(ctx, to, tmpl, map[string]any{
		"AppName":      s.appName,
		"Name":         name,
		"DocumentName": documentName,
		"Reason":       reason,
	})
}

func (s *service) send(ctx context.Context, to, tmpl string, data map[string]any) error {
	subject, body, err := s.renderer.Render(tmpl, data)
	if err != nil {
		s.logger.Error("render email failed", zap.String("template", tmpl), zap.Error(err))
		return err
	}

	if err := s.sender.Send(ctx, Message{To: to, Subject: subject, HTMLBody: body}); err != nil {
		s.logger.Error("send email failed",
			zap.String("template", tmpl),
			zap.String("to", to),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("email sent", zap.String("template", tmpl), zap.String("to", to))
	return nil
}
