package app

import (
	"time"

	"go-onboarding/internal/activitylog"
	"go-onboarding/internal/admin"
	"go-onboarding/internal/analytics"
	"go-onboarding/internal/assignment"
	"go-onboarding/internal/auth"
	"go-onboarding/internal/dashboard"
	"go-onboarding/internal/department"
	"go-onboarding/internal/document"
	"go-onboarding/internal/email"
	"go-onboarding/internal/employee"
	"go-onboarding/internal/messaging/kafka"
	"go-onboarding/internal/notification"
	"go-onboarding/internal/rbac"
	"go-onboarding/internal/rbac/infra"
	"go-onboarding/internal/shared/counter"
	"go-onboarding/internal/shared/metrics"
	"go-onboarding/internal/shared/storage"
	"go-onboarding/internal/template"
	"go-onboarding/internal/user"
)

// modules berisi semua service yang dirakit dari Infra.
type modules struct {
	rbac          rbac.Service
	auth          auth.Service
	users         user.Service
	departments   department.Service
	templates     template.Service
	assignments   assignment.Service
	documents     document.Service
	employees     employee.Service
	notifications notification.Service
	analytics     analytics.Service
	dashboard     dashboard.Service
	activity      activitylog.Service
	admin         admin.Service
	mailer        email.Service
}

func newMailer(i *Infra) (email.Service, error) {
	cfg := i.Config

	var sender email.Sender
	if cfg.Email.Host == "" {
		i.Logger.Warn("EMAIL_HOST not set, emails are logged instead of sent")
		sender = email.NewLogSender(i.Logger)
	} else {
		s, err := email.NewSMTPSender(cfg.Email)
		if err != nil {
			return nil, err
		}
		sender = s
	}

	renderer, err := email.NewRenderer()
	if err != nil {
		return nil, err
	}
	return email.NewService(sender, renderer, cfg.AppName, cfg.FrontendURL, i.Logger), nil
}

func buildModules(i *Infra, m *metrics.Metrics, checks map[string]admin.Check) (*modules, error) {
	cfg := i.Config
	lg := i.Logger

	mailer, err := newMailer(i)
	if err != nil {
		return nil, err
	}

	files, err := storage.NewLocalStorage(cfg.Upload.Path, cfg.Upload.MaxFileSize, cfg.Upload.AllowedTypes)
	if err != nil {
		return nil, err
	}

	// Tanpa broker, event tidak masuk outbox dan email dikirim langsung.
	var outboxRepo kafka.OutboxRepository
	if cfg.Kafka.Broker != "" {
		outboxRepo = kafka.NewOutboxRepository(i.GormDB)
	} else {
		lg.Warn("KAFKA_BROKER not set, outbox disabled")
	}

	// --- Repositories ---
	rbacRepo, err := rbac.NewDefaultRepository()
	if err != nil {
		return nil, err
	}
	activityRepo := activitylog.NewRepository(i.GormDB)
	analyticsRepo := analytics.NewRepository(i.GormDB)
	assignmentRepo := assignment.NewRepository(i.GormDB)
	authRepo := auth.NewRepository(i.GormDB)
	counterRepo := counter.NewRepository(i.GormDB)
	departmentRepo := department.NewRepository(i.GormDB)
	documentRepo := document.NewRepository(i.GormDB)
	employeeRepo := employee.NewRepository(i.GormDB)
	notificationRepo := notification.NewRepository(i.GormDB)
	templateRepo := template.NewRepository(i.GormDB)
	userRepo := user.NewRepository(i.GormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, lg)
	if err := rbacService.LoadPolicy(); err != nil {
		return nil, err
	}

	// --- Services ---
	notificationService := notification.NewService(notificationRepo, lg)
	activityService := activitylog.NewService(activityRepo, lg)
	assignmentService := assignment.NewService(
		i.DB, assignmentRepo, templateRepo, userRepo, outboxRepo, notificationService, mailer, i.Redis, m, lg,
	)
	employeeService := employee.NewService(
		i.DB, employeeRepo, counterRepo, assignmentService, outboxRepo, mailer, i.Redis, lg,
	)
	analyticsService := analytics.NewService(analyticsRepo, assignmentRepo, documentRepo, userRepo, i.Redis, lg)

	return &modules{
		rbac:        rbacService,
		auth:        auth.NewService(i.DB, authRepo, counterRepo, outboxRepo, mailer, files, cfg.JWT, lg),
		users:       user.NewService(userRepo, lg),
		departments: department.NewService(i.DB, departmentRepo, i.Redis, lg),
		templates:   template.NewService(i.DB, templateRepo, i.Redis, lg),
		assignments: assignmentService,
		documents: document.NewService(
			i.DB, documentRepo, assignmentRepo, files, outboxRepo, notificationService, mailer, i.Redis, m, lg,
		),
		employees:     employeeService,
		notifications: notificationService,
		analytics:     analyticsService,
		dashboard: dashboard.NewService(
			assignmentRepo, documentRepo, employeeService, analyticsService, activityService, lg,
		),
		activity: activityService,
		admin:    admin.NewService(checks, assignmentService, activityService, time.Now().UTC(), lg),
		mailer:   mailer,
	}, nil
}

// trackedRoutes adalah route mutasi (relatif terhadap API prefix) yang dicatat ke activity log.
var trackedRoutes = map[string]activitylog.Rule{
	"POST /employees":                        {Action: "create_employee", EntityType: "employee"},
	"PUT /employees/:id":                     {Action: "update_employee", EntityType: "employee"},
	"DELETE /employees/:id":                  {Action: "delete_employee", EntityType: "employee"},
	"POST /employees/:id/assign-template":    {Action: "assign_template", EntityType: "employee"},
	"POST /employees/:id/send-reminder":      {Action: "send_reminder", EntityType: "employee"},
	"POST /templates":                        {Action: "create_template", EntityType: "template"},
	"PUT /templates/:id":                     {Action: "update_template", EntityType: "template"},
	"DELETE /templates/:id":                  {Action: "delete_template", EntityType: "template"},
	"POST /templates/:id/duplicate":          {Action: "duplicate_template", EntityType: "template"},
	"POST /templates/:id/assign/:employeeId": {Action: "assign_template", EntityType: "template"},
	"PUT /tasks/:id/status":                  {Action: "update_task_status", EntityType: "task"},
	"PUT /documents/:id/approve":             {Action: "approve_document", EntityType: "document"},
	"PUT /documents/:id/reject":              {Action: "reject_document", EntityType: "document"},
	"DELETE /documents/:id":                  {Action: "delete_document", EntityType: "document"},
	"POST /documents/upload":                 {Action: "upload_document", EntityType: "document"},
	"POST /tasks/:id/upload":                 {Action: "upload_document", EntityType: "task"},
	"POST /departments":                      {Action: "create_department", EntityType: "department"},
	"PUT /departments/:id":                   {Action: "update_department", EntityType: "department"},
	"DELETE /departments/:id":                {Action: "delete_department", EntityType: "department"},
	"PUT /auth/users/:id/status":             {Action: "update_user_status", EntityType: "user"},
	"PUT /auth/change-password":              {Action: "change_password", EntityType: "user"},
	"POST /notifications":                    {Action: "create_notification", EntityType: "notification"},
	"POST /admin/jobs/mark-overdue":          {Action: "run_mark_overdue", EntityType: "job"},
	"POST /admin/jobs/send-reminders":        {Action: "run_send_reminders", EntityType: "job"},
	"POST /admin/jobs/prune-activity":        {Action: "run_prune_activity", EntityType: "job"},
}
