package app

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go-onboarding/internal/activitylog"
	"go-onboarding/internal/admin"
	"go-onboarding/internal/analytics"
	"go-onboarding/internal/assignment"
	"go-onboarding/internal/auth"
	"go-onboarding/internal/bootstrap"
	"go-onboarding/internal/dashboard"
	"go-onboarding/internal/department"
	"go-onboarding/internal/document"
	"go-onboarding/internal/employee"
	"go-onboarding/internal/middleware"
	"go-onboarding/internal/notification"
	"go-onboarding/internal/rbac"
	"go-onboarding/internal/shared/metrics"
	"go-onboarding/internal/shared/response"
	"go-onboarding/internal/template"
	"go-onboarding/internal/user"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const profilePictureDir = "profile-pictures"

// BuildApp memasang middleware global, health/metrics, dan semua modul ke router.
// Audit logger yang dikembalikan menulis event lifecycle ke activity log.
func BuildApp(router *gin.Engine, i *Infra) (bootstrap.AuditLogger, error) {
	cfg := i.Config
	lg := i.Logger

	m := metrics.New()

	checks := map[string]admin.Check{
		"database": admin.SQLCheck(i.DB),
	}
	if i.Redis != nil {
		checks["redis"] = admin.RedisCheck(i.Redis)
	}
	if cfg.Kafka.Broker != "" {
		checks["kafka"] = admin.KafkaCheck(cfg.Kafka.Broker)
	}

	mods, err := buildModules(i, m, checks)
	if err != nil {
		return nil, err
	}

	router.Use(middleware.Recovery(lg))
	if cfg.Tracing.Enabled {
		router.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	router.Use(middleware.RequestID())
	router.Use(m.Middleware())
	router.Use(middleware.RequestLogger(lg))
	router.Use(middleware.CORS(cfg.CORSOrigin))
	router.Use(activitylog.TrackRoutes(mods.activity, prefixRules(cfg.APIPrefix, trackedRoutes), lg))

	router.GET("/health", health)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.Static("/uploads/"+profilePictureDir, filepath.Join(cfg.Upload.Path, profilePictureDir))

	api := router.Group(cfg.APIPrefix)
	api.Use(middleware.RateLimitWindow(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window))
	api.GET("/health", health)

	auth.RegisterRoutes(api, auth.NewHandler(mods.auth, lg,
		auth.WithSecureCookies(cfg.IsProduction()),
		auth.WithCookieTTL(cfg.JWT.Expire, cfg.JWT.RefreshExpire),
	), lg)
	user.RegisterRoutes(api, user.NewHandler(mods.users, lg), mods.rbac, lg)
	employee.RegisterRoutes(api, employee.NewHandler(mods.employees, lg), mods.rbac, i.Redis, lg)
	template.RegisterRoutes(api, template.NewHandler(mods.templates, lg), mods.rbac, lg)
	assignment.RegisterRoutes(api, assignment.NewHandler(mods.assignments, lg), mods.rbac, i.Redis, lg)
	document.RegisterRoutes(api, document.NewHandler(mods.documents, lg), mods.rbac, lg)
	notification.RegisterRoutes(api, notification.NewHandler(mods.notifications, lg), mods.rbac, lg)
	department.RegisterRoutes(api, department.NewHandler(mods.departments, lg), mods.rbac, lg)
	dashboard.RegisterRoutes(api, dashboard.NewHandler(mods.dashboard, lg), mods.rbac, lg)
	analytics.RegisterRoutes(api, analytics.NewHandler(mods.analytics, lg), mods.rbac, lg)
	activitylog.RegisterRoutes(api, activitylog.NewHandler(mods.activity, lg), mods.rbac, lg)
	admin.RegisterRoutes(api, admin.NewHandler(mods.admin, lg), mods.rbac, lg)
	rbac.RegisterRoutes(api, rbac.NewHandler(mods.rbac, lg), mods.rbac, lg)

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})

	lg.Info("modules registered", zap.Int("routes", len(router.Routes())))
	return bootstrap.NewActivityAuditLogger(mods.activity, lg), nil
}

func health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, nil)
}

func prefixRules(prefix string, rules map[string]activitylog.Rule) map[string]activitylog.Rule {
	prefix = strings.TrimSuffix(prefix, "/")
	out := make(map[string]activitylog.Rule, len(rules))
	for key, rule := range rules {
		method, path, _ := strings.Cut(key, " ")
		out[method+" "+prefix+path] = rule
	}
	return out
}
