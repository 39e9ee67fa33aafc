package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/auditdesk/auditdesk/internal/kvstore"
	"github.com/auditdesk/auditdesk/internal/middleware"
	"github.com/auditdesk/auditdesk/internal/plugins/activity"
	"github.com/auditdesk/auditdesk/internal/plugins/assistant"
	"github.com/auditdesk/auditdesk/internal/plugins/auth"
	"github.com/auditdesk/auditdesk/internal/plugins/currency"
	"github.com/auditdesk/auditdesk/internal/plugins/drafts"
	"github.com/auditdesk/auditdesk/internal/plugins/i18n"
	"github.com/auditdesk/auditdesk/internal/plugins/prefs"
	"github.com/auditdesk/auditdesk/internal/plugins/reports"
)

// RegisterRoutes sets up all application routes. It constructs each plugin's
// repository/service/handler chain and delegates to the plugin's route
// registration function.
//
// This is the single place where all routes are aggregated. When a new
// plugin is added, its routes are registered here.
func (a *App) RegisterRoutes() {
	e := a.Echo
	logger := slog.Default()

	// Shared persistence: every store runs over the same Redis-backed
	// key-value adapter with namespaced keys.
	store := kvstore.NewRedisStore(a.Redis)
	keys := kvstore.NewKeys(a.Config.Storage.Namespace)

	// Health check endpoint for Docker health monitoring.
	e.GET("/healthz", func(c echo.Context) error {
		if err := a.Redis.Ping(c.Request().Context()).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1")

	// --- Core plugins ---

	// auth: user accounts and bearer-token sessions. RequireAuth guards
	// every other authenticated route group below.
	userRepo := auth.NewUserRepository(store, keys.Users)
	authSvc := auth.NewAuthService(userRepo, a.Redis, a.Config.Auth.SessionTTL)
	requireAuth := auth.RequireAuth(authSvc)
	auth.RegisterRoutes(api, auth.NewHandler(authSvc), requireAuth)

	// activity: the recent-activity log, written to by drafts and reports.
	activityRepo := activity.NewActivityRepository(store, keys.Activities)
	activitySvc := activity.NewActivityService(activityRepo)
	activity.RegisterRoutes(api, activity.NewHandler(activitySvc), requireAuth)

	// drafts: audit draft CRUD; save/delete append to the activity log.
	draftRepo := drafts.NewDraftRepository(store, keys.Drafts)
	draftSvc := drafts.NewDraftService(draftRepo, activitySvc)
	drafts.RegisterRoutes(api, drafts.NewHandler(draftSvc), requireAuth)

	// reports: audit report generation and viewing.
	reportRepo := reports.NewReportRepository(store, keys.Reports)
	reportSvc := reports.NewReportService(reportRepo, activitySvc)
	reports.RegisterRoutes(api, reports.NewHandler(reportSvc), requireAuth)

	// --- Lookup plugins (public, static data) ---

	currency.RegisterRoutes(api, currency.NewHandler(currency.NewCurrencyService()))

	i18nSvc := i18n.NewI18nService(logger)
	i18n.RegisterRoutes(api, i18n.NewHandler(i18nSvc))

	// prefs: theme/currency/language selections; language changes flow
	// through to the i18n service.
	prefsSvc := prefs.NewPrefsService(store, keys, i18nSvc, logger)
	prefs.RegisterRoutes(api, prefs.NewHandler(prefsSvc), requireAuth)

	// assistant: generative-language chat, additionally rate limited per
	// IP on top of the service's own inter-call spacing.
	assistantSvc := assistant.NewAssistantService(a.Config.Assistant, logger)
	assistant.RegisterRoutes(api, assistant.NewHandler(assistantSvc), requireAuth,
		middleware.RateLimit(10, time.Minute))
}
