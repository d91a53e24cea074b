package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	userDomain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucSession "github.com/BruksfildServices01/barber-booking/internal/usecase/session"
	"github.com/BruksfildServices01/barber-booking/internal/web"
)

// Deps are the singletons built by main.
type Deps struct {
	Config *config.Config
	Log    *logrus.Logger

	Appointments domain.Repository
	Users        userDomain.Repository
	Notifier     ucAppointment.Notifier
	Revocation   auth.RevocationStore
	Audit        audit.Recorder
	AuditLogs    handlers.AuditLister
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// client IPs come from X-Forwarded-For only behind a listed proxy
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		d.Log.WithError(err).Error("invalid TRUSTED_PROXIES, trusting no proxy")
		_ = r.SetTrustedProxies(nil)
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(metrics.Middleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	r.SetHTMLTemplate(web.Templates())

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(d.Appointments, d.Notifier)
	addUC := ucAppointment.NewAddAppointment(d.Appointments, d.Audit)
	updateUC := ucAppointment.NewUpdateAppointment(d.Appointments, d.Audit)
	deleteUC := ucAppointment.NewDeleteAppointment(d.Appointments, d.Audit)
	getUC := ucAppointment.NewGetAppointment(d.Appointments)
	listUC := ucAppointment.NewListAppointments(d.Appointments)

	loginUC := ucSession.NewLogin(d.Users, cfg.JWTSecret, cfg.SessionTTL, d.Audit)
	logoutUC := ucSession.NewLogout(d.Revocation, cfg.JWTSecret, d.Audit)
	currentUserUC := ucSession.NewCurrentUser(d.Users)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicWebHandler := handlers.NewPublicWebHandler()
	publicHandler := handlers.NewPublicHandler(bookUC)
	authHandler := handlers.NewAuthHandler(loginUC, logoutUC, cfg)
	appWebHandler := handlers.NewAppWebHandler(listUC, addUC)
	appointmentHandler := handlers.NewAppointmentHandler(getUC, listUC, updateUC, deleteUC)
	meHandler := handlers.NewMeHandler(currentUserUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs)

	loginLimiter := middleware.NewIPRateLimiter(cfg.LoginRatePerMin, cfg.LoginBurst)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/", publicWebHandler.ShowBookingPage)
	r.GET("/health", publicWebHandler.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.POST("/book-appointment", publicHandler.BookAppointment)

	// ======================================================
	// ADMIN (HTML)
	// ======================================================
	admin := r.Group("/admin")
	{
		admin.GET("/login", authHandler.LoginPage)
		admin.POST("/login", loginLimiter.Middleware(), authHandler.Login)
		admin.GET("/logout", authHandler.Logout)

		pageGuard := middleware.AuthGuard(cfg.JWTSecret, d.Revocation, middleware.RedirectToLogin)
		admin.GET("/dashboard", pageGuard, appWebHandler.Dashboard)
		admin.POST("/dashboard/add-appointment", pageGuard, appWebHandler.AddAppointment)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthGuard(cfg.JWTSecret, d.Revocation, middleware.RespondUnauthorized))
	{
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		api.GET("/me", meHandler.GetMe)
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
