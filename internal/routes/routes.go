package routes

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-api/internal/config"
	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/agenda-api/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-api/internal/middleware"
	"github.com/BruksfildServices01/agenda-api/internal/notify"
	ucAppointment "github.com/BruksfildServices01/agenda-api/internal/usecase/appointment"
)

type Deps struct {
	DB       *gorm.DB
	Redis    *redis.Client // optional
	Config   *config.Config
	Log      *slog.Logger
	Notifier domain.Notifier
	Settings ucAppointment.Settings
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Log),
		middleware.CORSMiddleware(d.Config.CORSAllowedOrigins),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	offeringRepo := infraRepo.NewOfferingGormRepository(d.DB)
	employeeRepo := infraRepo.NewEmployeeGormRepository(d.DB)
	workShiftRepo := infraRepo.NewWorkShiftGormRepository(d.DB)
	notificationRepo := infraRepo.NewNotificationGormRepository(d.DB)

	var limiter *middleware.RateLimiter
	if d.Redis != nil {
		limiter = middleware.NewRateLimiter(
			d.Redis,
			d.Config.RateLimitPerMinute,
			time.Minute,
			"rl:availability",
			d.Log,
		)
	}

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		offeringRepo,
		workShiftRepo,
		appointmentRepo,
		d.Settings,
		d.Log,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		offeringRepo,
		appointmentRepo,
		d.Notifier,
		d.Settings,
		d.Log,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		ucAppointment.NewCancelAppointment(appointmentRepo, d.Notifier, d.Settings, d.Log),
		ucAppointment.NewCompleteAppointment(appointmentRepo, d.Settings, d.Log),
		ucAppointment.NewMarkNoShow(appointmentRepo, d.Settings, d.Log),
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, d.Log)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, d.Settings)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo, employeeRepo, d.Settings)
	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(appointmentRepo, employeeRepo, d.Settings)

	listWorkShiftsUC := ucAppointment.NewListWorkShifts(workShiftRepo)
	replaceWorkShiftsUC := ucAppointment.NewReplaceWorkShifts(workShiftRepo, employeeRepo, d.Log)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(readyChecks(d)...)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC, d.Log)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateStatusUC,
		deleteAppointmentUC,
		d.Log,
	)
	appointmentReadHandler := handlers.NewAppointmentReadHandler(listAppointmentsUC, getAppointmentUC, d.Log)
	agendaHandler := handlers.NewAgendaHandler(listAppointmentsByDateUC, listAppointmentsByMonthUC, d.Log)
	scheduleHandler := handlers.NewScheduleHandler(listWorkShiftsUC, replaceWorkShiftsUC, d.Log)
	notificationHandler := handlers.NewNotificationHandler(notify.NewInbox(notificationRepo), d.Log)

	// ======================================================
	// ROTAS
	// ======================================================
	r.GET("/health", healthHandler.Live)
	r.GET("/ready", healthHandler.Ready)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(d.Config))
	{
		api.GET("/availability", limiter.Middleware(), availabilityHandler.Get)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentReadHandler.List)
		api.GET("/appointments/:id", appointmentReadHandler.Get)
		api.POST("/appointments", appointmentHandler.Create)
		api.PATCH("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// EMPLOYEES
		// ------------------------------
		api.GET("/employees/:id/appointments", agendaHandler.ByDate)
		api.GET("/employees/:id/appointments/month", agendaHandler.ByMonth)
		api.GET("/employees/:id/schedules", scheduleHandler.Get)
		api.PUT("/employees/:id/schedules", scheduleHandler.Update)

		// ------------------------------
		// NOTIFICATIONS
		// ------------------------------
		api.GET("/notifications", notificationHandler.List)
		api.PATCH("/notifications/read-all", notificationHandler.MarkAllRead)
		api.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
	}
}

func readyChecks(d Deps) []handlers.ReadyCheck {
	checks := []handlers.ReadyCheck{{
		Name: "postgres",
		Check: func(ctx context.Context) error {
			sqlDB, err := d.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}}

	if d.Redis != nil {
		checks = append(checks, handlers.ReadyCheck{
			Name: "redis",
			Check: func(ctx context.Context) error {
				return d.Redis.Ping(ctx).Err()
			},
		})
	}

	return checks
}
