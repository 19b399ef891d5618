package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saobentodouna/rg-agendamento/internal/audit"
	"github.com/saobentodouna/rg-agendamento/internal/config"
	"github.com/saobentodouna/rg-agendamento/internal/handlers"
	infraRepo "github.com/saobentodouna/rg-agendamento/internal/infra/repository"
	"github.com/saobentodouna/rg-agendamento/internal/middleware"
	"github.com/saobentodouna/rg-agendamento/internal/notify"
	"github.com/saobentodouna/rg-agendamento/internal/storage"
	ucAppointment "github.com/saobentodouna/rg-agendamento/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifier := notify.NewRedisNotifier(cfg.RedisAddr, cfg.RedisChannel)

	documentStore := storage.NewDocumentStore(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
		cfg.Timezone,
	)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	nextAvailableUC := ucAppointment.NewFindNextAvailable(appointmentRepo)

	listUC := ucAppointment.NewListAppointments(appointmentRepo)

	statusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		auditDispatcher,
		notifier,
		cfg.Timezone,
	)

	rescheduleUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
		cfg.Timezone,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	publicHandler := handlers.NewPublicHandler(
		availabilityUC,
		nextAvailableUC,
		bookUC,
		cfg.Timezone,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		listUC,
		statusUC,
		rescheduleUC,
		cfg.Timezone,
	)

	waitlistHandler := handlers.NewWaitlistHandler(db)
	documentHandler := handlers.NewDocumentHandler(db, documentStore)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (cidadão)
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.SuspensionMiddleware(cfg))
		{
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.GET("/next-available", publicHandler.NextAvailable)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (balcão administrativo)
		// ------------------------------
		secured := api.Group("/admin")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)

			secured.POST("/appointments/:id/documents", documentHandler.Upload)
			secured.GET("/appointments/:id/documents", documentHandler.ListByAppointment)

			secured.GET("/waitlist", waitlistHandler.List)
			secured.POST("/waitlist", waitlistHandler.Add)
			secured.DELETE("/waitlist/:id", waitlistHandler.Remove)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
