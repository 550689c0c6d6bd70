package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/bot"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	masters *cache.Masters,
	storage *media.Storage,
	manager *bot.Manager,
	log *zap.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	makeRequestRepo := infraRepo.NewMakeRequestGormRepository(db)

	// ======================================================
	// USE CASES (BOOKING)
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(bookingRepo)
	rescheduleAppointmentUC := ucBooking.NewRescheduleAppointment(bookingRepo)
	cancelAppointmentUC := ucBooking.NewCancelAppointment(bookingRepo)
	listAppointmentsUC := ucBooking.NewListAppointments(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	makeHandler := handlers.NewMakeHandler(
		db,
		createAppointmentUC,
		rescheduleAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
		masters,
		storage,
		makeRequestRepo,
		manager,
		log,
	)

	adminHandler := handlers.NewAdminHandler(
		db,
		cfg,
		masters,
		storage,
		listAppointmentsUC,
		cancelAppointmentUC,
		log,
	)

	botHandler := handlers.NewBotHandler(db, manager, log)

	// ======================================================
	// HEALTH
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ======================================================
	// MAKE API (scenario-facing, bearer)
	// ======================================================
	makeAPI := r.Group("/make")
	makeAPI.Use(middleware.MakeAuth(cfg))
	{
		makeAPI.GET("/masters", makeHandler.ListMasters)
		makeAPI.GET("/masters/:id/working-hours", makeHandler.GetWorkingHours)

		makeAPI.POST("/appointments", makeHandler.CreateAppointment)
		makeAPI.GET("/appointments", makeHandler.ListAppointments)
		makeAPI.PATCH("/appointments/:id", makeHandler.RescheduleAppointment)
		makeAPI.POST("/appointments/:id/cancel", makeHandler.CancelAppointment)

		makeAPI.POST("/callback", makeHandler.Callback)
	}

	// ======================================================
	// MACHINE ADMIN API (bearer)
	// ======================================================
	machineAdmin := r.Group("/make")
	machineAdmin.Use(middleware.AdminBearerAuth(cfg))
	{
		machineAdmin.POST("/masters", adminHandler.CreateMaster)
		machineAdmin.DELETE("/masters/:id", adminHandler.DeleteMaster)
		machineAdmin.PUT("/masters/:id/working-hours", adminHandler.SetWorkingHours)
	}

	// ======================================================
	// ADMIN PANEL API (session cookie)
	// ======================================================
	admin := r.Group("/admin")
	{
		admin.POST("/login", adminHandler.Login)

		secured := admin.Group("/")
		secured.Use(middleware.AdminSessionAuth(cfg))
		{
			secured.POST("/logout", adminHandler.Logout)
			secured.GET("/me", adminHandler.Me)

			secured.GET("/masters", adminHandler.ListMasters)
			secured.POST("/masters", adminHandler.CreateMaster)
			secured.PUT("/masters/:id", adminHandler.UpdateMaster)
			secured.DELETE("/masters/:id", adminHandler.DeleteMaster)

			secured.PUT("/masters/:id/photo", adminHandler.UploadMasterPhoto)
			secured.DELETE("/masters/:id/photo", adminHandler.DeleteMasterPhoto)

			secured.GET("/masters/:id/working-hours", adminHandler.GetWorkingHours)
			secured.PUT("/masters/:id/working-hours", adminHandler.SetWorkingHours)

			secured.GET("/appointments", adminHandler.ListAppointments)
			secured.PATCH("/appointments/:id/cancel", adminHandler.CancelAppointment)

			secured.GET("/bot/status", botHandler.Status)
			secured.GET("/bot/settings", botHandler.GetSettings)
			secured.PUT("/bot/token", botHandler.UpdateToken)
			secured.PUT("/bot/enabled", botHandler.SetEnabled)
			secured.GET("/bot/logs", botHandler.ListLogs)
		}
	}
}
