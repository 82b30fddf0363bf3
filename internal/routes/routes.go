package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberia-cr/barberia-api/internal/audit"
	"github.com/barberia-cr/barberia-api/internal/cache"
	"github.com/barberia-cr/barberia-api/internal/config"
	"github.com/barberia-cr/barberia-api/internal/handlers"
	infraRepo "github.com/barberia-cr/barberia-api/internal/infra/repository"
	"github.com/barberia-cr/barberia-api/internal/middleware"
	"github.com/barberia-cr/barberia-api/internal/storage"
	ucAdmin "github.com/barberia-cr/barberia-api/internal/usecase/admin"
	ucBooking "github.com/barberia-cr/barberia-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	c *cache.Cache,
	uploader *storage.Uploader,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(appointmentRepo)
	monthAvailabilityUC := ucBooking.NewGetMonthAvailability(appointmentRepo, cfg.Timezone)
	createBookingUC := ucBooking.NewCreateBooking(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
		cfg.BookingEmailMXCheck,
	)

	adminCreateUC := ucAdmin.NewCreateAppointment(appointmentRepo, auditDispatcher, cfg.Timezone)
	adminUpdateUC := ucAdmin.NewUpdateAppointment(appointmentRepo, auditDispatcher, cfg.Timezone)
	adminDeleteUC := ucAdmin.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	adminListUC := ucAdmin.NewListAppointments(appointmentRepo, cfg.Timezone)
	changeStatusUC := ucAdmin.NewChangeStatus(appointmentRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		catalogRepo,
		c,
		log,
		cfg.Timezone,
		availabilityUC,
		monthAvailabilityUC,
		createBookingUC,
	)

	authHandler := handlers.NewAuthHandler(db, cfg, log)

	adminAppointmentsHandler := handlers.NewAdminAppointmentsHandler(
		adminCreateUC,
		adminUpdateUC,
		adminDeleteUC,
		adminListUC,
		changeStatusUC,
	)

	adminServicesHandler := handlers.NewAdminServicesHandler(db, c, log)
	adminBarbersHandler := handlers.NewAdminBarbersHandler(db, c, log)
	adminProductsHandler := handlers.NewAdminProductsHandler(db, c, log)

	uploadHandler := handlers.NewUploadHandler(uploader, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/products", publicHandler.ListProducts)

			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.GET("/availability/month", publicHandler.MonthAvailability)

			publicAPI.POST("/appointments", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/appointments", adminAppointmentsHandler.List)
			admin.POST("/appointments", adminAppointmentsHandler.Create)
			admin.PATCH("/appointments/:id", adminAppointmentsHandler.Update)
			admin.DELETE("/appointments/:id", adminAppointmentsHandler.Delete)
			admin.PATCH("/appointments/:id/confirm", adminAppointmentsHandler.Confirm)
			admin.PATCH("/appointments/:id/cancel", adminAppointmentsHandler.Cancel)
			admin.PATCH("/appointments/:id/complete", adminAppointmentsHandler.Complete)

			admin.GET("/services", adminServicesHandler.List)
			admin.POST("/services", adminServicesHandler.Create)
			admin.PATCH("/services/:id", adminServicesHandler.Update)
			admin.DELETE("/services/:id", adminServicesHandler.Delete)

			admin.GET("/barbers", adminBarbersHandler.List)
			admin.POST("/barbers", adminBarbersHandler.Create)
			admin.PATCH("/barbers/:id", adminBarbersHandler.Update)
			admin.DELETE("/barbers/:id", adminBarbersHandler.Delete)

			admin.GET("/products", adminProductsHandler.List)
			admin.POST("/products", adminProductsHandler.Create)
			admin.PATCH("/products/:id", adminProductsHandler.Update)
			admin.DELETE("/products/:id", adminProductsHandler.Delete)

			admin.POST("/uploads", uploadHandler.UploadImage)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
