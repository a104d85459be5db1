package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/audit"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/config"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/handlers"
	infraRepo "github.com/YigitSelcuk/appoinment-backend-sub000/internal/infra/repository"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/middleware"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/realtime"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/reminder"
	ucAppointment "github.com/YigitSelcuk/appoinment-backend-sub000/internal/usecase/appointment"
)

// RegisterRoutes wires the whole graph and returns the reminder engine so
// main can drive its polling loop.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	rt *realtime.Publisher,
	dispatcher *reminder.Dispatcher,
) *reminder.Engine {

	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	reminderRepo := infraRepo.NewReminderGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	scheduler := reminder.NewScheduler(appointmentRepo, reminderRepo)
	engine := reminder.NewEngine(
		reminderRepo,
		dispatcher,
		rt,
		time.Duration(cfg.PollSeconds)*time.Second,
	)

	// ======================================================
	// USE CASES
	// ======================================================
	findConflictsUC := ucAppointment.NewFindConflicts(appointmentRepo)

	createUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		findConflictsUC,
		scheduler,
		auditDispatcher,
		rt,
	)
	updateUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		findConflictsUC,
		scheduler,
		auditDispatcher,
		rt,
	)
	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		scheduler,
		auditDispatcher,
		rt,
	)
	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo, auditDispatcher)
	confirmUC := ucAppointment.NewConfirmAppointment(appointmentRepo, auditDispatcher)
	deleteUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		scheduler,
		auditDispatcher,
		rt,
	)
	listUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	contactHandler := handlers.NewContactHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		updateUC,
		cancelUC,
		completeUC,
		confirmUC,
		deleteUC,
		listUC,
		findConflictsUC,
	)
	reminderHandler := handlers.NewReminderHandler(reminderRepo, engine)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/contacts", contactHandler.List)
			secured.POST("/me/contacts", contactHandler.Create)

			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/conflicts", appointmentHandler.Conflicts)
			secured.PUT("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/me/appointments/:id/reminders", reminderHandler.ListForAppointment)
			secured.POST("/me/reminders/:id/resend", reminderHandler.Resend)
		}
	}

	return engine
}
