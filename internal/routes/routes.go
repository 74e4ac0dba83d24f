package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SmartLocalApps/service-finder/internal/audit"
	"github.com/SmartLocalApps/service-finder/internal/handlers"
	infraRepo "github.com/SmartLocalApps/service-finder/internal/infra/repository"
	ucAdmin "github.com/SmartLocalApps/service-finder/internal/usecase/admin"
	ucBooking "github.com/SmartLocalApps/service-finder/internal/usecase/booking"
	ucIdentity "github.com/SmartLocalApps/service-finder/internal/usecase/identity"
	ucMatching "github.com/SmartLocalApps/service-finder/internal/usecase/matching"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	identityRepo := infraRepo.NewIdentityGormRepository(db)
	workerRepo := infraRepo.NewWorkerGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucIdentity.NewRegister(identityRepo, auditDispatcher)
	loginUC := ucIdentity.NewLogin(identityRepo, auditDispatcher)
	registerWorkerUC := ucIdentity.NewRegisterWorker(identityRepo, auditDispatcher)
	checkDuplicateUC := ucIdentity.NewCheckDuplicate(identityRepo)

	findWorkersUC := ucMatching.NewFindWorkers(workerRepo)

	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	updateStatusUC := ucBooking.NewUpdateStatus(bookingRepo, auditDispatcher)
	workerStatsUC := ucBooking.NewWorkerStats(bookingRepo)
	adminStatsUC := ucBooking.NewAdminStats(bookingRepo)

	deleteUserUC := ucAdmin.NewDeleteUser(identityRepo, auditDispatcher)
	deleteWorkerUC := ucAdmin.NewDeleteWorker(identityRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, checkDuplicateUC)
	workerHandler := handlers.NewWorkerHandler(registerWorkerUC, findWorkersUC, workerStatsUC, workerRepo)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, updateStatusUC, bookingRepo)
	adminHandler := handlers.NewAdminHandler(db, adminStatsUC, deleteUserUC, deleteWorkerUC, bookingRepo)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/services", serviceHandler.List)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/check-duplicate", authHandler.CheckDuplicate)

		api.POST("/workers/register", workerHandler.Register)
		api.GET("/workers", workerHandler.List)
		api.GET("/workers/:id", workerHandler.Get)
		api.PATCH("/workers/:id/availability", workerHandler.ToggleAvailability)

		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings/user", bookingHandler.ListForUser)
		api.GET("/bookings/worker/:id", bookingHandler.ListForWorker)
		api.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

		// ------------------------------
		// ADMIN
		// ------------------------------
		adminAPI := api.Group("/admin")
		{
			adminAPI.POST("/services", serviceHandler.Add)
			adminAPI.GET("/stats", adminHandler.Stats)
			adminAPI.GET("/bookings", adminHandler.ListBookings)
			adminAPI.GET("/users", adminHandler.ListUsers)
			adminAPI.GET("/audit-logs", adminHandler.ListAuditLogs)
			adminAPI.DELETE("/users/:id", adminHandler.DeleteUser)
			adminAPI.DELETE("/workers/:id", adminHandler.DeleteWorker)
		}
	}
}
