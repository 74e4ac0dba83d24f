package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SmartLocalApps/service-finder/internal/domain/booking"
	"github.com/SmartLocalApps/service-finder/internal/dto"
	"github.com/SmartLocalApps/service-finder/internal/httperr"
	"github.com/SmartLocalApps/service-finder/internal/httpresp"
	"github.com/SmartLocalApps/service-finder/internal/models"
	ucAdmin "github.com/SmartLocalApps/service-finder/internal/usecase/admin"
	ucBooking "github.com/SmartLocalApps/service-finder/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db           *gorm.DB
	adminStats   *ucBooking.AdminStats
	deleteUser   *ucAdmin.DeleteUser
	deleteWorker *ucAdmin.DeleteWorker
	bookings     booking.Repository
}

func NewAdminHandler(
	db *gorm.DB,
	adminStats *ucBooking.AdminStats,
	deleteUser *ucAdmin.DeleteUser,
	deleteWorker *ucAdmin.DeleteWorker,
	bookings booking.Repository,
) *AdminHandler {
	return &AdminHandler{
		db:           db,
		adminStats:   adminStats,
		deleteUser:   deleteUser,
		deleteWorker: deleteWorker,
		bookings:     bookings,
	}
}

// ======================================================
// STATS
// ======================================================

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminStats.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.OK(c, gin.H{
		"totalUsers":           stats.TotalUsers,
		"totalWorkers":         stats.TotalWorkers,
		"totalBookings":        stats.TotalBookings,
		"totalEarnings":        stats.TotalEarnings,
		"pendingVerifications": stats.PendingVerifications,
	})
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AdminHandler) ListBookings(c *gin.Context) {
	rows, err := h.bookings.ListAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	httpresp.OK(c, dto.NewAdminBookingDTOs(rows))
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at DESC").Find(&users).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	httpresp.OK(c, dto.NewAdminUserDTOs(users))
}

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	var logs []models.AuditLog
	if err := h.db.
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	httpresp.OK(c, logs)
}

// ======================================================
// DELETES
// ======================================================

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.deleteUser.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	httpresp.Success(c, nil)
}

func (h *AdminHandler) DeleteWorker(c *gin.Context) {
	if err := h.deleteWorker.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	httpresp.Success(c, nil)
}
