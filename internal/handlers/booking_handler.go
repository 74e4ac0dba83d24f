package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SmartLocalApps/service-finder/internal/domain/booking"
	"github.com/SmartLocalApps/service-finder/internal/dto"
	"github.com/SmartLocalApps/service-finder/internal/httperr"
	"github.com/SmartLocalApps/service-finder/internal/httpresp"
	ucBooking "github.com/SmartLocalApps/service-finder/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createBooking *ucBooking.CreateBooking
	updateStatus  *ucBooking.UpdateStatus
	bookings      booking.Repository
}

func NewBookingHandler(
	createBooking *ucBooking.CreateBooking,
	updateStatus *ucBooking.UpdateStatus,
	bookings booking.Repository,
) *BookingHandler {
	return &BookingHandler{
		createBooking: createBooking,
		updateStatus:  updateStatus,
		bookings:      bookings,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	UserID   string  `json:"userId" binding:"required"`
	WorkerID string  `json:"workerId" binding:"required"`
	Service  string  `json:"service"`
	Slot     string  `json:"slot"`
	Price    float64 `json:"price"`
	Address  string  `json:"address"`
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Notes string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	bookingID, err := h.createBooking.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:     req.UserID,
		WorkerID:   req.WorkerID,
		ServiceKey: req.Service,
		Slot:       req.Slot,
		Price:      req.Price,
		Address:    req.Address,
		Lat:        req.Location.Lat,
		Lng:        req.Location.Lng,
		Notes:      req.Notes,
	})
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.Success(c, gin.H{"bookingId": bookingID})
}

// ======================================================
// LISTINGS
// ======================================================

func (h *BookingHandler) ListForUser(c *gin.Context) {
	rows, err := h.bookings.ListForUser(c.Request.Context(), c.Query("userId"))
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	httpresp.OK(c, dto.NewUserBookingDTOs(rows))
}

func (h *BookingHandler) ListForWorker(c *gin.Context) {
	rows, err := h.bookings.ListForWorker(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	httpresp.OK(c, dto.NewWorkerBookingDTOs(rows))
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	if err := h.updateStatus.Execute(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.Success(c, nil)
}
