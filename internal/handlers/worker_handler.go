package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SmartLocalApps/service-finder/internal/domain/worker"
	"github.com/SmartLocalApps/service-finder/internal/dto"
	"github.com/SmartLocalApps/service-finder/internal/httperr"
	"github.com/SmartLocalApps/service-finder/internal/httpresp"
	ucBooking "github.com/SmartLocalApps/service-finder/internal/usecase/booking"
	ucIdentity "github.com/SmartLocalApps/service-finder/internal/usecase/identity"
	ucMatching "github.com/SmartLocalApps/service-finder/internal/usecase/matching"
)

// ======================================================
// HANDLER
// ======================================================

type WorkerHandler struct {
	registerWorker *ucIdentity.RegisterWorker
	findWorkers    *ucMatching.FindWorkers
	workerStats    *ucBooking.WorkerStats
	workers        worker.Repository
}

func NewWorkerHandler(
	registerWorker *ucIdentity.RegisterWorker,
	findWorkers *ucMatching.FindWorkers,
	workerStats *ucBooking.WorkerStats,
	workers worker.Repository,
) *WorkerHandler {
	return &WorkerHandler{
		registerWorker: registerWorker,
		findWorkers:    findWorkers,
		workerStats:    workerStats,
		workers:        workers,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterWorkerRequest struct {
	User struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email"`
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password"`
	} `json:"user" binding:"required"`

	Worker struct {
		Service    string          `json:"service" binding:"required"`
		Cost       float64         `json:"cost"`
		Latitude   float64         `json:"latitude"`
		Longitude  float64         `json:"longitude"`
		Bio        string          `json:"bio"`
		Gender     string          `json:"gender"`
		Experience int             `json:"experience"`
		Slots      json.RawMessage `json:"slots"`
	} `json:"worker" binding:"required"`
}

// ======================================================
// REGISTER
// ======================================================

func (h *WorkerHandler) Register(c *gin.Context) {
	var req RegisterWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.registerWorker.Execute(c.Request.Context(), ucIdentity.RegisterWorkerInput{
		UserName:     req.User.Name,
		UserEmail:    req.User.Email,
		UserPhone:    req.User.Phone,
		UserPassword: req.User.Password,
		Service:      req.Worker.Service,
		Cost:         req.Worker.Cost,
		Lat:          req.Worker.Latitude,
		Lng:          req.Worker.Longitude,
		Bio:          req.Worker.Bio,
		Gender:       req.Worker.Gender,
		Experience:   req.Worker.Experience,
		Slots:        string(req.Worker.Slots),
	})
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.Success(c, gin.H{
		"token": result.Token,
		"user": gin.H{
			"id":       result.UserID,
			"name":     result.UserName,
			"role":     "worker",
			"workerId": result.WorkerID,
		},
	})
}

// ======================================================
// LIST / MATCH
// ======================================================

func (h *WorkerHandler) List(c *gin.Context) {
	lat, _ := strconv.ParseFloat(c.Query("lat"), 64)
	lng, _ := strconv.ParseFloat(c.Query("lng"), 64)

	matches, err := h.findWorkers.Execute(c.Request.Context(), ucMatching.FindWorkersInput{
		Service: c.Query("service"),
		Lat:     lat,
		Lng:     lng,
	})
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	result := make([]dto.WorkerDTO, 0, len(matches))
	for _, m := range matches {
		result = append(result, dto.NewWorkerDTO(m.Profile, m.Distance))
	}

	httpresp.OK(c, result)
}

// ======================================================
// DETAIL
// ======================================================

func (h *WorkerHandler) Get(c *gin.Context) {
	workerID := c.Param("id")

	profile, err := h.workers.GetProfile(c.Request.Context(), workerID)
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	if profile == nil {
		httperr.NotFound(c, "Worker not found")
		return
	}

	stats, err := h.workerStats.Execute(c.Request.Context(), workerID)
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.OK(c, dto.NewWorkerDetailDTO(*profile, stats.Earnings, stats.TotalBookings))
}

// ======================================================
// AVAILABILITY
// ======================================================

// ToggleAvailability is accepted for client compatibility but does
// nothing; availability state was never persisted.
func (h *WorkerHandler) ToggleAvailability(c *gin.Context) {
	httpresp.Success(c, gin.H{"available": true})
}
