package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SmartLocalApps/service-finder/internal/audit"
	"github.com/SmartLocalApps/service-finder/internal/dto"
	"github.com/SmartLocalApps/service-finder/internal/httperr"
	"github.com/SmartLocalApps/service-finder/internal/httpresp"
	"github.com/SmartLocalApps/service-finder/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type AddServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	DisplayName string   `json:"displayName" binding:"required"`
	Icon        string   `json:"icon"`
	Categories  []string `json:"categories"`
}

// ======================================================
// LIST
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Find(&services).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	result := make([]dto.ServiceDTO, 0, len(services))
	for _, s := range services {
		result = append(result, dto.NewServiceDTO(s))
	}

	httpresp.OK(c, result)
}

// ======================================================
// ADD (ADMIN)
// ======================================================

func (h *ServiceHandler) Add(c *gin.Context) {
	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	icon := req.Icon
	if icon == "" {
		icon = "🔧"
	}

	categories := req.Categories
	if categories == nil {
		categories = []string{}
	}
	catJSON, _ := json.Marshal(categories)

	service := models.Service{
		Key:         req.Name,
		DisplayName: req.DisplayName,
		Icon:        icon,
		Categories:  string(catJSON),
		IsCustom:    true,
	}

	// No existence pre-check: a duplicate key surfaces the
	// primary-key violation from the store.
	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_added",
		Entity:   "service",
		EntityID: service.Key,
	})

	httpresp.Success(c, nil)
}
