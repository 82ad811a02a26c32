package handlers

import (
	"net/http"
	"strconv"

	"github.com/Freeeeeet/condo_portal/internal/service"
	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	service *service.MaintenanceService
}

func NewMaintenanceHandler(s *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: s}
}

// POST /maintenance
func (h *MaintenanceHandler) Submit(c *gin.Context) {
	var in struct {
		ResidentName  string `json:"resident_name"`
		UnitNumber    string `json:"unit_number"`
		ContactNumber string `json:"contact_number"`
		Category      string `json:"category"`
		Description   string `json:"description"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.service.Submit(c.Request.Context(), in.ResidentName, in.UnitNumber, in.ContactNumber, in.Category, in.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// GET /admin/maintenance?limit=20
func (h *MaintenanceHandler) ListRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	requests, err := h.service.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// POST /admin/maintenance/:id/status
func (h *MaintenanceHandler) UpdateStatus(c *gin.Context) {
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	var in struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), requestID, in.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": in.Status})
}
