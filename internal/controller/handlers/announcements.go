package handlers

import (
	"net/http"
	"strconv"

	"github.com/Freeeeeet/condo_portal/internal/service"
	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	service *service.AnnouncementService
}

func NewAnnouncementHandler(s *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: s}
}

// GET /announcements
func (h *AnnouncementHandler) Feed(c *gin.Context) {
	announcements, events, err := h.service.Feed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"announcements": announcements,
		"events":        events,
	})
}

type eventInput struct {
	Title       string `json:"title"`
	Date        string `json:"event_date"`
	Time        string `json:"event_time"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// POST /admin/events
func (h *AnnouncementHandler) CreateEvent(c *gin.Context) {
	var in eventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.service.CreateEvent(c.Request.Context(), in.Title, in.Date, in.Time, in.Description, in.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// PUT /admin/events/:id
func (h *AnnouncementHandler) UpdateEvent(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var in eventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.service.UpdateEvent(c.Request.Context(), eventID, in.Title, in.Date, in.Time, in.Description, in.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}
