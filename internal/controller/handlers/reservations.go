package handlers

import (
	"net/http"
	"strconv"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/Freeeeeet/condo_portal/internal/service"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service *service.ReservationService
}

func NewReservationHandler(s *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: s}
}

// GET /facilities
func (h *ReservationHandler) ListFacilities(c *gin.Context) {
	facilities, err := h.service.ListFacilities(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"facilities": facilities})
}

// POST /facilities/:id/bookings
func (h *ReservationHandler) Create(c *gin.Context) {
	facilityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility id"})
		return
	}

	var in struct {
		Date          string `json:"booking_date"`
		Slot          string `json:"time_slot"`
		ResidentName  string `json:"resident_name"`
		UnitNumber    string `json:"unit_number"`
		ContactNumber string `json:"contact_number"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.service.Reserve(c.Request.Context(), facilityID, in.Date, in.Slot, model.Requester{
		ResidentName:  in.ResidentName,
		UnitNumber:    in.UnitNumber,
		ContactNumber: in.ContactNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GET /facilities/:id/bookings?date=2006-01-02
func (h *ReservationHandler) ListOccupancy(c *gin.Context) {
	facilityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility id"})
		return
	}

	occupancy, err := h.service.ListBookings(c.Request.Context(), facilityID, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": occupancy})
}

// GET /admin/bookings?limit=20
func (h *ReservationHandler) ListRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	bookings, err := h.service.GetRecentBookings(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
