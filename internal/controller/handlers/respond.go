package handlers

import (
	"errors"
	"net/http"

	"github.com/Freeeeeet/condo_portal/internal/repository"
	"github.com/Freeeeeet/condo_portal/internal/service"
	"github.com/gin-gonic/gin"
)

// respondError переводит ошибки сервисного слоя в HTTP-статусы.
// Ошибки хранилища наружу не детализируем.
func respondError(c *gin.Context, err error) {
	var validation *service.ValidationError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.Is(err, repository.ErrSlotCapacity):
		c.JSON(http.StatusConflict, gin.H{"error": "this time slot is full, please choose another"})
	case errors.Is(err, service.ErrFacilityNotFound),
		errors.Is(err, service.ErrUnitNotFound),
		errors.Is(err, service.ErrInvoiceNotFound),
		errors.Is(err, service.ErrPaymentNotFound),
		errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
