package controller

import (
	"github.com/Freeeeeet/condo_portal/internal/controller/handlers"
	"github.com/Freeeeeet/condo_portal/internal/service"
	"github.com/gin-gonic/gin"
)

// NewRouter собирает HTTP-маршруты портала.
// Аутентификацию и сессии слой не делает: личность жителя приходит
// параметрами запроса от внешнего (уже авторизовавшего её) слоя.
func NewRouter(
	reservations *service.ReservationService,
	payments *service.PaymentService,
	maintenance *service.MaintenanceService,
	announcements *service.AnnouncementService,
) *gin.Engine {
	r := gin.Default()

	rh := handlers.NewReservationHandler(reservations)
	ph := handlers.NewPaymentHandler(payments)
	mh := handlers.NewMaintenanceHandler(maintenance)
	ah := handlers.NewAnnouncementHandler(announcements)

	r.GET("/facilities", rh.ListFacilities)
	r.POST("/facilities/:id/bookings", rh.Create)
	r.GET("/facilities/:id/bookings", rh.ListOccupancy)

	r.POST("/payments", ph.Submit)
	r.POST("/payments/:id/decision", ph.Decide)
	r.GET("/units/:unitNo/invoices", ph.ListForUnit)

	r.POST("/maintenance", mh.Submit)
	r.GET("/announcements", ah.Feed)

	admin := r.Group("/admin")
	{
		admin.GET("/bookings", rh.ListRecent)
		admin.GET("/payments", ph.ListForAdmin)
		admin.GET("/maintenance", mh.ListRecent)
		admin.POST("/maintenance/:id/status", mh.UpdateStatus)
		admin.POST("/events", ah.CreateEvent)
		admin.PUT("/events/:id", ah.UpdateEvent)
	}

	return r
}
