package handlers

import (
	"net/http"
	"strconv"

	"github.com/Freeeeeet/condo_portal/internal/controller/formatting"
	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/Freeeeeet/condo_portal/internal/service"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service *service.PaymentService
}

func NewPaymentHandler(s *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

// POST /payments
func (h *PaymentHandler) Submit(c *gin.Context) {
	var in struct {
		InvoiceID   int64  `json:"invoice_id"`
		Method      string `json:"method"`
		ReferenceNo string `json:"reference_no"`
		Amount      int64  `json:"amount"` // в центах
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.service.SubmitPayment(c.Request.Context(), in.InvoiceID, in.Method, in.ReferenceNo, in.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"payment":        payment,
		"amount_display": formatting.FormatAmount(payment.Amount),
	})
}

// POST /payments/:id/decision
func (h *PaymentHandler) Decide(c *gin.Context) {
	paymentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	var in struct {
		Decision string `json:"decision"` // Approved / Rejected
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := h.service.DecidePayment(c.Request.Context(), paymentID, in.Decision)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// GET /units/:unitNo/invoices
func (h *PaymentHandler) ListForUnit(c *gin.Context) {
	invoices, err := h.service.ListInvoicesForUnit(c.Request.Context(), c.Param("unitNo"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoiceViews(invoices)})
}

// GET /admin/payments
func (h *PaymentHandler) ListForAdmin(c *gin.Context) {
	payments, err := h.service.ListPaymentsForAdmin(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]gin.H, 0, len(payments))
	for _, p := range payments {
		views = append(views, gin.H{
			"payment":        p,
			"amount_display": formatting.FormatAmount(p.Amount),
			"period_display": formatting.FormatPeriod(p.PeriodStart, p.PeriodEnd),
		})
	}

	c.JSON(http.StatusOK, gin.H{"payments": views})
}

func invoiceViews(invoices []*model.InvoiceWithPayment) []gin.H {
	views := make([]gin.H, 0, len(invoices))
	for _, inv := range invoices {
		views = append(views, gin.H{
			"invoice":        inv,
			"total_display":  formatting.FormatAmount(inv.TotalAmount),
			"period_display": formatting.FormatPeriod(inv.PeriodStart, inv.PeriodEnd),
		})
	}
	return views
}
