package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Multydelivery/nextjs-clone-dashboard/internal/models"
	"github.com/Multydelivery/nextjs-clone-dashboard/internal/services/dashboard"
	"github.com/Multydelivery/nextjs-clone-dashboard/internal/store"
)

const invoicesPath = "/dashboard/invoices"

type InvoiceHandler struct {
	service *dashboard.Service
	store   store.Store
}

func NewInvoiceHandler(s *dashboard.Service, st store.Store) *InvoiceHandler {
	return &InvoiceHandler{service: s, store: st}
}

// InvoicePayload mirrors the invoice form: the amount arrives in dollars.
type InvoicePayload struct {
	CustomerID string  `json:"customer_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Status     string  `json:"status" binding:"required,oneof=pending paid"`
}

func (p InvoicePayload) toInvoice(date string) models.Invoice {
	return models.Invoice{
		CustomerID: p.CustomerID,
		Amount:     int64(math.Round(p.Amount * 100)),
		Status:     p.Status,
		Date:       date,
	}
}

// fieldErrors maps validation failures to the form's per-field messages.
func fieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "CustomerID":
			out["customer_id"] = append(out["customer_id"], "Please select a customer.")
		case "Amount":
			out["amount"] = append(out["amount"], "Please enter an amount greater than $0.")
		case "Status":
			out["status"] = append(out["status"], "Please select an invoice status.")
		}
	}
	return out
}

func (h *InvoiceHandler) List(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	invoices, err := h.service.FilteredInvoices(c.Request.Context(), query, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices, "page": page})
}

func (h *InvoiceHandler) Pages(c *gin.Context) {
	pages, err := h.service.InvoicePages(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_pages": pages})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	form, err := h.service.ResolveInvoiceID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": form})
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload InvoicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors":  fieldErrors(err),
			"message": "Missing Fields. Failed to Create Invoice.",
		})
		return
	}

	inv := payload.toInvoice(time.Now().Format("2006-01-02"))
	if err := h.store.CreateInvoice(c.Request.Context(), inv); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database Error: Failed to Create Invoice."})
		return
	}

	if h.store.Demo() {
		c.JSON(http.StatusOK, gin.H{
			"message": "Demo Mode: Invoice creation is not available with placeholder data.",
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Invoice created.",
		"revalidated": invoicesPath,
		"redirect_to": invoicesPath,
	})
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	var payload InvoicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data."})
		return
	}

	key, err := h.service.ResolveInvoiceKey(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	inv := payload.toInvoice(key.Date)
	if err := h.store.UpdateInvoice(c.Request.Context(), key, inv); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database Error: Failed to Update Invoice."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"revalidated": invoicesPath,
		"redirect_to": invoicesPath,
	})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	key, err := h.service.ResolveInvoiceKey(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.store.DeleteInvoice(c.Request.Context(), key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database Error: Failed to Delete Invoice."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"revalidated": invoicesPath})
}
