package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Multydelivery/nextjs-clone-dashboard/internal/services/dashboard"
)

type CustomerHandler struct {
	service *dashboard.Service
}

func NewCustomerHandler(s *dashboard.Service) *CustomerHandler {
	return &CustomerHandler{service: s}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.service.FilteredCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// Names feeds the customer dropdown on the invoice form.
func (h *CustomerHandler) Names(c *gin.Context) {
	names, err := h.service.CustomerNames(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": names})
}
