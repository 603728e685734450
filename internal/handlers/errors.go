package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Multydelivery/nextjs-clone-dashboard/internal/services/dashboard"
)

// respondError maps service errors onto status codes. The UI only ever sees
// the fixed per-operation message.
func respondError(c *gin.Context, err error) {
	var fetchErr *dashboard.FetchError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// The client went away; nothing useful to write.
		c.Abort()
	case errors.Is(err, dashboard.ErrInvalidIDFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID format."})
	case errors.Is(err, dashboard.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found."})
	case errors.As(err, &fetchErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": fetchErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
