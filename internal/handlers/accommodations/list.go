package accommodations

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// List returns every accommodation in insertion order.
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.items.List(nil))
}
