package accommodations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
)

// Delete removes an accommodation. Rooms and bookings that point at it are
// left alone.
func (h *Handler) Delete(c *gin.Context) {
	id, err := common.ID(c, h.param, h.items.Kind())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.items.Delete(id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
