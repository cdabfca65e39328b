package rooms

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Delete removes a room. Bookings are not touched.
func (h *Handler) Delete(c *gin.Context) {
	sc, id, err := h.target(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.rooms.DeleteIf(id, sc.has); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
