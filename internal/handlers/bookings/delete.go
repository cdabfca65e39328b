package bookings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
)

func (h *Handler) Delete(c *gin.Context) {
	id, err := common.ID(c, "id", h.bookings.Kind())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.bookings.Delete(id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
