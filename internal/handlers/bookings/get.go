package bookings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
)

func (h *Handler) Get(c *gin.Context) {
	id, err := common.ID(c, "id", h.bookings.Kind())
	if err != nil {
		_ = c.Error(err)
		return
	}
	b, err := h.bookings.Get(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, b)
}
