package bookings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
)

// Update shallow-merges the body onto a booking.
func (h *Handler) Update(c *gin.Context) {
	id, err := common.ID(c, "id", h.bookings.Kind())
	if err != nil {
		_ = c.Error(err)
		return
	}
	fields, err := common.BindFields(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	common.NormalizeParent(fields)

	b, err := h.bookings.Update(id, fields)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, b)
}
