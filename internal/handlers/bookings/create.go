package bookings

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
)

// Create adds a booking; parentId (or accommodationId), userName,
// checkInDate and checkOutDate are required.
func (h *Handler) Create(c *gin.Context) {
	fields, err := common.BindFields(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	common.NormalizeParent(fields)

	b, err := h.bookings.Create(fields)
	if err != nil {
		_ = c.Error(err)
		return
	}
	common.Created(c, fmt.Sprintf("/bookings/%d", b.ID), b)
}
