package accommodations

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
)

// Create adds an accommodation; name, city, address and rating are required.
func (h *Handler) Create(c *gin.Context) {
	fields, err := common.BindFields(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	a, err := h.items.Create(fields)
	if err != nil {
		_ = c.Error(err)
		return
	}
	common.Created(c, fmt.Sprintf("%s/%d", h.base, a.ID), a)
}
