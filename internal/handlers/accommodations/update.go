package accommodations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
)

// Update shallow-merges the body onto an accommodation.
func (h *Handler) Update(c *gin.Context) {
	id, err := common.ID(c, h.param, h.items.Kind())
	if err != nil {
		_ = c.Error(err)
		return
	}
	fields, err := common.BindFields(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	a, err := h.items.Update(id, fields)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, a)
}
