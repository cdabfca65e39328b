package accommodations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
)

// Get returns one accommodation by id.
func (h *Handler) Get(c *gin.Context) {
	id, err := common.ID(c, h.param, h.items.Kind())
	if err != nil {
		_ = c.Error(err)
		return
	}
	a, err := h.items.Get(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, a)
}
