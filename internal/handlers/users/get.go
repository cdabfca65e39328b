package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
)

func (h *Handler) Get(c *gin.Context) {
	id, err := common.ID(c, "id", h.users.Kind())
	if err != nil {
		_ = c.Error(err)
		return
	}
	u, err := h.users.Get(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}
