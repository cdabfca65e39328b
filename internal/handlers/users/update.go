package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
)

// Update shallow-merges the body onto a user. A new password is re-hashed;
// a new email must not belong to another user.
func (h *Handler) Update(c *gin.Context) {
	id, err := common.ID(c, "id", h.users.Kind())
	if err != nil {
		_ = c.Error(err)
		return
	}
	fields, err := common.BindFields(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	u, err := h.users.Update(id, fields)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}
