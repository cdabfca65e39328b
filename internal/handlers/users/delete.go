package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
)

func (h *Handler) Delete(c *gin.Context) {
	id, err := common.ID(c, "id", h.users.Kind())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.users.Delete(id); err != nil {
		_ = c.Error(err)
		return
	}
	h.log.WithField("user_id", id).Info("user deleted")
	c.Status(http.StatusNoContent)
}
