package users

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
)

// Create registers a user. Also mounted as POST /auth/register.
// An email that is already registered is a conflict.
func (h *Handler) Create(c *gin.Context) {
	fields, err := common.BindFields(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	u, err := h.users.Register(fields)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.log.WithField("user_id", u.ID).Info("user registered")
	common.Created(c, fmt.Sprintf("/users/%d", u.ID), u)
}
