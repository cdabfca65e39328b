package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// List returns all users without their passwords.
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.users.List(nil))
}
