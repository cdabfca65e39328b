package rooms

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/store"
)

// Get returns one room.
func (h *Handler) Get(c *gin.Context) {
	sc, id, err := h.target(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	r, err := h.rooms.Get(id)
	if err == nil && !sc.has(r) {
		err = &store.NotFoundError{Kind: h.rooms.Kind(), ID: id}
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, r)
}
