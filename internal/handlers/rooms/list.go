package rooms

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
)

// List returns rooms in insertion order: the hotel's rooms on nested routes,
// otherwise all rooms or those matching ?parentId=.
func (h *Handler) List(c *gin.Context) {
	sc, err := scopeOf(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !sc.nested {
		parent, ok, err := common.ParentFilter(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		sc = scope{nested: ok, hotel: parent}
	}
	c.JSON(http.StatusOK, h.rooms.List(sc.has))
}
