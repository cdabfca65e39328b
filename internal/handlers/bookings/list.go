package bookings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
	"github.com/Jeomhps/lodging-api/internal/store"
)

// List returns bookings in insertion order, optionally only those whose
// parentId matches ?parentId=.
func (h *Handler) List(c *gin.Context) {
	parent, ok, err := common.ParentFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var keep func(*store.Booking) bool
	if ok {
		keep = func(b *store.Booking) bool { return int64(b.ParentID) == parent }
	}
	c.JSON(http.StatusOK, h.bookings.List(keep))
}
