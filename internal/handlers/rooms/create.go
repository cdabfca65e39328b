package rooms

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
)

// Create adds a room. type and price are required, and parentId too on the
// flat route; nested routes take it from the path.
func (h *Handler) Create(c *gin.Context) {
	sc, err := scopeOf(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	fields, err := common.BindFields(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	common.NormalizeParent(fields)
	if sc.nested {
		fields["parentId"] = sc.hotel
	}

	r, err := h.rooms.Create(fields)
	if err != nil {
		_ = c.Error(err)
		return
	}
	location := fmt.Sprintf("/rooms/%d", r.ID)
	if sc.nested {
		location = fmt.Sprintf("/hotels/%d/rooms/%d", sc.hotel, r.ID)
	}
	common.Created(c, location, r)
}
