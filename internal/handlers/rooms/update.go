package rooms

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
	"github.com/Jeomhps/lodging-api/internal/store"
)

// Update shallow-merges the body onto a room. Nested routes cannot move a
// room to another hotel; parentId in the body is dropped there.
func (h *Handler) Update(c *gin.Context) {
	sc, id, err := h.target(c)
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
		delete(fields, "parentId")
	}

	r, err := h.rooms.UpdateWith(id, fields, func(r *store.Room) error {
		if !sc.has(r) {
			return &store.NotFoundError{Kind: h.rooms.Kind(), ID: id}
		}
		return nil
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, r)
}
