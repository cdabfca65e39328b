// Package rooms serves rooms on two route shapes over the same collection:
// flat (/rooms/:id) and nested under a hotel (/hotels/:hotelId/rooms/:roomId).
// On nested routes the hotel in the path is the room's parentId, and a room
// that belongs to another hotel does not exist.
package rooms

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
	"github.com/Jeomhps/lodging-api/internal/store"
)

// Handler wires room endpoints to the store.
type Handler struct{ rooms *store.Rooms }

func New(rooms *store.Rooms) *Handler { return &Handler{rooms: rooms} }

// scope is the hotel a nested route is bound to.
type scope struct {
	nested bool
	hotel  int64
}

func (s scope) has(r *store.Room) bool { return !s.nested || int64(r.ParentID) == s.hotel }

// scopeOf reads :hotelId. A hotel id that cannot exist is a missing
// accommodation.
func scopeOf(c *gin.Context) (scope, error) {
	raw, ok := c.Params.Get("hotelId")
	if !ok {
		return scope{}, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return scope{}, &store.NotFoundError{Kind: "Accommodation", ID: id}
	}
	return scope{nested: true, hotel: id}, nil
}

// target resolves the scope and the room id of a single-room route.
func (h *Handler) target(c *gin.Context) (scope, int64, error) {
	sc, err := scopeOf(c)
	if err != nil {
		return scope{}, 0, err
	}
	param := "id"
	if sc.nested {
		param = "roomId"
	}
	id, err := common.ID(c, param, h.rooms.Kind())
	return sc, id, err
}
