// Package accommodations serves /accommodations, also mounted as /hotels.
//
// One file per verb: list.go, get.go, create.go, update.go, delete.go.
package accommodations

import "github.com/Jeomhps/lodging-api/internal/store"

// Handler wires accommodation endpoints to the store.
type Handler struct {
	items *store.Accommodations
	// base is the collection path used for Location headers.
	base string
	// param names the path parameter holding the id.
	param string
}

// New returns a handler for routes under base ("/accommodations") whose id
// path parameter is param ("id").
func New(items *store.Accommodations, base, param string) *Handler {
	return &Handler{items: items, base: base, param: param}
}
