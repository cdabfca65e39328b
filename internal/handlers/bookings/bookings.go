// Package bookings serves /bookings. Dates are stored as the strings the
// client sent; nothing checks their format or overlap.
package bookings

import "github.com/Jeomhps/lodging-api/internal/store"

// Handler wires booking endpoints to the store.
type Handler struct{ bookings *store.Bookings }

func New(bookings *store.Bookings) *Handler { return &Handler{bookings: bookings} }
