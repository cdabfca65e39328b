// Package users serves /users. Passwords are accepted on create and update
// and never appear in a response.
//
// One file per verb: list.go, get.go, create.go, update.go, delete.go.
package users

import (
	"github.com/sirupsen/logrus"

	"github.com/Jeomhps/lodging-api/internal/store"
)

// Handler wires user endpoints to the store.
type Handler struct {
	users *store.Users
	log   logrus.FieldLogger
}

func New(users *store.Users, log logrus.FieldLogger) *Handler {
	return &Handler{users: users, log: log}
}
