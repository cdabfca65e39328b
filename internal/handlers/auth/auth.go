// Package auth serves the session endpoints: POST and DELETE /sessions,
// with /auth/login and /auth/me alongside.
package auth

import (
	"github.com/sirupsen/logrus"

	tokens "github.com/Jeomhps/lodging-api/internal/auth"
	"github.com/Jeomhps/lodging-api/internal/store"
)

// Handler wires session endpoints to the user store and the token issuer.
type Handler struct {
	users  *store.Users
	issuer *tokens.Issuer
	log    logrus.FieldLogger
}

func New(users *store.Users, issuer *tokens.Issuer, log logrus.FieldLogger) *Handler {
	return &Handler{users: users, issuer: issuer, log: log}
}
