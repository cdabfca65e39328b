// Package httperr maps domain errors onto the API's error body:
//
//	{"code": "...", "message": "...", "details": {...}}
package httperr

import (
	"errors"
	"net/http"

	"github.com/Jeomhps/lodging-api/internal/auth"
	"github.com/Jeomhps/lodging-api/internal/store"
)

const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeAuthentication     = "AUTHENTICATION_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
)

type Body struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// From returns the status and body for err. Errors it does not recognise
// become a 500 whose message does not reveal err.
func From(err error) (int, Body) {
	var (
		verr     *store.ValidationError
		notFound *store.NotFoundError
		conflict *store.ConflictError
	)
	switch {
	case errors.As(err, &verr):
		details := map[string]any{}
		if len(verr.Fields) > 0 {
			details["fields"] = verr.Fields
		}
		return http.StatusBadRequest, Body{Code: CodeValidation, Message: verr.Error(), Details: details}
	case errors.As(err, &notFound):
		return http.StatusNotFound, Body{
			Code:    CodeNotFound,
			Message: notFound.Error(),
			Details: map[string]any{"id": notFound.ID},
		}
	case errors.As(err, &conflict):
		return http.StatusConflict, Body{
			Code:    CodeConflict,
			Message: conflict.Error(),
			Details: map[string]any{"field": conflict.Field},
		}
	case errors.Is(err, store.ErrInvalidCredentials):
		return http.StatusUnauthorized, Body{Code: CodeInvalidCredentials, Message: "Invalid credentials", Details: map[string]any{}}
	case errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized, Body{Code: CodeAuthentication, Message: "Authentication required", Details: map[string]any{}}
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, Body{Code: CodeAuthentication, Message: "Invalid token", Details: map[string]any{}}
	default:
		return http.StatusInternalServerError, Internal()
	}
}

func Internal() Body {
	return Body{Code: CodeInternal, Message: "Internal Server Error", Details: map[string]any{}}
}

// RouteNotFound is the body for paths no route matches.
func RouteNotFound() Body {
	return Body{Code: CodeNotFound, Message: "Route not found", Details: map[string]any{}}
}
