package middleware

import (
	"fmt"

	"github.com/casbin/casbin"
	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/auth"
)

// Context keys set by Authenticate.
const (
	CtxRole   = "role"   // RoleAnonymous or RoleUser
	CtxUser   = "user"   // user id from a verified token
	CtxClaims = "claims" // *auth.Claims from a verified token

	ctxAuthErr = "auth_error"
)

const (
	RoleAnonymous = "anonymous"
	RoleUser      = "user"
)

// Authenticate classifies the caller from the Authorization header. It never
// rejects a request; Authorize decides whether the role is enough.
//
// With verify set, only a valid JWT makes the caller a user. Without it, any
// syntactically present bearer token does, and a token that happens to
// verify still exposes its claims.
func Authenticate(iss *auth.Issuer, verify bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRole, RoleAnonymous)

		tok, err := auth.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.Set(ctxAuthErr, err)
			c.Next()
			return
		}

		claims, err := iss.Parse(tok)
		switch {
		case err == nil:
			c.Set(CtxRole, RoleUser)
			c.Set(CtxUser, claims.Subject)
			c.Set(CtxClaims, claims)
		case !verify:
			c.Set(CtxRole, RoleUser)
		default:
			c.Set(ctxAuthErr, err)
		}
		c.Next()
	}
}

// Authorize enforces the route policy for the role Authenticate assigned.
// A refused request fails with AuthError.
func Authorize(e *casbin.Enforcer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := e.EnforceSafe(c.GetString(CtxRole), c.Request.URL.Path, c.Request.Method)
		if err != nil {
			_ = c.Error(fmt.Errorf("enforce route policy: %w", err))
			c.Abort()
			return
		}
		if !ok {
			_ = c.Error(AuthError(c))
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthError explains why the request carries no verified claims: the
// failure Authenticate recorded, or auth.ErrMissingToken.
func AuthError(c *gin.Context) error {
	if v, exists := c.Get(ctxAuthErr); exists {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return auth.ErrMissingToken
}
