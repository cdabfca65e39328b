package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tokens "github.com/Jeomhps/lodging-api/internal/auth"
	"github.com/Jeomhps/lodging-api/internal/middleware"
)

// Me describes the caller from its token. Unverified bearer tokens, which
// only get through when verification is off, carry no identity.
func (h *Handler) Me(c *gin.Context) {
	if v, ok := c.Get(middleware.CtxClaims); ok {
		claims := v.(*tokens.Claims)
		id, err := claims.UserID()
		if err != nil {
			_ = c.Error(tokens.ErrInvalidToken)
			return
		}
		out := gin.H{"id": id, "email": claims.Email}
		if claims.ExpiresAt != nil {
			out["expires_at"] = claims.ExpiresAt.Time.UTC()
		}
		c.JSON(http.StatusOK, out)
		return
	}
	if c.GetString(middleware.CtxRole) == middleware.RoleUser {
		c.JSON(http.StatusOK, gin.H{"authenticated": true})
		return
	}
	_ = c.Error(middleware.AuthError(c))
}
