package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/handlers/common"
	"github.com/Jeomhps/lodging-api/internal/store"
)

// Login checks email and password and issues a signed access token.
func (h *Handler) Login(c *gin.Context) {
	fields, err := common.BindFields(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	email, password, err := credentials(fields)
	if err != nil {
		_ = c.Error(err)
		return
	}

	u, err := h.users.Authenticate(email, password)
	if err != nil {
		h.log.WithField("email", email).Debug("login refused")
		_ = c.Error(err)
		return
	}
	tok, err := h.issuer.Issue(u.ID, u.Email)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.log.WithField("user_id", u.ID).Info("login")

	c.JSON(http.StatusOK, gin.H{
		"token":      tok.Value,
		"token_type": "Bearer",
		"expires_in": int64(h.issuer.TTL().Seconds()),
	})
}

// Logout succeeds without doing anything: tokens are not tracked server
// side and stay valid until they expire.
func (h *Handler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func credentials(fields map[string]any) (email, password string, err error) {
	var missing []string
	for _, name := range []string{"email", "password"} {
		if s, ok := fields[name].(string); !ok || s == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", "", &store.ValidationError{Fields: missing}
	}
	return fields["email"].(string), fields["password"].(string), nil
}
