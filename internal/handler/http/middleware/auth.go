package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

const (
	AdminCookie   = "adminToken"
	PatientCookie = "patientToken"

	userKey  = "user"
	tokenKey = "token"
)

// Authenticator resolves a session token to the user it belongs to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string, role entity.UserRole) (*entity.User, error)
}

// AdminAuth admits requests carrying a valid admin session cookie.
func AdminAuth(auth Authenticator) gin.HandlerFunc {
	return roleAuth(auth, AdminCookie, entity.UserRoleAdmin)
}

// PatientAuth admits requests carrying a valid patient session cookie.
func PatientAuth(auth Authenticator) gin.HandlerFunc {
	return roleAuth(auth, PatientCookie, entity.UserRolePatient)
}

func roleAuth(auth Authenticator, cookie string, role entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := Cookies(c)[cookie]
		user, err := auth.Authenticate(c.Request.Context(), token, role)
		if err != nil {
			abortWith(c, err)
			return
		}
		c.Set(userKey, user)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// CurrentUser returns the user admitted by an auth stage.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}

// SessionToken returns the token admitted by an auth stage.
func SessionToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
