package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arkanum/sentinel/internal/audit"
	"github.com/arkanum/sentinel/internal/sessions"
	"github.com/arkanum/sentinel/internal/users"
)

// RequireSession resolves the session cookie and stores the actor's
// identity on the request context. Browser requests without a valid
// session are redirected to the login form.
func RequireSession(svc *sessions.Service, userSvc *users.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		sess, err := svc.Validate(c.Request.Context(), token)
		if err != nil || sess == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("user", sess.User)
		if role, ok := userSvc.RoleOf(sess.User); ok {
			c.Set("role", string(role))
		}
		c.Next()
	}
}

// RequireRole gates a route to one role. Denied attempts land in the
// audit trail before the 403 goes out.
func RequireRole(role users.Role, trail *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		have, _ := c.Get("role")
		if have != string(role) {
			user, _ := c.Get("user")
			actor, _ := user.(string)
			_ = trail.Record(c.Request.Context(), actor, audit.ActionDenied, c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acceso denegado"})
			return
		}
		c.Next()
	}
}
