package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arkanum/sentinel/internal/audit"
	"github.com/arkanum/sentinel/internal/sessions"
	"github.com/arkanum/sentinel/internal/users"
	"github.com/arkanum/sentinel/pkg/logger"
)

// AuthHandler serves the login form and manages the session cookie.
type AuthHandler struct {
	users      *users.Service
	sessions   *sessions.Service
	trail      *audit.Logger
	cookieName string
	ttl        time.Duration
}

func NewAuthHandler(u *users.Service, s *sessions.Service, trail *audit.Logger, cookieName string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{users: u, sessions: s, trail: trail, cookieName: cookieName, ttl: ttl}
}

// Register installs the public auth routes.
func (h *AuthHandler) Register(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}

// Home sends authenticated browsers to the dashboard, everyone else to login.
func (h *AuthHandler) Home(c *gin.Context) {
	if token, err := c.Cookie(h.cookieName); err == nil && token != "" {
		if sess, err := h.sessions.Validate(c.Request.Context(), token); err == nil && sess != nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login", gin.H{"app": appName})
}

// Login checks the posted credentials and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	if _, ok := h.users.Authenticate(email, password); !ok {
		c.HTML(http.StatusUnauthorized, "login", gin.H{"app": appName, "error": "Credenciales inválidas"})
		return
	}
	token, err := h.sessions.Create(c.Request.Context(), email, h.ttl)
	if err != nil {
		logger.Errorf("session create failed for %s: %v", email, err)
		c.HTML(http.StatusInternalServerError, "login", gin.H{"app": appName, "error": "Error interno"})
		return
	}
	c.SetCookie(h.cookieName, token, int(h.ttl.Seconds()), "/", "", false, true)
	if err := h.trail.Record(c.Request.Context(), email, audit.ActionLogin, ""); err != nil {
		logger.Warnf("audit record failed: %v", err)
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout drops the server-side session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookieName); err == nil && token != "" {
		actor := ""
		if sess, err := h.sessions.Validate(c.Request.Context(), token); err == nil && sess != nil {
			actor = sess.User
		}
		if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
			logger.Warnf("session delete failed: %v", err)
		}
		if err := h.trail.Record(c.Request.Context(), actor, audit.ActionLogout, ""); err != nil {
			logger.Warnf("audit record failed: %v", err)
		}
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
