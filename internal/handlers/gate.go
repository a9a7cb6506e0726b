package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Redirect targets of the route gate.
const (
	protectedHome = "/bookmarks"
	loginPath     = "/login"
	registerPath  = "/register"
)

func isAuthPage(path string) bool {
	return strings.HasPrefix(path, loginPath) || strings.HasPrefix(path, registerPath)
}

func isProtectedPage(path string) bool {
	return strings.HasPrefix(path, protectedHome)
}

// routeGate is the coarse page-level pre-filter: authenticated users are
// kept off the login/register pages, unauthenticated (or invalidly
// authenticated) users are kept off the protected pages. It verifies the
// cookie token itself on every request; verification is cheap and stateless.
// Fine-grained checks stay with the per-endpoint middleware.
func (h *Handler) routeGate(c *gin.Context) {
	path := c.Request.URL.Path

	valid := false
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		_, verr := h.services.Authenticate(token)
		valid = verr == nil
	}

	switch {
	case isAuthPage(path) && valid:
		c.Redirect(http.StatusFound, protectedHome)
		c.Abort()
		return
	case isProtectedPage(path) && !valid:
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	c.Next()
}

// The page handlers below are placeholders for a real front-end; only the
// gate semantics matter here.

func (h *Handler) loginPage(c *gin.Context) {
	c.String(http.StatusOK, "login")
}

func (h *Handler) registerPage(c *gin.Context) {
	c.String(http.StatusOK, "register")
}

func (h *Handler) bookmarksPage(c *gin.Context) {
	c.String(http.StatusOK, "bookmarks")
}

func (h *Handler) publicPage(c *gin.Context) {
	c.String(http.StatusOK, "public bookmarks")
}
