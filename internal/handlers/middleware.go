package handlers

import (
	"net/http"

	"bookmarkhub/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	// cookieName is the session cookie holding the signed token.
	cookieName = "token"
	// testTokenHeader is honored only when the process runs in the test
	// environment. Production code paths never read it.
	testTokenHeader = "x-test-token"

	cookieMaxAge = 24 * 60 * 60 // 24h, matches the token TTL

	identityKey = "identity"

	errAuthRequired = "authentication required"
)

// tokenFromRequest locates the session token. In the test environment the
// x-test-token header is consulted first, then the cookie named "token";
// everywhere else the cookie is the only source.
func (h *Handler) tokenFromRequest(c *gin.Context) (string, bool) {
	if h.cfg != nil && h.cfg.IsTest() {
		if t := c.GetHeader(testTokenHeader); t != "" {
			return t, true
		}
	}
	t, err := c.Cookie(cookieName)
	if err != nil || t == "" {
		return "", false
	}
	return t, true
}

// resolveIdentity yields the authenticated identity, or false. A missing
// token and a bad token are indistinguishable to the caller.
func (h *Handler) resolveIdentity(c *gin.Context) (models.Identity, bool) {
	token, ok := h.tokenFromRequest(c)
	if !ok {
		return models.Identity{}, false
	}
	id, err := h.services.Authenticate(token)
	if err != nil {
		return models.Identity{}, false
	}
	return id, true
}

// identityMiddleware guards the JSON API: requests without a resolvable
// identity get a 401, everything else proceeds with the identity stored in
// the Gin context.
func (h *Handler) identityMiddleware(c *gin.Context) {
	id, ok := h.resolveIdentity(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errAuthRequired})
		return
	}
	c.Set(identityKey, id)
	c.Next()
}

// identityFromContext returns the identity stored by identityMiddleware.
func identityFromContext(c *gin.Context) models.Identity {
	id, _ := c.Get(identityKey)
	ident, _ := id.(models.Identity)
	return ident
}

// setAuthCookie propagates a freshly issued token to the client.
// HttpOnly + SameSite=Strict; Secure only in production.
func (h *Handler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(cookieName, token, cookieMaxAge, "/", "", h.cfg != nil && h.cfg.IsProduction(), true)
}

// clearAuthCookie expires the session cookie immediately (empty value,
// Max-Age=0), whether or not a session existed.
func (h *Handler) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(cookieName, "", -1, "/", "", h.cfg != nil && h.cfg.IsProduction(), true)
}
