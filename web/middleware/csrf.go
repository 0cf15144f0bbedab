// Package middleware provides HTTP middleware for the web server.
package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// CSRF returns middleware that validates the Origin/Referer headers of
// state-changing requests against the request host. The session cookie is
// browser-submitted, so a cross-site form could otherwise fire mutations
// on behalf of a logged-in user.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			c.Next()
			return
		}

		if origin := c.GetHeader("Origin"); origin != "" {
			if !sameHost(origin, c.Request.Host) {
				abortForbidden(c, "invalid origin")
				return
			}
			c.Next()
			return
		}

		if referer := c.GetHeader("Referer"); referer != "" {
			if !sameHost(referer, c.Request.Host) {
				abortForbidden(c, "invalid referer")
				return
			}
			c.Next()
			return
		}

		// No Origin or Referer at all: not a browser form submission.
		abortForbidden(c, "missing origin")
	}
}

func sameHost(rawURL, host string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == host
}

func abortForbidden(c *gin.Context, reason string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error": "CSRF validation failed: " + reason,
	})
}
