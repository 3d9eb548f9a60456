package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// csrfTokenContextKey is the Gin context key holding the per-request token.
const csrfTokenContextKey = "csrf_token"

// CSRFMiddleware creates a Gin middleware for CSRF protection of form
// submissions. Safe methods (GET, HEAD, OPTIONS, TRACE) pass through
// unchecked per gorilla/csrf defaults.
func CSRFMiddleware(secret []byte, secure bool) gin.HandlerFunc {
	csrfProtect := csrf.Protect(
		secret,
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.Path("/"),
		csrf.ErrorHandler(http.HandlerFunc(csrfErrorHandler)),
	)

	return func(c *gin.Context) {
		passed := false
		handler := csrfProtect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			// Store the token for templates. Session middleware runs after
			// this, stacking its context on top of csrf's request swap.
			c.Set(csrfTokenContextKey, csrf.Token(r))
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)
		if !passed {
			// csrf.Protect rejected the request and the error handler has
			// already written the response. Stop gin from running the rest
			// of the chain.
			c.Abort()
		}
	}
}

// GetCSRFToken returns the request's CSRF token for embedding in forms.
func GetCSRFToken(c *gin.Context) string {
	if token, exists := c.Get(csrfTokenContextKey); exists {
		if s, ok := token.(string); ok {
			return s
		}
	}
	return ""
}

// csrfErrorHandler handles CSRF validation failures by bouncing the browser
// back to the page it came from rather than showing a bare error.
func csrfErrorHandler(w http.ResponseWriter, r *http.Request) {
	referer := r.Referer()
	if referer != "" {
		separator := "?"
		if strings.Contains(referer, "?") {
			separator = "&"
		}
		http.Redirect(w, r, referer+separator+"error=Session+expired.+Please+try+again.", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("Forbidden - CSRF token invalid"))
}
