package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avelkov/bookshelf/internal/audit"
	"github.com/avelkov/bookshelf/internal/config"
)

// isLocalPath validates that a redirect path is local to prevent open
// redirect attacks.
func isLocalPath(path string) bool {
	if path == "" {
		return false
	}
	if !strings.HasPrefix(path, "/") {
		return false
	}
	// Reject protocol-relative URLs (//evil.com)
	if strings.HasPrefix(path, "//") {
		return false
	}
	if strings.Contains(path, "://") {
		return false
	}
	if strings.Contains(path, "\\") {
		return false
	}
	return true
}

// sanitizeRedirectPath returns a safe redirect path, defaulting to /books.
func sanitizeRedirectPath(path string) string {
	if isLocalPath(path) {
		return path
	}
	return "/books"
}

// Controller handles registration, login and logout endpoints.
type Controller struct {
	service        *Service
	sessionManager *SessionManager
	rateLimiter    *RateLimiter
	auditor        *audit.Service
	config         config.Auth
}

// NewController creates a new authentication controller.
func NewController(service *Service, sessionManager *SessionManager, auditor *audit.Service, cfg config.Auth) *Controller {
	rateLimiter := NewRateLimiter(RateLimitConfig{
		MaxAttempts:     cfg.MaxLoginAttempts,
		WindowDuration:  cfg.RateLimitWindow,
		LockoutDuration: cfg.LockoutDuration,
	})

	return &Controller{
		service:        service,
		sessionManager: sessionManager,
		rateLimiter:    rateLimiter,
		auditor:        auditor,
		config:         cfg,
	}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/register", ac.RegisterPage)
	router.POST("/register", ac.Register)
	router.GET("/login", ac.LoginPage)
	router.POST("/login", ac.Login)
	router.GET("/logout", ac.Logout)
}

// Stop cleans up resources (rate limiter background goroutine).
func (ac *Controller) Stop() {
	if ac.rateLimiter != nil {
		ac.rateLimiter.Stop()
	}
}

// RegisterPage renders the registration form.
func (ac *Controller) RegisterPage(c *gin.Context) {
	if ac.sessionManager.IsAuthenticated(c.Request) {
		c.Redirect(http.StatusFound, "/books")
		return
	}

	c.HTML(http.StatusOK, "register", gin.H{
		"Title":     "Register",
		"CSRFToken": GetCSRFToken(c),
		"Error":     c.Query("error"),
	})
}

// Register handles the registration form submission. On success the user is
// sent to the login page; they do not get a session yet.
func (ac *Controller) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := ac.service.Register(username, password)
	if err != nil {
		errorMsg := "Registration failed."
		switch {
		case errors.Is(err, ErrUsernameRequired), errors.Is(err, ErrPasswordRequired):
			errorMsg = "Username and password required."
		case errors.Is(err, ErrUsernameInvalid):
			errorMsg = "Username must be 3-64 characters, alphanumeric with underscore/hyphen only."
		case errors.Is(err, ErrPasswordTooLong):
			errorMsg = "Password exceeds maximum length of 72 characters."
		case errors.Is(err, ErrUserExists):
			errorMsg = "Username already exists."
		}

		c.HTML(http.StatusOK, "register", gin.H{
			"Title":     "Register",
			"Username":  username,
			"CSRFToken": GetCSRFToken(c),
			"Error":     errorMsg,
		})
		return
	}

	ac.auditor.LogAuth(user.ID, "register", c.ClientIP(), nil)
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage renders the login form.
func (ac *Controller) LoginPage(c *gin.Context) {
	if ac.sessionManager.IsAuthenticated(c.Request) {
		c.Redirect(http.StatusFound, "/books")
		return
	}

	next := sanitizeRedirectPath(c.Query("next"))

	c.HTML(http.StatusOK, "login", gin.H{
		"Title":     "Login",
		"Next":      next,
		"CSRFToken": GetCSRFToken(c),
		"Error":     c.Query("error"),
	})
}

// Login handles the login form submission.
func (ac *Controller) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	next := sanitizeRedirectPath(c.PostForm("next"))
	clientIP := c.ClientIP()

	if allowed, retryAfter := ac.rateLimiter.Allow(clientIP, username); !allowed {
		c.Header("Retry-After", retryAfter.String())
		c.HTML(http.StatusOK, "login", gin.H{
			"Title":     "Login",
			"Next":      next,
			"Username":  username,
			"CSRFToken": GetCSRFToken(c),
			"Error":     "Too many login attempts. Please try again later.",
		})
		return
	}

	user, err := ac.service.Authenticate(username, password)
	if err != nil {
		ac.rateLimiter.RecordFailure(clientIP, username)
		ac.auditor.LogAuth(0, "login", clientIP, err)

		// One message for unknown user and wrong password alike
		c.HTML(http.StatusOK, "login", gin.H{
			"Title":     "Login",
			"Next":      next,
			"Username":  username,
			"CSRFToken": GetCSRFToken(c),
			"Error":     "Invalid username or password.",
		})
		return
	}

	ac.rateLimiter.RecordSuccess(clientIP, username)

	if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
		c.HTML(http.StatusOK, "login", gin.H{
			"Title":     "Login",
			"Next":      next,
			"Username":  username,
			"CSRFToken": GetCSRFToken(c),
			"Error":     "Failed to create session.",
		})
		return
	}

	ac.auditor.LogAuth(user.ID, "login", clientIP, nil)
	c.Redirect(http.StatusFound, next)
}

// Logout destroys the session and redirects to login. Idempotent.
func (ac *Controller) Logout(c *gin.Context) {
	userID := ac.sessionManager.GetUserID(c.Request)
	_ = ac.sessionManager.DestroySession(c.Request)
	if userID != 0 {
		ac.auditor.LogAuth(userID, "logout", c.ClientIP(), nil)
	}
	c.Redirect(http.StatusFound, "/login")
}
