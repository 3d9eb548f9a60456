package http

import (
	"github.com/avelkov/bookshelf/internal/audit"
	"github.com/avelkov/bookshelf/internal/auth"
	"github.com/avelkov/bookshelf/internal/covers"
	"github.com/avelkov/bookshelf/internal/database"
	"github.com/avelkov/bookshelf/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	BookStore     BookStore
	WishlistStore WishlistStore
	Database      *database.Database
	Auditor       *audit.Service

	// Authentication
	AuthController *auth.Controller
	AuthMiddleware *auth.Middleware
	SessionManager *auth.SessionManager
	CSRFSecret     []byte
	SecureCookies  bool

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Cover caching
	CoverCache *covers.Cache

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Application info
	Version string
}
