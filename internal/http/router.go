package http

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avelkov/bookshelf/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	funcMap := template.FuncMap{
		"formatDate": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("January 2, 2006")
		},
		"deref": func(n *int) int {
			if n == nil {
				return 0
			}
			return *n
		},
	}

	tmpl := template.Must(template.New("").Funcs(funcMap).ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	router.Static("/static", cfg.StaticPath)

	// Public routes
	if cfg.AuthController != nil {
		cfg.AuthController.RegisterRoutes(router)
	}

	homeController := NewHomeController()
	demoController := NewDemoController()
	healthController := NewHealthController(cfg.Database, cfg.Version)

	router.GET("/", homeController.HomePage)
	router.GET("/demo", demoController.DemoPage)
	router.GET("/health", healthController.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Protected routes: everything below requires a logged-in session and
	// redirects anonymous visitors to /login
	booksController := NewBooksController(cfg.BookStore, cfg.Auditor, cfg.TaskClient)
	wishlistController := NewWishlistController(cfg.WishlistStore, cfg.Auditor, cfg.TaskClient)

	protected := router.Group("/")
	if cfg.AuthMiddleware != nil {
		protected.Use(cfg.AuthMiddleware.RequireAuth())
	}

	protected.GET("/books", booksController.ListBooks)
	protected.GET("/books/new", booksController.NewBookForm)
	protected.POST("/books", booksController.CreateBook)
	protected.GET("/books/:id/edit", booksController.EditBookForm)
	protected.POST("/books/:id", booksController.UpdateBook)
	protected.POST("/books/:id/delete", booksController.DeleteBook)

	protected.GET("/wishlist", wishlistController.ListItems)
	protected.GET("/wishlist/new", wishlistController.NewItemForm)
	protected.POST("/wishlist", wishlistController.CreateItem)
	protected.POST("/wishlist/:id/read", wishlistController.PromoteItem)
	protected.POST("/wishlist/:id/delete", wishlistController.DeleteItem)

	if cfg.CoverCache != nil {
		coversController := NewCoversController(cfg.CoverCache, cfg.BookStore)
		protected.GET("/books/:id/cover", coversController.GetCover)
	}

	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Page not found")
	})

	return router
}
