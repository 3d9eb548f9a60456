package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avelkov/bookshelf/internal/audit"
	"github.com/avelkov/bookshelf/internal/auth"
	"github.com/avelkov/bookshelf/internal/config"
	"github.com/avelkov/bookshelf/internal/covers"
	"github.com/avelkov/bookshelf/internal/database"
	dbaudit "github.com/avelkov/bookshelf/internal/database/audit"
	"github.com/avelkov/bookshelf/internal/database/books"
	"github.com/avelkov/bookshelf/internal/database/wishlist"
	http_controllers "github.com/avelkov/bookshelf/internal/http"
	"github.com/avelkov/bookshelf/internal/scheduler"
	"github.com/avelkov/bookshelf/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts it down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Shutdown callback first (stops task queue and scheduler)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the application together and serves it.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Repositories
	bookRepo := books.NewRepository(db.DB)
	wishlistRepo := wishlist.NewRepository(db.DB)
	auditor := audit.NewService(dbaudit.NewRepository(db.DB))

	// Local cover cache next to the database
	coverCacheDir := filepath.Join(filepath.Dir(cfg.Database.Path), "covers")
	coverCache, err := covers.NewCache(coverCacheDir)
	if err != nil {
		log.Printf("WARNING: Failed to initialize cover cache: %v", err)
		coverCache = nil
	} else {
		log.Printf("Cover cache initialized at %s", coverCacheDir)
	}

	// Task queue
	var taskClient *tasks.Client
	var maintenance *scheduler.MaintenanceScheduler
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(tasks.NewCleanupAuditEventsQueue(auditor))
		if coverCache != nil {
			taskClient.Register(tasks.NewPrefetchCoverQueue(coverCache))
		}

		taskCtx, taskCtxCancel := context.WithCancel(context.Background())
		defer taskCtxCancel()
		go taskClient.Start(taskCtx)

		// Periodic audit trail cleanup
		maintenance = scheduler.NewMaintenanceScheduler(taskClient, cfg.Audit)
		if err := maintenance.Start(context.Background()); err != nil {
			log.Printf("WARNING: Failed to start maintenance scheduler: %v", err)
		}
	}

	// Authentication
	authService := auth.NewService(db.DB, cfg.Auth)

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}

	sessionManager, err := auth.NewSessionManager(sqlDB, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	authMiddleware := auth.NewMiddleware(sessionManager)
	authController := auth.NewController(authService, sessionManager, auditor, cfg.Auth)
	defer authController.Stop()

	// CSRF secret: configured or generated per process
	var csrfSecret []byte
	if cfg.Auth.SessionSecret != "" {
		csrfSecret, err = hex.DecodeString(cfg.Auth.SessionSecret)
		if err != nil {
			// Not hex, use as raw bytes
			csrfSecret = []byte(cfg.Auth.SessionSecret)
		}
	} else {
		secret, err := auth.GenerateSessionSecret()
		if err != nil {
			log.Fatalf("Failed to generate CSRF secret: %v", err)
		}
		csrfSecret, _ = hex.DecodeString(secret)
		log.Printf("Generated session secret (set AUTH_SESSION_SECRET to persist)")
	}

	if count, err := authService.UserCount(); err == nil && count == 0 {
		log.Printf("No users found. Visit /register to create an account.")
	}

	routerCfg := http_controllers.RouterConfig{
		BookStore:      bookRepo,
		WishlistStore:  wishlistRepo,
		Database:       db,
		Auditor:        auditor,
		AuthController: authController,
		AuthMiddleware: authMiddleware,
		SessionManager: sessionManager,
		CSRFSecret:     csrfSecret,
		SecureCookies:  cfg.Auth.SecureCookies,
		TemplatesPath:  cfg.UI.TemplatesPath,
		StaticPath:     cfg.UI.StaticPath,
		CoverCache:     coverCache,
		TaskClient:     taskClient,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg, func(ctx context.Context) {
		if maintenance != nil {
			maintenance.Stop()
		}
		if taskClient != nil {
			taskClient.Stop(ctx)
		}
	})
}
