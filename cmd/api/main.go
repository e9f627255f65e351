package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/zensolve/jobportal-admin/internal/config"
	"github.com/zensolve/jobportal-admin/internal/database"
	"github.com/zensolve/jobportal-admin/internal/handlers"
	"github.com/zensolve/jobportal-admin/internal/repository"
	"github.com/zensolve/jobportal-admin/internal/repository/mongodb"
	"github.com/zensolve/jobportal-admin/internal/services"
)

const fileRouteBase = "/api/v1/files"

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}
	cfg := config.Load()

	// 2. Document + Blob Store Connection
	db := database.Connect(cfg.MongoURI, cfg.MongoDB)
	blobs, err := mongodb.NewGridFSBlobStore(db, fileRouteBase)
	if err != nil {
		log.Fatal("Failed to open blob store:", err)
	}

	// 3. Initialize Core Services (Dependencies)
	jobService := services.NewJobService(mongodb.NewJobRepository(db), blobs)
	appService := services.NewApplicationService(mongodb.NewApplicationRepository(db), cfg.Org)
	contentService := services.NewContentService(mongodb.NewSettingsRepository(db), mongodb.NewTestimonialRepository(db))
	userService := services.NewUserService(mongodb.NewUserRepository(db))
	logoPanel := services.NewLogoPanel(mongodb.NewMediaRepository(db, repository.CollectionLogos), blobs)
	screenshotPanel := services.NewScreenshotPanel(mongodb.NewMediaRepository(db, repository.CollectionScreenshots), blobs)

	// 4. Initialize Helpdesk Watcher
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	helpdeskService := services.NewHelpdeskService(mongodb.NewMessageRepository(db), cfg.Org, cfg.HelpdeskPollInterval)
	helpdeskService.StartWatcher(ctx)

	// 5. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService, appService)
	appHandler := handlers.NewApplicationHandler(appService)
	contentHandler := handlers.NewContentHandler(contentService, userService)
	logoHandler := handlers.NewMediaHandler(logoPanel, "logo")
	screenshotHandler := handlers.NewMediaHandler(screenshotPanel, "screenshot")
	helpHandler := handlers.NewHelpHandler(helpdeskService)
	fileHandler := handlers.NewFileHandler(blobs)

	// 6. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		// Job Routes
		api.GET("/jobs", jobHandler.List)
		api.POST("/jobs", jobHandler.Create)
		api.DELETE("/jobs/:id", jobHandler.Delete)
		api.GET("/stats", jobHandler.Stats)

		// Application Review Routes
		api.GET("/applications", appHandler.List)
		api.GET("/applications/export", appHandler.Export)
		api.PATCH("/applications/:id/accept", appHandler.Accept)
		api.PATCH("/applications/:id/reject", appHandler.Reject)
		api.GET("/applications/:id/notices", appHandler.Notices)
		api.DELETE("/applications/:id", appHandler.Remove)

		// Content Routes
		api.GET("/settings/contact", contentHandler.GetContactSettings)
		api.PUT("/settings/contact", contentHandler.SaveContactSettings)
		api.GET("/testimonials", contentHandler.ListTestimonials)
		api.PATCH("/testimonials/:id", contentHandler.UpdateTestimonial)
		api.DELETE("/testimonials/:id", contentHandler.DeleteTestimonial)
		api.GET("/users", contentHandler.ListUsers)
		api.DELETE("/users/:id", contentHandler.DeleteUser)

		// Media Upload Panels
		api.GET("/logos", logoHandler.List)
		api.POST("/logos", logoHandler.Upload)
		api.DELETE("/logos/:id", logoHandler.Delete)
		api.GET("/screenshots", screenshotHandler.List)
		api.POST("/screenshots", screenshotHandler.Upload)
		api.DELETE("/screenshots/:id", screenshotHandler.Delete)

		// Helpdesk Routes
		api.GET("/helpdesk/messages", helpHandler.ListMessages)
		api.GET("/helpdesk/interstitial", helpHandler.Interstitial)
		api.POST("/helpdesk/interstitial/snooze", helpHandler.Snooze)
		api.POST("/helpdesk/interstitial/accept", helpHandler.Accept)
		api.DELETE("/helpdesk/messages/:id", helpHandler.Resolve)

		// Blob downloads (public URL target)
		api.GET("/files/*key", fileHandler.Download)
	}

	// 8. Serve until shutdown
	srv := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: r}
	go func() {
		log.Printf("🚀 Server starting on port %s...", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start:", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	helpdeskService.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown:", err)
	}
}
