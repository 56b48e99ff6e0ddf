package main

import (
	"log"
	"net/http"

	"camisetas-api/config"
	"camisetas-api/handlers"
	"camisetas-api/mailer"
	"camisetas-api/repository"
	"camisetas-api/routes"
	"camisetas-api/session"
	"camisetas-api/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.Load()

	// Set Gin mode
	if config.C.GinMode == "" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(config.C.GinMode)
	}

	logger, err := newLogger()
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	// Initialize database
	config.InitDB()

	// Avatar uploads live on local disk, served under /uploads
	avatars, err := storage.NewAvatarStore(config.C.UploadDir, config.C.BaseURL)
	if err != nil {
		log.Fatal("Failed to prepare upload dir:", err)
	}

	// Without a Resend key, mail is logged instead of sent
	var mail mailer.Sender = &mailer.NoopSender{Log: logger}
	if config.C.ResendKey != "" {
		mail = mailer.NewResendSender(config.C.ResendKey, config.C.MailFrom)
	}

	handlers.Init(mail, avatars, repository.NewReservations(config.DB), logger)

	// Log every auth event; released on shutdown
	unsubscribe := session.Default.Subscribe(func(e session.Event) {
		logger.Info("auth event",
			zap.String("type", string(e.Type)),
			zap.Uint("user_id", e.UserID),
			zap.String("email", e.Email),
		)
	})
	defer unsubscribe()
	defer session.Default.Close()

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Camisetas Reservation API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "👕 Welcome to the Camisetas Reservation API",
			"docs":    "/api/reservation-lifecycle",
			"catalog": "/api/catalog",
			"health":  "/health",
		})
	})

	// Uploaded avatars
	r.Static("/uploads", config.C.UploadDir)

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	logger.Info("🚀 Server starting", zap.String("addr", "http://localhost:"+config.C.Port))
	if err := r.Run(":" + config.C.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func newLogger() (*zap.Logger, error) {
	if gin.Mode() == gin.ReleaseMode {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
