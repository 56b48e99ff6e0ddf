package routes

import (
	"camisetas-api/handlers"
	"camisetas-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.GET("/auth/verify", handlers.VerifyEmail)
		public.POST("/auth/login", handlers.Login)
		public.POST("/auth/forgot-password", handlers.ForgotPassword)
		public.POST("/auth/reset-password", handlers.ResetPassword)

		// Order form options (no auth needed)
		public.GET("/catalog", handlers.GetCatalog)

		// Lifecycle info (great for docs/Postman)
		public.GET("/reservation-lifecycle", handlers.GetLifecycleInfo)
	}

	// ── Session: valid with or without a token ─────────────────────
	r.GET("/api/session", middleware.OptionalAuth(), handlers.GetSession)

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.POST("/auth/logout", handlers.Logout)

		auth.GET("/profile", handlers.GetProfile)
		auth.PUT("/profile", handlers.UpdateProfile)
		auth.POST("/profile/avatar", handlers.UploadAvatar)

		auth.POST("/reservations", handlers.CreateReservation)
		auth.GET("/reservations", handlers.GetMyReservations)
		auth.GET("/reservations/:id", handlers.GetReservationDetail)
		auth.DELETE("/reservations/:id", handlers.DeleteReservation)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/reservations", handlers.AdminGetAllReservations)
		admin.PUT("/reservations/:id/status", handlers.AdminUpdateReservationStatus)
		admin.PUT("/reservations/:id/force-status", handlers.AdminForceReservationStatus)
		admin.GET("/users", handlers.AdminGetAllUsers)
	}
}
