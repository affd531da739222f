package api

import (
	"net/http"

	"planner-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	requireAuth := delivery.AuthMiddleware(h.authUsecase)
	requireAdmin := delivery.AdminMiddleware()

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.GET("/csrf-token", h.authHandler.CSRFToken)

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.authHandler.Register)
			auth.POST("/login", h.authHandler.Login)
			auth.POST("/refresh", h.authHandler.RefreshToken)
			auth.POST("/logout", requireAuth, h.authHandler.Logout)
			auth.GET("/user", requireAuth, h.authHandler.Me)
		}

		// Chat routes (protected)
		chat := api.Group("/chat")
		chat.Use(requireAuth)
		{
			chat.POST("/add_event", h.chatHandler.AddEvent)
		}

		// Event routes (protected)
		events := api.Group("/events")
		events.Use(requireAuth)
		{
			events.GET("", h.eventHandler.GetEvents)
			events.POST("", h.eventHandler.CreateEvent)
			events.GET("/export", h.eventHandler.ExportEvents)
			events.POST("/import", h.eventHandler.ImportEvents)
			events.GET("/:id", h.eventHandler.GetEventByID)
			events.PUT("/:id", h.eventHandler.UpdateEvent)
			events.PATCH("/:id", h.eventHandler.UpdateEvent)
			events.DELETE("/:id", h.eventHandler.DeleteEvent)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.GET("", h.taskHandler.GetTasks)
			tasks.POST("", h.taskHandler.CreateTask)
			tasks.GET("/:id", h.taskHandler.GetTaskByID)
			tasks.PUT("/:id", h.taskHandler.UpdateTask)
			tasks.PATCH("/:id", h.taskHandler.UpdateTask)
			tasks.DELETE("/:id", h.taskHandler.DeleteTask)
		}

		// Profile routes (protected)
		profiles := api.Group("/profiles")
		profiles.Use(requireAuth)
		{
			profiles.GET("", h.profileHandler.ListProfiles)
			profiles.POST("", h.profileHandler.CreateProfile)
			profiles.GET("/:id", h.profileHandler.GetProfile)
			profiles.PUT("/:id", h.profileHandler.UpdateProfile)
			profiles.PATCH("/:id", h.profileHandler.UpdateProfile)
			profiles.DELETE("/:id", h.profileHandler.DeleteProfile)
		}

		// User management (staff only)
		users := api.Group("/users")
		users.Use(requireAuth, requireAdmin)
		{
			users.GET("", h.userHandler.ListUsers)
			users.POST("", h.userHandler.CreateUser)
			users.GET("/:id", h.userHandler.GetUser)
			users.PUT("/:id", h.userHandler.UpdateUser)
			users.PATCH("/:id", h.userHandler.UpdateUser)
			users.DELETE("/:id", h.userHandler.DeleteUser)
		}

		// Settings routes (staff only, read-only)
		settings := api.Group("/settings")
		settings.Use(requireAuth, requireAdmin)
		{
			settings.GET("/ai", h.settingsHandler.GetAISettings)
		}
	}
}
