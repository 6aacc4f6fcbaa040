package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/onboardai/task-engine/internal/config"
	"github.com/onboardai/task-engine/internal/database"
	"github.com/onboardai/task-engine/internal/handlers"
	"github.com/onboardai/task-engine/internal/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Producers live on other hosts (Slack bots, meeting pipelines); keep
	// CORS permissive like the original deployment.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:    []string{"Content-Type", middleware.RequestIDHeader},
	}))
	r.Use(middleware.RequestID())

	// Initialize handlers
	userHandler := handlers.NewUserHandler()
	taskHandler := handlers.NewTaskHandler()
	standupHandler := handlers.NewStandupHandler()
	meetingHandler := handlers.NewMeetingHandler()
	onboardingHandler := handlers.NewOnboardingHandler()
	conversationHandler := handlers.NewConversationHandler()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task engine is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.PUT("", userHandler.UpsertUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:user_id", userHandler.GetUser)
			users.DELETE("/:user_id", userHandler.DeleteUser)
			users.GET("/:user_id/next-task", taskHandler.NextTask)
			users.GET("/:user_id/task-summary", taskHandler.TaskSummary)
			users.GET("/:user_id/onboarding", onboardingHandler.ListUserOnboarding)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/active", taskHandler.ActiveTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
		}

		standups := api.Group("/standups")
		{
			standups.PUT("", standupHandler.UpsertStandup)
			standups.POST("", standupHandler.CreateStandup)
			standups.GET("/recent", standupHandler.RecentStandups)
		}

		meetings := api.Group("/meetings")
		{
			meetings.POST("", meetingHandler.CreateMeeting)
			meetings.GET("", meetingHandler.ListMeetings)
			meetings.GET("/:meeting_id", meetingHandler.GetMeeting)
			meetings.PATCH("/:meeting_id", meetingHandler.UpdateMeeting)
		}

		onboarding := api.Group("/onboarding")
		{
			onboarding.POST("", onboardingHandler.CreateOnboarding)
			onboarding.PATCH("/:id", onboardingHandler.UpdateOnboarding)
		}

		conversations := api.Group("/conversations")
		{
			conversations.POST("", conversationHandler.CreateConversation)
			conversations.GET("/:conversation_id", conversationHandler.GetConversation)
			conversations.PATCH("/:conversation_id", conversationHandler.UpdateConversation)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
