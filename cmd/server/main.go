package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hiboard/hiboard-api/internal/config"
	"github.com/hiboard/hiboard-api/internal/database"
	"github.com/hiboard/hiboard-api/internal/handlers"
	"github.com/hiboard/hiboard-api/internal/identity"
	"github.com/hiboard/hiboard-api/internal/middleware"
	"github.com/hiboard/hiboard-api/internal/repository"
	"github.com/hiboard/hiboard-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.IdentityAPIKey == "" {
		log.Fatal("IDENTITY_API_KEY must be set")
	}

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

	// Initialize identity provider client
	identityClient := identity.NewClient(cfg.IdentityBaseURL, cfg.IdentityAPIKey)

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db, identityClient)
	companyRepo := repository.NewCompanyRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	userActivityRepo := repository.NewUserActivityRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	// Initialize services
	userActivityService := services.NewUserActivityService(userActivityRepo, templateRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userRepo)
	companyHandler := handlers.NewCompanyHandler(companyRepo)
	activityHandler := handlers.NewActivityHandler(activityRepo)
	userActivityHandler := handlers.NewUserActivityHandler(userActivityService)
	templateHandler := handlers.NewTemplateHandler(templateRepo)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil))))
	r.Use(cors.Default())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "HiBoard API is running",
		})
	})

	// Template assignment keeps its fixed path outside the user scope
	r.POST("/assign/:templateId", userActivityHandler.AssignTemplate)

	// API routes
	api := r.Group("/api")
	{
		// Per-user activity routes
		activities := api.Group("/:userId/activities")
		{
			activities.GET("", userActivityHandler.ListUserActivities)
			activities.POST("", userActivityHandler.CreateUserActivity)
			activities.GET("/:activityId", userActivityHandler.GetUserActivity)
			activities.PATCH("/:activityId", userActivityHandler.UpdateUserActivity)
			activities.DELETE("/:activityId", userActivityHandler.DeleteUserActivity)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.GetUserByEmail)
			users.POST("", userHandler.CreateUser)
			users.GET("/:userId", userHandler.GetUser)
			users.GET("/:userId/employees", userHandler.ListEmployees)
			users.PATCH("/:userId", middleware.RequireBearerToken(), userHandler.UpdateUser)
			users.DELETE("/:userId", userHandler.DeleteUser)
		}

		companies := api.Group("/companies")
		{
			companies.GET("", companyHandler.ListCompanies)
			companies.POST("", companyHandler.CreateCompany)
			companies.GET("/:companyId", companyHandler.GetCompany)
			companies.PATCH("/:companyId", companyHandler.UpdateCompany)
			companies.DELETE("/:companyId", companyHandler.DeleteCompany)
		}

		activityCatalog := api.Group("/activities")
		{
			activityCatalog.GET("", activityHandler.ListActivities)
			activityCatalog.POST("", activityHandler.CreateActivity)
			activityCatalog.GET("/:activityId", activityHandler.GetActivity)
			activityCatalog.PATCH("/:activityId", activityHandler.UpdateActivity)
			activityCatalog.DELETE("/:activityId", activityHandler.DeleteActivity)
		}

		templates := api.Group("/templates")
		{
			templates.GET("", templateHandler.ListTemplates)
			templates.POST("", templateHandler.CreateTemplate)
			templates.GET("/:templateId", templateHandler.GetTemplate)
			templates.PATCH("/:templateId", templateHandler.UpdateTemplate)
			templates.DELETE("/:templateId", templateHandler.DeleteTemplate)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
