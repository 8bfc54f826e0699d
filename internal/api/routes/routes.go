package routes

import (
	"net/http"

	"control-plane-backend/internal/api/handlers"
	"control-plane-backend/internal/api/middleware"
	"control-plane-backend/internal/auth"
	"control-plane-backend/internal/config"
	"control-plane-backend/internal/repository"
	"control-plane-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Timeout(cfg.RequestTimeout))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	txManager := repository.NewTransactionManager(db)
	organisationRepo := repository.NewOrganisationRepository(db)
	memberRepo := repository.NewOrganisationMemberRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	// Initialize services
	organisationService := service.NewOrganisationService(txManager, organisationRepo, memberRepo, validator)
	projectService := service.NewProjectService(txManager, projectRepo, organisationRepo, memberRepo, validator)
	hookService := service.NewHookService(organisationService, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organisationHandler := handlers.NewOrganisationHandler(organisationService)
	memberHandler := handlers.NewMemberHandler(organisationService)
	projectHandler := handlers.NewProjectHandler(projectService)
	hookHandler := handlers.NewHookHandler(hookService)

	principalMiddleware := auth.NewPrincipalMiddleware(cfg)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Identity provider webhooks, authenticated by shared secret
	hooks := router.Group("/hooks", auth.RequireAPIKey(cfg.WebhookAPIKey))
	{
		hooks.POST("/after-registration", hookHandler.AfterRegistration)
	}

	// API v1 routes
	v1 := router.Group("/api/v1", principalMiddleware.RequirePrincipal())
	{
		// Organisation routes
		organisations := v1.Group("/organisations")
		{
			organisations.GET("", organisationHandler.ListOrganisations)
			organisations.POST("", organisationHandler.CreateOrganisation)
			organisations.GET("/:id", organisationHandler.GetOrganisation)
			organisations.PATCH("/:id", organisationHandler.UpdateOrganisation)

			organisations.GET("/:id/members", memberHandler.ListMembers)
			organisations.POST("/:id/members", memberHandler.InviteMember)
			organisations.PATCH("/:id/members/:memberId", memberHandler.ChangeRole)
			organisations.DELETE("/:id/members/:memberId", memberHandler.RemoveMember)

			organisations.GET("/:id/projects", projectHandler.ListOrganisationProjects)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.POST("/:id/archive", projectHandler.ArchiveProject)
			projects.POST("/:id/unarchive", projectHandler.UnarchiveProject)
		}
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "not_found",
			"message":    "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
