package main

import (
	"log"
	"os"

	"control-plane-backend/internal/api/routes"
	"control-plane-backend/internal/config"
	"control-plane-backend/internal/database"
	"control-plane-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	_ "control-plane-backend/docs" // This is needed for swag
)

//	@title			Control Plane Backend API
//	@version		1.0
//	@description	Multi-tenant backend for organisations, organisation memberships and projects.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	PrincipalHeader
//	@in							header
//	@name						X-User
//	@description				Principal UUID injected by the identity proxy.

//	@securityDefinitions.apikey	WebhookAPIKey
//	@in							header
//	@name						X-API-KEY
//	@description				Shared secret configured for the identity provider webhook.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	dbLogLevel := gormlogger.Error
	if cfg.LogLevel == "debug" {
		dbLogLevel = gormlogger.Info
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel:     dbLogLevel,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	logrus.WithFields(logrus.Fields{
		"address":          cfg.Address(),
		"principal_source": cfg.PrincipalSource,
	}).Info("Starting server")
	if err := router.Run(cfg.Address()); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
