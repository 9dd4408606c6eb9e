package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "translator-backend/docs"
	"translator-backend/internal/config"
	"translator-backend/internal/database"
	"translator-backend/internal/handlers"
	"translator-backend/internal/repository"
	"translator-backend/internal/routes"
	"translator-backend/internal/services"
	"translator-backend/internal/utils"
	"translator-backend/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Translator API
// @version 1.0
// @description Translate English text into multiple languages with optional text-to-speech, and browse, replay, download or delete the translation history.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

func main() {
	// Load environment variables
	loadEnvFile()

	// Setup logger
	log := setupLogger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.IsDevelopment() {
		log.SetLevel(logrus.DebugLevel)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	storage, err := services.NewAudioStorage(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize audio storage: %v", err)
	}

	cache, err := services.NewTranslationCache(cfg.Translation, db)
	if err != nil {
		log.Fatalf("Failed to initialize translation cache: %v", err)
	}

	translationRepo := repository.NewTranslationRepository(db)
	langRepo := repository.NewLanguageRepository(db)

	translationService := services.NewTranslationService(cfg.Translation, cache, log)
	speechService := services.NewSpeechService(cfg, storage, log)
	translatorService := services.NewTranslatorService(
		translationRepo,
		langRepo,
		translationService,
		speechService,
		cfg.Translation.SourceLanguage,
		cfg.Translation.Concurrency,
		log,
	)
	historyService := services.NewHistoryService(translationRepo, storage, log)

	if cfg.Translation.CacheFlushOnStart {
		if err := translationService.ClearCache(context.Background()); err != nil {
			log.Warnf("Failed to flush translation cache: %v", err)
		}
	}

	pageHandler := handlers.NewPageHandler(langRepo, historyService, speechService, cfg.Translation.SourceLanguage, log)
	translationHandler := handlers.NewTranslationHandler(translatorService, translationService, historyService, log, cfg.Debug)
	historyHandler := handlers.NewHistoryHandler(historyService, langRepo, log, cfg.Debug)

	engine, err := views.NewEngine()
	if err != nil {
		log.Fatalf("Failed to load views: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Translator API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		Views:                 engine,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db, speechService))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Generated audio served from disk
	if local, ok := storage.(*services.LocalStorage); ok {
		app.Static(cfg.Storage.PublicPath, local.Root())
	}

	// Setup routes
	routes.Setup(app, pageHandler, translationHandler, historyHandler)

	// Background cleanup of old audio and expired cache entries
	maintenanceCtx, stopMaintenance := context.WithCancel(context.Background())
	defer stopMaintenance()
	maintenance := services.NewMaintenance(speechService, cache, cfg.Audio.Retention, log)
	go maintenance.Run(maintenanceCtx, cfg.Audio.CleanupInterval)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.WithFields(logrus.Fields{
		"tts_provider":   speechService.Provider(),
		"server_speech":  cfg.RequiresServerSpeech(),
		"storage_driver": cfg.Storage.Driver,
		"db_driver":      cfg.Database.Driver,
	}).Infof("Translator API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	return log
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Requested-With",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

func healthCheckHandler(db *database.Database, speech services.SpeechService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":       "ok",
			"service":      "translator-backend",
			"version":      "1.0.0",
			"database":     dbStatus,
			"tts_provider": speech.Provider(),
			"timestamp":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return utils.ErrorResponse(c, code, message)
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
