package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"alfredoptarigan/career-copilot/internal/config"
	"alfredoptarigan/career-copilot/internal/handlers"
	"alfredoptarigan/career-copilot/internal/logger"
	"alfredoptarigan/career-copilot/internal/models"
	"alfredoptarigan/career-copilot/internal/repositories"
	"alfredoptarigan/career-copilot/internal/services"
)

type appDeps struct {
	resumeHandler     *handlers.ResumeHandler
	jobHandler        *handlers.JobHandler
	fitHandler        *handlers.FitHandler
	profileHandler    *handlers.ProfileHandler
	generationHandler *handlers.GenerationHandler // nil when the database is disabled
	geminiConfigured  bool
	maxFileSize       int64
}

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()
	zap.ReplaceGlobals(log)
	log.Info("✅ Config loaded successfully", zap.String("env", cfg.Server.Env))

	ctx := context.Background()

	// Optional audit database
	var genRepo repositories.GenerationRepository
	if cfg.Database.Enabled {
		db, err := config.InitDatabase(cfg, log)
		if err != nil {
			log.Fatal("❌ Failed to initialize database", zap.Error(err))
		}
		genRepo = repositories.NewGenerationRepository(db)
		log.Info("✅ Generation repository initialized")
	}

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini, log)
	switch {
	case errors.Is(err, services.ErrMissingCredential):
		log.Warn("⚠️ GEMINI_API_KEY is not set, every operation will serve its fallback")
	case err != nil:
		log.Fatal("❌ Failed to initialize Gemini AI", zap.Error(err))
	default:
		log.Info("✅ Gemini AI initialized successfully", zap.String("model", cfg.Gemini.Model))
	}

	// Initialize services
	resumeService := services.NewResumeService(geminiService, genRepo, log)
	jobService := services.NewJobService(geminiService, genRepo, log)
	fitService := services.NewFitService(geminiService, genRepo, log)
	pdfParser := services.NewPDFParserService()
	log.Info("✅ Services initialized successfully")

	deps := appDeps{
		resumeHandler:    handlers.NewResumeHandler(resumeService, log),
		jobHandler:       handlers.NewJobHandler(jobService),
		fitHandler:       handlers.NewFitHandler(fitService, log),
		profileHandler:   handlers.NewProfileHandler(pdfParser, cfg.Upload.MaxFileSize),
		geminiConfigured: geminiService != nil,
		maxFileSize:      cfg.Upload.MaxFileSize,
	}
	if genRepo != nil {
		deps.generationHandler = handlers.NewGenerationHandler(genRepo)
	}

	app := newApp(deps, log)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(cfg.Gemini.Timeout + 5*time.Second); err != nil {
			log.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Fatal("❌ Failed to start server", zap.Error(err))
	}
}

func newApp(deps appDeps, log *zap.Logger) *fiber.App {
	bodyLimit := int(deps.maxFileSize) + 1<<20

	app := fiber.New(fiber.Config{
		AppName:      "Career Copilot API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    bodyLimit,
		ErrorHandler: customErrorHandler(log),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"gemini": deps.geminiConfigured,
			"time":   time.Now(),
		})
	})

	endpoints := []string{
		"POST /api/v1/resume/generate",
		"POST /api/v1/jobs/search",
		"POST /api/v1/jobs/recommend",
		"POST /api/v1/fit/analyze",
		"POST /api/v1/profile/resume-text",
	}

	api.Post("/resume/generate", deps.resumeHandler.HandleGenerate)
	api.Post("/jobs/search", deps.jobHandler.HandleSearch)
	api.Post("/jobs/recommend", deps.jobHandler.HandleRecommend)
	api.Post("/fit/analyze", deps.fitHandler.HandleAnalyze)
	api.Post("/profile/resume-text", deps.profileHandler.HandleResumeText)

	if deps.generationHandler != nil {
		api.Get("/generations", deps.generationHandler.HandleList)
		api.Get("/generations/:id", deps.generationHandler.HandleGet)
		endpoints = append(endpoints, "GET /api/v1/generations", "GET /api/v1/generations/:id")
	}

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Career Copilot API",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	})

	return app
}

func customErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		}

		return c.Status(code).JSON(models.ErrorResponse{
			Error:   true,
			Message: err.Error(),
			Code:    statusErrorCode(code),
		})
	}
}

// statusErrorCode turns an HTTP status into the same upper-snake code style
// handlers use, e.g. 404 becomes NOT_FOUND. Server errors are INTERNAL_ERROR.
func statusErrorCode(status int) string {
	if status >= fiber.StatusInternalServerError {
		return services.CodeInternal
	}
	message := utils.StatusMessage(status)
	if message == "" {
		return services.CodeInternal
	}
	return strings.ToUpper(strings.ReplaceAll(message, " ", "_"))
}
