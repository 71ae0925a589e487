package main

import (
	"context"
	"errors"
	"mime"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/Abraxas-365/careers/careers/analytics/analyticsapi"
	"github.com/Abraxas-365/careers/careers/application/applicationapi"
	"github.com/Abraxas-365/careers/careers/careerspage/careerspageapi"
	"github.com/Abraxas-365/careers/careers/company/companyapi"
	"github.com/Abraxas-365/careers/careers/job/jobapi"
	"github.com/Abraxas-365/careers/internal/config"
	"github.com/Abraxas-365/careers/pkg/errx"
	"github.com/Abraxas-365/careers/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Initialize Logger
	logx.SetLevel(logx.ParseLevel(cfg.LogLevel))
	logx.Info("Starting Careers API Server...")

	// 3. Initialize Dependency Container
	container := NewContainer(cfg)
	defer container.Close()

	// 4. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "Careers API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
		BodyLimit:             12 << 20,
	})

	// 5. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, HEAD",
		AllowCredentials: cfg.CORSAllowOrigin != "*",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 6. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// Local uploads when no bucket is configured
	if !cfg.UsesS3() {
		app.Get("/uploads/*", func(c *fiber.Ctx) error {
			p := c.Params("*")
			data, err := container.FileSystem.ReadFile(c.Context(), p)
			if err != nil {
				return fiber.ErrNotFound
			}
			if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
				c.Set(fiber.HeaderContentType, ct)
			}
			return c.Send(data)
		})
	}

	// 7. Register Routes

	// Dashboard: /api/companies, /api/jobs
	companyapi.RegisterRoutes(app, container.CompanyHandlers, container.AuthMiddleware)
	jobapi.RegisterRoutes(app, container.JobHandlers, container.AuthMiddleware)
	analyticsapi.RegisterRoutes(app, container.AnalyticsHandlers, container.AuthMiddleware)

	// Public careers pages: /api/careers/:slug, /api/demo, /api/preview
	careerspageapi.RegisterRoutes(app, container.PageHandlers, container.AuthMiddleware)

	// Applications: /api/careers/:slug/jobs/:jobId/apply, /api/applications
	applicationapi.RegisterRoutes(app, container.ApplicationHandlers, container.AuthMiddleware)

	// 8. Background Jobs
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	if err := container.AnalyticsFlusher.Start(ctx); err != nil {
		logx.Fatalf("Failed to start analytics flusher: %v", err)
	}

	// 9. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Wait for signal
	logx.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	container.AnalyticsFlusher.Stop(flushCtx)

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// Fiber errors (e.g., 404 handler not found, body too large)
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"error": fe.Message,
			"code":  fe.Code,
		})
	}

	if e, ok := errx.As(err); ok {
		if e.HTTPStatus >= fiber.StatusInternalServerError {
			logx.Errorf("Request failed: %v", err)
		}
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
