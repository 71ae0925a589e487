package applicationapi

import (
	"github.com/Abraxas-365/careers/careers/application"
	"github.com/Abraxas-365/careers/careers/application/applicationsrv"
	"github.com/Abraxas-365/careers/pkg/auth"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/Abraxas-365/careers/pkg/validatex"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Apply submits the public application form with an optional resume
// POST /api/careers/:slug/jobs/:jobId/apply (multipart, resume in field "resume")
func (h *Handlers) Apply(c *fiber.Ctx) error {
	var req application.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return validatex.ErrInvalidBody(err)
	}

	var resume *application.Resume
	if fileHeader, err := c.FormFile("resume"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return validatex.ErrInvalidBody(err)
		}
		defer file.Close()

		resume = &application.Resume{
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Body:        file,
		}
	}

	created, err := h.service.Apply(c.Context(), c.Params("slug"), kernel.JobID(c.Params("jobId")), req, resume)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      created.ID,
		"status":  created.Status,
		"message": "Application submitted",
	})
}

// ListByJob lists a job's applications
// GET /api/jobs/:id/applications?status=new&page=1&page_size=20
func (h *Handlers) ListByJob(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	opts := application.ListOptions{
		Status: application.Status(c.Query("status")),
		Pagination: kernel.PaginationOptions{
			Page:     c.QueryInt("page", 1),
			PageSize: c.QueryInt("page_size", kernel.DefaultPageSize),
		},
	}

	apps, err := h.service.ListByJob(c.Context(), kernel.JobID(c.Params("id")), opts, userID)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// GetApplication retrieves an application
// GET /api/applications/:id
func (h *Handlers) GetApplication(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	app, err := h.service.GetApplication(c.Context(), kernel.ApplicationID(c.Params("id")), userID)
	if err != nil {
		return err
	}

	return c.JSON(app)
}

// UpdateStatus moves an application through review
// PUT /api/applications/:id/status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return validatex.ErrInvalidBody(err)
	}
	if err := validatex.Struct(req); err != nil {
		return err
	}

	app, err := h.service.UpdateStatus(c.Context(), kernel.ApplicationID(c.Params("id")), req.Status, userID)
	if err != nil {
		return err
	}

	return c.JSON(app)
}

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	app.Post("/api/careers/:slug/jobs/:jobId/apply", handlers.Apply)
	app.Get("/api/jobs/:id/applications", authMiddleware.Authenticate(), handlers.ListByJob)

	applications := app.Group("/api/applications", authMiddleware.Authenticate())
	applications.Get("/:id", handlers.GetApplication)
	applications.Put("/:id/status", handlers.UpdateStatus)
}
