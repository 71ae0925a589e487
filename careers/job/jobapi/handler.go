package jobapi

import (
	"github.com/Abraxas-365/careers/careers/job"
	"github.com/Abraxas-365/careers/careers/job/jobsrv"
	"github.com/Abraxas-365/careers/pkg/auth"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/Abraxas-365/careers/pkg/validatex"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateJob creates a job under a company
// POST /api/companies/:companyId/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return validatex.ErrInvalidBody(err)
	}

	created, err := h.service.CreateJob(c.Context(), kernel.CompanyID(c.Params("companyId")), req, userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created.ToResponse())
}

// ListCompanyJobs lists a company's jobs for the dashboard
// GET /api/companies/:companyId/jobs?active=true&page=1&page_size=20
func (h *Handlers) ListCompanyJobs(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	opts := job.ListOptions{
		ActiveOnly: c.QueryBool("active", false),
		Pagination: parsePaginationOptions(c),
	}

	jobs, err := h.service.ListCompanyJobs(c.Context(), kernel.CompanyID(c.Params("companyId")), userID, opts)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// GetJob retrieves a job by ID
// GET /api/jobs/:id
func (h *Handlers) GetJob(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	found, err := h.service.GetJob(c.Context(), kernel.JobID(c.Params("id")), userID)
	if err != nil {
		return err
	}

	return c.JSON(found.ToResponse())
}

// UpdateJob saves the full job form
// PUT /api/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var draft job.Draft
	if err := c.BodyParser(&draft); err != nil {
		return validatex.ErrInvalidBody(err)
	}

	updated, err := h.service.UpdateJob(c.Context(), kernel.JobID(c.Params("id")), draft, userID)
	if err != nil {
		return err
	}

	return c.JSON(updated.ToResponse())
}

// PatchJob applies a partial set of job attributes
// PATCH /api/jobs/:id
func (h *Handlers) PatchJob(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var values map[string]any
	if err := c.BodyParser(&values); err != nil {
		return validatex.ErrInvalidBody(err)
	}

	updated, err := h.service.PatchJob(c.Context(), kernel.JobID(c.Params("id")), values, userID)
	if err != nil {
		return err
	}

	return c.JSON(updated.ToResponse())
}

// SetJobActive shows or hides a job on the careers page
// POST /api/jobs/:id/active
func (h *Handlers) SetJobActive(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req job.SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return validatex.ErrInvalidBody(err)
	}

	updated, err := h.service.SetJobActive(c.Context(), kernel.JobID(c.Params("id")), req.IsActive, userID)
	if err != nil {
		return err
	}

	return c.JSON(updated.ToResponse())
}

// DeleteJob deletes a job
// DELETE /api/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	if err := h.service.DeleteJob(c.Context(), kernel.JobID(c.Params("id")), userID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ============================================================================
// Helper Functions
// ============================================================================

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", kernel.DefaultPageSize),
	}.Normalize()
}

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	companyJobs := app.Group("/api/companies/:companyId/jobs", authMiddleware.Authenticate())
	companyJobs.Get("/", handlers.ListCompanyJobs)
	companyJobs.Post("/", handlers.CreateJob)

	jobs := app.Group("/api/jobs", authMiddleware.Authenticate())
	jobs.Get("/:id", handlers.GetJob)
	jobs.Put("/:id", handlers.UpdateJob)
	jobs.Patch("/:id", handlers.PatchJob)
	jobs.Post("/:id/active", handlers.SetJobActive)
	jobs.Delete("/:id", handlers.DeleteJob)
}
