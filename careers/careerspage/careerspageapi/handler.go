package careerspageapi

import (
	"time"

	"github.com/Abraxas-365/careers/careers/careerspage/careerspagesrv"
	"github.com/Abraxas-365/careers/careers/job"
	"github.com/Abraxas-365/careers/pkg/auth"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/Abraxas-365/careers/pkg/validatex"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	visitorCookie = "cp_visitor"
	visitorMaxAge = 365 * 24 * time.Hour
)

// Handlers provides HTTP handlers for public careers pages
type Handlers struct {
	service *careerspagesrv.PageService
}

// NewHandlers creates a new careers page handlers instance
func NewHandlers(service *careerspagesrv.PageService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetPage renders a published careers page
// GET /api/careers/:slug?search=&location=&job_type=
func (h *Handlers) GetPage(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return err
	}

	page, err := h.service.GetPage(c.Context(), c.Params("slug"), criteria, visitorID(c))
	if err != nil {
		return err
	}

	return c.JSON(page)
}

// GetJob returns a job of a published careers page
// GET /api/careers/:slug/jobs/:jobId
func (h *Handlers) GetJob(c *fiber.Ctx) error {
	detail, err := h.service.GetJob(c.Context(), c.Params("slug"), kernel.JobID(c.Params("jobId")))
	if err != nil {
		return err
	}

	return c.JSON(detail)
}

// Preview renders the owner's page whether or not it is published
// GET /api/preview/:slug
func (h *Handlers) Preview(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	criteria, err := parseCriteria(c)
	if err != nil {
		return err
	}

	page, err := h.service.Preview(c.Context(), c.Params("slug"), criteria, userID)
	if err != nil {
		return err
	}

	return c.JSON(page)
}

// Demo renders a sample careers page
// GET /api/demo/:slug/careers
func (h *Handlers) Demo(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return err
	}

	page, err := h.service.Demo(c.Context(), c.Params("slug"), criteria)
	if err != nil {
		return err
	}

	return c.JSON(page)
}

// ============================================================================
// Helper Functions
// ============================================================================

func parseCriteria(c *fiber.Ctx) (job.Criteria, error) {
	var criteria job.Criteria
	if err := c.QueryParser(&criteria); err != nil {
		return criteria, validatex.ErrInvalidBody(err)
	}
	return criteria.Normalize(), nil
}

// visitorID identifies the visitor for unique counts: the signed-in user,
// else a long-lived cookie issued on first visit
func visitorID(c *fiber.Ctx) string {
	if userID, ok := auth.GetUserID(c); ok {
		return "user:" + userID.String()
	}

	if id := c.Cookies(visitorCookie); id != "" {
		return id
	}

	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     visitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(visitorMaxAge.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return id
}

// RegisterRoutes registers the public careers page routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	careers := app.Group("/api/careers", authMiddleware.Optional())
	careers.Get("/:slug", handlers.GetPage)
	careers.Get("/:slug/jobs/:jobId", handlers.GetJob)

	app.Get("/api/demo/:slug/careers", handlers.Demo)
	app.Get("/api/preview/:slug", authMiddleware.Authenticate(), handlers.Preview)
}
