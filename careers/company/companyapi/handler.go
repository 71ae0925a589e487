package companyapi

import (
	"github.com/Abraxas-365/careers/careers/company"
	"github.com/Abraxas-365/careers/careers/company/companysrv"
	"github.com/Abraxas-365/careers/pkg/auth"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/Abraxas-365/careers/pkg/validatex"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for company operations
type Handlers struct {
	service *companysrv.CompanyService
}

// NewHandlers creates a new company handlers instance
func NewHandlers(service *companysrv.CompanyService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateCompany creates a company owned by the caller
// POST /api/companies
func (h *Handlers) CreateCompany(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req company.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return validatex.ErrInvalidBody(err)
	}

	created, err := h.service.CreateCompany(c.Context(), req, userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// ListDashboard lists the caller's companies with job counts
// GET /api/companies
func (h *Handlers) ListDashboard(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	items, err := h.service.ListDashboard(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"companies": items})
}

// GetCompany retrieves a company for editing
// GET /api/companies/:id
func (h *Handlers) GetCompany(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	found, err := h.service.GetCompany(c.Context(), kernel.CompanyID(c.Params("id")), userID)
	if err != nil {
		return err
	}

	return c.JSON(found)
}

// GetCompanyBySlug retrieves a company for editing by its slug
// GET /api/companies/by-slug/:slug
func (h *Handlers) GetCompanyBySlug(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	found, err := h.service.GetCompanyBySlug(c.Context(), c.Params("slug"), userID)
	if err != nil {
		return err
	}

	return c.JSON(found)
}

// UpdateBranding saves the branding tab
// PUT /api/companies/:id/branding
func (h *Handlers) UpdateBranding(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req company.Branding
	if err := c.BodyParser(&req); err != nil {
		return validatex.ErrInvalidBody(err)
	}

	updated, err := h.service.UpdateBranding(c.Context(), kernel.CompanyID(c.Params("id")), req, userID)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// UpdateContent saves the content tab
// PUT /api/companies/:id/content
func (h *Handlers) UpdateContent(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req company.UpdateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return validatex.ErrInvalidBody(err)
	}

	updated, err := h.service.UpdateContent(c.Context(), kernel.CompanyID(c.Params("id")), req.ContentSections, userID)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// Publish makes the careers page public
// POST /api/companies/:id/publish
func (h *Handlers) Publish(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	updated, err := h.service.Publish(c.Context(), kernel.CompanyID(c.Params("id")), userID)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// Unpublish hides the careers page
// POST /api/companies/:id/unpublish
func (h *Handlers) Unpublish(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	updated, err := h.service.Unpublish(c.Context(), kernel.CompanyID(c.Params("id")), userID)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// UploadAsset stores a logo or banner image
// POST /api/companies/:id/assets/:kind (multipart field "file")
func (h *Handlers) UploadAsset(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return validatex.ErrInvalidBody(err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return validatex.ErrInvalidBody(err)
	}
	defer file.Close()

	asset, err := h.service.UploadAsset(
		c.Context(),
		kernel.CompanyID(c.Params("id")),
		company.AssetKind(c.Params("kind")),
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
		userID,
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(asset)
}

// DeleteCompany deletes a company and its jobs
// DELETE /api/companies/:id
func (h *Handlers) DeleteCompany(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	if err := h.service.DeleteCompany(c.Context(), kernel.CompanyID(c.Params("id")), userID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes registers all company routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	companies := app.Group("/api/companies", authMiddleware.Authenticate())
	companies.Post("/", handlers.CreateCompany)
	companies.Get("/", handlers.ListDashboard)
	companies.Get("/by-slug/:slug", handlers.GetCompanyBySlug)
	companies.Get("/:id", handlers.GetCompany)
	companies.Put("/:id/branding", handlers.UpdateBranding)
	companies.Put("/:id/content", handlers.UpdateContent)
	companies.Post("/:id/publish", handlers.Publish)
	companies.Post("/:id/unpublish", handlers.Unpublish)
	companies.Post("/:id/assets/:kind", handlers.UploadAsset)
	companies.Delete("/:id", handlers.DeleteCompany)
}
