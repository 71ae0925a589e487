package analyticsapi

import (
	"github.com/Abraxas-365/careers/careers/analytics/analyticssrv"
	"github.com/Abraxas-365/careers/pkg/auth"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const defaultSummaryDays = 30

// Handlers provides HTTP handlers for analytics
type Handlers struct {
	service *analyticssrv.AnalyticsService
}

// NewHandlers creates a new analytics handlers instance
func NewHandlers(service *analyticssrv.AnalyticsService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetSummary returns the careers page analytics of a company
// GET /api/companies/:id/analytics?days=30
func (h *Handlers) GetSummary(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	summary, err := h.service.GetSummary(
		c.Context(),
		kernel.CompanyID(c.Params("id")),
		c.QueryInt("days", defaultSummaryDays),
		userID,
	)
	if err != nil {
		return err
	}

	return c.JSON(summary)
}

// RegisterRoutes registers analytics routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	app.Get("/api/companies/:id/analytics", authMiddleware.Authenticate(), handlers.GetSummary)
}
