package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mataraung/trip-api/internal/domain"
	"github.com/mataraung/trip-api/internal/service"
)

// SettingsHandler handles the singleton company settings document
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetPublicSettings handles GET /v1/settings
// Returns only the contact fields the marketing site needs
func (h *SettingsHandler) GetPublicSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.Map{
		"company_name":        settings.CompanyName,
		"company_email":       settings.CompanyEmail,
		"company_phone":       settings.CompanyPhone,
		"company_whatsapp":    settings.CompanyWhatsapp,
		"company_address":     settings.CompanyAddress,
		"company_description": settings.CompanyDescription,
		"maintenance_mode":    settings.MaintenanceMode,
	})
}

// GetSettings handles GET /v1/admin/settings
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, settings)
}

// UpdateSettings handles PUT /v1/admin/settings
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var settings domain.Settings
	if err := c.BodyParser(&settings); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.settingsService.Update(c.UserContext(), &settings); err != nil {
		return respondError(c, err)
	}
	return respondData(c, &settings)
}
