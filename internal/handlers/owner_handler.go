package handlers

import (
	"errors"

	"agendly-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type OwnerHandler struct {
	tenantService *services.TenantService
}

func NewOwnerHandler(tenantService *services.TenantService) *OwnerHandler {
	return &OwnerHandler{tenantService: tenantService}
}

// ByEmail resolves "logged-in manager -> tenant". The owner record comes
// back with its tenant and the tenant's plan preloaded.
func (h *OwnerHandler) ByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return badRequest(c, "Email is required")
	}

	owner, err := h.tenantService.OwnerByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrOwnerNotFound) {
			return notFound(c, "Owner not found")
		}
		return serverError(c)
	}
	return c.JSON(owner)
}
