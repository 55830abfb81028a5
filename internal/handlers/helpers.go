package handlers

import (
	"agendly-backend/internal/dto"
	"agendly-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func conflict(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func forbidden(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

// tenantAllowed reports whether the request may touch rows of the given
// tenant. Admins see everything; a manager only their own tenant.
func tenantAllowed(c *fiber.Ctx, tenantID uuid.UUID) bool {
	scoped, ok := tenant.GetTenantID(c)
	if !ok {
		return true
	}
	return scoped == tenantID
}

// scopedTenantFilter resolves the effective tenant filter for list
// endpoints: managers are pinned to their own tenant regardless of the
// query parameter; admins and users may filter freely.
func scopedTenantFilter(c *fiber.Ctx) (*uuid.UUID, error) {
	if scoped, ok := tenant.GetTenantID(c); ok {
		return &scoped, nil
	}
	raw := c.Query("tenantId")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
