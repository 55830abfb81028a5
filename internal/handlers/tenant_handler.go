package handlers

import (
	"errors"

	"agendly-backend/internal/dto"
	"agendly-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type TenantHandler struct {
	tenantService *services.TenantService
}

func NewTenantHandler(tenantService *services.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

func (h *TenantHandler) List(c *fiber.Ctx) error {
	tenants, err := h.tenantService.List()
	if err != nil {
		return serverError(c)
	}
	return c.JSON(tenants)
}

func (h *TenantHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	t, err := h.tenantService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return notFound(c, "Tenant not found")
		}
		return serverError(c)
	}
	return c.JSON(t)
}

func (h *TenantHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	t, err := h.tenantService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrOwnerEmailTaken) {
			return conflict(c, err.Error())
		}
		if errors.Is(err, services.ErrPlanNotFound) {
			return badRequest(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

func (h *TenantHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	t, err := h.tenantService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return notFound(c, "Tenant not found")
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(t)
}

func (h *TenantHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.tenantService.Delete(id); err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return notFound(c, "Tenant not found")
		}
		return serverError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "Tenant deleted"})
}
