package handlers

import (
	"errors"

	"agendly-backend/internal/dto"
	"agendly-backend/internal/services"
	"agendly-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
)

type ServiceHandler struct {
	serviceService *services.ServiceService
}

func NewServiceHandler(serviceService *services.ServiceService) *ServiceHandler {
	return &ServiceHandler{serviceService: serviceService}
}

func (h *ServiceHandler) List(c *fiber.Ctx) error {
	filter, err := scopedTenantFilter(c)
	if err != nil {
		return badRequest(c, "Invalid tenantId")
	}

	svcs, err := h.serviceService.List(filter)
	if err != nil {
		return serverError(c)
	}
	return c.JSON(svcs)
}

func (h *ServiceHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	svc, err := h.serviceService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			return notFound(c, "Service not found")
		}
		return serverError(c)
	}
	if !tenantAllowed(c, svc.TenantID) {
		return forbidden(c, "Service belongs to another tenant")
	}
	return c.JSON(svc)
}

func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if scoped, ok := tenant.GetTenantID(c); ok {
		req.TenantID = scoped.String()
	}

	svc, err := h.serviceService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return badRequest(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(svc)
}

func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	existing, err := h.serviceService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			return notFound(c, "Service not found")
		}
		return serverError(c)
	}
	if !tenantAllowed(c, existing.TenantID) {
		return forbidden(c, "Service belongs to another tenant")
	}

	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	svc, err := h.serviceService.Update(id, &req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(svc)
}

func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	existing, err := h.serviceService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			return notFound(c, "Service not found")
		}
		return serverError(c)
	}
	if !tenantAllowed(c, existing.TenantID) {
		return forbidden(c, "Service belongs to another tenant")
	}

	if err := h.serviceService.Delete(id); err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			return notFound(c, "Service not found")
		}
		return serverError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "Service deleted"})
}
