package handlers

import (
	"errors"

	"agendly-backend/internal/dto"
	"agendly-backend/internal/services"
	"agendly-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
)

type StaffHandler struct {
	staffService *services.StaffService
}

func NewStaffHandler(staffService *services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

func (h *StaffHandler) List(c *fiber.Ctx) error {
	filter, err := scopedTenantFilter(c)
	if err != nil {
		return badRequest(c, "Invalid tenantId")
	}

	staff, err := h.staffService.List(filter)
	if err != nil {
		return serverError(c)
	}
	return c.JSON(staff)
}

func (h *StaffHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	st, err := h.staffService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			return notFound(c, "Staff member not found")
		}
		return serverError(c)
	}
	if !tenantAllowed(c, st.TenantID) {
		return forbidden(c, "Staff member belongs to another tenant")
	}
	return c.JSON(st)
}

func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	// Managers always create inside their own tenant.
	if scoped, ok := tenant.GetTenantID(c); ok {
		req.TenantID = scoped.String()
	}

	st, err := h.staffService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrStaffEmailTaken) {
			return conflict(c, err.Error())
		}
		if errors.Is(err, services.ErrTenantNotFound) {
			return badRequest(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(st)
}

func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	existing, err := h.staffService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			return notFound(c, "Staff member not found")
		}
		return serverError(c)
	}
	if !tenantAllowed(c, existing.TenantID) {
		return forbidden(c, "Staff member belongs to another tenant")
	}

	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	st, err := h.staffService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrStaffEmailTaken) {
			return conflict(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(st)
}

func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	existing, err := h.staffService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			return notFound(c, "Staff member not found")
		}
		return serverError(c)
	}
	if !tenantAllowed(c, existing.TenantID) {
		return forbidden(c, "Staff member belongs to another tenant")
	}

	if err := h.staffService.Delete(id); err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			return notFound(c, "Staff member not found")
		}
		return serverError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "Staff member deleted"})
}
