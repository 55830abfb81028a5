package handlers

import (
	"errors"

	"agendly-backend/internal/dto"
	"agendly-backend/internal/models"
	"agendly-backend/internal/services"
	"agendly-backend/internal/tenant"
	"agendly-backend/pkg/authz"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	var filter services.AppointmentFilter

	if raw := c.Query("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid userId")
		}
		filter.UserID = &id
	}
	if raw := c.Query("tenantId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid tenantId")
		}
		filter.TenantID = &id
	}

	// End users only ever see their own bookings.
	if tenant.GetRole(c) == authz.RoleUser {
		userID, err := tenant.GetUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		filter.UserID = &userID
	}

	appts, err := h.appointmentService.List(filter)
	if err != nil {
		return serverError(c)
	}
	return c.JSON(appts)
}

func (h *AppointmentHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	appt, err := h.appointmentService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return notFound(c, "Appointment not found")
		}
		return serverError(c)
	}
	if err := h.authorize(c, appt); err != nil {
		return err
	}
	return c.JSON(appt)
}

func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	// The booking user is the session identity, never trusted from the body.
	if tenant.GetRole(c) == authz.RoleUser {
		userID, err := tenant.GetUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		req.UserID = userID.String()
	}

	appt, err := h.appointmentService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) ||
			errors.Is(err, services.ErrStaffNotFound) ||
			errors.Is(err, services.ErrTenantNotFound) {
			return badRequest(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(appt)
}

func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	existing, err := h.appointmentService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return notFound(c, "Appointment not found")
		}
		return serverError(c)
	}
	if err := h.authorize(c, existing); err != nil {
		return err
	}

	var req dto.UpdateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	appt, err := h.appointmentService.Update(id, &req, tenant.GetRole(c))
	if err != nil {
		if errors.Is(err, services.ErrCancelNotAllowed) {
			return conflict(c, err.Error())
		}
		if errors.Is(err, services.ErrInvalidStatus) {
			return badRequest(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(appt)
}

func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	existing, err := h.appointmentService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return notFound(c, "Appointment not found")
		}
		return serverError(c)
	}
	if err := h.authorize(c, existing); err != nil {
		return err
	}

	if err := h.appointmentService.Delete(id); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return notFound(c, "Appointment not found")
		}
		return serverError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "Appointment deleted"})
}

// authorize enforces who may touch an appointment: admins always, a
// manager within their tenant, an end user only their own booking.
// Returns a fiber.Error so callers can bail with `return err`.
func (h *AppointmentHandler) authorize(c *fiber.Ctx, appt *models.Appointment) error {
	switch tenant.GetRole(c) {
	case authz.RoleAdmin:
		return nil
	case authz.RoleManager:
		if !tenantAllowed(c, appt.TenantID) {
			return fiber.NewError(fiber.StatusForbidden, "Appointment belongs to another tenant")
		}
		return nil
	default:
		userID, err := tenant.GetUserID(c)
		if err != nil || userID != appt.UserID {
			return fiber.NewError(fiber.StatusForbidden, "Appointment belongs to another user")
		}
		return nil
	}
}
