package handlers

import (
	"errors"

	"agendly-backend/internal/dto"
	"agendly-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PlanHandler struct {
	planService *services.PlanService
}

func NewPlanHandler(planService *services.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

func (h *PlanHandler) List(c *fiber.Ctx) error {
	plans, err := h.planService.List()
	if err != nil {
		return serverError(c)
	}
	return c.JSON(plans)
}

func (h *PlanHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	plan, err := h.planService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			return notFound(c, "Plan not found")
		}
		return serverError(c)
	}
	return c.JSON(plan)
}

func (h *PlanHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	plan, err := h.planService.Create(&req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

func (h *PlanHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	plan, err := h.planService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			return notFound(c, "Plan not found")
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(plan)
}

func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.planService.Delete(id); err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			return notFound(c, "Plan not found")
		}
		if errors.Is(err, services.ErrPlanInUse) {
			return conflict(c, err.Error())
		}
		return serverError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "Plan deleted"})
}
