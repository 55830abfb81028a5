package handlers

import (
	"agendly-backend/internal/dto"
	"agendly-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// Stats returns the platform-wide counters shown on the admin dashboard.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	var stats dto.DashboardStats

	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.Plan{}, &stats.Plans},
		{&models.Tenant{}, &stats.Tenants},
		{&models.Staff{}, &stats.Staff},
		{&models.Service{}, &stats.Services},
		{&models.Appointment{}, &stats.Appointments},
	}
	for _, cnt := range counts {
		if err := h.db.Model(cnt.model).Count(cnt.dst).Error; err != nil {
			return serverError(c)
		}
	}

	return c.JSON(stats)
}
