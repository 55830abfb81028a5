package middleware

import (
	"strings"

	"agendly-backend/internal/config"
	"agendly-backend/internal/dto"
	"agendly-backend/internal/models"
	"agendly-backend/internal/tenant"
	"agendly-backend/pkg/authz"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TenantResolver pins managers to their tenant: the owner record matching
// the session email decides which tenant the manager operates. Other
// roles pass through untouched.
func TenantResolver(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tenant.GetRole(c) != authz.RoleManager {
			return c.Next()
		}
		var owner models.Owner
		if err := db.Where("email = ?", tenant.GetEmail(c)).First(&owner).Error; err == nil {
			c.Locals("tenant_id", owner.TenantID)
		}
		return c.Next()
	}
}

// AdminRequired allows platform managers only. Users listed in
// ADMIN_EMAILS pass regardless of their stored role.
func AdminRequired(cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if tenant.GetRole(c) == authz.RoleAdmin {
			return c.Next()
		}
		if contains(adminEmails, tenant.GetEmail(c)) {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

// ManagerRequired allows admins, and managers whose tenant has been
// resolved by TenantResolver.
func ManagerRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch tenant.GetRole(c) {
		case authz.RoleAdmin:
			return c.Next()
		case authz.RoleManager:
			if _, ok := tenant.GetTenantID(c); !ok {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Error: true, Message: "No tenant associated with this account",
				})
			}
			return c.Next()
		default:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Manager access required",
			})
		}
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
