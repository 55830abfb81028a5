package tenant

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GetUserID extracts the user UUID from JWT claims in context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	sub, err := claimString(c, "sub")
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(sub)
}

// GetRole extracts the role claim. Missing roles default to "user".
func GetRole(c *fiber.Ctx) string {
	role, err := claimString(c, "role")
	if err != nil || role == "" {
		return "user"
	}
	return role
}

// GetEmail extracts the email claim.
func GetEmail(c *fiber.Ctx) string {
	email, _ := claimString(c, "email")
	return email
}

// GetTenantID returns the tenant a manager operates, resolved by the
// manager middleware via owner email lookup.
func GetTenantID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals("tenant_id").(uuid.UUID)
	return id, ok
}

func claimString(c *fiber.Ctx, key string) (string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", errors.New("invalid token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	val, ok := claims[key].(string)
	if !ok {
		return "", errors.New("missing " + key + " claim")
	}
	return val, nil
}
