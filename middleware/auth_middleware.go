package middleware

import (
	"errors"

	config "github.com/anjiri1684/baby_ease/configs"
	"github.com/anjiri1684/baby_ease/models"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// IdentityFromClaims builds the authenticated principal from verified JWT
// claims. Handlers never read claims directly; they operate on the Identity.
func IdentityFromClaims(claims jwt.MapClaims) (models.Identity, error) {
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return models.Identity{}, errors.New("token is missing user_id")
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return models.Identity{}, errors.New("token carries a malformed user_id")
	}

	rawRole, ok := claims["role"].(string)
	if !ok {
		return models.Identity{}, errors.New("token is missing role")
	}
	role := models.Role(rawRole)
	if !role.IsValid() {
		return models.Identity{}, errors.New("token carries an unknown role")
	}

	return models.Identity{UserID: userID, Role: role}, nil
}

// CurrentIdentity resolves the caller's Identity from the request context
// populated by Protected().
func CurrentIdentity(c *fiber.Ctx) (models.Identity, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return models.Identity{}, errors.New("no authenticated user on request")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, errors.New("unexpected claim format")
	}
	return IdentityFromClaims(claims)
}

func requireRole(role models.Role, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := CurrentIdentity(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		if identity.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": message})
		}
		return c.Next()
	}
}

func AdminRequired() fiber.Handler {
	return requireRole(models.RoleAdmin, "Forbidden: Admin access required")
}

func ParentRequired() fiber.Handler {
	return requireRole(models.RoleParent, "Forbidden: Parent access required")
}

func BabysitterRequired() fiber.Handler {
	return requireRole(models.RoleBabysitter, "Forbidden: Babysitter access required")
}
