package middleware

import (
	"strings"

	"Backend-NMIT-Records/src/logger"
	"Backend-NMIT-Records/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthJWT ตรวจ Bearer token และ blacklist แล้วเก็บ claims ไว้ใน Locals
func AuthJWT(secret []byte, blacklist *utils.TokenBlacklist) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.WriteError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid Authorization header")
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(secret, tokenStr)
		if err != nil {
			return utils.WriteError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
		}

		revoked, err := blacklist.Contains(c.UserContext(), claims.ID)
		if err != nil {
			logger.L().Error("❌ Blacklist check failed", "error", err)
			return utils.WriteError(c, fiber.StatusServiceUnavailable, "BACKEND_UNAVAILABLE", "token store unavailable")
		}
		if revoked {
			return utils.WriteError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Token has been revoked")
		}

		c.Locals("userId", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// RequireRole ต้องใช้หลัง AuthJWT
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return utils.WriteError(c, fiber.StatusForbidden, "FORBIDDEN", "insufficient role")
	}
}
