package controllers

import (
	"net/http"
	"time"

	"Backend-NMIT-Records/src/logger"
	"Backend-NMIT-Records/src/models"
	"Backend-NMIT-Records/src/services/admins"
	"Backend-NMIT-Records/src/utils"

	"github.com/gofiber/fiber/v2"
)

// LoginResponse token + ข้อมูล admin
type LoginResponse struct {
	Token string        `json:"token"`
	Admin *models.Admin `json:"admin"`
}

// Login godoc
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginInput true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctl *Controller) Login(c *fiber.Ctx) error {
	var input models.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.WriteError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	}

	admin, err := admins.Login(c.UserContext(), ctl.Store, input)
	if err != nil {
		return utils.HandleError(c, err)
	}

	token, err := utils.GenerateJWT([]byte(ctl.Config.JWT.Secret), admin.ID.Hex(), admin.Email, admin.Role, ctl.Config.JWT.Expiration)
	if err != nil {
		return utils.HandleError(c, err)
	}

	logger.L().Info("Admin logged in", "email", admin.Email, "ip", c.IP())
	return c.JSON(LoginResponse{Token: token, Admin: admin})
}

// Logout godoc
// @Summary Logout (revoke current token)
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/logout [post]
func (ctl *Controller) Logout(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*utils.JWTClaims)
	if !ok {
		return utils.WriteError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token")
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := ctl.Blacklist.Add(c.UserContext(), claims.ID, ttl); err != nil {
		logger.L().Error("❌ Failed to blacklist token", "error", err)
		return utils.WriteError(c, http.StatusServiceUnavailable, "BACKEND_UNAVAILABLE", "token store unavailable")
	}

	return c.JSON(fiber.Map{"message": "Logged out"})
}
