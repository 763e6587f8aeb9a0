package controllers

import (
	"net/http"
	"time"

	"Backend-NMIT-Records/src/database"
	"Backend-NMIT-Records/src/logger"
	"Backend-NMIT-Records/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Health godoc
// @Summary Health check (pings MongoDB)
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Failure 503 {object} models.ErrorResponse
// @Router / [get]
func (ctl *Controller) Health(c *fiber.Ctx) error {
	ctx, cancel := database.Ctx(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := ctl.Store.Ping(ctx); err != nil {
		logger.L().Error("❌ MongoDB ping failed", "error", err)
		return utils.WriteError(c, http.StatusServiceUnavailable, "BACKEND_UNAVAILABLE", "database unavailable")
	}
	return c.SendString("✅ API is running...")
}
