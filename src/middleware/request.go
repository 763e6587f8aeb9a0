package middleware

import (
	"time"

	"Backend-NMIT-Records/src/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID ใช้ค่าจาก header ถ้ามี ไม่งั้นสร้าง uuid ใหม่
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("requestId", id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// AccessLog เขียน log หนึ่งบรรทัดต่อ request
func AccessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		rid, _ := c.Locals("requestId").(string)
		fields := []interface{}{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).String(),
			"requestId", rid,
		}
		if status >= fiber.StatusInternalServerError {
			logger.L().Error("request", fields...)
		} else {
			logger.L().Info("request", fields...)
		}
		return err
	}
}
