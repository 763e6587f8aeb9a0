package utils

import (
	"errors"

	"Backend-NMIT-Records/src/apperrors"
	"Backend-NMIT-Records/src/logger"
	"Backend-NMIT-Records/src/models"

	"github.com/gofiber/fiber/v2"
)

// StatusFor แปลง error ของ service เป็น HTTP status และ code
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return fiber.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, apperrors.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, apperrors.ErrEmptyAggregation):
		return fiber.StatusNotFound, "EMPTY_AGGREGATION"
	case errors.Is(err, apperrors.ErrDuplicateKey):
		return fiber.StatusConflict, "DUPLICATE_KEY"
	case errors.Is(err, apperrors.ErrBackendUnavailable):
		return fiber.StatusServiceUnavailable, "BACKEND_UNAVAILABLE"
	default:
		return fiber.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// HandleError ส่ง ErrorResponse ตามชนิดของ error
func HandleError(c *fiber.Ctx, err error) error {
	status, code := StatusFor(err)
	message := err.Error()
	if status >= fiber.StatusInternalServerError {
		logger.L().Error("request failed", "path", c.Path(), "status", status, "error", err)
		if status == fiber.StatusInternalServerError {
			message = "internal server error"
		}
	}
	return WriteError(c, status, code, message)
}

func WriteError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Code:    code,
		Message: message,
	})
}
