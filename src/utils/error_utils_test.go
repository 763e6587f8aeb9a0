package utils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"Backend-NMIT-Records/src/apperrors"
	"Backend-NMIT-Records/src/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.NewValidationError("x"), fiber.StatusBadRequest, "VALIDATION_ERROR"},
		{&apperrors.AppError{Err: apperrors.ErrUnauthorized}, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{&apperrors.AppError{Err: apperrors.ErrForbidden}, fiber.StatusForbidden, "FORBIDDEN"},
		{apperrors.NewEmptyAggregationError("avg"), fiber.StatusNotFound, "EMPTY_AGGREGATION"},
		{apperrors.NewDuplicateKeyError("dup"), fiber.StatusConflict, "DUPLICATE_KEY"},
		{&apperrors.AppError{Err: apperrors.ErrBackendUnavailable}, fiber.StatusServiceUnavailable, "BACKEND_UNAVAILABLE"},
		{errors.New("boom"), fiber.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code := StatusFor(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestHandleErrorBody(t *testing.T) {
	app := fiber.New()
	app.Get("/dup", func(c *fiber.Ctx) error {
		return HandleError(c, apperrors.NewDuplicateKeyError("email already exists"))
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return HandleError(c, errors.New("secret driver detail"))
	})

	t.Run("typed error", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/dup", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, models.ErrorResponse{Status: 409, Code: "DUPLICATE_KEY", Message: "email already exists"}, body)
	})

	t.Run("internal error is masked", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "internal server error", body.Message)
	})
}
