package handlers

import (
	"errors"
	"log/slog"

	"github.com/AbhiraajV/credate/internal/dto"
	"github.com/AbhiraajV/credate/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ok writes the success half of the uniform envelope.
func ok(c *fiber.Ctx, status int, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

func fail(c *fiber.Ctx, status int, body dto.ErrorBody) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   body,
	})
}

// failService maps the service error taxonomy to the envelope. Anything
// outside the taxonomy is a store-level failure: logged, surfaced generic.
func failService(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	var duplicateErr *services.DuplicateRequestError
	var transitionErr *services.InvalidTransitionError

	switch {
	case errors.As(err, &validationErr):
		return fail(c, fiber.StatusBadRequest, dto.ErrorBody{
			Code:    dto.CodeValidationError,
			Message: validationErr.Message,
		})
	case errors.As(err, &duplicateErr):
		return fail(c, fiber.StatusConflict, dto.ErrorBody{
			Code:          dto.CodeConflict,
			Message:       duplicateErr.Error(),
			RequestStatus: string(duplicateErr.Status),
		})
	case errors.As(err, &transitionErr):
		return fail(c, fiber.StatusUnprocessableEntity, dto.ErrorBody{
			Code:          dto.CodeInvalidOperation,
			Message:       transitionErr.Error(),
			RequestStatus: string(transitionErr.Status),
		})
	case errors.Is(err, services.ErrNotFound):
		return fail(c, fiber.StatusNotFound, dto.ErrorBody{
			Code:    dto.CodeNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrUnauthorized):
		return fail(c, fiber.StatusForbidden, dto.ErrorBody{
			Code:    dto.CodeUnauthorized,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrSelfRequest):
		return fail(c, fiber.StatusUnprocessableEntity, dto.ErrorBody{
			Code:    dto.CodeInvalidOperation,
			Message: err.Error(),
		})
	}

	slog.Error("operation failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return fail(c, fiber.StatusInternalServerError, dto.ErrorBody{
		Code:    dto.CodeOperationFailed,
		Message: "operation failed",
	})
}

func unauthorized(c *fiber.Ctx) error {
	return fail(c, fiber.StatusUnauthorized, dto.ErrorBody{
		Code:    dto.CodeUnauthorized,
		Message: "Unauthorized",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return fail(c, fiber.StatusBadRequest, dto.ErrorBody{
		Code:    dto.CodeValidationError,
		Message: message,
	})
}
