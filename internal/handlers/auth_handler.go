package handlers

import (
	"errors"

	"github.com/AbhiraajV/credate/internal/auth"
	"github.com/AbhiraajV/credate/internal/dto"
	"github.com/AbhiraajV/credate/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return fail(c, fiber.StatusConflict, dto.ErrorBody{
				Code: dto.CodeConflict, Message: err.Error(),
			})
		}
		return badRequest(c, err.Error())
	}

	return ok(c, fiber.StatusCreated, fiber.Map{"auth": resp})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, dto.ErrorBody{
			Code: dto.CodeUnauthorized, Message: "invalid email or password",
		})
	}

	return ok(c, fiber.StatusOK, fiber.Map{"auth": resp})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Refresh(&req)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, dto.ErrorBody{
			Code: dto.CodeUnauthorized, Message: "invalid or expired refresh token",
		})
	}

	return ok(c, fiber.StatusOK, fiber.Map{"auth": resp})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.authService.Logout(&req); err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{})
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.authService.DeleteAccount(userID, req.Password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return fail(c, fiber.StatusUnauthorized, dto.ErrorBody{
				Code: dto.CodeUnauthorized, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, dto.ErrorBody{
				Code: dto.CodeNotFound, Message: err.Error(),
			})
		}
		return failService(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{})
}
