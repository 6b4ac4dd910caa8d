package handlers

import (
	"github.com/AbhiraajV/credate/internal/auth"
	"github.com/AbhiraajV/credate/internal/dto"
	"github.com/AbhiraajV/credate/internal/models"
	"github.com/AbhiraajV/credate/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AccessHandler struct {
	accessService *services.AccessService
}

func NewAccessHandler(accessService *services.AccessService) *AccessHandler {
	return &AccessHandler{accessService: accessService}
}

func (h *AccessHandler) Request(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.RequestAccessRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.ReportID == uuid.Nil {
		return badRequest(c, "report_id is required")
	}

	request, err := h.accessService.Request(userID, req.ReportID, req.Message)
	if err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusCreated, fiber.Map{"request": request})
}

func (h *AccessHandler) Approve(c *fiber.Ctx) error {
	return h.resolve(c, h.accessService.Approve)
}

func (h *AccessHandler) Deny(c *fiber.Ctx) error {
	return h.resolve(c, h.accessService.Deny)
}

func (h *AccessHandler) resolve(c *fiber.Ctx, transition func(ownerID, requestID uuid.UUID) (*models.AccessRequest, error)) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	request, err := transition(userID, requestID)
	if err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{"request": request})
}

func (h *AccessHandler) ListReceived(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	requests, err := h.accessService.ListReceived(userID)
	if err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{"requests": requests})
}

func (h *AccessHandler) ListSent(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	requests, err := h.accessService.ListSent(userID)
	if err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{"requests": requests})
}
