package handlers

import (
	"github.com/AbhiraajV/credate/internal/auth"
	"github.com/AbhiraajV/credate/internal/dto"
	"github.com/AbhiraajV/credate/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ReportInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, err := h.reportService.Create(userID, &req)
	if err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusCreated, fiber.Map{"report": report})
}

func (h *ReportHandler) Update(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	var req dto.ReportInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, err := h.reportService.Update(userID, reportID, &req)
	if err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{"report": report})
}

func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	report, err := h.reportService.GetByID(userID, reportID)
	if err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{"report": report})
}

func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	if err := h.reportService.Delete(userID, reportID); err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{})
}

func (h *ReportHandler) ListMine(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	reports, err := h.reportService.ListMine(userID)
	if err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{"reports": reports})
}
