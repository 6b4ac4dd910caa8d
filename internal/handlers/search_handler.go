package handlers

import (
	"github.com/AbhiraajV/credate/internal/auth"
	"github.com/AbhiraajV/credate/internal/dto"
	"github.com/AbhiraajV/credate/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

func (h *SearchHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SearchInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	detail, err := h.searchService.Create(userID, &req)
	if err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusCreated, fiber.Map{
		"search":  detail.Search,
		"results": detail.Results,
	})
}

func (h *SearchHandler) GetByID(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	searchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid search ID")
	}

	detail, err := h.searchService.GetByID(userID, searchID)
	if err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"search":  detail.Search,
		"results": detail.Results,
	})
}

func (h *SearchHandler) Update(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	searchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid search ID")
	}

	var req dto.SearchInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	search, err := h.searchService.Update(userID, searchID, &req)
	if err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{"search": search})
}

func (h *SearchHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	searchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid search ID")
	}

	if err := h.searchService.Delete(userID, searchID); err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{})
}

func (h *SearchHandler) ListMine(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	searches, err := h.searchService.ListMine(userID)
	if err != nil {
		return failService(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{"searches": searches})
}
