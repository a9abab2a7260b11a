package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/career-copilot/internal/models"
	"alfredoptarigan/career-copilot/internal/repositories"
)

// GenerationHandler exposes the generation audit log. It is only registered
// when the database is enabled.
type GenerationHandler struct {
	genRepo repositories.GenerationRepository
}

func NewGenerationHandler(genRepo repositories.GenerationRepository) *GenerationHandler {
	return &GenerationHandler{
		genRepo: genRepo,
	}
}

// HandleList handles GET /generations?operation=&limit=
func (h *GenerationHandler) HandleList(c *fiber.Ctx) error {
	operation := models.Operation(c.Query("operation"))
	limit := c.QueryInt("limit", 20)

	entries, err := h.genRepo.FindRecent(c.UserContext(), operation, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load generation logs")
	}

	counts, err := h.genRepo.CountByStatus(c.UserContext(), operation)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count generation logs")
	}

	return c.JSON(fiber.Map{
		"generations": entries,
		"counts":      counts,
	})
}

// HandleGet handles GET /generations/:id
func (h *GenerationHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidPayload, "Invalid generation ID format")
	}

	entry, err := h.genRepo.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrGenerationNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "Generation not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load generation log")
	}

	return c.JSON(entry)
}
