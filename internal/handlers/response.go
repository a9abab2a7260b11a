package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-copilot/internal/models"
)

const (
	CodeMissingParameters = "MISSING_PARAMETERS"
	CodeInvalidPayload    = "INVALID_PAYLOAD"
)

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error:   true,
		Message: message,
		Code:    code,
	})
}
