package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/career-copilot/internal/models"
	"alfredoptarigan/career-copilot/internal/services"
)

type FitHandler struct {
	fitService services.FitService
	logger     *zap.Logger
}

func NewFitHandler(fitService services.FitService, logger *zap.Logger) *FitHandler {
	return &FitHandler{
		fitService: fitService,
		logger:     logger,
	}
}

// HandleAnalyze handles POST /fit/analyze
func (h *FitHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.FitAnalysisRequest

	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidPayload, "Invalid request payload")
	}

	if req.Profile == nil || req.CompanyInfo == nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeMissingParameters, "Profile and company info are required")
	}

	out, err := h.fitService.Analyze(c.UserContext(), *req.Profile, *req.CompanyInfo)
	if err != nil {
		h.logger.Warn("fit analysis rejected model response", zap.Error(err))
		return errorJSON(c, fiber.StatusBadGateway, services.ErrorCode(err), "Model returned an invalid fit analysis")
	}

	return c.JSON(models.FitAnalysisResponse{
		Result:         out.Value,
		Status:         string(out.Status),
		FallbackReason: out.ReasonCode(),
	})
}
