package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/career-copilot/internal/models"
	"alfredoptarigan/career-copilot/internal/services"
)

const codeResumeGeneration = "RESUME_GENERATION_ERROR"

type ResumeHandler struct {
	resumeService services.ResumeService
	logger        *zap.Logger
}

func NewResumeHandler(resumeService services.ResumeService, logger *zap.Logger) *ResumeHandler {
	return &ResumeHandler{
		resumeService: resumeService,
		logger:        logger,
	}
}

// HandleGenerate handles POST /resume/generate
func (h *ResumeHandler) HandleGenerate(c *fiber.Ctx) (err error) {
	var req models.GenerateResumeRequest

	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidPayload, "Invalid request payload")
	}

	if req.Profile == nil || req.CompanyInfo == nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeMissingParameters, "Profile and company info are required")
	}

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("❌ Resume generation panicked", zap.Any("panic", r))
			err = errorJSON(c, fiber.StatusInternalServerError, codeResumeGeneration, "Failed to generate resume")
		}
	}()

	out := h.resumeService.Generate(c.UserContext(), services.ResumeInput{
		Profile:          *req.Profile,
		Company:          *req.CompanyInfo,
		Questions:        req.ApplicationForm,
		SelectedProjects: req.SelectedProjects,
		Instructions:     req.Prompt,
	})

	return c.JSON(models.GenerateResumeResponse{
		Content:        out.Value,
		GeneratedAt:    time.Now(),
		Status:         string(out.Status),
		FallbackReason: out.ReasonCode(),
	})
}
