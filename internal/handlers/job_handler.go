package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-copilot/internal/models"
	"alfredoptarigan/career-copilot/internal/services"
)

type JobHandler struct {
	jobService services.JobService
}

func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// HandleSearch handles POST /jobs/search
func (h *JobHandler) HandleSearch(c *fiber.Ctx) error {
	return h.handle(c, h.jobService.Search)
}

// HandleRecommend handles POST /jobs/recommend
func (h *JobHandler) HandleRecommend(c *fiber.Ctx) error {
	return h.handle(c, h.jobService.Recommend)
}

type jobOperation func(ctx context.Context, profile models.UserProfile, query string) services.Outcome[[]models.JobPosting]

func (h *JobHandler) handle(c *fiber.Ctx, op jobOperation) error {
	var req models.JobSearchRequest

	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidPayload, "Invalid request payload")
	}

	if req.Profile == nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeMissingParameters, "profile is required")
	}

	out := op(c.UserContext(), *req.Profile, req.Query)

	return c.JSON(models.JobSearchResponse{
		Jobs:           out.Value,
		Status:         string(out.Status),
		FallbackReason: out.ReasonCode(),
	})
}
