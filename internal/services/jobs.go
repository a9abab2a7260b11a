package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/career-copilot/internal/models"
	"alfredoptarigan/career-copilot/internal/repositories"
)

const jobSearchSystemInstruction = `You are a career advisor who knows the current tech hiring market.
Recommend job postings that match the applicant. Answer only with the requested JSON.`

// FallbackJobs is the single diagnostic posting returned whenever a job
// operation cannot produce real results.
func FallbackJobs() []models.JobPosting {
	return []models.JobPosting{
		{
			CompanyName:     "Demo Corp",
			Position:        "Internal Server Error",
			RecruitType:     models.RecruitSystem,
			JDSummary:       "Please check if GEMINI_API_KEY is set in .env",
			FitScore:        0,
			ApplicationForm: []string{"Server check 1", "Server check 2"},
		},
	}
}

type JobService interface {
	// Search asks Gemini for postings using a declared response schema.
	Search(ctx context.Context, profile models.UserProfile, query string) Outcome[[]models.JobPosting]
	// Recommend asks Gemini for postings as free text and parses the JSON it
	// finds after stripping code fences.
	Recommend(ctx context.Context, profile models.UserProfile, query string) Outcome[[]models.JobPosting]
}

type jobService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	audit         *auditor
	logger        *zap.Logger
}

func NewJobService(gemini GeminiService, repo repositories.GenerationRepository, logger *zap.Logger) JobService {
	logger = logger.With(zap.String("service", "jobs"))
	return &jobService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		audit:         newAuditor(repo, gemini, logger),
		logger:        logger,
	}
}

func (s *jobService) Search(ctx context.Context, profile models.UserProfile, query string) Outcome[[]models.JobPosting] {
	started := time.Now()

	out := s.run(ctx, GenerationRequest{
		Prompt:            s.promptBuilder.BuildJobSearchPrompt(profile, query),
		SystemInstruction: jobSearchSystemInstruction,
		ResponseSchema:    JobListSchema(),
	})
	s.audit.record(ctx, models.OperationJobSearch, models.CompanyInfo{Position: query}, out.Status, out.Reason, started)
	return out
}

func (s *jobService) Recommend(ctx context.Context, profile models.UserProfile, query string) Outcome[[]models.JobPosting] {
	started := time.Now()

	out := s.run(ctx, GenerationRequest{
		Prompt: s.promptBuilder.BuildJobRecommendPrompt(profile, query),
	})
	s.audit.record(ctx, models.OperationJobRecommend, models.CompanyInfo{Position: query}, out.Status, out.Reason, started)
	return out
}

func (s *jobService) run(ctx context.Context, req GenerationRequest) Outcome[[]models.JobPosting] {
	if s.gemini == nil {
		return fellBack(FallbackJobs(), ErrMissingCredential)
	}

	text, err := s.gemini.Generate(ctx, req)
	if err != nil {
		return fellBack(FallbackJobs(), err)
	}

	jobs, err := parseJobs(text)
	if err != nil {
		return fellBack(FallbackJobs(), err)
	}

	s.logger.Debug("🔍 Job postings parsed", zap.Int("count", len(jobs)))
	return succeeded(jobs)
}

func parseJobs(text string) ([]models.JobPosting, error) {
	cleaned := StripCodeFences(text)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}

	var jobs []models.JobPosting
	if err := jobListValidator.Decode(cleaned, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse job postings: %w", err)
	}
	return jobs, nil
}
