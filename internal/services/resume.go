package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/career-copilot/internal/models"
	"alfredoptarigan/career-copilot/internal/repositories"
)

const (
	ResumeMissingKeyMessage = "⚠️ API Key missing. Cannot generate resume."
	ResumeFailureMessage    = "❌ Error generating resume. Please try again."
)

type ResumeInput struct {
	Profile          models.UserProfile
	Company          models.CompanyInfo
	Questions        []string
	SelectedProjects []string
	Instructions     string
}

type ResumeService interface {
	Generate(ctx context.Context, input ResumeInput) Outcome[string]
}

type resumeService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	audit         *auditor
	logger        *zap.Logger
}

// NewResumeService accepts a nil gemini, meaning no credential is configured.
func NewResumeService(gemini GeminiService, repo repositories.GenerationRepository, logger *zap.Logger) ResumeService {
	logger = logger.With(zap.String("service", "resume"))
	return &resumeService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		audit:         newAuditor(repo, gemini, logger),
		logger:        logger,
	}
}

// Generate never fails: every error is turned into a human-readable message
// returned as a fallback outcome.
func (s *resumeService) Generate(ctx context.Context, input ResumeInput) Outcome[string] {
	started := time.Now()

	out := s.generate(ctx, input)
	s.audit.record(ctx, models.OperationResumeGenerate, input.Company, out.Status, out.Reason, started)
	return out
}

func (s *resumeService) generate(ctx context.Context, input ResumeInput) Outcome[string] {
	if s.gemini == nil {
		return fellBack(ResumeMissingKeyMessage, ErrMissingCredential)
	}

	questions := ResolveQuestions(input.Questions, input.Company)
	prompt := s.promptBuilder.BuildResumePrompt(input.Profile, input.Company, questions, input.SelectedProjects, input.Instructions)

	s.logger.Debug("📝 Resume prompt built",
		zap.String("company", input.Company.Name),
		zap.Int("questions", len(questions)),
		zap.Int("promptChars", len(prompt)),
	)

	content, err := s.gemini.Generate(ctx, GenerationRequest{
		Prompt:            prompt,
		SystemInstruction: ResumeSystemInstruction,
	})
	if err != nil {
		return fellBack(ResumeFailureMessage, err)
	}

	return succeeded(content)
}
