package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/career-copilot/internal/models"
	"alfredoptarigan/career-copilot/internal/repositories"
)

type FitService interface {
	// Analyze scores the profile against the company. A missing credential,
	// a failed call or an empty answer yields a fallback with an empty
	// result. An answer that is not valid JSON, or that breaks the declared
	// schema, is returned as an error.
	Analyze(ctx context.Context, profile models.UserProfile, company models.CompanyInfo) (Outcome[models.FitAnalysisResult], error)
}

type fitService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	audit         *auditor
	logger        *zap.Logger
}

func NewFitService(gemini GeminiService, repo repositories.GenerationRepository, logger *zap.Logger) FitService {
	logger = logger.With(zap.String("service", "fit"))
	return &fitService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		audit:         newAuditor(repo, gemini, logger),
		logger:        logger,
	}
}

func (s *fitService) Analyze(ctx context.Context, profile models.UserProfile, company models.CompanyInfo) (Outcome[models.FitAnalysisResult], error) {
	started := time.Now()

	out, err := s.analyze(ctx, profile, company)
	if err != nil {
		s.audit.record(ctx, models.OperationFitAnalyze, company, models.StatusFailed, err, started)
		return Outcome[models.FitAnalysisResult]{Status: models.StatusFailed, Reason: err}, err
	}

	s.audit.record(ctx, models.OperationFitAnalyze, company, out.Status, out.Reason, started)
	return out, nil
}

func (s *fitService) analyze(ctx context.Context, profile models.UserProfile, company models.CompanyInfo) (Outcome[models.FitAnalysisResult], error) {
	if s.gemini == nil {
		return fellBack(models.FitAnalysisResult{}, ErrMissingCredential), nil
	}

	text, err := s.gemini.Generate(ctx, GenerationRequest{
		Prompt:            s.promptBuilder.BuildFitPrompt(profile, company),
		SystemInstruction: FitSystemInstruction,
		ResponseSchema:    FitAnalysisSchema(),
	})
	if err != nil {
		return fellBack(models.FitAnalysisResult{}, err), nil
	}

	cleaned := StripCodeFences(text)
	if strings.TrimSpace(cleaned) == "" {
		return fellBack(models.FitAnalysisResult{}, ErrEmptyResponse), nil
	}

	var result models.FitAnalysisResult
	if err := fitAnalysisValidator.Decode(cleaned, &result); err != nil {
		return Outcome[models.FitAnalysisResult]{}, fmt.Errorf("failed to parse fit analysis: %w", err)
	}

	return succeeded(result), nil
}
