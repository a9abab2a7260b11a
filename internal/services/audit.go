package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/career-copilot/internal/metrics"
	"alfredoptarigan/career-copilot/internal/models"
	"alfredoptarigan/career-copilot/internal/repositories"
)

// auditor records metadata about each operation. A failing write is logged
// and never changes what the caller receives.
type auditor struct {
	repo   repositories.GenerationRepository
	gemini GeminiService
	logger *zap.Logger
}

func newAuditor(repo repositories.GenerationRepository, gemini GeminiService, logger *zap.Logger) *auditor {
	return &auditor{repo: repo, gemini: gemini, logger: logger}
}

func (a *auditor) record(ctx context.Context, op models.Operation, company models.CompanyInfo, status models.GenerationStatus, reason error, started time.Time) {
	elapsed := time.Since(started)
	code := ErrorCode(reason)

	metrics.ObserveGeneration(string(op), string(status), code, elapsed)

	fields := []zap.Field{
		zap.String("operation", string(op)),
		zap.String("status", string(status)),
		zap.Duration("elapsed", elapsed),
	}
	if reason != nil {
		a.logger.Warn("⚠️ Generation degraded", append(fields, zap.String("reason", code), zap.Error(reason))...)
	} else {
		a.logger.Info("✅ Generation completed", fields...)
	}

	if a.repo == nil {
		return
	}

	var model string
	if a.gemini != nil {
		model = a.gemini.Model()
	}

	entry := &models.GenerationLog{
		ID:         uuid.New(),
		Operation:  op,
		Company:    company.Name,
		Position:   company.Position,
		Status:     status,
		ReasonCode: code,
		Model:      model,
		LatencyMS:  elapsed.Milliseconds(),
		CreatedAt:  time.Now(),
	}
	if err := a.repo.Create(context.WithoutCancel(ctx), entry); err != nil {
		a.logger.Warn("failed to record generation log", zap.Error(err))
	}
}
