package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"alfredoptarigan/career-copilot/internal/config"
)

// GenerationRequest is one call to the model. ResponseSchema and
// ResponseMIMEType are only set for structured (JSON) output.
type GenerationRequest struct {
	Prompt            string
	SystemInstruction string
	ResponseSchema    *genai.Schema
	ResponseMIMEType  string
}

type GeminiService interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
	Model() string
}

type geminiService struct {
	client      *genai.Client
	modelName   string
	temperature float32
	timeout     time.Duration
	logger      *zap.Logger
}

// NewGeminiService returns ErrMissingCredential when no API key is configured.
// Callers are expected to keep running without a client; every operation
// then serves its fallback.
func NewGeminiService(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingCredential
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:      client,
		modelName:   cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		logger:      logger.With(zap.String("model", cfg.Model)),
	}, nil
}

func (g *geminiService) Model() string {
	return g.modelName
}

// Generate implements GeminiService. A response without text is returned as
// "" with a nil error; interpreting it is up to the caller.
func (g *geminiService) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	temperature := g.temperature
	cfg := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.ResponseSchema != nil {
		cfg.ResponseSchema = req.ResponseSchema
		cfg.ResponseMIMEType = "application/json"
	}
	if req.ResponseMIMEType != "" {
		cfg.ResponseMIMEType = req.ResponseMIMEType
	}

	started := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(req.Prompt), cfg)
	if err != nil {
		g.logger.Warn("❌ Gemini API error", zap.Error(err), zap.Duration("elapsed", time.Since(started)))
		return "", fmt.Errorf("%w: %w", ErrProviderCall, err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrProviderCall)
	}

	text := resp.Text()
	g.logger.Debug("📊 Gemini response received",
		zap.Int("promptChars", len(req.Prompt)),
		zap.Int("responseChars", len(text)),
		zap.Duration("elapsed", time.Since(started)),
	)

	return text, nil
}
