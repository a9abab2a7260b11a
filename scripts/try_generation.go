package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"alfredoptarigan/career-copilot/internal/config"
	"alfredoptarigan/career-copilot/internal/logger"
	"alfredoptarigan/career-copilot/internal/models"
	"alfredoptarigan/career-copilot/internal/services"
)

// try_generation runs one operation against Gemini from the command line:
//
//	go run ./scripts/try_generation.go --op fit --profile profile.json --company company.json
func main() {
	op := pflag.String("op", "resume", "operation: resume, search, recommend or fit")
	profilePath := pflag.String("profile", "", "path to a UserProfile JSON file")
	companyPath := pflag.String("company", "", "path to a CompanyInfo JSON file")
	resumePDF := pflag.String("resume-pdf", "", "optional resume PDF whose text becomes the profile summary")
	query := pflag.String("query", "", "job search query")
	pflag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	var profile models.UserProfile
	if err := readJSON(*profilePath, &profile); err != nil {
		log.Fatal("❌ Failed to read profile", zap.Error(err))
	}

	if *resumePDF != "" {
		content, err := services.NewPDFParserService().ExtractText(*resumePDF)
		if err != nil {
			log.Fatal("❌ Failed to read resume PDF", zap.Error(err))
		}
		profile.Summary = content.Text
		log.Info("📄 Resume text imported", zap.Int("pages", content.PageCount))
	}

	var company models.CompanyInfo
	if *companyPath != "" {
		if err := readJSON(*companyPath, &company); err != nil {
			log.Fatal("❌ Failed to read company info", zap.Error(err))
		}
	}

	ctx := context.Background()

	gemini, err := services.NewGeminiService(ctx, cfg.Gemini, log)
	if err != nil && !errors.Is(err, services.ErrMissingCredential) {
		log.Fatal("❌ Failed to initialize Gemini", zap.Error(err))
	}

	var result any
	switch strings.ToLower(*op) {
	case "resume":
		result = services.NewResumeService(gemini, nil, log).Generate(ctx, services.ResumeInput{
			Profile: profile,
			Company: company,
		})
	case "search":
		result = services.NewJobService(gemini, nil, log).Search(ctx, profile, *query)
	case "recommend":
		result = services.NewJobService(gemini, nil, log).Recommend(ctx, profile, *query)
	case "fit":
		out, err := services.NewFitService(gemini, nil, log).Analyze(ctx, profile, company)
		if err != nil {
			log.Fatal("❌ Fit analysis failed", zap.Error(err))
		}
		result = out
	default:
		log.Fatal("unknown operation", zap.String("op", *op))
	}

	printOutcome(result)
}

func readJSON(path string, target any) error {
	if path == "" {
		return errors.New("path is required")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}

func printOutcome(result any) {
	switch out := result.(type) {
	case services.Outcome[string]:
		fmt.Printf("status: %s %s\n\n%s\n", out.Status, out.ReasonCode(), out.Value)
	case services.Outcome[[]models.JobPosting]:
		fmt.Printf("status: %s %s\n", out.Status, out.ReasonCode())
		printJSON(out.Value)
	case services.Outcome[models.FitAnalysisResult]:
		fmt.Printf("status: %s %s\n", out.Status, out.ReasonCode())
		printJSON(out.Value)
	}
}

func printJSON(v any) {
	raw, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(raw))
}
