package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/career-copilot/internal/models"
)

func TestResolveQuestions(t *testing.T) {
	company := models.CompanyInfo{ApplicationForm: []string{"Why us?", "  "}}

	assert.Equal(t, []string{"Tell us about a failure."}, ResolveQuestions([]string{" Tell us about a failure. "}, company))
	assert.Equal(t, []string{"Why us?"}, ResolveQuestions([]string{"", " "}, company))
	assert.Equal(t, DefaultQuestions, ResolveQuestions(nil, models.CompanyInfo{}))

	got := ResolveQuestions(nil, models.CompanyInfo{})
	got[0] = "mutated"
	assert.Equal(t, "지원 동기", DefaultQuestions[0])
}

func TestBuildResumePrompt(t *testing.T) {
	pb := NewPromptBuilder()
	profile := models.UserProfile{Name: "Kim", Skills: []string{"Go", "Redis"}, Education: "SNU"}
	company := models.CompanyInfo{Name: "Toss", Position: "Backend", JD: "Payments"}

	prompt := pb.BuildResumePrompt(profile, company, []string{"Why Toss?", "Growth"}, nil, "")

	assert.Contains(t, prompt, "- Skills: Go, Redis")
	assert.Contains(t, prompt, noProjectsPlaceholder)
	assert.Contains(t, prompt, "- Job Description: Payments")
	assert.Contains(t, prompt, "1. Why Toss?\n2. Growth")
	assert.NotContains(t, prompt, "Additional Requests")

	prompt = pb.BuildResumePrompt(profile, models.CompanyInfo{Name: "Toss"}, []string{"Q"}, []string{"Ledger: bookkeeping"}, "Keep it short")
	assert.Contains(t, prompt, "Ledger: bookkeeping")
	assert.NotContains(t, prompt, noProjectsPlaceholder)
	assert.NotContains(t, prompt, "Job Description")
	assert.Contains(t, prompt, "Additional Requests:\nKeep it short")
}

func TestSummarizeProfile_Truncates(t *testing.T) {
	long := models.UserProfile{Name: "Kim", Summary: strings.Repeat("가", 1000)}

	summary := summarizeProfile(long)
	assert.True(t, strings.HasSuffix(summary, "..."))
	assert.Equal(t, profileSummaryLimit+3, len([]rune(summary)))

	short := summarizeProfile(models.UserProfile{Name: "Kim"})
	assert.True(t, strings.HasPrefix(short, `{"name":"Kim"`))
	assert.True(t, strings.HasSuffix(short, "..."))
}

func TestBuildJobPrompts(t *testing.T) {
	pb := NewPromptBuilder()
	profile := models.UserProfile{Name: "Kim", Skills: []string{"Go"}}

	search := pb.BuildJobSearchPrompt(profile, "backend")
	assert.Contains(t, search, "Search Query: backend")
	assert.Contains(t, search, "between 0 and 100")

	recommend := pb.BuildJobRecommendPrompt(profile, "backend")
	assert.Contains(t, recommend, `User Search: "backend"`)
	assert.Contains(t, recommend, `"신입", "경력"`)
	assert.NotContains(t, recommend, `"System"`)
}

func TestBuildFitPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildFitPrompt(models.UserProfile{Name: "Kim"}, models.CompanyInfo{Name: "Toss", Position: "Backend"})
	assert.Contains(t, prompt, `User Data: {"name":"Kim"`)
	assert.Contains(t, prompt, "Company Core Values:\nNot provided")
}
