package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"alfredoptarigan/career-copilot/internal/models"
)

const (
	profileSummaryLimit   = 500
	noProjectsPlaceholder = "No specific projects selected"
	jobPostingTarget      = 5
)

// DefaultQuestions are used when neither the request nor the company record
// supplies application-form questions: motivation, growth, strengths/weaknesses.
var DefaultQuestions = []string{"지원 동기", "성장 과정", "성격의 장단점"}

const ResumeSystemInstruction = `You are a professional career consultant and tech recruiter.
Using the applicant profile and the target company's job description, write cover letter
or resume content optimised for that company.
Write in Markdown and keep the structure easy to read.`

const FitSystemInstruction = `You are a senior tech recruiter. Score how well an applicant fits a role
(job fit) and the company's culture (culture fit). Every score is an integer from 0 to 100.
Base every judgement only on the data provided.`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// ResolveQuestions picks the application-form questions for a resume request:
// explicit request questions, then the company's form, then DefaultQuestions.
func ResolveQuestions(requested []string, company models.CompanyInfo) []string {
	if q := nonEmpty(requested); len(q) > 0 {
		return q
	}
	if q := nonEmpty(company.ApplicationForm); len(q) > 0 {
		return q
	}
	return append([]string(nil), DefaultQuestions...)
}

func nonEmpty(items []string) []string {
	var out []string
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// BuildResumePrompt creates the prompt for application-form answers.
func (pb *PromptBuilder) BuildResumePrompt(profile models.UserProfile, company models.CompanyInfo, questions, selectedProjects []string, extra string) string {
	projects := noProjectsPlaceholder
	if selected := nonEmpty(selectedProjects); len(selected) > 0 {
		projects = strings.Join(selected, "\n\n")
	}

	numbered := make([]string, len(questions))
	for i, q := range questions {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, q)
	}

	var target strings.Builder
	fmt.Fprintf(&target, "- Name: %s\n- Position: %s", company.Name, company.Position)
	if company.JD != "" {
		fmt.Fprintf(&target, "\n- Job Description: %s", company.JD)
	}

	var additional string
	if strings.TrimSpace(extra) != "" {
		additional = fmt.Sprintf("\nAdditional Requests:\n%s\n", strings.TrimSpace(extra))
	}

	return fmt.Sprintf(`You are an expert career consultant. Write professional cover letter / resume answers for the following applicant.

Applicant Profile:
- Name: %s
- Skills: %s
- Education: %s
- Selected Projects:
%s

Target Company:
%s
%s
Task:
Write answers for the following specific application questions. Use a professional, confident tone.
Use Markdown formatting. Use headings '## Question 1: ...' for each question.

Questions to Answer:
%s`,
		profile.Name,
		profile.SkillList(),
		profile.Education,
		projects,
		target.String(),
		additional,
		strings.Join(numbered, "\n"),
	)
}

// BuildJobSearchPrompt creates the prompt for the schema-constrained search.
func (pb *PromptBuilder) BuildJobSearchPrompt(profile models.UserProfile, query string) string {
	return fmt.Sprintf(`User Profile: %s
Search Query: %s

Based on the user's skills and project experience, recommend %d open positions at real companies
(or very realistic fictional ones) that are plausibly hiring right now.
For each posting give the company name, a concrete position title, the recruitment type,
a very short job description (main duties / requirements), and a fit score between 0 and 100
for how well the user's profile matches the posting.`,
		summarizeProfile(profile), query, jobPostingTarget)
}

// BuildJobRecommendPrompt creates the free-text variant of the job prompt. The
// model is told to answer with bare JSON, but fences are still stripped later.
func (pb *PromptBuilder) BuildJobRecommendPrompt(profile models.UserProfile, query string) string {
	return fmt.Sprintf(`You are a job recommendation engine. Generate %d realistic job postings in South Korea based on the user's search query and profile.

User Search: "%s"
User Profile Summary: %s

Requirements:
1. Return ONLY a valid JSON array. No markdown formatting.
2. Each job object must have:
   - companyName (string): Real Korean tech companies (e.g. Naver, Kakao, Toss, startup names)
   - position (string): Job title
   - recruitType (string): One of [%s]
   - jdSummary (string): 1 sentence summary of the job
   - fitScore (integer): 0-100 (a rough match score based on the profile)
   - applicationForm (array of strings): 2-3 specific self-introduction questions for this company

Example JSON format:
[
  {
    "companyName": "Tanghuru Tech",
    "position": "Backend Developer",
    "recruitType": "경력",
    "jdSummary": "Developing high-traffic APIs using Go",
    "fitScore": 88,
    "applicationForm": ["Why do you want to work at Tanghuru Tech?", "Describe a challenge you overcame."]
  }
]`,
		jobPostingTarget, query, summarizeProfile(profile), quotedList(models.RecruitTypeValues()))
}

// BuildFitPrompt creates the prompt for job-fit / culture-fit analysis.
func (pb *PromptBuilder) BuildFitPrompt(profile models.UserProfile, company models.CompanyInfo) string {
	profileJSON, _ := json.Marshal(profile)

	values := company.Values
	if strings.TrimSpace(values) == "" {
		values = "Not provided"
	}

	return fmt.Sprintf(`User Data: %s
Company: %s
Position: %s
Job Description:
%s

Company Core Values:
%s

Analyse the data above and compute the job fit and culture fit of the applicant.
Return jobFit, cultureFit and overallScore (integers 0-100), a list of strengths,
a list of weaknesses, and a short summary of your interpretation.`,
		string(profileJSON), company.Name, company.Position, company.JD, values)
}

// summarizeProfile serialises the profile and keeps the first 500 characters.
func summarizeProfile(profile models.UserProfile) string {
	raw, err := json.Marshal(profile)
	if err != nil {
		return profile.Name
	}

	runes := []rune(string(raw))
	if len(runes) > profileSummaryLimit {
		runes = runes[:profileSummaryLimit]
	}
	return string(runes) + "..."
}

func quotedList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
