package models

import "time"

type GenerateResumeRequest struct {
	Profile          *UserProfile `json:"profile"`
	CompanyInfo      *CompanyInfo `json:"companyInfo"`
	Prompt           string       `json:"prompt"`
	SelectedProjects []string     `json:"selectedProjects"`
	ApplicationForm  []string     `json:"applicationForm"`
}

type GenerateResumeResponse struct {
	Content        string    `json:"content"`
	GeneratedAt    time.Time `json:"generatedAt"`
	Status         string    `json:"status"`
	FallbackReason string    `json:"fallbackReason,omitempty"`
}

type JobSearchRequest struct {
	Profile *UserProfile `json:"profile"`
	Query   string       `json:"query"`
}

type JobSearchResponse struct {
	Jobs           []JobPosting `json:"jobs"`
	Status         string       `json:"status"`
	FallbackReason string       `json:"fallbackReason,omitempty"`
}

type FitAnalysisRequest struct {
	Profile     *UserProfile `json:"profile"`
	CompanyInfo *CompanyInfo `json:"companyInfo"`
}

type FitAnalysisResponse struct {
	Result         FitAnalysisResult `json:"result"`
	Status         string            `json:"status"`
	FallbackReason string            `json:"fallbackReason,omitempty"`
}

type ResumeTextResponse struct {
	Text      string `json:"text"`
	PageCount int    `json:"pageCount"`
	Filename  string `json:"filename"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
