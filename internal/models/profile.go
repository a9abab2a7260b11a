package models

import "strings"

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UserProfile is the applicant data forwarded to Gemini. It is owned by the
// caller and never stored.
type UserProfile struct {
	Name      string    `json:"name"`
	Skills    []string  `json:"skills"`
	Education string    `json:"education"`
	Projects  []Project `json:"projects,omitempty"`
	Summary   string    `json:"summary,omitempty"`
}

type CompanyInfo struct {
	Name            string   `json:"name"`
	Position        string   `json:"position"`
	JD              string   `json:"jd,omitempty"`
	Values          string   `json:"values,omitempty"`
	ApplicationForm []string `json:"applicationForm,omitempty"`
}

func (p UserProfile) SkillList() string {
	return strings.Join(p.Skills, ", ")
}
