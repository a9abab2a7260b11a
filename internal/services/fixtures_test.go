package services_test

import "alfredoptarigan/career-copilot/internal/models"

func fixtureProfile() models.UserProfile {
	return models.UserProfile{
		Name:      "Kim Minsu",
		Skills:    []string{"Go", "PostgreSQL", "Kubernetes"},
		Education: "B.S. Computer Science, Seoul National University",
		Projects: []models.Project{
			{Title: "Ledger", Description: "Double-entry bookkeeping service in Go"},
		},
	}
}

func fixtureCompany() models.CompanyInfo {
	return models.CompanyInfo{
		Name:     "Toss",
		Position: "Backend Engineer",
		JD:       "Design and operate payment APIs.",
		Values:   "Focus on impact",
	}
}
