package models

// FitAnalysisResult mirrors the JSON object requested from Gemini. Every field
// is optional so that the empty fallback result is distinguishable from a
// genuine zero score.
type FitAnalysisResult struct {
	JobFit       *int     `json:"jobFit,omitempty"`
	CultureFit   *int     `json:"cultureFit,omitempty"`
	OverallScore *int     `json:"overallScore,omitempty"`
	Strengths    []string `json:"strengths,omitempty"`
	Weaknesses   []string `json:"weaknesses,omitempty"`
	Summary      *string  `json:"summary,omitempty"`
}

func (r FitAnalysisResult) IsEmpty() bool {
	return r.JobFit == nil &&
		r.CultureFit == nil &&
		r.OverallScore == nil &&
		r.Strengths == nil &&
		r.Weaknesses == nil &&
		r.Summary == nil
}
