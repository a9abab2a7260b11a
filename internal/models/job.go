package models

type RecruitType string

const (
	RecruitNewGrad          RecruitType = "신입"
	RecruitExperienced      RecruitType = "경력"
	RecruitIntern           RecruitType = "인턴"
	RecruitMilitaryService  RecruitType = "병역특례"
	RecruitExperienceIntern RecruitType = "체험형인턴"
	RecruitConversionIntern RecruitType = "채용형인턴"
	RecruitGeneral          RecruitType = "일반채용"

	// RecruitSystem marks the diagnostic sentinel posting; Gemini never returns it.
	RecruitSystem RecruitType = "System"
)

var RecruitTypes = []RecruitType{
	RecruitNewGrad,
	RecruitExperienced,
	RecruitIntern,
	RecruitMilitaryService,
	RecruitExperienceIntern,
	RecruitConversionIntern,
	RecruitGeneral,
}

func RecruitTypeValues() []string {
	values := make([]string, len(RecruitTypes))
	for i, rt := range RecruitTypes {
		values[i] = string(rt)
	}
	return values
}

type JobPosting struct {
	CompanyName     string      `json:"companyName"`
	Position        string      `json:"position"`
	RecruitType     RecruitType `json:"recruitType"`
	JDSummary       string      `json:"jdSummary"`
	FitScore        int         `json:"fitScore"`
	ApplicationForm []string    `json:"applicationForm,omitempty"`
}
