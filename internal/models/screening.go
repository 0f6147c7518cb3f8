package models

type ScreeningRequest struct {
	JobDescription string `json:"job_description"`
	ResumeText     string `json:"resume_text"`
}

type Recommendation string

const (
	RecommendationShortlist Recommendation = "Shortlist"
	RecommendationReject    Recommendation = "Reject"
)

// ScreeningResult is the JSON contract returned to clients. The field names
// are consumed by downstream tooling and must not change.
type ScreeningResult struct {
	MatchScore             int            `json:"match_score"`
	SkillsMatchScore       int            `json:"skills_match_score"`
	ExperienceMatchScore   int            `json:"experience_match_score"`
	MandatorySkillsPresent bool           `json:"mandatory_skills_present"`
	Strengths              []string       `json:"strengths"`
	Gaps                   []string       `json:"gaps"`
	FinalRecommendation    Recommendation `json:"final_recommendation"`
	Reasoning              string         `json:"reasoning"`
	CandidateName          string         `json:"candidate_name"`
	CandidateEmail         string         `json:"candidate_email"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
