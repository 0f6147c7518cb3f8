package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"recruitai/resume-screener/internal/models"
)

type ResponseParser struct{}

func NewResponseParser() *ResponseParser {
	return &ResponseParser{}
}

// rawScreeningResult mirrors the JSON the prompt demands. Scores come in as
// floats because models routinely return 87.5 where an integer was asked for.
type rawScreeningResult struct {
	MatchScore             float64  `json:"match_score"`
	SkillsMatchScore       float64  `json:"skills_match_score"`
	ExperienceMatchScore   float64  `json:"experience_match_score"`
	MandatorySkillsPresent bool     `json:"mandatory_skills_present"`
	Strengths              []string `json:"strengths"`
	Gaps                   []string `json:"gaps"`
	FinalRecommendation    string   `json:"final_recommendation"`
	Reasoning              string   `json:"reasoning"`
}

// Parse extracts the evaluation JSON from the model reply and normalizes it
// into the response contract. A reply without a parseable JSON object is a
// parse error; out-of-range or off-enum values are repaired, not rejected.
func (p *ResponseParser) Parse(reply string) (*models.ScreeningResult, error) {
	jsonStr := extractJSON(reply)

	var raw rawScreeningResult
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal model reply: %v", ErrParse, err)
	}

	result := &models.ScreeningResult{
		MatchScore:             clampScore(raw.MatchScore),
		SkillsMatchScore:       clampScore(raw.SkillsMatchScore),
		ExperienceMatchScore:   clampScore(raw.ExperienceMatchScore),
		MandatorySkillsPresent: raw.MandatorySkillsPresent,
		Strengths:              raw.Strengths,
		Gaps:                   raw.Gaps,
		Reasoning:              strings.TrimSpace(raw.Reasoning),
	}

	// Anything outside the enum is treated as Reject
	if raw.FinalRecommendation == string(models.RecommendationShortlist) {
		result.FinalRecommendation = models.RecommendationShortlist
	} else {
		result.FinalRecommendation = models.RecommendationReject
	}

	if result.Strengths == nil {
		result.Strengths = []string{}
	}
	if result.Gaps == nil {
		result.Gaps = []string{}
	}

	return result, nil
}

func clampScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// extractJSON pulls the JSON object out of a reply that might wrap it in
// markdown fences or surrounding prose.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
