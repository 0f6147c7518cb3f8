package services

import (
	"errors"
	"testing"

	"recruitai/resume-screener/internal/models"
)

func TestParseValidReply(t *testing.T) {
	parser := NewResponseParser()

	reply := `{
		"match_score": 82,
		"skills_match_score": 78,
		"experience_match_score": 85,
		"mandatory_skills_present": true,
		"strengths": ["Strong Go experience", "Cloud background"],
		"gaps": ["No Terraform"],
		"final_recommendation": "Shortlist",
		"reasoning": "Solid fit for the role."
	}`

	result, err := parser.Parse(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MatchScore != 82 {
		t.Fatalf("expected match_score 82, got %d", result.MatchScore)
	}
	if result.FinalRecommendation != models.RecommendationShortlist {
		t.Fatalf("expected Shortlist, got %s", result.FinalRecommendation)
	}
	if !result.MandatorySkillsPresent {
		t.Fatalf("expected mandatory_skills_present to be true")
	}
	if len(result.Strengths) != 2 || len(result.Gaps) != 1 {
		t.Fatalf("unexpected strengths/gaps: %v / %v", result.Strengths, result.Gaps)
	}
}

func TestParseStripsMarkdownFences(t *testing.T) {
	parser := NewResponseParser()

	reply := "Here is the evaluation:\n```json\n" +
		`{"match_score": 40, "skills_match_score": 35, "experience_match_score": 50,
		"mandatory_skills_present": false, "strengths": [], "gaps": ["Missing Kubernetes"],
		"final_recommendation": "Reject", "reasoning": "Key skills missing."}` +
		"\n```"

	result, err := parser.Parse(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FinalRecommendation != models.RecommendationReject {
		t.Fatalf("expected Reject, got %s", result.FinalRecommendation)
	}
	if result.MatchScore != 40 {
		t.Fatalf("expected match_score 40, got %d", result.MatchScore)
	}
}

func TestParseClampsAndRoundsScores(t *testing.T) {
	parser := NewResponseParser()

	reply := `{"match_score": 150, "skills_match_score": -10, "experience_match_score": 87.6,
		"mandatory_skills_present": true, "strengths": null, "gaps": null,
		"final_recommendation": "Shortlist", "reasoning": "ok"}`

	result, err := parser.Parse(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MatchScore != 100 {
		t.Fatalf("expected clamped match_score 100, got %d", result.MatchScore)
	}
	if result.SkillsMatchScore != 0 {
		t.Fatalf("expected clamped skills_match_score 0, got %d", result.SkillsMatchScore)
	}
	if result.ExperienceMatchScore != 88 {
		t.Fatalf("expected rounded experience_match_score 88, got %d", result.ExperienceMatchScore)
	}
	if result.Strengths == nil || result.Gaps == nil {
		t.Fatalf("expected empty slices, got nil")
	}
}

func TestParseCoercesUnknownRecommendation(t *testing.T) {
	parser := NewResponseParser()

	reply := `{"match_score": 70, "skills_match_score": 70, "experience_match_score": 70,
		"mandatory_skills_present": true, "strengths": [], "gaps": [],
		"final_recommendation": "Maybe", "reasoning": "borderline"}`

	result, err := parser.Parse(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FinalRecommendation != models.RecommendationReject {
		t.Fatalf("expected off-enum recommendation coerced to Reject, got %s", result.FinalRecommendation)
	}
}

func TestParseRejectsNonJSONReply(t *testing.T) {
	parser := NewResponseParser()

	_, err := parser.Parse("I am sorry, I cannot evaluate this resume.")
	if err == nil {
		t.Fatalf("expected error for non-JSON reply")
	}
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}
