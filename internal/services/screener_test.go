package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"recruitai/resume-screener/internal/models"
)

type stubGemini struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubGemini) GenerateText(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

// The golden regression case: a mandatory skill (Kubernetes) is missing from
// the resume, so the screening must come back as a Reject with
// mandatory_skills_present=false.
func TestScreenMissingMandatorySkill(t *testing.T) {
	stub := &stubGemini{reply: `{
		"match_score": 55,
		"skills_match_score": 60,
		"experience_match_score": 70,
		"mandatory_skills_present": false,
		"strengths": ["Python", "AWS"],
		"gaps": ["Kubernetes"],
		"final_recommendation": "Reject",
		"reasoning": "The required Kubernetes experience is absent."
	}`}
	screener := NewScreenerService(stub)

	jd := "Backend engineer, Python, AWS, Kubernetes required"
	resume := "Jane Doe\njane@example.com\n5 years Python, FastAPI, AWS, no Kubernetes"

	result, err := screener.Screen(context.Background(), jd, resume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MandatorySkillsPresent {
		t.Fatalf("expected mandatory_skills_present to be false")
	}
	if result.FinalRecommendation != models.RecommendationReject {
		t.Fatalf("expected Reject, got %s", result.FinalRecommendation)
	}
	for _, score := range []int{result.MatchScore, result.SkillsMatchScore, result.ExperienceMatchScore} {
		if score < 0 || score > 100 {
			t.Fatalf("score out of range: %d", score)
		}
	}
	if result.CandidateName != "Jane Doe" {
		t.Fatalf("expected candidate name Jane Doe, got %q", result.CandidateName)
	}
	if result.CandidateEmail != "jane@example.com" {
		t.Fatalf("expected candidate email jane@example.com, got %q", result.CandidateEmail)
	}

	if !strings.Contains(stub.lastPrompt, jd) || !strings.Contains(stub.lastPrompt, "5 years Python") {
		t.Fatalf("prompt did not embed the inputs")
	}
}

func TestScreenEmptyJobDescription(t *testing.T) {
	screener := NewScreenerService(&stubGemini{})

	_, err := screener.Screen(context.Background(), "  ", "some resume")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestScreenEmptyResume(t *testing.T) {
	screener := NewScreenerService(&stubGemini{})

	_, err := screener.Screen(context.Background(), "some jd", "")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestScreenUpstreamFailure(t *testing.T) {
	stub := &stubGemini{err: fmt.Errorf("%w: %v", ErrUpstream, context.DeadlineExceeded)}
	screener := NewScreenerService(stub)

	_, err := screener.Screen(context.Background(), "jd", "resume")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestScreenUnparseableReply(t *testing.T) {
	stub := &stubGemini{reply: "the candidate looks fine to me"}
	screener := NewScreenerService(stub)

	_, err := screener.Screen(context.Background(), "jd", "resume")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}
