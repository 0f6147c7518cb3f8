package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"recruitai/resume-screener/internal/models"
)

type ScreenerService interface {
	Screen(ctx context.Context, jobDescription, resumeText string) (*models.ScreeningResult, error)
}

type screenerService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
	parser        *ResponseParser
}

func NewScreenerService(geminiService GeminiService) ScreenerService {
	return &screenerService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		parser:        NewResponseParser(),
	}
}

// Screen runs one synchronous evaluation: validate inputs, build the prompt,
// call the model, parse its reply, and enrich the result with the candidate
// name and email pulled from the resume itself.
func (s *screenerService) Screen(ctx context.Context, jobDescription, resumeText string) (*models.ScreeningResult, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	resumeText = strings.TrimSpace(resumeText)

	if jobDescription == "" {
		return nil, fmt.Errorf("%w: job_description is required", ErrValidation)
	}
	if resumeText == "" {
		return nil, fmt.Errorf("%w: resume content is required", ErrValidation)
	}

	prompt := s.promptBuilder.BuildScreeningPrompt(jobDescription, resumeText)
	log.Printf("📝 Screening prompt length: %d characters", len(prompt))

	reply, err := s.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate evaluation: %w", err)
	}

	log.Printf("✅ Screening response received: %d characters", len(reply))

	result, err := s.parser.Parse(reply)
	if err != nil {
		return nil, fmt.Errorf("failed to parse evaluation: %w", err)
	}

	result.CandidateName = ExtractCandidateName(resumeText)
	result.CandidateEmail = ExtractCandidateEmail(resumeText)

	return result, nil
}
