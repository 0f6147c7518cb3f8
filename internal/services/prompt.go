package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildScreeningPrompt composes the fixed instruction template for one
// resume-vs-JD evaluation. Pure function; the JSON shape it demands is the
// ScreeningResult contract and must stay in sync with it.
func (pb *PromptBuilder) BuildScreeningPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`You are an expert HR Recruitment AI.

Your task is to evaluate a candidate's Resume against a Job Description (JD) and provide an objective, structured assessment.

### Evaluation Guidelines:

1. match_score (0-100): overall fit of the candidate for the role.
   - 90-100: Excellent match
   - 75-89: Strong match
   - 60-74: Partial match
   - Below 60: Weak match

2. skills_match_score (0-100): how well the candidate's skills cover the skills the JD asks for. Count only skills appearing in BOTH JD and Resume. Do not invent skills.

3. experience_match_score (0-100): how well the candidate's years of experience and seniority match the JD.

4. mandatory_skills_present (boolean): true only if EVERY skill the JD marks as required or mandatory appears in the Resume. If any required skill is missing, this must be false.

5. strengths: list of the candidate's strongest points relevant to this JD.

6. gaps: list of missing or weak areas, including every missing mandatory skill.

7. final_recommendation: "Shortlist" if the candidate is a strong fit AND all mandatory skills are present, otherwise "Reject". Must be exactly "Shortlist" or "Reject".

8. reasoning: a concise 2-3 sentence professional assessment justifying the recommendation.

JOB DESCRIPTION:
%s

RESUME:
%s

You must output valid JSON only.
No markdown formatting.

Required JSON structure:

{
  "match_score": number (0-100),
  "skills_match_score": number (0-100),
  "experience_match_score": number (0-100),
  "mandatory_skills_present": boolean,
  "strengths": [string],
  "gaps": [string],
  "final_recommendation": "Shortlist" | "Reject",
  "reasoning": string
}`, jobDescription, resumeText)
}
