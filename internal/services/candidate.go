package services

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`[\w\.-]+@[\w\.-]+\.\w+`)

// ExtractCandidateName guesses the candidate's name from the top of the
// resume: the first of the first five lines that is at most four words and
// contains no email. Best effort; screening does not depend on it.
func ExtractCandidateName(resumeText string) string {
	lines := strings.Split(strings.TrimSpace(resumeText), "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(strings.Fields(line)) <= 4 && !strings.Contains(line, "@") {
			return line
		}
	}

	return "Unknown Candidate"
}

// ExtractCandidateEmail returns the first email address found in the resume,
// or an empty string.
func ExtractCandidateEmail(resumeText string) string {
	return emailPattern.FindString(resumeText)
}
