package llm

import (
	_ "embed"
	"strings"
)

//go:embed prompts/score_v1.txt
var scorePromptV1 string

// Resume text beyond this length adds token cost without moving scores.
const maxResumeChars = 3000

// BuildScoringPrompt renders the scoring prompt for a role and resume text.
func BuildScoringPrompt(input ScoreInput) string {
	resume := input.ResumeText
	if len(resume) > maxResumeChars {
		resume = resume[:maxResumeChars]
	}

	var sb strings.Builder
	sb.WriteString(strings.ReplaceAll(scorePromptV1, "{{JOB_ROLE}}", input.JobRole))
	sb.WriteString("\nResume:\n")
	sb.WriteString(resume)
	return sb.String()
}
