package screening

import "time"

const (
	StatusProcessed      = "processed"
	StatusBelowThreshold = "below_threshold"
)

// Submission is one resume to screen. It lives for a single request and is
// discarded after processing.
type Submission struct {
	FileName          string
	File              []byte
	JobRole           string
	CandidateName     string
	CandidateEmail    string
	CandidateLinkedIn string
}

// CandidateInfo is the merged contact view; absent fields carry "N/A".
type CandidateInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
}

// AtsCheck is the ATS compatibility judgment for a submission.
type AtsCheck struct {
	Score          int      `json:"score"`
	Threshold      int      `json:"threshold"`
	Passed         bool     `json:"passed"`
	Recommendation string   `json:"recommendation"`
	Reasons        []string `json:"reasons"`
}

// DimensionScores are the per-axis sub-scores, each in [0,1].
type DimensionScores struct {
	SkillMatch         float64 `json:"skill_match"`
	ExperienceMatch    float64 `json:"experience_match"`
	RoleMatch          float64 `json:"role_match"`
	CertificationBonus float64 `json:"certification_bonus"`
}

// Result is the immutable outcome of one screening. FinalScore is computed
// only by Aggregate.
type Result struct {
	ID              string          `json:"id"`
	JobRole         string          `json:"job_role"`
	Status          string          `json:"status"`
	CandidateInfo   CandidateInfo   `json:"candidate_info"`
	AtsCheck        AtsCheck        `json:"ats_check"`
	DimensionScores DimensionScores `json:"dimension_scores"`
	FinalScore      float64         `json:"final_score"`
	EmailSent       bool            `json:"email_sent"`
	CreatedAt       time.Time       `json:"created_at"`
}
