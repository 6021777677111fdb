package screening

import (
	"encoding/json"
	"errors"
	"fmt"
)

// modelResponse mirrors the JSON contract the scoring prompt demands.
// ats_score and recommendation are required; the dimension scores default
// to zero when the model omits them.
type modelResponse struct {
	ATSScore           *int     `json:"ats_score"`
	Recommendation     string   `json:"recommendation"`
	Reasons            []string `json:"reasons"`
	SkillMatch         float64  `json:"skill_match"`
	ExperienceMatch    float64  `json:"experience_match"`
	RoleMatch          float64  `json:"role_match"`
	CertificationBonus float64  `json:"certification_bonus"`
}

var errMissingATSScore = errors.New("model response missing ats_score")

// parseModelResponse validates the raw model output. A response that does
// not decode, or that lacks required fields, is a schema failure and must
// never be retried.
func parseModelResponse(raw json.RawMessage) (AtsCheck, DimensionScores, error) {
	var mr modelResponse
	if err := json.Unmarshal(raw, &mr); err != nil {
		return AtsCheck{}, DimensionScores{}, fmt.Errorf("decode model response: %w", err)
	}
	if mr.ATSScore == nil {
		return AtsCheck{}, DimensionScores{}, errMissingATSScore
	}
	ats := AtsCheck{
		Score:          clampInt(*mr.ATSScore, 0, 100),
		Recommendation: mr.Recommendation,
		Reasons:        mr.Reasons,
	}
	if ats.Reasons == nil {
		ats.Reasons = []string{}
	}
	dims := DimensionScores{
		SkillMatch:         clamp01(mr.SkillMatch),
		ExperienceMatch:    clamp01(mr.ExperienceMatch),
		RoleMatch:          clamp01(mr.RoleMatch),
		CertificationBonus: clamp01(mr.CertificationBonus),
	}
	return ats, dims, nil
}
