package screening

// Weights for the final score. They sum to 1.0 with the ATS term scaled
// from its 0-100 range down to 0-1.
const (
	weightSkill         = 0.50
	weightExperience    = 0.20
	weightRole          = 0.15
	weightATS           = 0.10
	weightCertification = 0.05
)

// Aggregate folds the ATS score and dimension scores into the final score.
// Inputs are clamped to their valid ranges first so a misbehaving provider
// cannot push the result outside [0,1].
func Aggregate(atsScore int, d DimensionScores) float64 {
	ats := clampInt(atsScore, 0, 100)
	return weightSkill*clamp01(d.SkillMatch) +
		weightExperience*clamp01(d.ExperienceMatch) +
		weightRole*clamp01(d.RoleMatch) +
		weightATS*(float64(ats)/100.0) +
		weightCertification*clamp01(d.CertificationBonus)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
