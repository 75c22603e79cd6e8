// Package scoring computes the confidence score for an extraction result.
package scoring

import "github.com/truthtalent/cv-parser/internal/types"

// Weight table for the confidence model. The weights are a fixed design
// choice; changing any of them changes persisted scores.
const (
	weightEmail     = 0.30
	weightPhone     = 0.25
	weightName      = 0.20
	weightLocation  = 0.05
	weightPerSkill  = 0.01
	weightSkillsCap = 0.20
	weightYears     = 0.10
	weightPositions = 0.05
)

// Confidence combines the presence and quality of extracted fields into a
// single score, monotonically non-decreasing in verified information and
// clamped to [0, 1].
func Confidence(personal types.PersonalInfo, skills []string, experience types.ExperienceSummary) float64 {
	score := 0.0

	if personal.Email != "" {
		score += weightEmail
	}
	if personal.Phone != "" {
		score += weightPhone
	}
	if personal.HasName() {
		score += weightName
	}
	if personal.Location != "" {
		score += weightLocation
	}

	skillBonus := float64(len(skills)) * weightPerSkill
	if skillBonus > weightSkillsCap {
		skillBonus = weightSkillsCap
	}
	score += skillBonus

	if experience.Years > 0 {
		score += weightYears
	}
	if len(experience.Positions) > 0 {
		score += weightPositions
	}

	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}
	return score
}
