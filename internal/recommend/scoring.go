package recommend

import (
	"math"
	"strings"

	"career-guidance/internal/models"
)

// Sub-score weights. They sum to 1.0, so the accumulated weight division in
// calculateMatchScore is a no-op kept for parity with the weighting model.
const (
	skillsWeight     = 0.4
	interestWeight   = 0.3
	experienceWeight = 0.3
)

// difficultyOrdinals orders experience labels from novice to expert.
var difficultyOrdinals = map[string]int{
	"Beginner":        1,
	"Some Experience": 2,
	"Intermediate":    3,
	"Advanced":        4,
	"Expert":          5,
}

const (
	defaultUserOrdinal   = 1
	defaultCareerOrdinal = 3
)

// calculateMatchScore blends the three sub-scores into a [0,1] composite.
func calculateMatchScore(career models.Career, userSkills string, userInterests []string, userExperience string) float64 {
	score := 0.0
	maxScore := 0.0

	score += calculateSkillsMatch(career.RequiredSkills, userSkills) * skillsWeight
	maxScore += skillsWeight

	score += calculateInterestMatch(career.Category, userInterests) * interestWeight
	maxScore += interestWeight

	score += calculateExperienceMatch(career.DifficultyLevel, userExperience) * experienceWeight
	maxScore += experienceWeight

	return score / maxScore
}

// calculateSkillsMatch counts user skill tokens that overlap a required
// skill as a substring in either direction. Empty input scores the neutral
// 0.5 default.
func calculateSkillsMatch(requiredSkills []string, userSkills string) float64 {
	if userSkills == "" {
		return 0.5
	}

	userTokens := strings.Split(strings.ToLower(userSkills), ",")
	for i := range userTokens {
		userTokens[i] = strings.TrimSpace(userTokens[i])
	}

	required := make([]string, len(requiredSkills))
	for i, s := range requiredSkills {
		required[i] = strings.ToLower(s)
	}

	matches := 0
	for _, token := range userTokens {
		for _, req := range required {
			if strings.Contains(req, token) || strings.Contains(token, req) {
				matches++
				break
			}
		}
	}

	return math.Min(float64(matches)/float64(len(required)), 1)
}

// calculateInterestMatch compares the career category against the user's
// interest tags: exact category hit 1.0, substring overlap 0.8, none 0.3,
// no stated interests 0.5.
func calculateInterestMatch(careerCategory string, userInterests []string) float64 {
	if len(userInterests) == 0 {
		return 0.5
	}

	category := strings.ToLower(careerCategory)
	for _, interest := range userInterests {
		if strings.ToLower(interest) == category {
			return 1.0
		}
	}
	for _, interest := range userInterests {
		lowered := strings.ToLower(interest)
		if strings.Contains(category, lowered) || strings.Contains(lowered, category) {
			return 0.8
		}
	}
	return 0.3
}

// calculateExperienceMatch maps both levels through the ordinal table.
// Exact match 1.0, overqualified 0.8, underqualified 0.6. Unrecognized
// labels fall back to ordinal 1 for the user and 3 for the career.
func calculateExperienceMatch(difficultyLevel, userExperience string) float64 {
	userLevel, ok := difficultyOrdinals[userExperience]
	if !ok {
		userLevel = defaultUserOrdinal
	}
	requiredLevel, ok := difficultyOrdinals[difficultyLevel]
	if !ok {
		requiredLevel = defaultCareerOrdinal
	}

	switch {
	case userLevel == requiredLevel:
		return 1.0
	case userLevel > requiredLevel:
		return 0.8
	default:
		return 0.6
	}
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
