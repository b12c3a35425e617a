package models

// Career is one entry of the static career catalog.
type Career struct {
	ID                      string   `json:"id"`
	Title                   string   `json:"title"`
	Description             string   `json:"description"`
	Category                string   `json:"category"`
	DifficultyLevel         string   `json:"difficultyLevel"`
	EstimatedDurationMonths int      `json:"estimatedDurationMonths"`
	RequiredSkills          []string `json:"requiredSkills"`
	SalaryRangeMin          int      `json:"salaryRangeMin"`
	SalaryRangeMax          int      `json:"salaryRangeMax"`
	JobOutlook              string   `json:"jobOutlook"`
}

// CareerRecommendation is a catalog entry scored against a user's quiz answers.
type CareerRecommendation struct {
	Career

	// MatchScore is the weighted skills/interest/experience composite in [0,1].
	MatchScore float64 `json:"matchScore"`
	// DemandScore is the static 1-10 market demand rating.
	DemandScore int `json:"demandScore"`
	// TotalScore blends MatchScore*0.7 + DemandScore*0.3. DemandScore is
	// blended on its 1-10 scale, so values above 1.0 are expected.
	TotalScore float64 `json:"totalScore"`
}

// RecommendationResult is one computed recommendation set for a quiz submission.
type RecommendationResult struct {
	Recommendations []CareerRecommendation `json:"recommendations"`
	AnswerSetID     string                 `json:"answerSetId"`
	UserID          string                 `json:"userId"`
	ComputedAt      string                 `json:"computedAt"`
}
