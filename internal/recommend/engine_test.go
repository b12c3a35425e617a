package recommend

import (
	"testing"

	"career-guidance/internal/catalog"
	"career-guidance/internal/common/logger"
	"career-guidance/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestEngine(t *testing.T) *Engine {
	return New(catalog.New(), logger.NewTestLogger(t))
}

func fullAnswers() []models.QuizAnswer {
	return []models.QuizAnswer{
		{QuestionID: "skills", Answer: "Python, Statistics"},
		{QuestionID: "career_goal", Answer: "Become a data scientist"},
		{QuestionID: "experience_level", Answer: "Advanced"},
		{QuestionID: "interests", Answer: []string{"Technology"}},
		{QuestionID: "learning_style", Answer: "Online courses"},
		{QuestionID: "time_commitment", Answer: float64(10)},
	}
}

func findRecommendation(t *testing.T, result *models.RecommendationResult, careerID string) models.CareerRecommendation {
	t.Helper()
	for _, rec := range result.Recommendations {
		if rec.ID == careerID {
			return rec
		}
	}
	t.Fatalf("career %s not in recommendations", careerID)
	return models.CareerRecommendation{}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestEngine_GenerateRecommendations_ScoresDataScientistScenario(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.GenerateRecommendations("user-1", fullAnswers(), "quiz-1")

	require.NotNil(t, result)
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, "quiz-1", result.AnswerSetID)
	assert.NotEmpty(t, result.ComputedAt)
	assert.Len(t, result.Recommendations, 6)

	// Two of four required skills, exact interest, exact experience level.
	ds := findRecommendation(t, result, "data-scientist")
	assert.Equal(t, 0.8, ds.MatchScore)
	assert.Equal(t, 9, ds.DemandScore)
	assert.Equal(t, 3.26, ds.TotalScore)
}

func TestEngine_GenerateRecommendations_EmptyAnswersUseDefaults(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.GenerateRecommendations("user-1", nil, "quiz-empty")

	require.Len(t, result.Recommendations, 6)

	// Highest demand wins when every match score is near the neutral default.
	assert.Equal(t, "software-engineer", result.Recommendations[0].ID)
	assert.Equal(t, 0.53, result.Recommendations[0].MatchScore)
	assert.Equal(t, 3.37, result.Recommendations[0].TotalScore)

	// Equal totals keep catalog order.
	assert.Equal(t, "data-scientist", result.Recommendations[1].ID)
	assert.Equal(t, "healthcare-admin", result.Recommendations[2].ID)
	assert.Equal(t, 3.07, result.Recommendations[1].TotalScore)
	assert.Equal(t, 3.07, result.Recommendations[2].TotalScore)
}

func TestEngine_GenerateRecommendations_SortedDescending(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.GenerateRecommendations("user-1", fullAnswers(), "quiz-1")

	for i := 1; i < len(result.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			result.Recommendations[i-1].TotalScore,
			result.Recommendations[i].TotalScore,
		)
	}
}

func TestEngine_GenerateRecommendations_MalformedAnswersDegrade(t *testing.T) {
	engine := newTestEngine(t)

	malformed := []models.QuizAnswer{
		{QuestionID: "skills", Answer: float64(42)},
		{QuestionID: "interests", Answer: "not-a-list"},
		{QuestionID: "experience_level", Answer: []string{"Advanced"}},
	}

	result := engine.GenerateRecommendations("user-1", malformed, "quiz-bad")
	baseline := engine.GenerateRecommendations("user-1", nil, "quiz-none")

	require.Len(t, result.Recommendations, 6)
	for i := range result.Recommendations {
		assert.Equal(t, baseline.Recommendations[i].ID, result.Recommendations[i].ID)
		assert.Equal(t, baseline.Recommendations[i].TotalScore, result.Recommendations[i].TotalScore)
	}
}

// ==========================
// Memoization Tests
// ==========================

func TestEngine_GenerateRecommendations_CachesByUserAndAnswerSet(t *testing.T) {
	engine := newTestEngine(t)

	first := engine.GenerateRecommendations("user-1", fullAnswers(), "quiz-1")
	second := engine.GenerateRecommendations("user-1", fullAnswers(), "quiz-1")

	assert.Same(t, first, second)
	assert.Equal(t, 1, engine.CacheSize())

	other := engine.GenerateRecommendations("user-1", fullAnswers(), "quiz-2")
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, engine.CacheSize())

	otherUser := engine.GenerateRecommendations("user-2", fullAnswers(), "quiz-1")
	assert.NotSame(t, first, otherUser)
	assert.Equal(t, 3, engine.CacheSize())
}

func TestEngine_ClearCache(t *testing.T) {
	engine := newTestEngine(t)

	first := engine.GenerateRecommendations("user-1", fullAnswers(), "quiz-1")
	require.Equal(t, 1, engine.CacheSize())

	engine.ClearCache()
	assert.Equal(t, 0, engine.CacheSize())

	second := engine.GenerateRecommendations("user-1", fullAnswers(), "quiz-1")
	assert.NotSame(t, first, second)
	assert.Equal(t, first.Recommendations, second.Recommendations)
}
