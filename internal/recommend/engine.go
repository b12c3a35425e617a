// Package recommend scores the career catalog against a user's quiz answers.
package recommend

import (
	"sort"
	"sync"
	"time"

	"career-guidance/internal/catalog"
	"career-guidance/internal/common/logger"
	"career-guidance/internal/common/metrics"
	"career-guidance/internal/models"
)

// Engine computes ranked career recommendations and memoizes results per
// (userID, answerSetID) pair. One instance is constructed at startup and
// shared by all request handlers; the cache map is mutex-guarded since
// handlers run on concurrent goroutines.
type Engine struct {
	catalog *catalog.Catalog
	logger  logger.Logger

	mu    sync.RWMutex
	cache map[string]*models.RecommendationResult
}

// New creates a recommendation engine over the given catalog.
func New(cat *catalog.Catalog, log logger.Logger) *Engine {
	return &Engine{
		catalog: cat,
		logger:  log.WithFields(map[string]interface{}{"component": "recommend"}),
		cache:   make(map[string]*models.RecommendationResult),
	}
}

// GenerateRecommendations returns the ranked recommendation set for one quiz
// submission. Repeat calls with the same (userID, answerSetID) return the
// cached result by reference until ClearCache is called. Malformed or missing
// answers never fail; they degrade to neutral default scores.
func (e *Engine) GenerateRecommendations(userID string, answers []models.QuizAnswer, answerSetID string) *models.RecommendationResult {
	cacheKey := userID + "_" + answerSetID

	e.mu.RLock()
	cached, ok := e.cache[cacheKey]
	e.mu.RUnlock()
	if ok {
		e.logger.Debug("returning cached recommendations", map[string]interface{}{
			"userId":      userID,
			"answerSetId": answerSetID,
		})
		metrics.RecommendationCacheHits.WithLabelValues("memory").Inc()
		return cached
	}

	e.logger.Info("computing new recommendations", map[string]interface{}{
		"userId":      userID,
		"answerSetId": answerSetID,
	})
	metrics.RecommendationCacheMisses.WithLabelValues("memory").Inc()

	result := &models.RecommendationResult{
		Recommendations: e.computeRecommendations(answers),
		AnswerSetID:     answerSetID,
		UserID:          userID,
		ComputedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	// Concurrent misses for the same key may both compute; last write wins.
	// Computation is deterministic, so the race costs work, not correctness.
	e.mu.Lock()
	e.cache[cacheKey] = result
	e.mu.Unlock()

	metrics.RecommendationsComputed.Inc()

	return result
}

// ClearCache empties the memoization cache unconditionally.
func (e *Engine) ClearCache() {
	e.mu.Lock()
	e.cache = make(map[string]*models.RecommendationResult)
	e.mu.Unlock()
}

// CacheSize returns the number of memoized results.
func (e *Engine) CacheSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}

// computeRecommendations scores every catalog entry and sorts descending by
// total score. Ties keep catalog order.
func (e *Engine) computeRecommendations(answers []models.QuizAnswer) []models.CareerRecommendation {
	userSkills := models.AnswerString(answers, "skills")
	userInterests := models.AnswerTags(answers, "interests")
	userExperience := models.AnswerString(answers, "experience_level")

	careers := e.catalog.All()
	recommendations := make([]models.CareerRecommendation, 0, len(careers))

	for _, career := range careers {
		matchScore := calculateMatchScore(career, userSkills, userInterests, userExperience)
		demandScore := e.catalog.DemandScore(career.ID)

		// DemandScore stays on its 1-10 scale here, so TotalScore can exceed
		// 1.0. The ranking and the percentage displays downstream depend on
		// this behavior, so it is kept as-is.
		totalScore := matchScore*0.7 + float64(demandScore)*0.3

		recommendations = append(recommendations, models.CareerRecommendation{
			Career:      career,
			MatchScore:  round2(matchScore),
			DemandScore: demandScore,
			TotalScore:  round2(totalScore),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].TotalScore > recommendations[j].TotalScore
	})

	return recommendations
}
