package api

import (
	"errors"
	"net/http"

	"career-guidance/internal/cache"
	stderrors "career-guidance/internal/common/errors"
	"career-guidance/internal/common/metrics"
	"career-guidance/internal/models"
	"career-guidance/internal/storage"
)

// recommendationsResponse carries the result plus where it came from.
type recommendationsResponse struct {
	Success bool                         `json:"success"`
	Source  string                       `json:"source"`
	Result  *models.RecommendationResult `json:"result"`
}

// handleGetRecommendations serves ranked career recommendations for a user.
// Lookup order is Redis, then Postgres, then a fresh engine computation from
// the user's stored quiz answers. The source field reports which layer
// answered.
func (rt *Router) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		rt.writeError(w, stderrors.NewMissingUserIDError())
		return
	}
	answerSetID := r.URL.Query().Get("answerSetId")

	var quiz *models.QuizResult
	if answerSetID == "" {
		latest, err := rt.quizStore.LatestByUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, storage.ErrQuizNotFound) {
				rt.writeError(w, stderrors.NewQuizNotFoundError(userID))
				return
			}
			rt.writeError(w, stderrors.NewQueryExecutionFailedError("latest quiz", err))
			return
		}
		quiz = latest
		answerSetID = latest.AnswerSetID
	}

	if cached, err := rt.recCache.Get(r.Context(), userID, answerSetID); err == nil {
		rt.writeJSON(w, http.StatusOK, recommendationsResponse{
			Success: true,
			Source:  "cache",
			Result:  cached,
		})
		return
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		// Redis being down degrades to the database path.
		rt.logger.Warn("recommendation cache unavailable", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
	}

	stored, err := rt.recStore.FindByAnswerSet(r.Context(), userID, answerSetID)
	if err == nil {
		metrics.RecommendationCacheHits.WithLabelValues("database").Inc()
		rt.cacheResult(r, stored)
		rt.writeJSON(w, http.StatusOK, recommendationsResponse{
			Success: true,
			Source:  "database",
			Result:  stored,
		})
		return
	}
	if !errors.Is(err, storage.ErrRecommendationsNotFound) {
		rt.writeError(w, stderrors.NewQueryExecutionFailedError("recommendations by answer set", err))
		return
	}
	metrics.RecommendationCacheMisses.WithLabelValues("database").Inc()

	if quiz == nil {
		quiz, err = rt.quizStore.ByAnswerSet(r.Context(), userID, answerSetID)
		if err != nil {
			if errors.Is(err, storage.ErrQuizNotFound) {
				rt.writeError(w, stderrors.NewQuizNotFoundError(userID))
				return
			}
			rt.writeError(w, stderrors.NewQueryExecutionFailedError("quiz by answer set", err))
			return
		}
	}

	result := rt.engine.GenerateRecommendations(userID, quiz.Answers, answerSetID)

	if err := rt.recStore.SaveResult(r.Context(), result); err != nil {
		// The computed result is still good; persistence catches up on the
		// next request.
		rt.logger.Warn("failed to persist recommendations", map[string]interface{}{
			"userId":      userID,
			"answerSetId": answerSetID,
			"error":       err.Error(),
		})
	}
	rt.cacheResult(r, result)

	rt.writeJSON(w, http.StatusOK, recommendationsResponse{
		Success: true,
		Source:  "computed",
		Result:  result,
	})
}

// cacheResult writes a result to Redis, logging instead of failing the
// request when the cache is unreachable.
func (rt *Router) cacheResult(r *http.Request, result *models.RecommendationResult) {
	if err := rt.recCache.Set(r.Context(), result); err != nil {
		rt.logger.Warn("failed to cache recommendations", map[string]interface{}{
			"userId":      result.UserID,
			"answerSetId": result.AnswerSetID,
			"error":       err.Error(),
		})
	}
}
