package api

import (
	"errors"
	"net/http"
	"strings"

	stderrors "career-guidance/internal/common/errors"
	"career-guidance/internal/models"
	"career-guidance/internal/storage"

	"github.com/go-chi/chi/v5"
)

// handleGetRoadmap generates a learning roadmap for one catalog career.
// Unknown career IDs are a 404, not a placeholder roadmap. When a userId is
// supplied the roadmap is also persisted so step completion can be tracked.
func (rt *Router) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	careerID := r.URL.Query().Get("careerId")
	if careerID == "" {
		rt.writeError(w, stderrors.NewMissingCareerIDError())
		return
	}

	career, ok := rt.catalog.ByID(careerID)
	if !ok {
		rt.writeError(w, stderrors.NewCareerNotFoundError(careerID))
		return
	}

	rec := models.CareerRecommendation{
		Career:      career,
		DemandScore: rt.catalog.DemandScore(careerID),
	}
	roadmap := rt.builder.GenerateRoadmap(rec)

	userID := r.URL.Query().Get("userId")
	if userID != "" {
		if err := rt.roadmapStore.Save(r.Context(), userID, roadmap); err != nil {
			rt.writeError(w, stderrors.NewRoadmapStorageError(err))
			return
		}
	}

	rt.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"roadmap": roadmap,
	})
}

// handleGetStoredRoadmap loads a persisted roadmap with its progress summary.
func (rt *Router) handleGetStoredRoadmap(w http.ResponseWriter, r *http.Request) {
	roadmapID := chi.URLParam(r, "roadmapID")

	roadmap, err := rt.roadmapStore.FindByID(r.Context(), roadmapID)
	if err != nil {
		if errors.Is(err, storage.ErrRoadmapNotFound) {
			rt.writeError(w, stderrors.NewRoadmapNotFoundError("roadmapId: "+roadmapID))
			return
		}
		rt.writeError(w, stderrors.NewQueryExecutionFailedError("roadmap by id", err))
		return
	}

	rt.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"roadmap":  roadmap,
		"progress": rt.builder.CalculateProgress(roadmap),
	})
}

// handleCompleteStep marks one step of a stored roadmap as completed and
// returns the updated roadmap with recomputed progress.
func (rt *Router) handleCompleteStep(w http.ResponseWriter, r *http.Request) {
	roadmapID := chi.URLParam(r, "roadmapID")
	stepID := chi.URLParam(r, "stepID")

	roadmap, err := rt.roadmapStore.MarkStepCompleted(r.Context(), roadmapID, stepID)
	if err != nil {
		if errors.Is(err, storage.ErrRoadmapNotFound) || strings.Contains(err.Error(), "not in roadmap") {
			rt.writeError(w, stderrors.NewRoadmapNotFoundError(err.Error()))
			return
		}
		rt.writeError(w, stderrors.NewRoadmapStorageError(err))
		return
	}

	rt.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"roadmap":  roadmap,
		"progress": rt.builder.CalculateProgress(roadmap),
	})
}
