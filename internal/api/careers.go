package api

import (
	"net/http"

	"career-guidance/internal/models"
)

// handleListCareerPaths lists catalog careers, optionally narrowed by
// category, difficulty, or a free-text search query. Filters combine.
func (rt *Router) handleListCareerPaths(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	careers := rt.catalog.All()
	if category := q.Get("category"); category != "" {
		careers = intersect(careers, rt.catalog.ByCategory(category))
	}
	if difficulty := q.Get("difficulty"); difficulty != "" {
		careers = intersect(careers, rt.catalog.ByDifficulty(difficulty))
	}
	if search := q.Get("search"); search != "" {
		careers = intersect(careers, rt.catalog.Search(search))
	}

	rt.writeJSON(w, http.StatusOK, map[string]interface{}{
		"careers": careers,
		"total":   len(careers),
	})
}

// intersect keeps entries of base that also appear in filtered, preserving
// base order. The catalog is six entries, quadratic is fine.
func intersect(base, filtered []models.Career) []models.Career {
	out := make([]models.Career, 0, len(base))
	for _, c := range base {
		for _, f := range filtered {
			if c.ID == f.ID {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
