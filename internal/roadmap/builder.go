// Package roadmap expands a career recommendation into a fixed five-step
// learning plan.
package roadmap

import (
	"fmt"
	"time"

	"career-guidance/internal/common/logger"
	"career-guidance/internal/common/metrics"
	"career-guidance/internal/models"
)

// Builder generates career roadmaps from the fixed step templates. It is
// stateless: every call recomputes.
type Builder struct {
	logger logger.Logger
}

// New creates a roadmap builder.
func New(log logger.Logger) *Builder {
	return &Builder{
		logger: log.WithFields(map[string]interface{}{"component": "roadmap"}),
	}
}

// GenerateRoadmap builds the initial roadmap state for one career. The five
// steps and their resources come from fixed templates; only the roadmap's
// title and description vary with the career. The ID is unique only to
// millisecond granularity.
func (b *Builder) GenerateRoadmap(career models.CareerRecommendation) *models.CareerRoadmap {
	now := time.Now().UTC()

	roadmap := &models.CareerRoadmap{
		ID:                      fmt.Sprintf("roadmap_%s_%d", career.ID, now.UnixMilli()),
		CareerID:                career.ID,
		Title:                   fmt.Sprintf("%s Career Roadmap", career.Title),
		Description:             fmt.Sprintf("A step-by-step guide to becoming a %s", career.Title),
		Steps:                   buildSteps(),
		EstimatedDurationMonths: career.EstimatedDurationMonths,
		CurrentStep:             1,
		IsCompleted:             false,
		CreatedAt:               now.Format(time.RFC3339),
		UpdatedAt:               now.Format(time.RFC3339),
	}

	b.logger.Info("generated roadmap", map[string]interface{}{
		"roadmapId": roadmap.ID,
		"careerId":  career.ID,
	})
	metrics.RoadmapsGenerated.Inc()

	return roadmap
}

// CalculateProgress summarizes completion across a roadmap's steps. Pure;
// marking steps complete is the caller's responsibility.
func (b *Builder) CalculateProgress(roadmap *models.CareerRoadmap) models.RoadmapProgress {
	completed := 0
	weeksRemaining := 0
	for _, step := range roadmap.Steps {
		if step.IsCompleted {
			completed++
		} else {
			weeksRemaining += step.DurationWeeks
		}
	}

	total := len(roadmap.Steps)
	percentage := 0
	if total > 0 {
		percentage = int(float64(completed)/float64(total)*100 + 0.5)
	}

	return models.RoadmapProgress{
		CompletedSteps:          completed,
		TotalSteps:              total,
		ProgressPercentage:      percentage,
		EstimatedWeeksRemaining: weeksRemaining,
	}
}
