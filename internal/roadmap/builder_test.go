package roadmap

import (
	"fmt"
	"strings"
	"testing"

	"career-guidance/internal/common/logger"
	"career-guidance/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestBuilder(t *testing.T) *Builder {
	return New(logger.NewTestLogger(t))
}

func testRecommendation() models.CareerRecommendation {
	return models.CareerRecommendation{
		Career: models.Career{
			ID:                      "data-scientist",
			Title:                   "Data Scientist",
			EstimatedDurationMonths: 18,
		},
		MatchScore:  0.8,
		DemandScore: 9,
		TotalScore:  3.26,
	}
}

// ==========================
// Roadmap Generation Tests
// ==========================

func TestBuilder_GenerateRoadmap(t *testing.T) {
	builder := newTestBuilder(t)

	roadmap := builder.GenerateRoadmap(testRecommendation())

	require.NotNil(t, roadmap)
	assert.True(t, strings.HasPrefix(roadmap.ID, "roadmap_data-scientist_"))
	assert.Equal(t, "data-scientist", roadmap.CareerID)
	assert.Equal(t, "Data Scientist Career Roadmap", roadmap.Title)
	assert.Equal(t, "A step-by-step guide to becoming a Data Scientist", roadmap.Description)
	assert.Equal(t, 18, roadmap.EstimatedDurationMonths)
	assert.Equal(t, 1, roadmap.CurrentStep)
	assert.False(t, roadmap.IsCompleted)
	assert.Equal(t, roadmap.CreatedAt, roadmap.UpdatedAt)
}

func TestBuilder_GenerateRoadmap_StepTemplates(t *testing.T) {
	builder := newTestBuilder(t)

	roadmap := builder.GenerateRoadmap(testRecommendation())
	require.Len(t, roadmap.Steps, 5)

	tests := []struct {
		id            string
		durationWeeks int
		resources     int
	}{
		{StepFoundation, 8, 2},
		{StepCoreKnowledge, 12, 2},
		{StepPracticalExperience, 16, 2},
		{StepSpecialization, 10, 1},
		{StepProfessionalDevelopment, 8, 1},
	}

	for i, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			step := roadmap.Steps[i]
			assert.Equal(t, tt.id, step.ID)
			assert.Equal(t, i+1, step.Order)
			assert.Equal(t, tt.durationWeeks, step.DurationWeeks)
			assert.Len(t, step.Resources, tt.resources)
			assert.False(t, step.IsCompleted)
		})
	}
}

func TestBuilder_GenerateRoadmap_FreeAndPaidResources(t *testing.T) {
	builder := newTestBuilder(t)

	roadmap := builder.GenerateRoadmap(testRecommendation())

	foundation := roadmap.Steps[0]
	assert.True(t, foundation.Resources[0].IsFree)
	assert.Zero(t, foundation.Resources[0].Cost)
	assert.False(t, foundation.Resources[1].IsFree)
	assert.Equal(t, float64(99), foundation.Resources[1].Cost)
}

func TestBuilder_GenerateRoadmap_TitleVariesWithCareer(t *testing.T) {
	builder := newTestBuilder(t)

	careers := []string{"Software Engineer", "UI/UX Designer", "Financial Analyst"}
	for _, title := range careers {
		rec := testRecommendation()
		rec.Title = title

		roadmap := builder.GenerateRoadmap(rec)
		assert.Equal(t, fmt.Sprintf("%s Career Roadmap", title), roadmap.Title)
	}
}

// ==========================
// Progress Calculation Tests
// ==========================

func TestBuilder_CalculateProgress(t *testing.T) {
	builder := newTestBuilder(t)

	tests := []struct {
		name           string
		completedSteps []int
		percentage     int
		weeksRemaining int
	}{
		{
			name:           "nothing completed",
			completedSteps: nil,
			percentage:     0,
			weeksRemaining: 54,
		},
		{
			name:           "two of five completed",
			completedSteps: []int{0, 1},
			percentage:     40,
			weeksRemaining: 34,
		},
		{
			name:           "everything completed",
			completedSteps: []int{0, 1, 2, 3, 4},
			percentage:     100,
			weeksRemaining: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roadmap := builder.GenerateRoadmap(testRecommendation())
			for _, i := range tt.completedSteps {
				roadmap.Steps[i].IsCompleted = true
			}

			progress := builder.CalculateProgress(roadmap)

			assert.Equal(t, len(tt.completedSteps), progress.CompletedSteps)
			assert.Equal(t, 5, progress.TotalSteps)
			assert.Equal(t, tt.percentage, progress.ProgressPercentage)
			assert.Equal(t, tt.weeksRemaining, progress.EstimatedWeeksRemaining)
		})
	}
}

func TestBuilder_CalculateProgress_EmptyRoadmap(t *testing.T) {
	builder := newTestBuilder(t)

	progress := builder.CalculateProgress(&models.CareerRoadmap{})

	assert.Zero(t, progress.CompletedSteps)
	assert.Zero(t, progress.TotalSteps)
	assert.Zero(t, progress.ProgressPercentage)
	assert.Zero(t, progress.EstimatedWeeksRemaining)
}
