package storage

import (
	"context"
	"database/sql"
	"testing"

	"career-guidance/internal/common/logger"
	"career-guidance/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func testResult() *models.RecommendationResult {
	return &models.RecommendationResult{
		UserID:      "user-1",
		AnswerSetID: "quiz_123_abc",
		ComputedAt:  "2026-08-28T10:00:00Z",
		Recommendations: []models.CareerRecommendation{
			{
				Career: models.Career{
					ID:                      "software-engineer",
					Title:                   "Software Engineer",
					Description:             "Design, develop, and maintain software",
					Category:                "Technology",
					DifficultyLevel:         "Intermediate",
					EstimatedDurationMonths: 12,
					RequiredSkills:          []string{"Programming", "Problem Solving"},
					SalaryRangeMin:          70000,
					SalaryRangeMax:          130000,
					JobOutlook:              "Excellent",
				},
				MatchScore:  0.8,
				DemandScore: 10,
				TotalScore:  3.56,
			},
			{
				Career: models.Career{
					ID:              "data-scientist",
					Title:           "Data Scientist",
					Category:        "Technology",
					DifficultyLevel: "Advanced",
					RequiredSkills:  []string{"Python", "SQL"},
				},
				MatchScore:  0.65,
				DemandScore: 9,
				TotalScore:  3.16,
			},
		},
	}
}

// ==========================
// Save Tests
// ==========================

func TestRecommendationStore_SaveResult(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	store := NewRecommendationStore(db, logger.NewTestLogger(t))
	result := testResult()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM recommendations").
		WithArgs("user-1", "quiz_123_abc").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO recommendations").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO recommendations").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.SaveResult(context.Background(), result)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationStore_SaveResult_InsertFailureRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	store := NewRecommendationStore(db, logger.NewTestLogger(t))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM recommendations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO recommendations").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := store.SaveResult(context.Background(), testResult())

	assert.ErrorIs(t, err, ErrRecommendationInsertFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Lookup Tests
// ==========================

func recommendationColumns() []string {
	return []string{
		"career_id", "title", "description", "category", "difficulty_level",
		"estimated_duration_months", "required_skills", "salary_range_min",
		"salary_range_max", "job_outlook", "match_score", "demand_score",
		"total_score", "computed_at",
	}
}

func TestRecommendationStore_FindByAnswerSet(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	store := NewRecommendationStore(db, logger.NewTestLogger(t))

	rows := sqlmock.NewRows(recommendationColumns()).
		AddRow("software-engineer", "Software Engineer", "desc", "Technology", "Intermediate",
			12, []byte(`["Programming","Problem Solving"]`), 70000, 130000, "Excellent",
			0.8, 10, 3.56, "2026-08-28T10:00:00Z").
		AddRow("data-scientist", "Data Scientist", "desc", "Technology", "Advanced",
			18, []byte(`["Python","SQL"]`), 80000, 150000, "Excellent",
			0.65, 9, 3.16, "2026-08-28T10:00:00Z")

	mock.ExpectQuery("SELECT career_id, title, description").
		WithArgs("user-1", "quiz_123_abc").
		WillReturnRows(rows)

	result, err := store.FindByAnswerSet(context.Background(), "user-1", "quiz_123_abc")

	require.NoError(t, err)
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, "quiz_123_abc", result.AnswerSetID)
	assert.Equal(t, "software-engineer", result.Recommendations[0].ID)
	assert.Equal(t, []string{"Programming", "Problem Solving"}, result.Recommendations[0].RequiredSkills)
	assert.Equal(t, 3.56, result.Recommendations[0].TotalScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationStore_FindByAnswerSet_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	store := NewRecommendationStore(db, logger.NewTestLogger(t))

	mock.ExpectQuery("SELECT career_id, title, description").
		WithArgs("user-1", "quiz_gone").
		WillReturnRows(sqlmock.NewRows(recommendationColumns()))

	_, err := store.FindByAnswerSet(context.Background(), "user-1", "quiz_gone")

	assert.ErrorIs(t, err, ErrRecommendationsNotFound)
}
