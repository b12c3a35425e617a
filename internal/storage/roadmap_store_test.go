package storage

import (
	"context"
	"database/sql"
	"encoding/json"
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

func testRoadmap() *models.CareerRoadmap {
	return &models.CareerRoadmap{
		ID:          "roadmap_data-scientist_1756375200000",
		CareerID:    "data-scientist",
		Title:       "Data Scientist Career Roadmap",
		Description: "A step-by-step guide to becoming a Data Scientist",
		Steps: []models.RoadmapStep{
			{ID: "foundation", Title: "Build Foundation Skills", DurationWeeks: 8, Order: 1},
			{ID: "core-knowledge", Title: "Learn Core Knowledge", DurationWeeks: 12, Order: 2},
		},
		EstimatedDurationMonths: 18,
		CurrentStep:             1,
		IsCompleted:             false,
		CreatedAt:               "2026-08-28T10:00:00Z",
		UpdatedAt:               "2026-08-28T10:00:00Z",
	}
}

func roadmapColumns() []string {
	return []string{
		"id", "career_id", "title", "description", "steps",
		"estimated_duration_months", "current_step", "is_completed",
		"created_at", "updated_at",
	}
}

func roadmapRow(t *testing.T, roadmap *models.CareerRoadmap) *sqlmock.Rows {
	t.Helper()
	stepsJSON, err := json.Marshal(roadmap.Steps)
	require.NoError(t, err)

	return sqlmock.NewRows(roadmapColumns()).
		AddRow(roadmap.ID, roadmap.CareerID, roadmap.Title, roadmap.Description,
			stepsJSON, roadmap.EstimatedDurationMonths, roadmap.CurrentStep,
			roadmap.IsCompleted, roadmap.CreatedAt, roadmap.UpdatedAt)
}

// ==========================
// Save Tests
// ==========================

func TestRoadmapStore_Save(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	store := NewRoadmapStore(db, logger.NewTestLogger(t))
	roadmap := testRoadmap()

	mock.ExpectExec("INSERT INTO roadmaps").
		WithArgs(roadmap.ID, "user-1", roadmap.CareerID, roadmap.Title,
			roadmap.Description, sqlmock.AnyArg(), roadmap.EstimatedDurationMonths,
			roadmap.CurrentStep, roadmap.IsCompleted,
			roadmap.CreatedAt, roadmap.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Save(context.Background(), "user-1", roadmap)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoadmapStore_Save_DatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	store := NewRoadmapStore(db, logger.NewTestLogger(t))

	mock.ExpectExec("INSERT INTO roadmaps").
		WillReturnError(sql.ErrConnDone)

	err := store.Save(context.Background(), "user-1", testRoadmap())

	assert.ErrorIs(t, err, ErrRoadmapInsertFailed)
}

// ==========================
// Lookup Tests
// ==========================

func TestRoadmapStore_FindByID(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	store := NewRoadmapStore(db, logger.NewTestLogger(t))
	roadmap := testRoadmap()

	mock.ExpectQuery("SELECT id, career_id, title").
		WithArgs(roadmap.ID).
		WillReturnRows(roadmapRow(t, roadmap))

	found, err := store.FindByID(context.Background(), roadmap.ID)

	require.NoError(t, err)
	assert.Equal(t, roadmap.ID, found.ID)
	assert.Len(t, found.Steps, 2)
	assert.Equal(t, "core-knowledge", found.Steps[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoadmapStore_FindByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	store := NewRoadmapStore(db, logger.NewTestLogger(t))

	mock.ExpectQuery("SELECT id, career_id, title").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := store.FindByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrRoadmapNotFound)
}

// ==========================
// Step Completion Tests
// ==========================

func TestRoadmapStore_MarkStepCompleted(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	store := NewRoadmapStore(db, logger.NewTestLogger(t))
	roadmap := testRoadmap()

	mock.ExpectQuery("SELECT id, career_id, title").
		WithArgs(roadmap.ID).
		WillReturnRows(roadmapRow(t, roadmap))
	mock.ExpectExec("UPDATE roadmaps").
		WithArgs(sqlmock.AnyArg(), 2, false, sqlmock.AnyArg(), roadmap.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := store.MarkStepCompleted(context.Background(), roadmap.ID, "foundation")

	require.NoError(t, err)
	assert.True(t, updated.Steps[0].IsCompleted)
	assert.False(t, updated.Steps[1].IsCompleted)
	assert.Equal(t, 2, updated.CurrentStep)
	assert.False(t, updated.IsCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoadmapStore_MarkStepCompleted_LastStepFinishesRoadmap(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	store := NewRoadmapStore(db, logger.NewTestLogger(t))
	roadmap := testRoadmap()
	roadmap.Steps[0].IsCompleted = true
	roadmap.CurrentStep = 2

	mock.ExpectQuery("SELECT id, career_id, title").
		WithArgs(roadmap.ID).
		WillReturnRows(roadmapRow(t, roadmap))
	mock.ExpectExec("UPDATE roadmaps").
		WithArgs(sqlmock.AnyArg(), 2, true, sqlmock.AnyArg(), roadmap.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := store.MarkStepCompleted(context.Background(), roadmap.ID, "core-knowledge")

	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoadmapStore_MarkStepCompleted_UnknownStep(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	store := NewRoadmapStore(db, logger.NewTestLogger(t))
	roadmap := testRoadmap()

	mock.ExpectQuery("SELECT id, career_id, title").
		WithArgs(roadmap.ID).
		WillReturnRows(roadmapRow(t, roadmap))

	_, err := store.MarkStepCompleted(context.Background(), roadmap.ID, "does-not-exist")

	assert.ErrorContains(t, err, "not in roadmap")
}
