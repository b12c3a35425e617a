package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-guidance/internal/common/logger"
	"career-guidance/internal/models"
)

var (
	ErrRoadmapInsertFailed = errors.New("ROADMAP_INSERT_FAILED")
	ErrRoadmapNotFound     = errors.New("ROADMAP_NOT_FOUND")
)

// RoadmapStore persists generated roadmaps. Steps are serialized into a
// JSONB column since the step set is fixed and read back whole.
type RoadmapStore struct {
	db     *sql.DB
	logger logger.Logger
}

// NewRoadmapStore creates a roadmap store.
func NewRoadmapStore(db *sql.DB, log logger.Logger) *RoadmapStore {
	return &RoadmapStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"store": "roadmap"}),
	}
}

// Save stores a generated roadmap for a user.
func (s *RoadmapStore) Save(ctx context.Context, userID string, roadmap *models.CareerRoadmap) error {
	stepsJSON, err := json.Marshal(roadmap.Steps)
	if err != nil {
		return fmt.Errorf("%w: marshal steps: %v", ErrRoadmapInsertFailed, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO roadmaps (
			id, user_id, career_id, title, description, steps,
			estimated_duration_months, current_step, is_completed,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		roadmap.ID, userID, roadmap.CareerID, roadmap.Title,
		roadmap.Description, stepsJSON, roadmap.EstimatedDurationMonths,
		roadmap.CurrentStep, roadmap.IsCompleted,
		roadmap.CreatedAt, roadmap.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: insert failed: %v", ErrRoadmapInsertFailed, err)
	}

	s.logger.Info("roadmap stored", map[string]interface{}{
		"roadmapId": roadmap.ID,
		"userId":    userID,
		"careerId":  roadmap.CareerID,
	})

	return nil
}

// FindByID loads one roadmap.
func (s *RoadmapStore) FindByID(ctx context.Context, roadmapID string) (*models.CareerRoadmap, error) {
	var roadmap models.CareerRoadmap
	var stepsJSON []byte

	err := s.db.QueryRowContext(ctx, `
		SELECT id, career_id, title, description, steps,
		       estimated_duration_months, current_step, is_completed,
		       created_at, updated_at
		FROM roadmaps
		WHERE id = $1`, roadmapID).Scan(
		&roadmap.ID, &roadmap.CareerID, &roadmap.Title, &roadmap.Description,
		&stepsJSON, &roadmap.EstimatedDurationMonths, &roadmap.CurrentStep,
		&roadmap.IsCompleted, &roadmap.CreatedAt, &roadmap.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoadmapNotFound
		}
		return nil, fmt.Errorf("query roadmap: %w", err)
	}

	if err := json.Unmarshal(stepsJSON, &roadmap.Steps); err != nil {
		return nil, fmt.Errorf("unmarshal stored steps: %w", err)
	}

	return &roadmap, nil
}

// MarkStepCompleted flips one step to completed and advances the roadmap's
// bookkeeping columns.
func (s *RoadmapStore) MarkStepCompleted(ctx context.Context, roadmapID, stepID string) (*models.CareerRoadmap, error) {
	roadmap, err := s.FindByID(ctx, roadmapID)
	if err != nil {
		return nil, err
	}

	found := false
	completed := 0
	for i := range roadmap.Steps {
		if roadmap.Steps[i].ID == stepID {
			roadmap.Steps[i].IsCompleted = true
			found = true
		}
		if roadmap.Steps[i].IsCompleted {
			completed++
		}
	}
	if !found {
		return nil, fmt.Errorf("step %s not in roadmap %s", stepID, roadmapID)
	}

	roadmap.IsCompleted = completed == len(roadmap.Steps)
	if roadmap.CurrentStep < completed+1 && !roadmap.IsCompleted {
		roadmap.CurrentStep = completed + 1
	}
	roadmap.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	stepsJSON, err := json.Marshal(roadmap.Steps)
	if err != nil {
		return nil, fmt.Errorf("marshal steps: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE roadmaps
		SET steps = $1, current_step = $2, is_completed = $3, updated_at = $4
		WHERE id = $5`,
		stepsJSON, roadmap.CurrentStep, roadmap.IsCompleted,
		roadmap.UpdatedAt, roadmapID,
	)
	if err != nil {
		return nil, fmt.Errorf("update roadmap: %w", err)
	}

	return roadmap, nil
}
