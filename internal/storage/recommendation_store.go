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

	"github.com/google/uuid"
)

var (
	ErrRecommendationInsertFailed = errors.New("RECOMMENDATION_INSERT_FAILED")
	ErrRecommendationsNotFound    = errors.New("RECOMMENDATIONS_NOT_FOUND")
)

// RecommendationStore persists computed recommendation sets, one row per
// recommended career, keyed by (user_id, answer_set_id).
type RecommendationStore struct {
	db     *sql.DB
	logger logger.Logger
}

// NewRecommendationStore creates a recommendation store.
func NewRecommendationStore(db *sql.DB, log logger.Logger) *RecommendationStore {
	return &RecommendationStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"store": "recommendation"}),
	}
}

// SaveResult stores every recommendation of a computed result inside one
// transaction. Re-saving the same answer set replaces the previous rows.
func (s *RecommendationStore) SaveResult(ctx context.Context, result *models.RecommendationResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", ErrRecommendationInsertFailed, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM recommendations
		WHERE user_id = $1 AND answer_set_id = $2`,
		result.UserID, result.AnswerSetID,
	)
	if err != nil {
		return fmt.Errorf("%w: clear previous rows: %v", ErrRecommendationInsertFailed, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, rec := range result.Recommendations {
		skillsJSON, err := json.Marshal(rec.RequiredSkills)
		if err != nil {
			return fmt.Errorf("%w: marshal required skills: %v", ErrRecommendationInsertFailed, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO recommendations (
				id, user_id, answer_set_id, career_id, title, description,
				category, difficulty_level, estimated_duration_months,
				required_skills, salary_range_min, salary_range_max,
				job_outlook, match_score, demand_score, total_score,
				computed_at, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
			uuid.New().String(), result.UserID, result.AnswerSetID,
			rec.ID, rec.Title, rec.Description,
			rec.Category, rec.DifficultyLevel, rec.EstimatedDurationMonths,
			skillsJSON, rec.SalaryRangeMin, rec.SalaryRangeMax,
			rec.JobOutlook, rec.MatchScore, rec.DemandScore, rec.TotalScore,
			result.ComputedAt, now,
		)
		if err != nil {
			return fmt.Errorf("%w: insert failed: %v", ErrRecommendationInsertFailed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrRecommendationInsertFailed, err)
	}

	s.logger.Info("recommendation set stored", map[string]interface{}{
		"userId":      result.UserID,
		"answerSetId": result.AnswerSetID,
		"count":       len(result.Recommendations),
	})

	return nil
}

// FindByAnswerSet loads a persisted recommendation set ordered by total
// score descending.
func (s *RecommendationStore) FindByAnswerSet(ctx context.Context, userID, answerSetID string) (*models.RecommendationResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT career_id, title, description, category, difficulty_level,
		       estimated_duration_months, required_skills, salary_range_min,
		       salary_range_max, job_outlook, match_score, demand_score,
		       total_score, computed_at
		FROM recommendations
		WHERE user_id = $1 AND answer_set_id = $2
		ORDER BY total_score DESC`, userID, answerSetID)
	if err != nil {
		return nil, fmt.Errorf("query recommendations: %w", err)
	}
	defer rows.Close()

	result := &models.RecommendationResult{
		UserID:      userID,
		AnswerSetID: answerSetID,
	}

	for rows.Next() {
		var rec models.CareerRecommendation
		var skillsJSON []byte

		err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Description, &rec.Category,
			&rec.DifficultyLevel, &rec.EstimatedDurationMonths,
			&skillsJSON, &rec.SalaryRangeMin, &rec.SalaryRangeMax,
			&rec.JobOutlook, &rec.MatchScore, &rec.DemandScore,
			&rec.TotalScore, &result.ComputedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan recommendation row: %w", err)
		}

		if err := json.Unmarshal(skillsJSON, &rec.RequiredSkills); err != nil {
			return nil, fmt.Errorf("unmarshal required skills: %w", err)
		}

		result.Recommendations = append(result.Recommendations, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recommendation rows: %w", err)
	}

	if len(result.Recommendations) == 0 {
		return nil, ErrRecommendationsNotFound
	}

	return result, nil
}
