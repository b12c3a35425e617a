// Package storage persists quiz results, recommendation sets, and roadmaps
// in Postgres.
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
	ErrQuizInsertFailed = errors.New("QUIZ_INSERT_FAILED")
	ErrQuizNotFound     = errors.New("QUIZ_NOT_FOUND")
)

// QuizStore persists completed quiz submissions.
type QuizStore struct {
	db     *sql.DB
	logger logger.Logger
}

// NewQuizStore creates a quiz store over the given database handle.
func NewQuizStore(db *sql.DB, log logger.Logger) *QuizStore {
	return &QuizStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"store": "quiz"}),
	}
}

// InsertResult stores one completed quiz. Answers are serialized into a
// JSONB column.
func (s *QuizStore) InsertResult(ctx context.Context, userID, answerSetID string, answers []models.QuizAnswer) (*models.QuizResult, error) {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal answers: %v", ErrQuizInsertFailed, err)
	}

	id := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quizzes (
			id, user_id, answer_set_id, answers, completed_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $5)`,
		id, userID, answerSetID, answersJSON, now,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: insert failed: %v", ErrQuizInsertFailed, err)
	}

	s.logger.Info("quiz result stored", map[string]interface{}{
		"userId":      userID,
		"answerSetId": answerSetID,
	})

	return &models.QuizResult{
		ID:          id,
		AnswerSetID: answerSetID,
		UserID:      userID,
		Answers:     answers,
		CompletedAt: now,
		CreatedAt:   now,
	}, nil
}

// LatestByUser returns the most recently completed quiz for a user.
func (s *QuizStore) LatestByUser(ctx context.Context, userID string) (*models.QuizResult, error) {
	var result models.QuizResult
	var answersJSON []byte

	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, answer_set_id, answers, completed_at, created_at
		FROM quizzes
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, userID).Scan(
		&result.ID, &result.UserID, &result.AnswerSetID,
		&answersJSON, &result.CompletedAt, &result.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("query latest quiz: %w", err)
	}

	if err := json.Unmarshal(answersJSON, &result.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal stored answers: %w", err)
	}

	return &result, nil
}

// ByAnswerSet returns the quiz stored under one answer set ID.
func (s *QuizStore) ByAnswerSet(ctx context.Context, userID, answerSetID string) (*models.QuizResult, error) {
	var result models.QuizResult
	var answersJSON []byte

	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, answer_set_id, answers, completed_at, created_at
		FROM quizzes
		WHERE user_id = $1 AND answer_set_id = $2`, userID, answerSetID).Scan(
		&result.ID, &result.UserID, &result.AnswerSetID,
		&answersJSON, &result.CompletedAt, &result.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("query quiz by answer set: %w", err)
	}

	if err := json.Unmarshal(answersJSON, &result.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal stored answers: %w", err)
	}

	return &result, nil
}
