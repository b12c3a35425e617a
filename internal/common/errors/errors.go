// Package errors provides standardized error handling for the career
// guidance service.
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidQuizSubmission ErrorCode = "INVALID_QUIZ_SUBMISSION"
	ErrCodeQuizStorageFailed     ErrorCode = "QUIZ_STORAGE_ERROR"
	ErrCodeQuizNotFound          ErrorCode = "QUIZ_NOT_FOUND"

	ErrCodeMissingUserID      ErrorCode = "MISSING_USER_ID"
	ErrCodeMissingCareerID    ErrorCode = "MISSING_CAREER_ID"
	ErrCodeCareerNotFound     ErrorCode = "CAREER_NOT_FOUND"
	ErrCodeRecStorageFailed   ErrorCode = "RECOMMENDATION_STORAGE_ERROR"
	ErrCodeRoadmapStoreFailed ErrorCode = "ROADMAP_STORAGE_ERROR"
	ErrCodeRoadmapNotFound    ErrorCode = "ROADMAP_NOT_FOUND"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeCacheUnavailable         ErrorCode = "CACHE_UNAVAILABLE"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidQuizSubmissionError creates a non-retryable validation error.
func NewInvalidQuizSubmissionError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidQuizSubmission,
		Message:   "Quiz submission failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewQuizStorageError creates a retryable quiz persistence error.
func NewQuizStorageError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQuizStorageFailed,
		Message:   "Failed to store quiz results",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQuizNotFoundError creates a non-retryable missing-quiz error.
func NewQuizNotFoundError(userID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQuizNotFound,
		Message:   "No quiz results found for user",
		Details:   fmt.Sprintf("userId: %s", userID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingUserIDError creates a non-retryable parameter error.
func NewMissingUserIDError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingUserID,
		Message:   "Missing or invalid userId parameter",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingCareerIDError creates a non-retryable parameter error.
func NewMissingCareerIDError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingCareerID,
		Message:   "Missing or invalid careerId parameter",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCareerNotFoundError creates a non-retryable catalog lookup error.
func NewCareerNotFoundError(careerID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCareerNotFound,
		Message:   "Career not found",
		Details:   fmt.Sprintf("careerId: %s", careerID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRecommendationStorageError creates a retryable persistence error.
func NewRecommendationStorageError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecStorageFailed,
		Message:   "Failed to store recommendations",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRoadmapStorageError creates a retryable persistence error.
func NewRoadmapStorageError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRoadmapStoreFailed,
		Message:   "Failed to store roadmap",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRoadmapNotFoundError creates a non-retryable missing-roadmap error.
func NewRoadmapNotFoundError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRoadmapNotFound,
		Message:   "Roadmap not found",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(query string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("query: %s, error: %s", query, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache error.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Recommendation cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatusMapping maps internal error codes to HTTP status codes.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeInvalidQuizSubmission:    http.StatusBadRequest,
	ErrCodeMissingUserID:            http.StatusBadRequest,
	ErrCodeMissingCareerID:          http.StatusBadRequest,
	ErrCodeQuizNotFound:             http.StatusNotFound,
	ErrCodeCareerNotFound:           http.StatusNotFound,
	ErrCodeRoadmapNotFound:          http.StatusNotFound,
	ErrCodeQuizStorageFailed:        http.StatusInternalServerError,
	ErrCodeRecStorageFailed:         http.StatusInternalServerError,
	ErrCodeRoadmapStoreFailed:       http.StatusInternalServerError,
	ErrCodeDatabaseConnectionFailed: http.StatusServiceUnavailable,
	ErrCodeQueryExecutionFailed:     http.StatusInternalServerError,
	ErrCodeCacheUnavailable:         http.StatusServiceUnavailable,
	ErrCodeInternal:                 http.StatusInternalServerError,
}

// HTTPStatus returns the status code for an error code, defaulting to 500.
func HTTPStatus(code ErrorCode) int {
	if status, ok := HTTPStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ==========================
// 4. Utility Functions
// ==========================

// IsRetryable checks whether the error is a retryable StandardError.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "QUIZ"):
		return "QUIZ"
	case strings.Contains(codeStr, "RECOMMENDATION"):
		return "RECOMMENDATION"
	case strings.Contains(codeStr, "ROADMAP"):
		return "ROADMAP"
	case strings.Contains(codeStr, "CAREER"):
		return "CATALOG"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY"):
		return "DATABASE"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "MISSING"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
