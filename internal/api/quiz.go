package api

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	stderrors "career-guidance/internal/common/errors"
	"career-guidance/internal/common/metrics"
	"career-guidance/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// quizSubmissionSchema validates the POST /api/quiz payload before it is
// decoded into a QuizSubmission.
const quizSubmissionSchema = `{
	"type": "object",
	"required": ["userId", "answers"],
	"properties": {
		"userId": {
			"type": "string",
			"minLength": 1
		},
		"answers": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["questionId", "answer"],
				"properties": {
					"questionId": {
						"type": "string",
						"minLength": 1
					},
					"answer": {
						"type": ["string", "number", "array"]
					}
				}
			}
		}
	}
}`

var quizSchemaLoader = gojsonschema.NewStringLoader(quizSubmissionSchema)

const answerSetIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// newAnswerSetID produces IDs shaped like quiz_1735689600000_x7k2m9p4q.
func newAnswerSetID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = answerSetIDAlphabet[rand.Intn(len(answerSetIDAlphabet))]
	}
	return fmt.Sprintf("quiz_%d_%s", time.Now().UnixMilli(), suffix)
}

// validateQuizPayload runs the JSON schema over the raw body and returns the
// joined violation messages, if any.
func validateQuizPayload(body []byte) (string, error) {
	result, err := gojsonschema.Validate(quizSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return "", err
	}
	if result.Valid() {
		return "", nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return strings.Join(violations, "; "), nil
}

// handleQuizSubmit validates and stores a completed quiz, then returns the
// stored result including its generated answer set ID.
func (rt *Router) handleQuizSubmit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		metrics.QuizSubmissions.WithLabelValues("rejected").Inc()
		rt.writeError(w, stderrors.NewInvalidQuizSubmissionError("failed to read request body"))
		return
	}

	violations, err := validateQuizPayload(body)
	if err != nil {
		metrics.QuizSubmissions.WithLabelValues("rejected").Inc()
		rt.writeError(w, stderrors.NewInvalidQuizSubmissionError(err.Error()))
		return
	}
	if violations != "" {
		metrics.QuizSubmissions.WithLabelValues("rejected").Inc()
		rt.writeError(w, stderrors.NewInvalidQuizSubmissionError(violations))
		return
	}

	var submission models.QuizSubmission
	if err := json.Unmarshal(body, &submission); err != nil {
		metrics.QuizSubmissions.WithLabelValues("rejected").Inc()
		rt.writeError(w, stderrors.NewInvalidQuizSubmissionError(err.Error()))
		return
	}

	answerSetID := newAnswerSetID()
	result, err := rt.quizStore.InsertResult(r.Context(), submission.UserID, answerSetID, submission.Answers)
	if err != nil {
		metrics.QuizSubmissions.WithLabelValues("failed").Inc()
		rt.writeError(w, stderrors.NewQuizStorageError(err))
		return
	}

	// A new submission supersedes any recommendations computed from the
	// previous one.
	rt.engine.ClearCache()

	metrics.QuizSubmissions.WithLabelValues("stored").Inc()
	rt.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":     true,
		"answerSetId": result.AnswerSetID,
		"result":      result,
	})
}

// handleQuizQuestions returns the fixed question set the quiz form renders.
func (rt *Router) handleQuizQuestions(w http.ResponseWriter, r *http.Request) {
	rt.writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": models.QuizQuestions,
	})
}
