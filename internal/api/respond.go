package api

import (
	"encoding/json"
	"net/http"

	stderrors "career-guidance/internal/common/errors"
)

// writeJSON serializes v with the given status. Encoding failures are logged
// but cannot be reported to the client since the header is already written.
func (rt *Router) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		rt.logger.Error("failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// errorResponse is the JSON envelope for failed requests.
type errorResponse struct {
	Error *stderrors.StandardError `json:"error"`
}

// writeError maps a StandardError onto its HTTP status and sends it.
func (rt *Router) writeError(w http.ResponseWriter, stdErr *stderrors.StandardError) {
	status := stderrors.HTTPStatus(stdErr.Code)
	if status >= http.StatusInternalServerError {
		rt.logger.Error(stdErr.Message, map[string]interface{}{
			"code":      string(stdErr.Code),
			"details":   stdErr.Details,
			"retryable": stdErr.Retryable,
		})
	} else {
		rt.logger.Warn(stdErr.Message, map[string]interface{}{
			"code":    string(stdErr.Code),
			"details": stdErr.Details,
		})
	}
	rt.writeJSON(w, status, errorResponse{Error: stdErr})
}
