package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/GrammoRPG_Go/internal/database"
	"github.com/osse101/GrammoRPG_Go/internal/domain"
	"github.com/osse101/GrammoRPG_Go/internal/logger"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse adds per-field messages to a 400
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON encodes payload into a pooled buffer before writing headers so
// an encoding failure can still produce a 500.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// RespondError writes {"error": message} with status
func RespondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceError converts a service error into a status code and a message
// that is safe to show clients.
func mapServiceError(entity string, err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, fmt.Sprintf(ErrMsgNotFound, entity)
	case errors.Is(err, domain.ErrDuplicateName):
		return http.StatusConflict, ErrMsgDuplicateName
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, ErrMsgDuplicateEmail
	case errors.Is(err, domain.ErrStillReferenced):
		return http.StatusConflict, fmt.Sprintf(ErrMsgStillReferenced, entity)
	case errors.Is(err, domain.ErrInvalidReference):
		return http.StatusBadRequest, ErrMsgInvalidReference
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInput
	case database.IsConnectionError(err):
		return http.StatusServiceUnavailable, ErrMsgUnavailable
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs err and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, entity, op string, err error) {
	status, msg := mapServiceError(entity, err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "entity", entity, "error", err)
	} else {
		log.Warn(op+" rejected", "entity", entity, "status", status, "error", err)
	}
	RespondError(w, status, msg)
}
