package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/osse101/GrammoRPG_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body into req and validates
// its struct tags. Unknown fields and trailing data are rejected.
//
// If this function returns an error, the response has already been written
// and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			RespondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return err
		}
		RespondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		log.Warn(fmt.Sprintf("Trailing data in %s request", actionName))
		RespondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		if err == nil {
			err = errors.New(ErrMsgInvalidRequest)
		}
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetQueryParam retrieves a required query parameter. If it is missing or
// empty, a 400 has been written and ok is false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		RespondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// IDParser converts a path segment into an entity id
type IDParser[ID comparable] func(string) (ID, error)

// ParseIntID accepts positive base-10 integers that fit a serial column
func ParseIntID(s string) (int, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if id < 1 {
		return 0, fmt.Errorf("id must be positive: %d", id)
	}
	return int(id), nil
}

// ParseUUID accepts canonical UUID strings
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
