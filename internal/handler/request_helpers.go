package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmartell/amorcito-api/internal/logger"
)

// Generic HTTP error messages for client responses.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidIDParam        = "Invalid id parameter"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetURLParamInt extracts a positive integer route parameter. On
// failure the HTTP response has already been written and the handler
// should return.
func GetURLParamInt(r *http.Request, w http.ResponseWriter, name string) (int, bool) {
	log := logger.FromContext(r.Context())

	raw := chi.URLParam(r, name)
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Warn("Invalid route parameter", "param", name, "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidIDParam)
		return 0, false
	}
	return value, true
}

// respondServiceError logs a service error and writes the mapped HTTP response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	if statusCode >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("%s failed", opName), "error", err)
	} else {
		log.Warn(fmt.Sprintf("%s rejected", opName), "error", err)
	}
	respondError(w, statusCode, userMsg)
}
