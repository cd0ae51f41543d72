package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmartell/amorcito-api/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse is the envelope every successful operation returns.
// The frontend keys off the success flag, so it is always explicit.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already sent at this point; log and move on
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// respondData wraps payload in the success envelope
func respondData(w http.ResponseWriter, status int, payload interface{}, message string) {
	respondJSON(w, status, SuccessResponse{Success: true, Data: payload, Message: message})
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Success: false, Error: message})
}

// User-facing error messages for service errors. Shown verbatim by
// the frontend, hence Spanish.
const (
	ErrMsgGenericServerError = "Error interno del servidor"

	ErrMsgLetterNotFoundUser     = "Carta no encontrada"
	ErrMsgPrizeNotFoundUser      = "Premio no encontrado"
	ErrMsgSongNotFoundUser       = "Canción no encontrada"
	ErrMsgPhraseNotFoundUser     = "Frase no encontrada"
	ErrMsgPrizeAlreadyClaimedErr = "Este premio ya fue reclamado"
	ErrMsgInsufficientStarsErr   = "No tienes suficientes estrellas para este premio"
	ErrMsgNoPhrasesAvailableErr  = "No hay frases disponibles"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Validation errors surface as client errors with a readable message;
// anything else is a storage-layer fault and stays a generic 500 with
// the detail only in the logs.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrLetterNotFound):
		return http.StatusNotFound, ErrMsgLetterNotFoundUser
	case errors.Is(err, domain.ErrPrizeNotFound):
		return http.StatusNotFound, ErrMsgPrizeNotFoundUser
	case errors.Is(err, domain.ErrSongNotFound):
		return http.StatusNotFound, ErrMsgSongNotFoundUser
	case errors.Is(err, domain.ErrPhraseNotFound):
		return http.StatusNotFound, ErrMsgPhraseNotFoundUser
	case errors.Is(err, domain.ErrNoPhrasesAvailable):
		return http.StatusNotFound, ErrMsgNoPhrasesAvailableErr
	case errors.Is(err, domain.ErrPrizeAlreadyClaimed):
		return http.StatusBadRequest, ErrMsgPrizeAlreadyClaimedErr
	case errors.Is(err, domain.ErrInsufficientStars):
		return http.StatusBadRequest, ErrMsgInsufficientStarsErr
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
