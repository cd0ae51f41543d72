package handler

import (
	"net/http"

	"github.com/dmartell/amorcito-api/internal/phrase"
)

// PhraseListResponse is the phrase listing payload, with the total the
// frontend shows.
type PhraseListResponse struct {
	Phrases interface{} `json:"frases"`
	Total   int         `json:"total"`
}

// PhraseFilterRequest carries the optional categoria query parameter.
type PhraseFilterRequest struct {
	Category string `validate:"omitempty,categoria"`
}

// getCategoryParam extracts and validates the categoria query
// parameter. On failure the HTTP response has already been written and
// the handler should return.
func getCategoryParam(r *http.Request, w http.ResponseWriter) (string, bool) {
	category := r.URL.Query().Get("categoria")

	if err := GetValidator().ValidateStruct(PhraseFilterRequest{Category: category}); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return "", false
	}
	return category, true
}

// HandleListPhrases handles listing phrases
// @Summary List phrases
// @Description List all phrases, optionally filtered by category
// @Tags frases
// @Param categoria query string false "Category filter"
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/frases [get]
func HandleListPhrases(svc phrase.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, ok := getCategoryParam(r, w)
		if !ok {
			return
		}

		phrases, err := svc.List(r.Context(), category)
		if err != nil {
			respondServiceError(w, r, "List phrases", err)
			return
		}

		respondData(w, http.StatusOK, PhraseListResponse{Phrases: phrases, Total: len(phrases)}, "")
	}
}

// HandleRandomPhrase handles picking a random phrase
// @Summary Random phrase
// @Description Pick a uniformly random phrase, optionally within a category
// @Tags frases
// @Param categoria query string false "Category filter"
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/frases/aleatoria [get]
func HandleRandomPhrase(svc phrase.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, ok := getCategoryParam(r, w)
		if !ok {
			return
		}

		picked, err := svc.Random(r.Context(), category)
		if err != nil {
			respondServiceError(w, r, "Random phrase", err)
			return
		}

		respondData(w, http.StatusOK, picked, "")
	}
}

// HandleGetPhrase handles fetching one phrase
// @Summary Get a phrase
// @Description Get a single phrase by id
// @Tags frases
// @Param id path int true "Phrase ID"
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/frases/{id} [get]
func HandleGetPhrase(svc phrase.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phraseID, ok := GetURLParamInt(r, w, "id")
		if !ok {
			return
		}

		found, err := svc.Get(r.Context(), phraseID)
		if err != nil {
			respondServiceError(w, r, "Get phrase", err)
			return
		}

		respondData(w, http.StatusOK, found, "")
	}
}
