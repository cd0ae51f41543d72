package handler

import (
	"fmt"
	"net/http"

	"github.com/dmartell/amorcito-api/internal/progress"
)

// HandleListLetters handles listing all letters with read flags
// @Summary List letters
// @Description List every letter with its read and availability flags
// @Tags cartas
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/cartas [get]
func HandleListLetters(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		letters, err := svc.ListLetters(r.Context())
		if err != nil {
			respondServiceError(w, r, "List letters", err)
			return
		}

		respondData(w, http.StatusOK, letters, fmt.Sprintf("Se encontraron %d cartas", len(letters)))
	}
}

// HandleReadLetter handles marking a letter read
// @Summary Read a letter
// @Description Mark a letter read and award a star on first read; repeats are a no-op
// @Tags cartas
// @Param id path int true "Letter ID"
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/leer-carta/{id} [post]
func HandleReadLetter(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		letterID, ok := GetURLParamInt(r, w, "id")
		if !ok {
			return
		}

		result, err := svc.ReadLetter(r.Context(), letterID)
		if err != nil {
			respondServiceError(w, r, "Read letter", err)
			return
		}

		respondData(w, http.StatusOK, result, "Carta procesada exitosamente")
	}
}
