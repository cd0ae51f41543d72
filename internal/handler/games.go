package handler

import (
	"net/http"

	"github.com/dmartell/amorcito-api/internal/progress"
)

// HandleCompleteGame handles the flat star bonus for finishing a game
// @Summary Complete a game
// @Description Grant the flat star bonus; every completed game pays out
// @Tags juegos
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/completar-juego [post]
func HandleCompleteGame(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.CompleteGame(r.Context())
		if err != nil {
			respondServiceError(w, r, "Complete game", err)
			return
		}

		respondData(w, http.StatusOK, result, "Bonus de juego otorgado exitosamente")
	}
}
