package handler

import (
	"net/http"

	"github.com/dmartell/amorcito-api/internal/logger"
	"github.com/dmartell/amorcito-api/internal/progress"
)

// HandleGetState handles reading the full app state
// @Summary Get app state
// @Description Get accumulated points, stars and unlock/claim history
// @Tags estado
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/estado [get]
func HandleGetState(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.GetState(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get state", err)
			return
		}

		respondData(w, http.StatusOK, state, "Estado obtenido exitosamente")
	}
}

// HandleAwardPoint handles awarding one consideration point
// @Summary Award a consideration point
// @Description Increment points by one and unlock any reasons whose threshold is reached
// @Tags estado
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dar-punto [post]
func HandleAwardPoint(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		result, err := svc.AwardPoint(r.Context())
		if err != nil {
			respondServiceError(w, r, "Award point", err)
			return
		}

		log.Info("Point awarded", "total", result.NewPointsTotal, "unlocked", len(result.NewlyUnlockedReasons))
		respondData(w, http.StatusOK, result, "Punto de consideración agregado exitosamente")
	}
}
